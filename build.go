package celltree

import "sort"

// LeafBucketSize is the maximum number of faces a leaf may own before the
// builder below stops splitting (spec.md §9 open question, decided in
// SPEC_FULL.md).
const LeafBucketSize = 4

// Build constructs a CellTreeData from raw mesh arrays. Tree construction
// is treated by spec.md §1 as a boundary input assumed by, but not fully
// specified for, the query core; this is a minimal top-down median-split
// builder sufficient to produce a tree the query functions in this package
// can traverse correctly (see SPEC_FULL.md for the full rationale).
//
// Build validates its input and returns a non-nil error, of type Status,
// if the mesh is empty or a face has fewer than 3 non-fill vertices — these
// are caller errors per spec.md §7, detected once at construction time
// rather than on every query.
func Build(vertices []Point, faces [][]int32) (*CellTreeData, error) {
	return BuildWithBucketSize(vertices, faces, LeafBucketSize)
}

// BuildWithBucketSize is Build with an explicit leaf bucket size, for
// callers that want to tune the tree's fan-out (e.g. the celltree CLI's
// 'config' settings file).
func BuildWithBucketSize(vertices []Point, faces [][]int32, bucketSize int) (*CellTreeData, error) {
	if bucketSize < 1 {
		bucketSize = LeafBucketSize
	}
	if len(faces) == 0 {
		return nil, Failure | Status(EmptyMesh)
	}
	for _, face := range faces {
		// PolygonLength only scans from index 3 onward (spec.md §4.1): a
		// FillValue at position 0-2 is a malformed row, not merely a short
		// polygon, and must be rejected explicitly (spec.md §7).
		for i := 0; i < 3 && i < len(face); i++ {
			if face[i] == FillValue {
				return nil, Failure | Status(DegenerateFace)
			}
		}
		if PolygonLength(face) < 3 {
			return nil, Failure | Status(DegenerateFace)
		}
	}

	boxes := BuildFaceBoxes(vertices, faces)
	root := boxes[0]
	for _, b := range boxes[1:] {
		root = UnionBox(root, b)
	}

	allFaces := make([]int32, len(faces))
	for i := range allFaces {
		allFaces[i] = int32(i)
	}

	nodes := []Node{{}}
	indices := make([]int32, 0, len(faces))

	type pending struct {
		nodeIndex int32
		faces     []int32
	}
	queue := []pending{{0, allFaces}}

	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]

		if len(cur.faces) <= bucketSize {
			ptr := int32(len(indices))
			indices = append(indices, cur.faces...)
			nodes[cur.nodeIndex] = Node{Child: -1, Ptr: ptr, Size: int32(len(cur.faces))}
			continue
		}

		dim := chooseSplitDim(cur.faces, boxes)
		left, right, lmax, rmin := partitionFaces(cur.faces, boxes, dim)

		// A degenerate partition (every face center ties on the median)
		// would loop forever; fall back to an even split by array
		// position, which always makes progress since len(cur.faces) > bucketSize >= 1.
		if len(left) == 0 || len(right) == 0 {
			mid := len(cur.faces) / 2
			left = append([]int32(nil), cur.faces[:mid]...)
			right = append([]int32(nil), cur.faces[mid:]...)
			lmax, rmin = extents(left, right, boxes, dim)
		}

		childIdx := int32(len(nodes))
		nodes = append(nodes, Node{}, Node{})
		nodes[cur.nodeIndex] = Node{Child: childIdx, Lmax: lmax, Rmin: rmin, Dim: uint8(dim)}

		queue = append(queue, pending{childIdx, left}, pending{childIdx + 1, right})
	}

	return &CellTreeData{
		Nodes:    nodes,
		Faces:    faces,
		Vertices: vertices,
		BBoxes:   boxes,
		Indices:  indices,
		Bbox:     root,
	}, nil
}

func center(box Box, dim uint8) float64 {
	if dim == 0 {
		return (box.Xmin + box.Xmax) / 2
	}
	return (box.Ymin + box.Ymax) / 2
}

func extent(box Box, dim uint8) (lo, hi float64) {
	if dim == 0 {
		return box.Xmin, box.Xmax
	}
	return box.Ymin, box.Ymax
}

// chooseSplitDim picks whichever axis has the larger spread of face-bbox
// centers among faces.
func chooseSplitDim(facesIdx []int32, boxes []Box) uint8 {
	var xlo, xhi, ylo, yhi float64
	xlo, xhi = center(boxes[facesIdx[0]], 0), center(boxes[facesIdx[0]], 0)
	ylo, yhi = center(boxes[facesIdx[0]], 1), center(boxes[facesIdx[0]], 1)
	for _, f := range facesIdx[1:] {
		cx := center(boxes[f], 0)
		cy := center(boxes[f], 1)
		xlo, xhi = min64(xlo, cx), max64(xhi, cx)
		ylo, yhi = min64(ylo, cy), max64(yhi, cy)
	}
	if (xhi - xlo) >= (yhi - ylo) {
		return 0
	}
	return 1
}

// partitionFaces splits facesIdx into left/right groups about the median
// face-bbox center along dim, and returns the corresponding loose split
// planes Lmax/Rmin (spec.md §3).
func partitionFaces(facesIdx []int32, boxes []Box, dim uint8) (left, right []int32, lmax, rmin float64) {
	sorted := append([]int32(nil), facesIdx...)
	sort.Slice(sorted, func(i, j int) bool {
		return center(boxes[sorted[i]], dim) < center(boxes[sorted[j]], dim)
	})
	median := center(boxes[sorted[len(sorted)/2]], dim)

	for _, f := range facesIdx {
		if center(boxes[f], dim) <= median {
			left = append(left, f)
		} else {
			right = append(right, f)
		}
	}
	lmax, rmin = extents(left, right, boxes, dim)
	return left, right, lmax, rmin
}

func extents(left, right []int32, boxes []Box, dim uint8) (lmax, rmin float64) {
	if len(left) > 0 {
		_, hi := extent(boxes[left[0]], dim)
		lmax = hi
		for _, f := range left[1:] {
			_, hi := extent(boxes[f], dim)
			lmax = max64(lmax, hi)
		}
	}
	if len(right) > 0 {
		lo, _ := extent(boxes[right[0]], dim)
		rmin = lo
		for _, f := range right[1:] {
			lo, _ := extent(boxes[f], dim)
			rmin = min64(rmin, lo)
		}
	}
	return lmax, rmin
}

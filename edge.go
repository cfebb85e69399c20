package celltree

import "github.com/arl/celltree/internal/xstack"

// Hit describes one face intersected by a segment query, together with the
// parametric sub-interval of the segment that lies within that face
// (spec.md §4.5).
type Hit struct {
	Face   int32
	T0, T1 float64
}

// LocateEdge walks the tree for the segment (a,b), testing each candidate
// leaf face with Cohen-Sutherland (against its bbox) then Cyrus-Beck
// (against its polygon). If hits is non-nil, matches are appended to it and
// returned; otherwise only the count is returned (spec.md §4.5).
func LocateEdge(a, b Point, tree *CellTreeData, hits []Hit) (int, []Hit) {
	if ok, _, _ := CohenSutherlandLineBoxClip(tree.Bbox, a, b); !ok {
		return 0, hits
	}

	v := ToVector(a, b)
	stack := xstack.New(xstack.DefaultCapacity)
	stack.Push(0)
	count := 0

	for !stack.Empty() {
		nodeIndex := stack.Pop()
		node := tree.Nodes[nodeIndex]

		if node.IsLeaf() {
			for i := node.Ptr; i < node.Ptr+node.Size; i++ {
				bboxIndex := tree.Indices[i]
				box := tree.BBoxes[bboxIndex]
				if ok, _, _ := CohenSutherlandLineBoxClip(box, a, b); !ok {
					continue
				}
				poly := ring(tree.Vertices, tree.Faces[bboxIndex])
				if ok, t0, t1 := CyrusBeckLinePolygonClip(a, b, poly); ok {
					if hits != nil {
						hits = append(hits, Hit{Face: bboxIndex, T0: t0, T1: t1})
					}
					count++
				}
			}
			continue
		}

		var coordA, coordB float64
		if node.Dim == 0 {
			coordA, coordB = a.X, b.X
		} else {
			coordA, coordB = a.Y, b.Y
		}
		dv := coordB - coordA
		dmax := node.Lmax - coordA
		dmin := node.Rmin - coordB

		left := dmax >= 0
		right := dmin <= 0

		if dv != 0 {
			if left {
				left = (dmax / dv) >= 0
			}
			if right {
				right = (dmin / dv) <= 1
			}
		}

		switch {
		case left && right:
			stack.Push(node.Child)
			stack.Push(node.Child + 1)
		case left:
			stack.Push(node.Child)
		case right:
			stack.Push(node.Child + 1)
		}
	}

	return count, hits
}

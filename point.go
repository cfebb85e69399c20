package celltree

import "github.com/arl/celltree/internal/xstack"

// pointInPolygon tests whether point lies inside the face at bboxIndex,
// reading vertices directly through the face table (spec.md §4.3).
func pointInPolygon(bboxIndex int32, point Point, tree *CellTreeData) bool {
	face := tree.Faces[bboxIndex]
	n := PolygonLength(face)

	c := false
	v0 := tree.Vertices[face[n-1]]
	for i := 0; i < n; i++ {
		v1 := tree.Vertices[face[i]]
		if (v0.Y > point.Y) != (v1.Y > point.Y) &&
			point.X < (v1.X-v0.X)*(point.Y-v0.Y)/(v1.Y-v0.Y)+v0.X {
			c = !c
		}
		v0 = v1
	}
	return c
}

// LocatePoint returns the index of the first leaf-resident face that
// contains point, or -1 if none does (spec.md §4.3).
//
// If faces overlap spatially this returns some containing face, not
// necessarily a unique one; determinism requires non-overlapping faces.
func LocatePoint(point Point, tree *CellTreeData) int32 {
	stack := xstack.New(xstack.DefaultCapacity)
	stack.Push(0)

	for !stack.Empty() {
		nodeIndex := stack.Pop()
		node := tree.Nodes[nodeIndex]

		if node.IsLeaf() {
			for i := node.Ptr; i < node.Ptr+node.Size; i++ {
				bboxIndex := tree.Indices[i]
				if pointInPolygon(bboxIndex, point, tree) {
					return bboxIndex
				}
			}
			continue
		}

		coord := point.X
		if node.Dim != 0 {
			coord = point.Y
		}
		left := coord <= node.Lmax
		right := coord >= node.Rmin

		switch {
		case left && right:
			// Overlapping split: explore depth-first best-first (spec.md
			// §4.2). The side pushed last is popped, and thus explored,
			// first: that is the side whose split plane is closer to the
			// point, the left side on a tie.
			if (node.Lmax - coord) > (coord - node.Rmin) {
				stack.Push(node.Child)
				stack.Push(node.Child + 1)
			} else {
				stack.Push(node.Child + 1)
				stack.Push(node.Child)
			}
		case left:
			stack.Push(node.Child)
		case right:
			stack.Push(node.Child + 1)
		}
	}

	return -1
}

// LocatePoints runs LocatePoint for every point, returning one face index
// (or -1) per query, in query order (spec.md §4.6).
func LocatePoints(points []Point, tree *CellTreeData) []int32 {
	result := make([]int32, len(points))
	parallelFor(len(points), func(i int) {
		result[i] = LocatePoint(points[i], tree)
	})
	return result
}

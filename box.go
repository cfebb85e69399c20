package celltree

import "github.com/arl/celltree/internal/xstack"

// LocateBox returns the number of mesh faces whose bounding box intersects
// box (spec.md §4.4). If indices is non-nil, the indices of the matching
// faces are written into it in visitation order; it must be large enough to
// hold the result (callers that only need the count pass nil).
func LocateBox(box Box, tree *CellTreeData, indices []int32) int {
	if !BoxesIntersect(box, tree.Bbox) {
		return 0
	}

	stack := xstack.New(xstack.DefaultCapacity)
	stack.Push(0)
	count := 0

	for !stack.Empty() {
		nodeIndex := stack.Pop()
		node := tree.Nodes[nodeIndex]

		if node.IsLeaf() {
			for i := node.Ptr; i < node.Ptr+node.Size; i++ {
				bboxIndex := tree.Indices[i]
				leafBox := tree.BBoxes[bboxIndex]
				if BoxesIntersect(box, leafBox) {
					if indices != nil {
						indices[count] = bboxIndex
					}
					count++
				}
			}
			continue
		}

		var minimum, maximum float64
		if node.Dim == 0 {
			minimum, maximum = box.Xmin, box.Xmax
		} else {
			minimum, maximum = box.Ymin, box.Ymax
		}
		left := minimum <= node.Lmax
		right := maximum >= node.Rmin

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

	return count
}

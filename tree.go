package celltree

// Node is a single entry of the cell tree's flat node array (spec.md §3).
//
// Leaf and interior nodes share one record, tagged by Child == -1, rather
// than a tagged sum type: the flat layout keeps the hot traversal loop
// branch-predictable and cache friendly for large trees (spec.md §9).
type Node struct {
	// Child is the index of the left child; the right child is Child+1.
	// Child == -1 marks a leaf.
	Child int32

	// Lmax is, for interior nodes, the maximum split-dimension coordinate
	// of any face fully assigned to the left subtree.
	Lmax float64

	// Rmin is, for interior nodes, the minimum split-dimension coordinate
	// of any face assigned to the right subtree.
	Rmin float64

	// Ptr is, for leaves, the offset into the permutation array where this
	// leaf's face indices begin.
	Ptr int32

	// Size is, for leaves, the number of face indices owned by this leaf.
	Size int32

	// Dim is the split dimension of an interior node: 0 for x, 1 for y.
	Dim uint8
}

// IsLeaf reports whether n is a leaf node.
func (n Node) IsLeaf() bool {
	return n.Child == -1
}

// CellTreeData is the immutable query descriptor grouping the boundary
// arrays a builder hands to the query core (spec.md §3, §6). All arrays are
// read-only from the point of view of the query functions in this package.
type CellTreeData struct {
	// Nodes is the flat node array; the root is Nodes[0].
	Nodes []Node

	// Faces is the face-vertex index table, one ragged (FillValue-padded)
	// row per mesh face.
	Faces [][]int32

	// Vertices is the mesh's vertex coordinate table.
	Vertices []Point

	// BBoxes holds one bounding box per face, in the same order as Faces.
	BBoxes []Box

	// Indices is the permutation array: Indices[ptr:ptr+size] lists the
	// original face indices owned by a leaf.
	Indices []int32

	// Bbox is the root bounding box, equal to the union of BBoxes.
	Bbox Box
}

// NumFaces returns the number of faces described by the tree.
func (t *CellTreeData) NumFaces() int {
	return len(t.Faces)
}

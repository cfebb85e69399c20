package celltree

import "testing"

// grid returns the vertices and faces of an nx*ny grid of unit squares
// covering [0,nx] x [0,ny], each face wound counter-clockwise.
func grid(nx, ny int) ([]Point, [][]int32) {
	var vertices []Point
	index := make(map[[2]int]int32)
	vertexAt := func(x, y int) int32 {
		key := [2]int{x, y}
		if idx, ok := index[key]; ok {
			return idx
		}
		idx := int32(len(vertices))
		index[key] = idx
		vertices = append(vertices, Point{float64(x), float64(y)})
		return idx
	}

	var faces [][]int32
	for y := 0; y < ny; y++ {
		for x := 0; x < nx; x++ {
			faces = append(faces, []int32{
				vertexAt(x, y),
				vertexAt(x+1, y),
				vertexAt(x+1, y+1),
				vertexAt(x, y+1),
			})
		}
	}
	return vertices, faces
}

func TestBuildRejectsEmptyMesh(t *testing.T) {
	_, err := Build(nil, nil)
	if err == nil {
		t.Fatal("expected an error for an empty mesh")
	}
	if s, ok := err.(Status); !ok || uint32(s)&EmptyMesh == 0 {
		t.Errorf("expected an EmptyMesh status, got %v", err)
	}
}

func TestBuildRejectsDegenerateFace(t *testing.T) {
	vertices := []Point{{0, 0}, {1, 0}}
	faces := [][]int32{{0, 1}}
	_, err := Build(vertices, faces)
	if err == nil {
		t.Fatal("expected an error for a degenerate face")
	}
	if s, ok := err.(Status); !ok || uint32(s)&DegenerateFace == 0 {
		t.Errorf("expected a DegenerateFace status, got %v", err)
	}
}

func TestBuildRejectsFillValueBeforeThirdVertex(t *testing.T) {
	// PolygonLength only scans from index 3 onward, so a row like this one
	// (FillValue at position 2, despite having 4 columns) would otherwise
	// slip past the length check; Build must reject it explicitly.
	vertices := []Point{{0, 0}, {1, 0}}
	faces := [][]int32{{0, 1, FillValue, FillValue}}
	_, err := Build(vertices, faces)
	if err == nil {
		t.Fatal("expected an error for a face with FillValue before its third vertex")
	}
	if s, ok := err.(Status); !ok || uint32(s)&DegenerateFace == 0 {
		t.Errorf("expected a DegenerateFace status, got %v", err)
	}
}

func TestBuildSingleFace(t *testing.T) {
	vertices, faces := grid(1, 1)
	tree, err := Build(vertices, faces)
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}
	if tree.NumFaces() != 1 {
		t.Fatalf("NumFaces() = %d, want 1", tree.NumFaces())
	}
	if !tree.Nodes[0].IsLeaf() {
		t.Error("a mesh smaller than LeafBucketSize should build a single leaf root")
	}
	if tree.Bbox != (Box{0, 1, 0, 1}) {
		t.Errorf("Bbox = %v, want {0 1 0 1}", tree.Bbox)
	}
}

func TestBuildSplitsLargeMesh(t *testing.T) {
	vertices, faces := grid(4, 4)
	tree, err := Build(vertices, faces)
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}
	if tree.Nodes[0].IsLeaf() {
		t.Error("16 faces should exceed LeafBucketSize and split into an interior root")
	}

	// Every interior node's right child (Child+1, per spec.md §3) must lie
	// inside the node array.
	for _, n := range tree.Nodes {
		if n.IsLeaf() {
			continue
		}
		if int(n.Child+1) >= len(tree.Nodes) {
			t.Fatalf("child+1 out of range for node %+v", n)
		}
	}

	// Every original face must appear in the permutation array exactly once.
	seen := make([]bool, len(faces))
	for _, idx := range tree.Indices {
		if seen[idx] {
			t.Fatalf("face %d appears more than once in Indices", idx)
		}
		seen[idx] = true
	}
	for i, ok := range seen {
		if !ok {
			t.Errorf("face %d missing from Indices", i)
		}
	}
}

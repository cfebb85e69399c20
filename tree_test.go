package celltree

import "testing"

func TestLocatePointOnGrid(t *testing.T) {
	vertices, faces := grid(4, 4)
	tree, err := Build(vertices, faces)
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}

	// Face i is the unit square [x,x+1] x [y,y+1] with i = y*4+x.
	face := LocatePoint(Point{1.5, 2.5}, tree)
	if face != 9 {
		t.Errorf("LocatePoint(1.5,2.5) = %d, want 9", face)
	}

	if face := LocatePoint(Point{100, 100}, tree); face != -1 {
		t.Errorf("LocatePoint(100,100) = %d, want -1 (outside mesh)", face)
	}
}

func TestLocatePointsMatchesSerial(t *testing.T) {
	vertices, faces := grid(4, 4)
	tree, err := Build(vertices, faces)
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}

	points := []Point{
		{0.5, 0.5}, {1.5, 0.5}, {3.5, 3.5}, {-1, -1}, {2.2, 1.1},
	}
	got := LocatePoints(points, tree)
	for i, p := range points {
		want := LocatePoint(p, tree)
		if got[i] != want {
			t.Errorf("LocatePoints()[%d] = %d, want %d (serial)", i, got[i], want)
		}
	}
}

func TestLocateBoxOnGrid(t *testing.T) {
	vertices, faces := grid(4, 4)
	tree, err := Build(vertices, faces)
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}

	query := Box{0.5, 1.5, 0.5, 1.5}
	count := LocateBox(query, tree, nil)
	if count != 4 {
		t.Fatalf("LocateBox() count = %d, want 4", count)
	}
	indices := make([]int32, count)
	LocateBox(query, tree, indices)
	want := map[int32]bool{0: true, 1: true, 4: true, 5: true}
	for _, idx := range indices {
		if !want[idx] {
			t.Errorf("unexpected face %d in LocateBox() result", idx)
		}
		delete(want, idx)
	}
	if len(want) != 0 {
		t.Errorf("missing expected faces: %v", want)
	}
}

func TestLocateBoxOutsideMesh(t *testing.T) {
	vertices, faces := grid(2, 2)
	tree, err := Build(vertices, faces)
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}
	if count := LocateBox(Box{100, 101, 100, 101}, tree, nil); count != 0 {
		t.Errorf("LocateBox() outside mesh = %d, want 0", count)
	}
}

func TestLocateEdgeSingleFace(t *testing.T) {
	vertices, faces := grid(1, 1)
	tree, err := Build(vertices, faces)
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}

	count, hits := LocateEdge(Point{-0.5, 0.5}, Point{1.5, 0.5}, tree, nil)
	if count != 1 {
		t.Fatalf("LocateEdge() count = %d, want 1", count)
	}
	_, hits = LocateEdge(Point{-0.5, 0.5}, Point{1.5, 0.5}, tree, make([]Hit, 0, 1))
	if len(hits) != 1 {
		t.Fatalf("len(hits) = %d, want 1", len(hits))
	}
	if hits[0].Face != 0 {
		t.Errorf("hits[0].Face = %d, want 0", hits[0].Face)
	}
	if !approxEqual(hits[0].T0, 0.25) || !approxEqual(hits[0].T1, 0.75) {
		t.Errorf("hits[0] = (%v, %v), want (0.25, 0.75)", hits[0].T0, hits[0].T1)
	}
}

func TestLocateEdgeAcrossGrid(t *testing.T) {
	vertices, faces := grid(4, 4)
	tree, err := Build(vertices, faces)
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}

	// A horizontal segment through y=1.5 crosses every face in that row.
	count, hits := LocateEdge(Point{-1, 1.5}, Point{5, 1.5}, tree, make([]Hit, 0, 8))
	if count != 4 {
		t.Fatalf("LocateEdge() count = %d, want 4", count)
	}
	seen := make(map[int32]bool)
	for _, h := range hits {
		seen[h.Face] = true
	}
	for _, want := range []int32{4, 5, 6, 7} {
		if !seen[want] {
			t.Errorf("expected face %d among hits, got %v", want, hits)
		}
	}
}

func TestLocateEdgeMissesMesh(t *testing.T) {
	vertices, faces := grid(2, 2)
	tree, err := Build(vertices, faces)
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}
	if count, _ := LocateEdge(Point{10, 10}, Point{11, 11}, tree, nil); count != 0 {
		t.Errorf("LocateEdge() count = %d, want 0", count)
	}
}

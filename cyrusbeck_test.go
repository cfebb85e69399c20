package celltree

import "testing"

func TestCyrusBeckUnitSquare(t *testing.T) {
	square := unitSquare()
	a := Point{-0.5, 0.5}
	b := Point{1.5, 0.5}

	hit, t0, t1 := CyrusBeckLinePolygonClip(a, b, square)
	if !hit {
		t.Fatal("expected a hit")
	}
	if !approxEqual(t0, 0.25) || !approxEqual(t1, 0.75) {
		t.Errorf("CyrusBeckLinePolygonClip() = (%v, %v), want (0.25, 0.75)", t0, t1)
	}
}

func TestCyrusBeckMiss(t *testing.T) {
	square := unitSquare()
	a := Point{2, 2}
	b := Point{3, 3}
	if hit, _, _ := CyrusBeckLinePolygonClip(a, b, square); hit {
		t.Error("expected a miss for a segment entirely outside the polygon")
	}
}

func TestCyrusBeckReversalSymmetry(t *testing.T) {
	square := unitSquare()
	a := Point{-0.5, 0.5}
	b := Point{1.5, 0.5}

	_, t0, t1 := CyrusBeckLinePolygonClip(a, b, square)
	_, rt0, rt1 := CyrusBeckLinePolygonClip(b, a, square)

	if !approxEqual(rt0, 1-t1) || !approxEqual(rt1, 1-t0) {
		t.Errorf("reversing the segment should swap to (1-t1, 1-t0); got (%v, %v) from (%v, %v)", rt0, rt1, t0, t1)
	}
}

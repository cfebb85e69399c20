package celltree

// Computational geometry primitives for the cell tree (spec.md §4.1).
//
// Coordinates are float64: the tree is dtype-agnostic mesh-location
// machinery, not a 3D navmesh, so there is no reason to narrow precision the
// way a float32 game-engine vector library would.

// Point is a location in the plane.
type Point struct {
	X, Y float64
}

// Vector is a displacement in the plane.
type Vector struct {
	X, Y float64
}

// Box is an axis-aligned bounding box (xmin, xmax, ymin, ymax). A
// well-formed Box has Xmin <= Xmax and Ymin <= Ymax.
type Box struct {
	Xmin, Xmax, Ymin, Ymax float64
}

// ToVector returns the displacement from a to b.
func ToVector(a, b Point) Vector {
	return Vector{b.X - a.X, b.Y - a.Y}
}

// ToPoint returns the point reached by moving from a along V by parameter t.
func ToPoint(t float64, a Point, v Vector) Point {
	return Point{a.X + t*v.X, a.Y + t*v.Y}
}

// Cross returns the 2D cross product (scalar) of u and v.
func Cross(u, v Vector) float64 {
	return u.X*v.Y - u.Y*v.X
}

// Dot returns the dot product of u and v.
func Dot(u, v Vector) float64 {
	return u.X*v.X + u.Y*v.Y
}

// BoxesIntersect reports whether a and b overlap. The test is half-open on
// purpose (spec.md §4.4): faces that only share an edge do not count as
// intersecting.
func BoxesIntersect(a, b Box) bool {
	return a.Xmin < b.Xmax && b.Xmin < a.Xmax && a.Ymin < b.Ymax && b.Ymin < a.Ymax
}

// BoxContained reports whether a is fully contained within b.
func BoxContained(a, b Box) bool {
	return a.Xmin >= b.Xmin && a.Xmax <= b.Xmax && a.Ymin >= b.Ymin && a.Ymax <= b.Ymax
}

// PointInsideBox reports whether p lies strictly inside box (open
// boundary: a point exactly on the edge is not "inside").
func PointInsideBox(p Point, box Box) bool {
	return box.Xmin < p.X && p.X < box.Xmax && box.Ymin < p.Y && p.Y < box.Ymax
}

// UnionBox returns the smallest box containing both a and b.
func UnionBox(a, b Box) Box {
	return Box{
		Xmin: min64(a.Xmin, b.Xmin),
		Xmax: max64(a.Xmax, b.Xmax),
		Ymin: min64(a.Ymin, b.Ymin),
		Ymax: max64(a.Ymax, b.Ymax),
	}
}

// min64/max64 mirror the teacher's own iMin/iMax helpers (recast/recast.go)
// rather than the builtin min/max added in Go 1.21.
func min64(a, b float64) float64 {
	if a < b {
		return a
	}
	return b
}

func max64(a, b float64) float64 {
	if a > b {
		return a
	}
	return b
}

package celltree

// FillValue marks "no more vertices" in a face row once its ragged polygon
// has fewer vertices than the table's column count (spec.md §3).
const FillValue int32 = -1

// ToleranceOnEdge is the default twice-area tolerance used by
// PointInPolygonOrOnEdge (spec.md §4.1).
const ToleranceOnEdge = 1e-9

// PolygonLength returns the number of non-fill vertex indices in face,
// scanning from index 3 upward (a polygon always has at least 3 vertices,
// so the first three entries never need to be checked against FillValue).
func PolygonLength(face []int32) int {
	n := len(face)
	for i := 3; i < n; i++ {
		if face[i] == FillValue {
			return i
		}
	}
	return n
}

// ring materializes the points of a face, in order, ignoring fill entries.
func ring(vertices []Point, face []int32) []Point {
	n := PolygonLength(face)
	pts := make([]Point, n)
	for i := 0; i < n; i++ {
		pts[i] = vertices[face[i]]
	}
	return pts
}

// PolygonArea returns the area of the (simple) polygon described by ring,
// via triangle-fan summation of absolute cross products.
func PolygonArea(poly []Point) float64 {
	length := len(poly)
	area := 0.0
	a := poly[0]
	b := poly[1]
	u := ToVector(a, b)
	for i := 2; i < length; i++ {
		c := poly[i]
		v := ToVector(c, a)
		area += abs64(Cross(u, v))
		b = c
		u = v
	}
	return 0.5 * area
}

func abs64(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}

// PointInPolygon implements Franklin's odd-parity ray-crossing test
// (spec.md §4.1). The short-circuit order of the crossing condition is
// load-bearing: swapping it would divide by zero on horizontal edges whose
// y-range does not straddle p.y. Exactly on an edge the result is
// unspecified but deterministic.
func PointInPolygon(p Point, poly []Point) bool {
	length := len(poly)
	v0 := poly[length-1]
	c := false
	for i := 0; i < length; i++ {
		v1 := poly[i]
		if (v0.Y > p.Y) != (v1.Y > p.Y) &&
			p.X < (v1.X-v0.X)*(p.Y-v0.Y)/(v1.Y-v0.Y)+v0.X {
			c = !c
		}
		v0 = v1
	}
	return c
}

// PointInPolygonOrOnEdge behaves like PointInPolygon but additionally
// accepts points within tol of an edge (twice-area test), short-circuiting
// to the ray-crossing test otherwise. The edge's dominant axis (the one
// with non-zero extent) is used to compute the projection parameter t; an
// edge degenerate in both axes is skipped entirely.
func PointInPolygonOrOnEdge(p Point, poly []Point, tol float64) bool {
	length := len(poly)
	v0 := poly[length-1]
	u := ToVector(p, v0)
	c := false
	for i := 0; i < length; i++ {
		v1 := poly[i]
		v := ToVector(p, v1)

		twiceArea := abs64(Cross(u, v))
		if twiceArea < tol {
			w := ToVector(v0, v1)
			var t float64
			switch {
			case w.X != 0:
				t = (p.X - v0.X) / w.X
			case w.Y != 0:
				t = (p.Y - v0.Y) / w.Y
			default:
				v0 = v1
				u = v
				continue
			}
			if t >= 0 && t <= 1 {
				return true
			}
		}

		if (v0.Y > p.Y) != (v1.Y > p.Y) &&
			p.X < (v1.X-v0.X)*(p.Y-v0.Y)/(v1.Y-v0.Y)+v0.X {
			c = !c
		}

		v0 = v1
		u = v
	}
	return c
}

// BoundingBox scans a face's non-fill vertices and returns its Box.
func BoundingBox(face []int32, vertices []Point) Box {
	length := PolygonLength(face)
	first := vertices[face[0]]
	box := Box{Xmin: first.X, Xmax: first.X, Ymin: first.Y, Ymax: first.Y}
	for i := 1; i < length; i++ {
		v := vertices[face[i]]
		box.Xmin = min64(box.Xmin, v.X)
		box.Xmax = max64(box.Xmax, v.X)
		box.Ymin = min64(box.Ymin, v.Y)
		box.Ymax = max64(box.Ymax, v.Y)
	}
	return box
}

// BuildFaceBoxes computes the per-face bounding box array described in
// spec.md §3, one entry per row of faces.
func BuildFaceBoxes(vertices []Point, faces [][]int32) []Box {
	boxes := make([]Box, len(faces))
	for i, face := range faces {
		boxes[i] = BoundingBox(face, vertices)
	}
	return boxes
}

// flip reverses face[0:length] in place.
func flip(face []int32, length int) {
	end := length - 1
	for i := 0; i < length/2; i++ {
		j := end - i
		face[i], face[j] = face[j], face[i]
	}
}

// CounterClockwise repairs the winding of every face in faces so that it is
// counter-clockwise, walking edges and reversing a face's vertex slice the
// first time a clockwise (negative) signed area is found. Colinear prefixes
// are skipped. Idempotent: a face already counter-clockwise is never
// touched (spec.md §4.1, §8 property 6).
func CounterClockwise(vertices []Point, faces [][]int32) {
	for _, face := range faces {
		length := PolygonLength(face)
		a := vertices[face[length-2]]
		b := vertices[face[length-1]]
		for i := 0; i < length; i++ {
			c := vertices[face[i]]
			u := ToVector(a, b)
			v := ToVector(a, c)
			product := Cross(u, v)
			if product == 0 {
				a = b
				b = c
			} else if product < 0 {
				flip(face, length)
				break
			} else {
				break
			}
		}
	}
}

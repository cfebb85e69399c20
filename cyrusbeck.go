package celltree

// CyrusBeckLinePolygonClip computes the parametric entry/exit interval
// [t0, t1] of the directed segment (a,b) against a convex, counter-clockwise
// polygon (spec.md §4.1): a + t*(b-a) lies inside poly for t in [t0, t1].
// It returns hit=false if that interval is empty.
//
// Behavior is defined only if poly is convex; the tree never enforces this
// (spec.md §4.1).
func CyrusBeckLinePolygonClip(a, b Point, poly []Point) (hit bool, t0, t1 float64) {
	d := ToVector(a, b)
	t0, t1 = 0, 1
	n := len(poly)

	for i := 0; i < n; i++ {
		p0 := poly[i]
		p1 := poly[(i+1)%n]
		edge := ToVector(p0, p1)
		// Outward normal of a CCW edge: rotate the edge vector -90 degrees.
		normal := Vector{edge.Y, -edge.X}

		w := ToVector(p0, a)
		numerator := Dot(normal, w)
		denominator := Dot(normal, d)

		if denominator == 0 {
			if numerator > 0 {
				// Parallel to this edge and entirely outside it.
				return false, 0, 0
			}
			continue
		}

		t := -numerator / denominator
		if denominator < 0 {
			if t > t1 {
				return false, 0, 0
			}
			if t > t0 {
				t0 = t
			}
		} else {
			if t < t0 {
				return false, 0, 0
			}
			if t < t1 {
				t1 = t
			}
		}
	}

	if t0 > t1 {
		return false, 0, 0
	}
	return true, t0, t1
}

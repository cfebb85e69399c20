package celltree

import "math"

// Region codes for Cohen-Sutherland clipping.
const (
	regionInside = 0
	regionLeft   = 1
	regionRight  = 2
	regionLower  = 4
	regionUpper  = 8
)

func regionCode(a Point, box Box) int {
	code := regionInside
	if a.X < box.Xmin {
		code |= regionLeft
	} else if a.X > box.Xmax {
		code |= regionRight
	}
	if a.Y < box.Ymin {
		code |= regionLower
	} else if a.Y > box.Ymax {
		code |= regionUpper
	}
	return code
}

var nanPoint = Point{math.NaN(), math.NaN()}

// CohenSutherlandLineBoxClip clips the segment (a,b) to box. It returns
// false with two NaN points if the segment lies entirely outside box
// (spec.md §4.1); otherwise it returns true along with the (possibly
// trimmed) endpoints.
//
// The open question flagged in spec.md §9 is resolved here: the inner
// reclip after moving an endpoint always re-derives its region code against
// the box instance, never against the Box type.
func CohenSutherlandLineBoxClip(box Box, a, b Point) (hit bool, ca, cb Point) {
	k1 := regionCode(a, box)
	k2 := regionCode(b, box)

	for (k1 | k2) != 0 {
		if (k1 & k2) != 0 {
			return false, nanPoint, nanPoint
		}

		opt := k1
		if opt == 0 {
			opt = k2
		}

		var x, y float64
		switch {
		case opt&regionUpper != 0:
			x = a.X + (b.X-a.X)*(box.Ymax-a.Y)/(b.Y-a.Y)
			y = box.Ymax
		case opt&regionLower != 0:
			x = a.X + (b.X-a.X)*(box.Ymin-a.Y)/(b.Y-a.Y)
			y = box.Ymin
		case opt&regionRight != 0:
			y = a.Y + (b.Y-a.Y)*(box.Xmax-a.X)/(b.X-a.X)
			x = box.Xmax
		case opt&regionLeft != 0:
			y = a.Y + (b.Y-a.Y)*(box.Xmin-a.X)/(b.X-a.X)
			x = box.Xmin
		}

		if opt == k1 {
			a = Point{x, y}
			k1 = regionCode(a, box)
		} else {
			b = Point{x, y}
			k2 = regionCode(b, box)
		}
	}

	return true, a, b
}

// LiangBarskyLineBoxClip is the independent ground-truth line-box clip that
// property test 7 (spec.md §8) checks CohenSutherlandLineBoxClip against.
// It returns the parametric [t0, t1] sub-interval of (a,b) that lies within
// box, or hit=false if that interval is empty.
func LiangBarskyLineBoxClip(a, b Point, box Box) (hit bool, t0, t1 float64) {
	dx := b.X - a.X
	dy := b.Y - a.Y

	t0, t1 = 0, 1
	p := [4]float64{-dx, dx, -dy, dy}
	q := [4]float64{a.X - box.Xmin, box.Xmax - a.X, a.Y - box.Ymin, box.Ymax - a.Y}

	for i := 0; i < 4; i++ {
		if p[i] == 0 {
			if q[i] < 0 {
				return false, 0, 0
			}
			continue
		}
		r := q[i] / p[i]
		if p[i] < 0 {
			if r > t1 {
				return false, 0, 0
			}
			if r > t0 {
				t0 = r
			}
		} else {
			if r < t0 {
				return false, 0, 0
			}
			if r < t1 {
				t1 = r
			}
		}
	}
	return true, t0, t1
}

package geometry

import "math"

// tangencyTolerance treats a near-zero discriminant as a single grazing
// intersection instead of two numerically unstable roots
const tangencyTolerance = 1e-9

// SegmentCircleIntersection returns the first intersection of the segment
// p1->p2 with the circle boundary, walking from p1. The segment is
// parametrized as p1 + t*(p2-p1) with t in [0,1]; the smaller valid root
// wins. ok is false when no root lies within the segment, including the
// zero-length segment case.
func SegmentCircleIntersection(p1, p2 Point, c Circle) (Point, bool) {
	d := p2.Sub(p1)
	f := p1.Sub(c.Center)

	a := d.Dot(d)
	if a == 0 {
		return Point{}, false
	}
	b := 2 * f.Dot(d)
	cc := f.Dot(f) - c.Radius*c.Radius

	disc := b*b - 4*a*cc
	if disc < -tangencyTolerance {
		return Point{}, false
	}
	if disc < 0 {
		disc = 0
	}
	sqrtDisc := math.Sqrt(disc)

	// Roots in ascending order since a > 0
	t1 := (-b - sqrtDisc) / (2 * a)
	t2 := (-b + sqrtDisc) / (2 * a)

	for _, t := range [2]float64{t1, t2} {
		if t >= 0 && t <= 1 {
			return p1.Add(d.Scale(t)), true
		}
	}
	return Point{}, false
}

package geometry

import "math"

// equalSpeedTolerance bounds |k-1| below which the Apollonian locus is
// treated as degenerate (a half-plane, not a circle)
const equalSpeedTolerance = 1e-9

// Apollonian returns the region of dominance for a defender against an
// intruder with speed ratio k = defenderSpeed / intruderSpeed: the locus of
// points P with |P-defender| / |P-intruder| = k.
//
// ok is false in two degenerate cases the caller must handle explicitly:
// k within tolerance of 1 (the locus is the perpendicular bisector
// half-plane on the defender's side, see DominatesHalfPlane) and coincident
// agent positions (the locus collapses to a point or everything).
func Apollonian(defender, intruder Point, k float64) (Circle, bool) {
	if math.Abs(k-1) < equalSpeedTolerance {
		return Circle{}, false
	}
	d := defender.DistanceTo(intruder)
	if d == 0 {
		return Circle{}, false
	}

	k2 := k * k
	denom := k2 - 1
	center := Point{
		X: (k2*intruder.X - defender.X) / denom,
		Y: (k2*intruder.Y - defender.Y) / denom,
	}
	radius := k * d / math.Abs(denom)
	return Circle{Center: center, Radius: radius}, true
}

// DominatesHalfPlane reports whether p lies on the defender's side of the
// perpendicular bisector of defender-intruder. This is the equal-speed
// fallback for the degenerate Apollonian case: with k == 1 the defender
// dominates exactly the points it is at least as close to as the intruder.
func DominatesHalfPlane(p, defender, intruder Point) bool {
	return p.DistanceTo(defender) <= p.DistanceTo(intruder)
}

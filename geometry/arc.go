package geometry

import "math"

// ZoneArc is an angular interval of a zone's perimeter, centered at Mid with
// half-width Half, both in radians. A full perimeter has Half == π.
type ZoneArc struct {
	Mid  float64
	Half float64
}

// Length returns the angular measure of the arc in radians
func (a ZoneArc) Length() float64 {
	return 2 * a.Half
}

// CoverageInterval returns the angular interval of zone's perimeter lying
// inside circle c. ok is false when c touches no part of the perimeter:
// either the circles are disjoint or c sits strictly inside the zone.
func CoverageInterval(c, zone Circle) (ZoneArc, bool) {
	d := zone.Center.DistanceTo(c.Center)
	if d > zone.Radius+c.Radius {
		return ZoneArc{}, false
	}
	if d+zone.Radius <= c.Radius {
		// Zone perimeter entirely inside c
		return ZoneArc{Mid: 0, Half: math.Pi}, true
	}
	if d+c.Radius <= zone.Radius {
		// c entirely inside the zone, never reaches the perimeter
		return ZoneArc{}, false
	}

	// Half-angle at the zone center subtended by the chord between the two
	// boundary crossings, by the law of cosines
	cosHalf := (d*d + zone.Radius*zone.Radius - c.Radius*c.Radius) / (2 * d * zone.Radius)
	cosHalf = math.Max(-1, math.Min(1, cosHalf))
	half := math.Acos(cosHalf)

	mid := zone.Center.AngleTo(c.Center)
	return ZoneArc{Mid: mid, Half: half}, true
}

// CoverageArc returns the angular measure, in radians of zone's perimeter,
// of the perimeter section lying inside circle c. Zero when c misses the
// perimeter entirely.
func CoverageArc(c, zone Circle) float64 {
	arc, ok := CoverageInterval(c, zone)
	if !ok {
		return 0
	}
	return arc.Length()
}

// ArcOverlap returns the angular measure of the intersection of two
// perimeter arcs, accounting for wrap-around at ±π
func ArcOverlap(a, b ZoneArc) float64 {
	s1, e1 := a.Mid-a.Half, a.Mid+a.Half
	s2, e2 := b.Mid-b.Half, b.Mid+b.Half

	// Sum linear overlaps of b against a across one full-turn shift in each
	// direction; intervals are at most 2π long so no section double-counts
	total := 0.0
	for _, shift := range [3]float64{-2 * math.Pi, 0, 2 * math.Pi} {
		lo := math.Max(s1, s2+shift)
		hi := math.Min(e1, e2+shift)
		if hi > lo {
			total += hi - lo
		}
	}
	if max := math.Min(a.Length(), b.Length()); total > max {
		total = max
	}
	return total
}

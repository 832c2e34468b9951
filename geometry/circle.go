package geometry

import "math"

// Circle is a center plus non-negative radius in world units
type Circle struct {
	Center Point
	Radius float64
}

// Intersects reports whether the two circle boundaries or interiors touch.
// Covers partial overlap, tangency, and full containment.
func (c Circle) Intersects(other Circle) bool {
	d := c.Center.DistanceTo(other.Center)
	return d <= c.Radius+other.Radius
}

// ContainsPoint reports whether p lies inside or on the circle
func (c Circle) ContainsPoint(p Point) bool {
	return c.Center.DistanceTo(p) <= c.Radius
}

// ClosestPointTo returns the point on the circle boundary nearest to p.
// When p coincides with the center every boundary point is equidistant;
// the point at angle 0 is returned.
func (c Circle) ClosestPointTo(p Point) Point {
	dir := p.Sub(c.Center)
	if dir.LengthSq() == 0 {
		return Point{c.Center.X + c.Radius, c.Center.Y}
	}
	return c.Center.Add(dir.Normalize().Scale(c.Radius))
}

// CircleIntersectionPoints returns the boundary intersection points of two
// circles: two points for a proper crossing, one for tangency, none when the
// circles are separate, nested, or coincident.
func CircleIntersectionPoints(a, b Circle) []Point {
	d := a.Center.DistanceTo(b.Center)
	if d > a.Radius+b.Radius {
		return nil
	}
	if d == 0 {
		// Concentric: either coincident (infinite points) or nested
		return nil
	}
	if d+math.Min(a.Radius, b.Radius) < math.Max(a.Radius, b.Radius) {
		// One circle strictly inside the other
		return nil
	}

	// Distance from a.Center to the chord midpoint along the center line
	m := (a.Radius*a.Radius - b.Radius*b.Radius + d*d) / (2 * d)
	hSq := a.Radius*a.Radius - m*m
	if hSq < 0 {
		hSq = 0
	}
	h := math.Sqrt(hSq)

	axis := b.Center.Sub(a.Center).Scale(1 / d)
	mid := a.Center.Add(axis.Scale(m))

	if h < tangencyTolerance {
		return []Point{mid}
	}

	perp := Point{-axis.Y, axis.X}
	return []Point{
		mid.Add(perp.Scale(h)),
		mid.Sub(perp.Scale(h)),
	}
}

package geometry

import "math"

// Point is a 2D position or vector in world units
// Value type, no identity
type Point struct {
	X, Y float64
}

// Add returns p + q
func (p Point) Add(q Point) Point {
	return Point{p.X + q.X, p.Y + q.Y}
}

// Sub returns p - q
func (p Point) Sub(q Point) Point {
	return Point{p.X - q.X, p.Y - q.Y}
}

// Scale multiplies both components by factor
func (p Point) Scale(factor float64) Point {
	return Point{p.X * factor, p.Y * factor}
}

// Dot returns p.X*q.X + p.Y*q.Y
func (p Point) Dot(q Point) float64 {
	return p.X*q.X + p.Y*q.Y
}

// Length returns the Euclidean magnitude
func (p Point) Length() float64 {
	return math.Hypot(p.X, p.Y)
}

// LengthSq returns squared magnitude without sqrt
func (p Point) LengthSq() float64 {
	return p.X*p.X + p.Y*p.Y
}

// DistanceTo returns the Euclidean distance between p and q
func (p Point) DistanceTo(q Point) float64 {
	return math.Hypot(p.X-q.X, p.Y-q.Y)
}

// AngleTo returns the angle of the vector from p to q in radians
func (p Point) AngleTo(q Point) float64 {
	return math.Atan2(q.Y-p.Y, q.X-p.X)
}

// Normalize returns the unit vector in p's direction, zero-safe
func (p Point) Normalize() Point {
	mag := p.Length()
	if mag == 0 {
		return Point{}
	}
	return Point{p.X / mag, p.Y / mag}
}

// ClampMagnitude limits the vector to maxMag while preserving direction
// Returns the vector unchanged if its magnitude is already <= maxMag
func ClampMagnitude(v Point, maxMag float64) Point {
	mag := v.Length()
	if mag <= maxMag || mag == 0 {
		return v
	}
	return v.Scale(maxMag / mag)
}

package geometry

import (
	"math"
	"math/rand"
	"testing"
)

const tol = 1e-9

func TestApollonianRatioProperty(t *testing.T) {
	rng := rand.New(rand.NewSource(42))

	for i := 0; i < 200; i++ {
		defender := Point{rng.Float64()*20 - 10, rng.Float64()*20 - 10}
		intruder := Point{rng.Float64()*20 - 10, rng.Float64()*20 - 10}
		if defender.DistanceTo(intruder) < 1e-3 {
			continue
		}

		// k on both sides of 1, excluding the degenerate band
		k := 0.2 + rng.Float64()*0.7
		if i%2 == 0 {
			k = 1.2 + rng.Float64()*3
		}

		circle, ok := Apollonian(defender, intruder, k)
		if !ok {
			t.Fatalf("Apollonian returned ok=false for k=%v", k)
		}

		// Sample boundary points and verify the defining distance ratio
		for _, angle := range []float64{0, 1.1, 2.7, 4.4, 5.9} {
			p := Point{
				X: circle.Center.X + circle.Radius*math.Cos(angle),
				Y: circle.Center.Y + circle.Radius*math.Sin(angle),
			}
			ratio := p.DistanceTo(defender) / p.DistanceTo(intruder)
			if math.Abs(ratio-k) > 1e-6 {
				t.Errorf("boundary ratio = %v, want %v (defender=%v intruder=%v)", ratio, k, defender, intruder)
			}
		}
	}
}

func TestApollonianDegenerate(t *testing.T) {
	d := Point{0, 0}
	i := Point{4, 0}

	if _, ok := Apollonian(d, i, 1.0); ok {
		t.Error("expected ok=false for equal speeds")
	}
	if _, ok := Apollonian(d, i, 1.0+1e-12); ok {
		t.Error("expected ok=false for k within tolerance of 1")
	}
	if _, ok := Apollonian(d, d, 0.5); ok {
		t.Error("expected ok=false for coincident positions")
	}

	if !DominatesHalfPlane(Point{-1, 0}, d, i) {
		t.Error("point behind defender should be dominated")
	}
	if DominatesHalfPlane(Point{5, 0}, d, i) {
		t.Error("point behind intruder should not be dominated")
	}
}

func TestApollonianKnownCircle(t *testing.T) {
	// k=0.5, d=4: circle passes through (4/3, 0) and (-4, 0)
	circle, ok := Apollonian(Point{0, 0}, Point{4, 0}, 0.5)
	if !ok {
		t.Fatal("expected a finite circle")
	}
	for _, p := range []Point{{4.0 / 3.0, 0}, {-4, 0}} {
		if d := math.Abs(circle.Center.DistanceTo(p) - circle.Radius); d > tol {
			t.Errorf("point %v off boundary by %v", p, d)
		}
	}
}

func TestCircleIntersects(t *testing.T) {
	a := Circle{Point{0, 0}, 2}

	cases := []struct {
		name string
		b    Circle
		want bool
	}{
		{"overlap", Circle{Point{3, 0}, 2}, true},
		{"external tangency", Circle{Point{4, 0}, 2}, true},
		{"separate", Circle{Point{5, 0}, 2}, false},
		{"contained", Circle{Point{0.5, 0}, 0.5}, true},
	}
	for _, tc := range cases {
		if got := a.Intersects(tc.b); got != tc.want {
			t.Errorf("%s: Intersects = %v, want %v", tc.name, got, tc.want)
		}
	}
}

func TestCircleIntersectionPoints(t *testing.T) {
	a := Circle{Point{0, 0}, 2}
	b := Circle{Point{3, 0}, 2}

	points := CircleIntersectionPoints(a, b)
	if len(points) != 2 {
		t.Fatalf("got %d intersection points, want 2", len(points))
	}
	for _, p := range points {
		if d := math.Abs(a.Center.DistanceTo(p) - a.Radius); d > tol {
			t.Errorf("point %v off circle a by %v", p, d)
		}
		if d := math.Abs(b.Center.DistanceTo(p) - b.Radius); d > tol {
			t.Errorf("point %v off circle b by %v", p, d)
		}
	}

	if pts := CircleIntersectionPoints(a, Circle{Point{10, 0}, 1}); pts != nil {
		t.Errorf("separate circles: got %d points, want none", len(pts))
	}
	if pts := CircleIntersectionPoints(a, Circle{Point{0.2, 0}, 0.5}); pts != nil {
		t.Errorf("nested circles: got %d points, want none", len(pts))
	}
}

func TestSegmentCircleIntersection(t *testing.T) {
	c := Circle{Point{0, 0}, 1}

	// Segment straddling the circle along the x axis
	p, ok := SegmentCircleIntersection(Point{-3, 0}, Point{3, 0}, c)
	if !ok {
		t.Fatal("expected an intersection")
	}
	// First crossing walking from p1
	if math.Abs(p.X+1) > tol || math.Abs(p.Y) > tol {
		t.Errorf("got %v, want (-1, 0)", p)
	}
	if d := math.Abs(c.Center.DistanceTo(p) - c.Radius); d > tol {
		t.Errorf("intersection off boundary by %v", d)
	}

	// Direction matters: walking the other way hits (1, 0) first
	p, ok = SegmentCircleIntersection(Point{3, 0}, Point{-3, 0}, c)
	if !ok || math.Abs(p.X-1) > tol {
		t.Errorf("reversed segment: got %v ok=%v, want (1, 0)", p, ok)
	}

	// Entirely outside
	if _, ok := SegmentCircleIntersection(Point{2, 2}, Point{3, 3}, c); ok {
		t.Error("segment outside circle should not intersect")
	}

	// Entirely inside: chord endpoints within the disc, no boundary crossing
	if _, ok := SegmentCircleIntersection(Point{-0.3, 0}, Point{0.3, 0}, c); ok {
		t.Error("segment inside circle should not intersect boundary")
	}

	// Zero-length segment
	if _, ok := SegmentCircleIntersection(Point{1, 0}, Point{1, 0}, c); ok {
		t.Error("zero-length segment should report no intersection")
	}

	// Tangent segment grazes at a single point
	p, ok = SegmentCircleIntersection(Point{-2, 1}, Point{2, 1}, c)
	if !ok {
		t.Fatal("tangent segment should intersect")
	}
	if math.Abs(p.X) > 1e-4 || math.Abs(p.Y-1) > 1e-4 {
		t.Errorf("tangent point = %v, want (0, 1)", p)
	}
}

func TestCoverageArc(t *testing.T) {
	zone := Circle{Point{0, 0}, 2}

	// Disjoint circle covers nothing
	if got := CoverageArc(Circle{Point{10, 0}, 1}, zone); got != 0 {
		t.Errorf("disjoint: CoverageArc = %v, want 0", got)
	}

	// Circle strictly inside the zone never reaches the perimeter
	if got := CoverageArc(Circle{Point{0.5, 0}, 0.5}, zone); got != 0 {
		t.Errorf("inner: CoverageArc = %v, want 0", got)
	}

	// Circle engulfing the zone covers the full perimeter
	if got := CoverageArc(Circle{Point{0, 0}, 5}, zone); math.Abs(got-2*math.Pi) > tol {
		t.Errorf("engulfing: CoverageArc = %v, want 2π", got)
	}

	// Symmetric crossing: circle centered on the perimeter at distance R
	// with radius R covers exactly 2π/3 of the perimeter
	got := CoverageArc(Circle{Point{2, 0}, 2}, zone)
	if math.Abs(got-2*math.Pi/3) > 1e-9 {
		t.Errorf("symmetric: CoverageArc = %v, want %v", got, 2*math.Pi/3)
	}
}

func TestArcOverlap(t *testing.T) {
	quarter := math.Pi / 4

	// Identical arcs overlap fully
	a := ZoneArc{Mid: 0, Half: quarter}
	if got := ArcOverlap(a, a); math.Abs(got-a.Length()) > tol {
		t.Errorf("identical arcs: overlap = %v, want %v", got, a.Length())
	}

	// Disjoint arcs
	b := ZoneArc{Mid: math.Pi, Half: quarter}
	if got := ArcOverlap(a, b); got != 0 {
		t.Errorf("disjoint arcs: overlap = %v, want 0", got)
	}

	// Partial overlap across the ±π wrap
	c := ZoneArc{Mid: math.Pi - 0.1, Half: 0.3}
	d := ZoneArc{Mid: -math.Pi + 0.1, Half: 0.3}
	// c spans [π-0.4, π+0.2], d spans [π-0.2, π+0.4] after unwrapping
	if got := ArcOverlap(c, d); math.Abs(got-0.4) > tol {
		t.Errorf("wrapped arcs: overlap = %v, want 0.4", got)
	}

	// Full-perimeter arcs overlap by the whole perimeter
	full := ZoneArc{Mid: 0, Half: math.Pi}
	if got := ArcOverlap(full, full); math.Abs(got-2*math.Pi) > tol {
		t.Errorf("full arcs: overlap = %v, want 2π", got)
	}
}

func TestClampMagnitude(t *testing.T) {
	v := Point{10, 10}
	clamped := ClampMagnitude(v, 5)
	if math.Abs(clamped.Length()-5) > tol {
		t.Errorf("clamped magnitude = %v, want 5", clamped.Length())
	}

	// Direction preserved
	n1, n2 := v.Normalize(), clamped.Normalize()
	if math.Abs(n1.X-n2.X) > tol || math.Abs(n1.Y-n2.Y) > tol {
		t.Errorf("direction changed: %v vs %v", n1, n2)
	}

	// Under the limit stays untouched
	small := Point{1, 1}
	if got := ClampMagnitude(small, 5); got != small {
		t.Errorf("ClampMagnitude modified in-range vector: %v", got)
	}
}

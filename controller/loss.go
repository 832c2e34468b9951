package controller

import (
	"github.com/lixenwraith/zonesim/geometry"
	"github.com/lixenwraith/zonesim/sim"
)

// Loss evaluates a defender's objective as if defender `index` stood at
// `pos`, everything else unchanged. Passing the position explicitly lets the
// gradient routine perturb a defender without copying the world snapshot.
type Loss func(world sim.WorldState, index int, pos geometry.Point) float64

// TravelLoss penalizes radial distance from the protected zone boundary:
// wTravel * (|pos - zoneCenter| - zoneRadius)^2
func TravelLoss(cfg sim.Config) Loss {
	return func(world sim.WorldState, _ int, pos geometry.Point) float64 {
		gap := pos.DistanceTo(world.ProtectedZone.Center) - world.ProtectedZone.Radius
		return cfg.WTravel * gap * gap
	}
}

// EngageLoss rewards perimeter coverage and penalizes redundant overlap with
// the other defenders:
//
//	wRepel * Σ_j max(0, overlap_ij - overlapEpsilon) - coverage_i
//
// Coverage and overlap are angular measures (radians) on the protected
// zone's perimeter. A defender whose Apollonian circle is degenerate
// contributes zero coverage and zero overlap.
func EngageLoss(cfg sim.Config) Loss {
	k := cfg.SpeedRatio()
	return func(world sim.WorldState, index int, pos geometry.Point) float64 {
		zone := world.ProtectedZone

		own, ok := geometry.Apollonian(pos, world.Intruder.Position, k)
		if !ok {
			return 0
		}
		ownArc, covered := geometry.CoverageInterval(own, zone)
		if !covered {
			return 0
		}

		penalty := 0.0
		for j, other := range world.Defenders {
			if j == index {
				continue
			}
			circle, ok := geometry.Apollonian(other.Position, world.Intruder.Position, k)
			if !ok {
				continue
			}
			arc, ok := geometry.CoverageInterval(circle, zone)
			if !ok {
				continue
			}
			if overlap := geometry.ArcOverlap(ownArc, arc); overlap > cfg.OverlapEpsilon {
				penalty += overlap - cfg.OverlapEpsilon
			}
		}

		return cfg.WRepel*penalty - ownArc.Length()
	}
}

// Gradient estimates the loss gradient at defender `index`'s current
// position by central finite differences with step h per axis
func Gradient(world sim.WorldState, index int, loss Loss, h float64) geometry.Point {
	pos := world.Defenders[index].Position

	xPlus := loss(world, index, geometry.Point{X: pos.X + h, Y: pos.Y})
	xMinus := loss(world, index, geometry.Point{X: pos.X - h, Y: pos.Y})
	yPlus := loss(world, index, geometry.Point{X: pos.X, Y: pos.Y + h})
	yMinus := loss(world, index, geometry.Point{X: pos.X, Y: pos.Y - h})

	return geometry.Point{
		X: (xPlus - xMinus) / (2 * h),
		Y: (yPlus - yMinus) / (2 * h),
	}
}

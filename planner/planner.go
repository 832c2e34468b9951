package planner

import (
	"math"

	"github.com/lixenwraith/zonesim/geometry"
	"github.com/lixenwraith/zonesim/sim"
)

// StepIntruder computes the intruder's velocity command for one tick:
// rebuild the threat map, search for the cheapest route to the zone center,
// and steer toward the second path node at full speed. When the path is too
// short (already at the goal cell) or the search reports no path, the
// configured fallback policy applies: hold position, or probe toward the
// nearest defender to force an opening.
func StepIntruder(world sim.WorldState, cfg sim.Config) geometry.Point {
	grid := NewGrid(cfg)
	costs := BuildThreatMap(world, grid, cfg)

	start := grid.ToGrid(world.Intruder.Position)
	goal := grid.ToGrid(world.ProtectedZone.Center)

	path, found := FindPath(costs, start, goal)
	if !found || len(path) < 2 {
		return fallback(world, cfg)
	}

	waypoint := grid.ToWorld(path[1])
	direction := waypoint.Sub(world.Intruder.Position)
	if direction.LengthSq() == 0 {
		return fallback(world, cfg)
	}
	return direction.Normalize().Scale(cfg.IntruderMaxSpeed)
}

// PlanPath exposes the full per-tick route for diagnostics and rendering
func PlanPath(world sim.WorldState, cfg sim.Config) (Path, bool) {
	grid := NewGrid(cfg)
	costs := BuildThreatMap(world, grid, cfg)
	return FindPath(costs, grid.ToGrid(world.Intruder.Position), grid.ToGrid(world.ProtectedZone.Center))
}

// fallback applies the configured no-path policy
func fallback(world sim.WorldState, cfg sim.Config) geometry.Point {
	if cfg.FallbackPolicy != sim.FallbackProbe || len(world.Defenders) == 0 {
		return geometry.Point{}
	}

	// Probe: close on the nearest defender at half speed
	nearest := world.Defenders[0].Position
	best := math.Inf(1)
	for _, d := range world.Defenders {
		if dist := world.Intruder.Position.DistanceTo(d.Position); dist < best {
			best = dist
			nearest = d.Position
		}
	}

	direction := nearest.Sub(world.Intruder.Position)
	if direction.LengthSq() == 0 {
		return geometry.Point{}
	}
	return direction.Normalize().Scale(cfg.IntruderMaxSpeed * 0.5)
}

package controller

import (
	"fmt"

	"github.com/lixenwraith/zonesim/geometry"
	"github.com/lixenwraith/zonesim/sim"
)

// StepDefenders computes one velocity command per defender, index-aligned
// with world.Defenders, and advances each defender's control state in place.
// It holds no state of its own between calls.
//
// Per defender, per tick: evaluate forward transitions first, then the
// action for the (possibly just-updated) state. Transitions never roll
// back; once a defender reaches Intercept it stays there.
func StepDefenders(world sim.WorldState, states []State, cfg sim.Config) ([]geometry.Point, error) {
	if len(states) != len(world.Defenders) {
		return nil, fmt.Errorf("controller: %d states for %d defenders", len(states), len(world.Defenders))
	}

	k := cfg.SpeedRatio()
	travelLoss := TravelLoss(cfg)
	engageLoss := EngageLoss(cfg)

	commands := make([]geometry.Point, len(world.Defenders))
	for i, defender := range world.Defenders {
		dominance, ok := geometry.Apollonian(defender.Position, world.Intruder.Position, k)
		if ok {
			states[i] = nextState(states[i], dominance, world)
		}
		// Degenerate geometry: keep the current state this tick

		switch states[i] {
		case Travel:
			commands[i] = descend(world, i, travelLoss, cfg)
		case Engage:
			commands[i] = descend(world, i, engageLoss, cfg)
		case Intercept:
			commands[i] = interceptCommand(defender.Position, dominance, ok, world, cfg)
		}
	}
	return commands, nil
}

// nextState evaluates the forward transition chain for one tick. Both links
// are checked in sequence, so a defender whose dominance region already cuts
// the intruder's approach line commits in a single tick.
func nextState(current State, dominance geometry.Circle, world sim.WorldState) State {
	if current == Intercept {
		return Intercept
	}

	if current == Travel && dominance.Intersects(world.ProtectedZone) {
		current = Engage
	}
	if current == Engage {
		if _, hit := geometry.SegmentCircleIntersection(
			world.Intruder.Position, world.ProtectedZone.Center, dominance); hit {
			current = Intercept
		}
	}
	return current
}

// descend takes one gradient step against the loss, clamped to the
// defender's speed limit
func descend(world sim.WorldState, index int, loss Loss, cfg sim.Config) geometry.Point {
	grad := Gradient(world, index, loss, cfg.GradientStep)
	velocity := grad.Scale(-cfg.LearningRate)
	return geometry.ClampMagnitude(velocity, cfg.DefenderMaxSpeed)
}

// interceptCommand recomputes the intercept target every tick since both
// segment endpoints move. Losing the intersection is recoverable: the
// defender falls back to the dominance boundary point nearest the zone, and
// with fully degenerate geometry to the bisector midpoint.
func interceptCommand(pos geometry.Point, dominance geometry.Circle, haveCircle bool, world sim.WorldState, cfg sim.Config) geometry.Point {
	var target geometry.Point
	switch {
	case haveCircle:
		hit, ok := geometry.SegmentCircleIntersection(
			world.Intruder.Position, world.ProtectedZone.Center, dominance)
		if ok {
			target = hit
		} else {
			target = dominance.ClosestPointTo(world.ProtectedZone.Center)
		}
	default:
		// Equal-speed half-plane: hold the bisector boundary between self
		// and intruder
		target = pos.Add(world.Intruder.Position).Scale(0.5)
	}

	direction := target.Sub(pos)
	if direction.LengthSq() == 0 {
		return geometry.Point{}
	}
	return direction.Normalize().Scale(cfg.DefenderMaxSpeed)
}

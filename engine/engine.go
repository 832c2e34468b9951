// Package engine owns the simulation loop around the decision core: per-tick
// composition of the defender controller and the intruder planner, Euler
// integration of the resulting velocity commands, and termination
// evaluation. The core packages stay pure; everything stateful lives here.
package engine

import (
	"fmt"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/lixenwraith/zonesim/controller"
	"github.com/lixenwraith/zonesim/geometry"
	"github.com/lixenwraith/zonesim/planner"
	"github.com/lixenwraith/zonesim/sim"
)

// Engine advances a scenario tick by tick. It exclusively owns the mutable
// control-state vector and the evolving world; the decision core only ever
// sees per-tick snapshots.
type Engine struct {
	scen   sim.Scenario
	world  sim.WorldState
	states []controller.State
	time   float64
	ticks  int

	// parallel runs controller and planner concurrently; both read only
	// the immutable snapshot, so no synchronization is needed within a tick
	parallel bool
	log      *zap.Logger
}

// Option configures an Engine
type Option func(*Engine)

// WithLogger attaches a structured logger for per-tick events
func WithLogger(log *zap.Logger) Option {
	return func(e *Engine) { e.log = log }
}

// WithParallel evaluates the defender controller and the intruder planner
// concurrently within each tick
func WithParallel() Option {
	return func(e *Engine) { e.parallel = true }
}

// New validates the scenario and builds the initial world: all defenders in
// Travel, everyone at rest
func New(scen sim.Scenario, opts ...Option) (*Engine, error) {
	if err := scen.Validate(); err != nil {
		return nil, fmt.Errorf("engine: %w", err)
	}

	world := scen.BuildWorld()
	e := &Engine{
		scen:   scen,
		world:  world,
		states: make([]controller.State, len(world.Defenders)),
		log:    zap.NewNop(),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e, nil
}

// TickResult reports one tick's commands and, once terminal, the outcome
type TickResult struct {
	Tick        int
	Time        float64
	DefenderVel []geometry.Point
	IntruderVel geometry.Point
	Outcome     Outcome
}

// World returns the current snapshot
func (e *Engine) World() sim.WorldState {
	return e.world
}

// States returns the defenders' control states, index-aligned with the
// world's defenders. Read-only for callers.
func (e *Engine) States() []controller.State {
	return e.states
}

// Time returns elapsed simulation time
func (e *Engine) Time() float64 {
	return e.time
}

// Step runs one tick: decide, integrate, evaluate termination
func (e *Engine) Step() (TickResult, error) {
	cfg := e.scen.Config

	var defenderVel []geometry.Point
	var intruderVel geometry.Point

	if e.parallel {
		var eg errgroup.Group
		eg.Go(func() error {
			var err error
			defenderVel, err = controller.StepDefenders(e.world, e.states, cfg)
			return err
		})
		eg.Go(func() error {
			intruderVel = planner.StepIntruder(e.world, cfg)
			return nil
		})
		if err := eg.Wait(); err != nil {
			return TickResult{}, err
		}
	} else {
		var err error
		defenderVel, err = controller.StepDefenders(e.world, e.states, cfg)
		if err != nil {
			return TickResult{}, err
		}
		intruderVel = planner.StepIntruder(e.world, cfg)
	}

	e.integrate(defenderVel, intruderVel)
	e.time += e.scen.Timestep
	e.ticks++

	result := TickResult{
		Tick:        e.ticks,
		Time:        e.time,
		DefenderVel: defenderVel,
		IntruderVel: intruderVel,
		Outcome:     e.evaluate(),
	}

	if result.Outcome.Winner != NoWinner {
		e.log.Info("simulation over",
			zap.String("winner", result.Outcome.Winner.String()),
			zap.Float64("time", result.Outcome.TimeElapsed),
			zap.String("reason", result.Outcome.Reason),
		)
	}
	return result, nil
}

// Run steps until a terminal outcome. The scenario's MaxTime bounds the loop
// even if evaluate never fires, so Run always returns.
func (e *Engine) Run() (Outcome, error) {
	for {
		result, err := e.Step()
		if err != nil {
			return Outcome{}, err
		}
		if result.Outcome.Winner != NoWinner {
			return result.Outcome, nil
		}
	}
}

// integrate applies position += velocity * dt and stores the commands back
// into the agents' velocity fields
func (e *Engine) integrate(defenderVel []geometry.Point, intruderVel geometry.Point) {
	dt := e.scen.Timestep

	defenders := make([]sim.AgentState, len(e.world.Defenders))
	for i, d := range e.world.Defenders {
		defenders[i] = sim.AgentState{
			Position: d.Position.Add(defenderVel[i].Scale(dt)),
			Velocity: defenderVel[i],
		}
	}

	e.world = sim.WorldState{
		Defenders: defenders,
		Intruder: sim.AgentState{
			Position: e.world.Intruder.Position.Add(intruderVel.Scale(dt)),
			Velocity: intruderVel,
		},
		ProtectedZone: e.world.ProtectedZone,
	}
}

// evaluate checks the end conditions in priority order: intruder reaching
// the zone, a defender capturing the intruder, timeout, then stagnation
func (e *Engine) evaluate() Outcome {
	zone := e.world.ProtectedZone
	intruderDist := e.world.Intruder.Position.DistanceTo(zone.Center)

	if intruderDist <= zone.Radius {
		return Outcome{
			Winner:        IntruderWins,
			TimeElapsed:   e.time,
			FinalDistance: intruderDist,
			Reason:        fmt.Sprintf("reached protected zone (distance %.2f)", intruderDist),
		}
	}

	for i, d := range e.world.Defenders {
		if gap := d.Position.DistanceTo(e.world.Intruder.Position); gap <= e.scen.CaptureRadius {
			return Outcome{
				Winner:        DefendersWin,
				TimeElapsed:   e.time,
				FinalDistance: intruderDist,
				Reason:        fmt.Sprintf("defender %d captured intruder (distance %.2f)", i, gap),
			}
		}
	}

	if e.time >= e.scen.MaxTime {
		return Outcome{
			Winner:        Stalemate,
			TimeElapsed:   e.time,
			FinalDistance: intruderDist,
			Reason:        fmt.Sprintf("timeout after %.1fs", e.scen.MaxTime),
		}
	}
	if e.scen.StalemateTime > 0 && e.time >= e.scen.StalemateTime && intruderDist > zone.Radius*3 {
		return Outcome{
			Winner:        Stalemate,
			TimeElapsed:   e.time,
			FinalDistance: intruderDist,
			Reason:        fmt.Sprintf("no progress after %.1fs", e.scen.StalemateTime),
		}
	}

	return Outcome{Winner: NoWinner}
}

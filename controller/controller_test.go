package controller

import (
	"math"
	"math/rand"
	"testing"

	"github.com/lixenwraith/zonesim/sim"
)

func testConfig() sim.Config {
	cfg := sim.DefaultConfig()
	cfg.DefenderMaxSpeed = 2.0
	cfg.IntruderMaxSpeed = 4.0
	return cfg
}

func worldWith(defenders []sim.Point, intruder sim.Point) sim.WorldState {
	agents := make([]sim.AgentState, len(defenders))
	for i, p := range defenders {
		agents[i] = sim.AgentState{Position: p}
	}
	return sim.WorldState{
		Defenders:     agents,
		Intruder:      sim.AgentState{Position: intruder},
		ProtectedZone: sim.Circle{Center: sim.Point{X: 0, Y: 0}, Radius: 2},
	}
}

func TestStepDefendersLengthMismatch(t *testing.T) {
	world := worldWith([]sim.Point{{X: -8, Y: 0}}, sim.Point{X: 15, Y: 0})
	if _, err := StepDefenders(world, make([]State, 2), testConfig()); err == nil {
		t.Fatal("expected error for mismatched state slice")
	}
}

func TestTravelMovesTowardZone(t *testing.T) {
	// Intruder close behind the defender keeps the dominance circle small
	// and far from the zone, so no transition fires
	world := worldWith([]sim.Point{{X: -15, Y: 0}}, sim.Point{X: -19, Y: 0})
	states := []State{Travel}

	commands, err := StepDefenders(world, states, testConfig())
	if err != nil {
		t.Fatal(err)
	}
	if states[0] != Travel {
		t.Fatalf("distant defender transitioned to %v", states[0])
	}
	// Radial loss decreases toward the zone: velocity points in +x
	if commands[0].X <= 0 {
		t.Errorf("travel velocity %v does not close on the zone", commands[0])
	}
	if mag := commands[0].Length(); mag > testConfig().DefenderMaxSpeed+1e-9 {
		t.Errorf("travel velocity magnitude %v exceeds limit", mag)
	}
}

func TestTravelToEngageTransition(t *testing.T) {
	// The dominance circle reaches the zone from the far side, but the
	// intruder's approach segment stays clear of it
	world := worldWith([]sim.Point{{X: -3.5, Y: 0}}, sim.Point{X: 3.5, Y: 0})
	states := []State{Travel}

	if _, err := StepDefenders(world, states, testConfig()); err != nil {
		t.Fatal(err)
	}
	if states[0] != Engage {
		t.Errorf("state = %v, want Engage", states[0])
	}
}

func TestEngageToInterceptTransition(t *testing.T) {
	// Defender sits on the intruder's approach line; its dominance circle
	// cuts the segment from intruder to zone center
	world := worldWith([]sim.Point{{X: 4, Y: 0}}, sim.Point{X: 10, Y: 0})
	states := []State{Engage}

	commands, err := StepDefenders(world, states, testConfig())
	if err != nil {
		t.Fatal(err)
	}
	if states[0] != Intercept {
		t.Fatalf("state = %v, want Intercept", states[0])
	}
	// Intercept runs at exactly full speed
	if mag := commands[0].Length(); math.Abs(mag-testConfig().DefenderMaxSpeed) > 1e-9 {
		t.Errorf("intercept speed = %v, want %v", mag, testConfig().DefenderMaxSpeed)
	}
}

func TestInterceptIsTerminal(t *testing.T) {
	// Geometry that satisfies no transition condition at all
	world := worldWith([]sim.Point{{X: -30, Y: 30}}, sim.Point{X: 40, Y: -40})
	states := []State{Intercept}

	if _, err := StepDefenders(world, states, testConfig()); err != nil {
		t.Fatal(err)
	}
	if states[0] != Intercept {
		t.Errorf("Intercept rolled back to %v", states[0])
	}
}

func TestStateMonotonicity(t *testing.T) {
	// Random walks of the intruder must never move any defender's state
	// backwards
	rng := rand.New(rand.NewSource(7))
	cfg := testConfig()

	defenders := []sim.Point{{X: -8, Y: 0}, {X: 0, Y: -8}, {X: 6, Y: 6}}
	states := make([]State, len(defenders))
	intruder := sim.Point{X: 15, Y: 0}

	prev := make([]State, len(states))
	for tick := 0; tick < 300; tick++ {
		copy(prev, states)
		world := worldWith(defenders, intruder)

		if _, err := StepDefenders(world, states, cfg); err != nil {
			t.Fatal(err)
		}
		for i := range states {
			if states[i] < prev[i] {
				t.Fatalf("tick %d: defender %d went %v -> %v", tick, i, prev[i], states[i])
			}
		}

		intruder.X += rng.Float64()*2 - 1.2
		intruder.Y += rng.Float64()*2 - 1
	}
}

func TestEqualSpeedsSkipTransition(t *testing.T) {
	cfg := testConfig()
	cfg.DefenderMaxSpeed = 3.0
	cfg.IntruderMaxSpeed = 3.0

	// Geometry that would otherwise transition immediately
	world := worldWith([]sim.Point{{X: 4, Y: 0}}, sim.Point{X: 10, Y: 0})
	states := []State{Travel}

	commands, err := StepDefenders(world, states, cfg)
	if err != nil {
		t.Fatal(err)
	}
	if states[0] != Travel {
		t.Errorf("degenerate geometry advanced state to %v", states[0])
	}
	// Travel action still runs on the radial loss
	if commands[0].X >= 0 {
		t.Errorf("travel velocity %v does not close on the zone", commands[0])
	}
}

func TestInterceptFallbackTarget(t *testing.T) {
	cfg := testConfig()

	// Defender behind the zone relative to the intruder: the dominance
	// circle no longer cuts the approach segment, but the committed
	// defender must still produce a full-speed command, never a fault
	world := worldWith([]sim.Point{{X: -12, Y: 0}}, sim.Point{X: 15, Y: 0})
	states := []State{Intercept}

	commands, err := StepDefenders(world, states, cfg)
	if err != nil {
		t.Fatal(err)
	}
	if mag := commands[0].Length(); math.Abs(mag-cfg.DefenderMaxSpeed) > 1e-9 {
		t.Errorf("fallback speed = %v, want %v", mag, cfg.DefenderMaxSpeed)
	}

	// The fallback target is the dominance boundary point nearest the zone
	// center, so the command points toward the zone side of the circle
	if commands[0].X <= 0 {
		t.Errorf("fallback velocity %v points away from the zone", commands[0])
	}
}

func TestEngageGradientSpreadsDefenders(t *testing.T) {
	cfg := testConfig()
	cfg.OverlapEpsilon = 0.0
	cfg.WRepel = 5.0

	// Two defenders stacked almost on top of each other, both engaged:
	// the overlap penalty must push them apart along the perimeter
	world := worldWith([]sim.Point{{X: -3, Y: 0.2}, {X: -3, Y: -0.2}}, sim.Point{X: 12, Y: 0})
	states := []State{Engage, Engage}

	commands, err := StepDefenders(world, states, cfg)
	if err != nil {
		t.Fatal(err)
	}
	if commands[0].Y <= commands[1].Y {
		t.Errorf("overlapping defenders not repelled: v0=%v v1=%v", commands[0], commands[1])
	}
}

func TestGradientMatchesAnalyticTravelLoss(t *testing.T) {
	cfg := testConfig()
	world := worldWith([]sim.Point{{X: -10, Y: 0}}, sim.Point{X: 15, Y: 0})

	grad := Gradient(world, 0, TravelLoss(cfg), cfg.GradientStep)

	// d/dx of wTravel*(|x| - R)^2 at x=-10: 2*wTravel*(10-2)*(-1)
	want := -2 * cfg.WTravel * 8.0
	if math.Abs(grad.X-want) > 1e-4 {
		t.Errorf("grad.X = %v, want %v", grad.X, want)
	}
	if math.Abs(grad.Y) > 1e-4 {
		t.Errorf("grad.Y = %v, want 0", grad.Y)
	}
}

package sim

import (
	"fmt"
	"math"
)

// FallbackPolicy selects the intruder's behavior when the planner reports
// no usable path
type FallbackPolicy string

const (
	// FallbackHold keeps the intruder stationary
	FallbackHold FallbackPolicy = "hold"
	// FallbackProbe steers toward the nearest defender at half speed to
	// force an opening
	FallbackProbe FallbackPolicy = "probe"
)

// Bounds is the axis-aligned rectangle the planner lattice covers
type Bounds struct {
	Min Point `yaml:"min"`
	Max Point `yaml:"max"`
}

// Config holds every tuning parameter the decision core reads.
// Validate must pass before the first tick; the core assumes a valid config.
type Config struct {
	LearningRate   float64 `yaml:"learning_rate"`
	WTravel        float64 `yaml:"w_travel"`
	WRepel         float64 `yaml:"w_repel"`
	OverlapEpsilon float64 `yaml:"overlap_epsilon"`

	DefenderMaxSpeed float64 `yaml:"defender_max_speed"`
	IntruderMaxSpeed float64 `yaml:"intruder_max_speed"`

	ThreatPenalty float64 `yaml:"threat_penalty"`
	GridRows      int     `yaml:"grid_rows"`
	GridCols      int     `yaml:"grid_cols"`
	WorldBounds   Bounds  `yaml:"world_bounds"`

	// GradientStep is the central-difference perturbation in world units
	GradientStep float64 `yaml:"gradient_step"`

	// SaturateThreat switches overlapping defender circles from additive
	// penalty stacking to a single max-saturated penalty per cell
	SaturateThreat bool `yaml:"saturate_threat"`

	// HalfPlaneThreat penalizes the degenerate equal-speed half-plane on
	// the threat map; off by default, matching the planner's historical
	// skip of infinite-radius regions
	HalfPlaneThreat bool `yaml:"half_plane_threat"`

	FallbackPolicy FallbackPolicy `yaml:"fallback_policy"`
}

// DefaultConfig returns the reference tuning for the standard scenario
func DefaultConfig() Config {
	return Config{
		LearningRate:     0.8,
		WTravel:          1.0,
		WRepel:           2.0,
		OverlapEpsilon:   0.3,
		DefenderMaxSpeed: 2.0,
		IntruderMaxSpeed: 4.0,
		ThreatPenalty:    1000.0,
		GridRows:         80,
		GridCols:         80,
		WorldBounds: Bounds{
			Min: Point{X: -20, Y: -20},
			Max: Point{X: 20, Y: 20},
		},
		GradientStep:   1e-3,
		FallbackPolicy: FallbackHold,
	}
}

// SpeedRatio returns k = defender speed / intruder speed, the Apollonian
// circle parameter
func (c Config) SpeedRatio() float64 {
	return c.DefenderMaxSpeed / c.IntruderMaxSpeed
}

// Validate rejects configurations the core cannot run on. It is the only
// place configuration faults surface; per-tick code never revalidates.
func (c Config) Validate() error {
	for _, f := range []struct {
		name  string
		value float64
	}{
		{"learning_rate", c.LearningRate},
		{"w_travel", c.WTravel},
		{"w_repel", c.WRepel},
		{"overlap_epsilon", c.OverlapEpsilon},
		{"threat_penalty", c.ThreatPenalty},
		{"gradient_step", c.GradientStep},
	} {
		if math.IsNaN(f.value) || math.IsInf(f.value, 0) {
			return fmt.Errorf("config: %s must be finite, got %v", f.name, f.value)
		}
		if f.value < 0 {
			return fmt.Errorf("config: %s must be non-negative, got %v", f.name, f.value)
		}
	}
	if c.GradientStep == 0 {
		return fmt.Errorf("config: gradient_step must be positive")
	}

	if c.DefenderMaxSpeed <= 0 || math.IsNaN(c.DefenderMaxSpeed) || math.IsInf(c.DefenderMaxSpeed, 0) {
		return fmt.Errorf("config: defender_max_speed must be strictly positive, got %v", c.DefenderMaxSpeed)
	}
	if c.IntruderMaxSpeed <= 0 || math.IsNaN(c.IntruderMaxSpeed) || math.IsInf(c.IntruderMaxSpeed, 0) {
		return fmt.Errorf("config: intruder_max_speed must be strictly positive, got %v", c.IntruderMaxSpeed)
	}

	if c.GridRows <= 0 || c.GridCols <= 0 {
		return fmt.Errorf("config: grid resolution must be positive, got %dx%d", c.GridRows, c.GridCols)
	}
	if c.WorldBounds.Max.X <= c.WorldBounds.Min.X || c.WorldBounds.Max.Y <= c.WorldBounds.Min.Y {
		return fmt.Errorf("config: world_bounds must span a positive area, got min=%v max=%v",
			c.WorldBounds.Min, c.WorldBounds.Max)
	}

	switch c.FallbackPolicy {
	case FallbackHold, FallbackProbe:
	default:
		return fmt.Errorf("config: unknown fallback_policy %q", c.FallbackPolicy)
	}

	return nil
}

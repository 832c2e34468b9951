package sim

import (
	"fmt"
	"math"
	"os"

	"gopkg.in/yaml.v3"
)

// Scenario describes an initial world layout plus the run parameters the
// external loop needs. The decision core itself only ever sees the Config
// and per-tick WorldState snapshots derived from it.
type Scenario struct {
	Name string `yaml:"name"`

	ZoneCenter Point   `yaml:"zone_center"`
	ZoneRadius float64 `yaml:"zone_radius"`

	NumDefenders int `yaml:"num_defenders"`
	// DefenderRing places defenders on a semicircle of this radius around
	// the zone center, opposite the default approach direction
	DefenderRing float64 `yaml:"defender_ring"`
	// Explicit positions override the ring placement when non-empty
	DefenderPositions []Point `yaml:"defender_positions"`

	IntruderDistance float64 `yaml:"intruder_distance"`
	IntruderAngle    float64 `yaml:"intruder_angle"`

	Timestep      float64 `yaml:"timestep"`
	MaxTime       float64 `yaml:"max_time"`
	StalemateTime float64 `yaml:"stalemate_time"`
	CaptureRadius float64 `yaml:"capture_radius"`

	Config Config `yaml:"config"`
}

// DefaultScenario returns the reference three-defender setup
func DefaultScenario() Scenario {
	return Scenario{
		Name:             "default",
		ZoneCenter:       Point{X: 0, Y: 0},
		ZoneRadius:       2.0,
		NumDefenders:     3,
		DefenderRing:     8.0,
		IntruderDistance: 15.0,
		IntruderAngle:    0,
		Timestep:         0.05,
		MaxTime:          30.0,
		StalemateTime:    25.0,
		CaptureRadius:    0.5,
		Config:           DefaultConfig(),
	}
}

// LoadScenario reads a YAML scenario file, filling unset fields from the
// defaults, and validates the embedded config
func LoadScenario(path string) (Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Scenario{}, fmt.Errorf("scenario: read %s: %w", path, err)
	}

	scen := DefaultScenario()
	if err := yaml.Unmarshal(data, &scen); err != nil {
		return Scenario{}, fmt.Errorf("scenario: parse %s: %w", path, err)
	}
	if err := scen.Validate(); err != nil {
		return Scenario{}, fmt.Errorf("scenario %s: %w", path, err)
	}
	return scen, nil
}

// Validate checks the run parameters and the embedded core config
func (s Scenario) Validate() error {
	if s.ZoneRadius <= 0 {
		return fmt.Errorf("scenario: zone_radius must be positive, got %v", s.ZoneRadius)
	}
	if s.NumDefenders <= 0 && len(s.DefenderPositions) == 0 {
		return fmt.Errorf("scenario: needs at least one defender")
	}
	if s.Timestep <= 0 {
		return fmt.Errorf("scenario: timestep must be positive, got %v", s.Timestep)
	}
	if s.MaxTime <= 0 {
		return fmt.Errorf("scenario: max_time must be positive, got %v", s.MaxTime)
	}
	if s.CaptureRadius <= 0 {
		return fmt.Errorf("scenario: capture_radius must be positive, got %v", s.CaptureRadius)
	}
	return s.Config.Validate()
}

// BuildWorld constructs the initial world snapshot: defenders on the ring
// semicircle (or at explicit positions), the intruder at its start
// distance, everything at rest.
func (s Scenario) BuildWorld() WorldState {
	positions := s.DefenderPositions
	if len(positions) == 0 {
		positions = make([]Point, s.NumDefenders)
		for i := range positions {
			// Spread across the left semicircle, π/2 to 3π/2
			angle := math.Pi
			if s.NumDefenders > 1 {
				angle = math.Pi/2 + float64(i)*math.Pi/float64(s.NumDefenders-1)
			}
			positions[i] = Point{
				X: s.ZoneCenter.X + s.DefenderRing*math.Cos(angle),
				Y: s.ZoneCenter.Y + s.DefenderRing*math.Sin(angle),
			}
		}
	}

	defenders := make([]AgentState, len(positions))
	for i, p := range positions {
		defenders[i] = AgentState{Position: p}
	}

	intruder := AgentState{
		Position: Point{
			X: s.ZoneCenter.X + s.IntruderDistance*math.Cos(s.IntruderAngle),
			Y: s.ZoneCenter.Y + s.IntruderDistance*math.Sin(s.IntruderAngle),
		},
	}

	return WorldState{
		Defenders:     defenders,
		Intruder:      intruder,
		ProtectedZone: Circle{Center: s.ZoneCenter, Radius: s.ZoneRadius},
	}
}

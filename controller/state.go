// Package controller computes per-tick velocity commands for the defending
// team. Each defender runs a three-state controller: long-range approach
// (Travel), cooperative perimeter optimization (Engage), and committed
// interception (Intercept). Transitions are strictly forward; Intercept is
// terminal for the rest of the simulation.
package controller

// State is a defender's control mode. The numeric order matches the only
// legal transition direction: Travel -> Engage -> Intercept.
type State uint8

const (
	// Travel closes the distance to the protected zone by gradient descent
	// on a radial loss
	Travel State = iota
	// Engage optimizes perimeter coverage against the other engaged
	// defenders
	Engage
	// Intercept commits to the geometric intercept point at full speed;
	// terminal
	Intercept
)

// String returns the state name for logs and diagnostics
func (s State) String() string {
	switch s {
	case Travel:
		return "travel"
	case Engage:
		return "engage"
	case Intercept:
		return "intercept"
	default:
		return "unknown"
	}
}

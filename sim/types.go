// Package sim defines the shared data model for the zone-defense
// simulation: immutable per-tick world snapshots, agent state, and
// validated configuration.
package sim

import "github.com/lixenwraith/zonesim/geometry"

// Point aliases the geometry vector type so callers composing world
// snapshots need only one import
type Point = geometry.Point

// Circle aliases the geometry circle type
type Circle = geometry.Circle

// AgentState holds one agent's kinematic state
type AgentState struct {
	Position Point
	Velocity Point
}

// WorldState is an immutable snapshot of the world for one tick.
// Defender identity is positional: index i in Defenders is defender i
// everywhere (control states, velocity commands).
type WorldState struct {
	Defenders     []AgentState
	Intruder      AgentState
	ProtectedZone Circle
}

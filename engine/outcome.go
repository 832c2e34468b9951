package engine

import "fmt"

// Winner identifies who ended the simulation
type Winner uint8

const (
	// NoWinner means the run is still in progress
	NoWinner Winner = iota
	// IntruderWins means the intruder reached the protected zone
	IntruderWins
	// DefendersWin means a defender closed within the capture radius
	DefendersWin
	// Stalemate means time ran out or the intruder stopped making progress
	Stalemate
)

// String returns the winner name for logs
func (w Winner) String() string {
	switch w {
	case IntruderWins:
		return "intruder"
	case DefendersWin:
		return "defenders"
	case Stalemate:
		return "stalemate"
	default:
		return "none"
	}
}

// Outcome is the terminal result of a run
type Outcome struct {
	Winner        Winner
	TimeElapsed   float64
	FinalDistance float64 // Intruder's distance to the zone center at the end
	Reason        string
}

func (o Outcome) String() string {
	return fmt.Sprintf("%s wins after %.2fs (%s)", o.Winner, o.TimeElapsed, o.Reason)
}

package main

import (
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"

	"github.com/lixenwraith/zonesim/controller"
	"github.com/lixenwraith/zonesim/engine"
)

const sampleRate = beep.SampleRate(44100)

// soundBoard plays short tone cues for simulation events. Audio failure is
// non-fatal; the viewer runs silent.
type soundBoard struct {
	ready bool
}

func newSoundBoard() *soundBoard {
	err := speaker.Init(sampleRate, sampleRate.N(time.Second/10))
	return &soundBoard{ready: err == nil}
}

// tone plays freq for the given duration, fire and forget
func (s *soundBoard) tone(freq float64, d time.Duration) {
	if !s.ready {
		return
	}
	sine, err := generators.SineTone(sampleRate, freq)
	if err != nil {
		return
	}
	speaker.Play(beep.Take(sampleRate.N(d), sine))
}

// playTransition marks a defender advancing its control state: higher pitch
// the closer to commitment
func (s *soundBoard) playTransition(state controller.State) {
	switch state {
	case controller.Engage:
		s.tone(660, 60*time.Millisecond)
	case controller.Intercept:
		s.tone(880, 90*time.Millisecond)
	}
}

// playOutcome marks the end of the run
func (s *soundBoard) playOutcome(winner engine.Winner) {
	switch winner {
	case engine.DefendersWin:
		s.tone(1040, 250*time.Millisecond)
	case engine.IntruderWins:
		s.tone(220, 400*time.Millisecond)
	default:
		s.tone(440, 150*time.Millisecond)
	}
}

func (s *soundBoard) close() {
	if s.ready {
		speaker.Close()
	}
}

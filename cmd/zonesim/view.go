package main

import (
	"fmt"
	"math"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/spf13/cobra"

	"github.com/lixenwraith/zonesim/controller"
	"github.com/lixenwraith/zonesim/engine"
	"github.com/lixenwraith/zonesim/geometry"
	"github.com/lixenwraith/zonesim/planner"
	"github.com/lixenwraith/zonesim/sim"
)

var (
	showCircles bool
	tickDelay   time.Duration
)

var viewCmd = &cobra.Command{
	Use:   "view",
	Short: "Watch a scenario live in the terminal",
	RunE: func(cmd *cobra.Command, args []string) error {
		scen, err := loadScenario()
		if err != nil {
			return err
		}
		e, err := engine.New(scen)
		if err != nil {
			return err
		}

		screen, err := tcell.NewScreen()
		if err != nil {
			return fmt.Errorf("create screen: %w", err)
		}
		if err := screen.Init(); err != nil {
			return fmt.Errorf("init screen: %w", err)
		}

		v := &viewer{
			screen: screen,
			engine: e,
			cfg:    scen.Config,
			bounds: scen.Config.WorldBounds,
			audio:  newSoundBoard(),
		}
		defer v.cleanup()

		v.run()
		return nil
	},
}

func init() {
	viewCmd.Flags().BoolVar(&showCircles, "circles", true, "draw defender dominance circles")
	viewCmd.Flags().DurationVar(&tickDelay, "tick", 50*time.Millisecond, "wall-clock time per simulation tick")
}

type viewer struct {
	screen tcell.Screen
	engine *engine.Engine
	cfg    sim.Config
	bounds sim.Bounds
	audio  *soundBoard

	prevStates []controller.State
	outcome    *engine.Outcome
}

func (v *viewer) run() {
	ticker := time.NewTicker(tickDelay)
	defer ticker.Stop()

	eventChan := make(chan tcell.Event, 16)
	go func() {
		for {
			eventChan <- v.screen.PollEvent()
		}
	}()

	v.prevStates = make([]controller.State, len(v.engine.States()))
	copy(v.prevStates, v.engine.States())

	for {
		select {
		case ev := <-eventChan:
			switch ev := ev.(type) {
			case *tcell.EventKey:
				if ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC || ev.Rune() == 'q' {
					return
				}
			case *tcell.EventResize:
				v.screen.Sync()
			}

		case <-ticker.C:
			if v.outcome == nil {
				result, err := v.engine.Step()
				if err != nil {
					return
				}
				v.notifyTransitions()
				if result.Outcome.Winner != engine.NoWinner {
					v.outcome = &result.Outcome
					v.audio.playOutcome(result.Outcome.Winner)
				}
			}
			v.draw()
		}
	}
}

// notifyTransitions plays a cue when any defender advances its state
func (v *viewer) notifyTransitions() {
	for i, s := range v.engine.States() {
		if s != v.prevStates[i] {
			v.audio.playTransition(s)
			v.prevStates[i] = s
		}
	}
}

// toScreen maps a world position to terminal cell coordinates. Terminal
// cells are roughly twice as tall as wide, so x gets double resolution.
func (v *viewer) toScreen(p geometry.Point) (int, int) {
	w, h := v.screen.Size()
	fx := (p.X - v.bounds.Min.X) / (v.bounds.Max.X - v.bounds.Min.X)
	fy := (p.Y - v.bounds.Min.Y) / (v.bounds.Max.Y - v.bounds.Min.Y)
	// Flip y: world +y is up, screen +y is down
	return int(fx * float64(w-1)), int((1 - fy) * float64(h-1))
}

var defenderStyles = map[controller.State]tcell.Style{
	controller.Travel:    tcell.StyleDefault.Foreground(tcell.ColorBlue),
	controller.Engage:    tcell.StyleDefault.Foreground(tcell.ColorYellow),
	controller.Intercept: tcell.StyleDefault.Foreground(tcell.ColorRed),
}

func (v *viewer) draw() {
	v.screen.Clear()
	world := v.engine.World()

	zoneStyle := tcell.StyleDefault.Foreground(tcell.ColorGreen)
	v.drawCircle(world.ProtectedZone, '#', zoneStyle)

	if showCircles {
		circleStyle := tcell.StyleDefault.Foreground(tcell.ColorGray)
		k := v.cfg.SpeedRatio()
		for _, d := range world.Defenders {
			if circle, ok := geometry.Apollonian(d.Position, world.Intruder.Position, k); ok {
				v.drawCircle(circle, '.', circleStyle)
			}
		}
	}

	if path, ok := planner.PlanPath(world, v.cfg); ok {
		grid := planner.NewGrid(v.cfg)
		pathStyle := tcell.StyleDefault.Foreground(tcell.ColorDarkRed)
		for _, n := range path[1:] {
			x, y := v.toScreen(grid.ToWorld(n))
			v.screen.SetContent(x, y, '~', nil, pathStyle)
		}
	}

	for i, d := range world.Defenders {
		x, y := v.toScreen(d.Position)
		v.screen.SetContent(x, y, 'D', nil, defenderStyles[v.engine.States()[i]])
	}

	ix, iy := v.toScreen(world.Intruder.Position)
	v.screen.SetContent(ix, iy, 'I', nil, tcell.StyleDefault.Foreground(tcell.ColorRed).Bold(true))

	v.drawStatus()
	v.screen.Show()
}

// drawCircle samples the circle boundary at fixed angular steps
func (v *viewer) drawCircle(c geometry.Circle, ch rune, style tcell.Style) {
	const samples = 96
	for i := 0; i < samples; i++ {
		angle := 2 * math.Pi * float64(i) / samples
		p := geometry.Point{
			X: c.Center.X + c.Radius*math.Cos(angle),
			Y: c.Center.Y + c.Radius*math.Sin(angle),
		}
		if p.X < v.bounds.Min.X || p.X > v.bounds.Max.X || p.Y < v.bounds.Min.Y || p.Y > v.bounds.Max.Y {
			continue
		}
		x, y := v.toScreen(p)
		v.screen.SetContent(x, y, ch, nil, style)
	}
}

func (v *viewer) drawStatus() {
	status := fmt.Sprintf(" t=%6.2fs ", v.engine.Time())
	for i, s := range v.engine.States() {
		status += fmt.Sprintf(" D%d:%s", i, s)
	}
	if v.outcome != nil {
		status += "  " + v.outcome.String() + "  [q to quit]"
	}

	style := tcell.StyleDefault.Reverse(true)
	for i, r := range status {
		v.screen.SetContent(i, 0, r, nil, style)
	}
}

func (v *viewer) cleanup() {
	v.audio.close()
	v.screen.Fini()
}

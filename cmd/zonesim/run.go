package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/lixenwraith/zonesim/controller"
	"github.com/lixenwraith/zonesim/engine"
	"github.com/lixenwraith/zonesim/sim"
)

var (
	parallel    bool
	logInterval int
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run a scenario headless and report the outcome",
	RunE: func(cmd *cobra.Command, args []string) error {
		scen, err := loadScenario()
		if err != nil {
			return err
		}

		opts := []engine.Option{engine.WithLogger(logger)}
		if parallel {
			opts = append(opts, engine.WithParallel())
		}
		e, err := engine.New(scen, opts...)
		if err != nil {
			return err
		}

		logger.Info("starting scenario",
			zap.String("name", scen.Name),
			zap.Int("defenders", len(e.World().Defenders)),
			zap.Float64("defender_speed", scen.Config.DefenderMaxSpeed),
			zap.Float64("intruder_speed", scen.Config.IntruderMaxSpeed),
		)

		prev := make([]controller.State, len(e.States()))
		for {
			copy(prev, e.States())
			result, err := e.Step()
			if err != nil {
				return err
			}

			for i, s := range e.States() {
				if s != prev[i] {
					logger.Info("defender state change",
						zap.Int("defender", i),
						zap.String("from", prev[i].String()),
						zap.String("to", s.String()),
						zap.Float64("time", result.Time),
					)
				}
			}

			if logInterval > 0 && result.Tick%logInterval == 0 {
				logger.Debug("tick",
					zap.Int("tick", result.Tick),
					zap.Float64("time", result.Time),
					zap.Float64("intruder_zone_distance",
						e.World().Intruder.Position.DistanceTo(e.World().ProtectedZone.Center)),
				)
			}

			if result.Outcome.Winner != engine.NoWinner {
				fmt.Println(result.Outcome)
				return nil
			}
		}
	},
}

func init() {
	runCmd.Flags().BoolVar(&parallel, "parallel", false, "evaluate controller and planner concurrently")
	runCmd.Flags().IntVar(&logInterval, "log-interval", 20, "ticks between debug tick logs (0 disables)")
}

func loadScenario() (sim.Scenario, error) {
	if scenarioFile == "" {
		return sim.DefaultScenario(), nil
	}
	return sim.LoadScenario(scenarioFile)
}

// zonesim drives the zone-defense interception simulation: a headless run
// mode with structured logging, and a terminal viewer that renders the
// agents, the protected zone, and the defenders' dominance regions live.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var (
	verbose      bool
	scenarioFile string

	logger *zap.Logger
)

var rootCmd = &cobra.Command{
	Use:   "zonesim",
	Short: "Multi-agent zone-defense interception simulator",
	Long: `zonesim simulates a team of decentralized defenders protecting a
circular zone from a faster adversarial intruder. Defenders switch between
long-range approach, cooperative perimeter coverage, and committed
interception; the intruder replans around their regions of dominance every
tick.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		config := zap.NewProductionConfig()
		if verbose {
			config.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
		}
		var err error
		logger, err = config.Build()
		if err != nil {
			return fmt.Errorf("initialize logger: %w", err)
		}
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
	rootCmd.PersistentFlags().StringVarP(&scenarioFile, "scenario", "s", "", "YAML scenario file (default: built-in scenario)")

	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(viewCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

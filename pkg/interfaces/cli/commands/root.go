package commands

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/rahuldagarjn01-netizen/Coffee/pkg/infrastructure/config"
)

var (
	configPath string
	format     string
	outputDir  string
	verbose    bool

	logger *zap.Logger
)

var rootCmd = &cobra.Command{
	Use:   "coffeeops",
	Short: "Operations dashboard for the Candour Coffee roastery",
	Long: `coffeeops renders a single-pass operations dashboard for a small
manufacturing facility: inventory reorder status, production KPI traffic
lights, the shift productivity trend, and a capacity-scaling simulation.

All decision constants (reorder point, EOQ, thresholds, stages) come from the
facility config file; live floor readings come from flags.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		zapConfig := zap.NewProductionConfig()
		if verbose {
			zapConfig.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
		}
		var err error
		logger, err = zapConfig.Build()
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
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
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "path to facility config file (YAML)")
	rootCmd.PersistentFlags().StringVar(&format, "format", "text", "output format: text, json, html")
	rootCmd.PersistentFlags().StringVar(&outputDir, "output", "", "output directory for rendered files (optional)")
	rootCmd.PersistentFlags().BoolVar(&verbose, "verbose", false, "enable verbose output")
}

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}

// loadFacilityConfig loads the config file named by --config, or defaults
func loadFacilityConfig() (*config.FacilityConfig, error) {
	cfg, err := config.LoadFile(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load facility config: %w", err)
	}
	return cfg, nil
}

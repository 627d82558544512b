package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

var trendCmd = &cobra.Command{
	Use:   "trend",
	Short: "Print the shift cycle-time trend series",
	RunE:  runTrend,
}

func init() {
	trendCmd.Flags().StringVar(&trendFile, "trend-file", "", "CSV file with hour,cycle_time_seconds trend data (optional)")
	rootCmd.AddCommand(trendCmd)
}

func runTrend(cmd *cobra.Command, args []string) error {
	trendRepo, err := buildTrendRepository()
	if err != nil {
		return err
	}

	points, err := trendRepo.GetTrend()
	if err != nil {
		return fmt.Errorf("failed to read trend series: %w", err)
	}

	fmt.Printf("%-6s %-16s\n", "Hour", "Cycle Time (s)")
	for _, point := range points {
		fmt.Printf("%-6s %-16v\n", point.Hour, point.CycleTimeSeconds)
	}

	return nil
}

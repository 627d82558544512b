package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rahuldagarjn01-netizen/Coffee/pkg/domain/entities"
	domainservices "github.com/rahuldagarjn01-netizen/Coffee/pkg/domain/services"
)

var shiftSeconds float64

var simulateCmd = &cobra.Command{
	Use:   "simulate",
	Short: "Project per-stage daily capacity for the configured shift",
	RunE:  runSimulate,
}

func init() {
	simulateCmd.Flags().Float64Var(&shiftSeconds, "shift-seconds", 0, "shift duration override in seconds (0 = use config)")
	rootCmd.AddCommand(simulateCmd)
}

func runSimulate(cmd *cobra.Command, args []string) error {
	cfg, err := loadFacilityConfig()
	if err != nil {
		return err
	}

	duration := cfg.Capacity.ShiftDurationSeconds
	if shiftSeconds > 0 {
		duration = shiftSeconds
	}

	stages := make([]entities.ProcessStage, 0, len(cfg.Capacity.Stages))
	for _, stage := range cfg.Capacity.Stages {
		stages = append(stages, entities.ProcessStage{
			Name:             stage.Name,
			CycleTimeSeconds: stage.CycleTimeSeconds,
		})
	}

	simulator := domainservices.NewCapacitySimulator()
	results, err := simulator.Simulate(duration, stages)
	if err != nil {
		return fmt.Errorf("capacity simulation failed: %w", err)
	}

	fmt.Printf("📊 Capacity Simulation (%.0f second shift)\n", duration)
	fmt.Printf("%-22s %-12s %-15s\n", "Stage", "Cycle (s)", "Units/Shift")
	fmt.Printf("%-22s %-12s %-15s\n", "----------------------", "------------", "---------------")
	for i, result := range results {
		fmt.Printf("%-22s %-12v %-15.2f\n",
			result.StageName,
			stages[i].CycleTimeSeconds,
			result.DailyCapacityUnits)
	}

	return nil
}

package commands

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/rahuldagarjn01-netizen/Coffee/pkg/application/dto"
	"github.com/rahuldagarjn01-netizen/Coffee/pkg/application/services"
	"github.com/rahuldagarjn01-netizen/Coffee/pkg/domain/repositories"
	"github.com/rahuldagarjn01-netizen/Coffee/pkg/infrastructure/events"
	csvrepo "github.com/rahuldagarjn01-netizen/Coffee/pkg/infrastructure/repositories/csv"
	"github.com/rahuldagarjn01-netizen/Coffee/pkg/infrastructure/repositories/memory"
	"github.com/rahuldagarjn01-netizen/Coffee/pkg/interfaces/cli/output"
)

var (
	stockKg       float64
	cycleTimeSec  float64
	defectRatePct float64
	trendFile     string
)

var renderCmd = &cobra.Command{
	Use:   "render",
	Short: "Render one dashboard pass from live floor readings",
	Long: `Render evaluates the facility model against the supplied readings and
prints the dashboard. Interactive control ranges in the reference deployment:
cycle time 10-50 s, defect rate 0.0-5.0 %.`,
	RunE: runRender,
}

func init() {
	renderCmd.Flags().Float64Var(&stockKg, "stock", 45, "current warehouse stock (kg)")
	renderCmd.Flags().Float64Var(&cycleTimeSec, "cycle-time", 29, "current cycle time (seconds)")
	renderCmd.Flags().Float64Var(&defectRatePct, "defect-rate", 1.2, "current defect rate (percent)")
	renderCmd.Flags().StringVar(&trendFile, "trend-file", "", "CSV file with hour,cycle_time_seconds trend data (optional)")
	rootCmd.AddCommand(renderCmd)
}

func runRender(cmd *cobra.Command, args []string) error {
	cfg, err := loadFacilityConfig()
	if err != nil {
		return err
	}

	trendRepo, err := buildTrendRepository()
	if err != nil {
		return err
	}

	service := services.NewDashboardService(trendRepo, events.NewInMemoryEventStore(), logger)

	inputs := dto.LiveInputs{
		CurrentStockKg:   decimal.NewFromFloat(stockKg),
		CycleTimeSeconds: cycleTimeSec,
		DefectRatePct:    defectRatePct,
	}

	start := time.Now()
	snapshot, err := service.Render(cmd.Context(), cfg, inputs)
	if err != nil {
		return fmt.Errorf("dashboard pass failed: %w", err)
	}
	renderTime := time.Since(start)

	logger.Debug("rendering output",
		zap.String("format", format),
		zap.Duration("render_time", renderTime))

	return output.Generate(snapshot, output.Config{
		Format:     format,
		OutputDir:  outputDir,
		Verbose:    verbose,
		RenderTime: renderTime,
	})
}

// buildTrendRepository wires the CSV feed when given, the canned series otherwise
func buildTrendRepository() (repositories.TrendRepository, error) {
	if trendFile == "" {
		return memory.NewIllustrativeTrendRepository(), nil
	}

	points, err := csvrepo.NewLoader().LoadTrend(trendFile)
	if err != nil {
		return nil, fmt.Errorf("failed to load trend data: %w", err)
	}

	repo := memory.NewTrendRepository()
	if err := repo.LoadTrend(points); err != nil {
		return nil, fmt.Errorf("failed to load trend data into repository: %w", err)
	}
	return repo, nil
}

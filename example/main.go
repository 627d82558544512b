// Command example demonstrates using the dashboard core as a library: build a
// facility model, run one evaluation pass, and read the results directly.
package main

import (
	"context"
	"fmt"
	"log"

	"github.com/shopspring/decimal"

	"github.com/rahuldagarjn01-netizen/Coffee/pkg/application/dto"
	"github.com/rahuldagarjn01-netizen/Coffee/pkg/application/services"
	"github.com/rahuldagarjn01-netizen/Coffee/pkg/infrastructure/config"
	"github.com/rahuldagarjn01-netizen/Coffee/pkg/infrastructure/events"
	"github.com/rahuldagarjn01-netizen/Coffee/pkg/infrastructure/repositories/memory"
)

func main() {
	cfg := config.Default()

	trendRepo := memory.NewIllustrativeTrendRepository()
	eventStore := events.NewInMemoryEventStore()
	service := services.NewDashboardService(trendRepo, eventStore, nil)

	// Readings from the floor: stock is exactly on the reorder point, so the
	// pass raises a reorder alert.
	inputs := dto.LiveInputs{
		CurrentStockKg:   decimal.NewFromInt(37),
		CycleTimeSeconds: 31,
		DefectRatePct:    1.8,
	}

	snapshot, err := service.Render(context.Background(), cfg, inputs)
	if err != nil {
		log.Fatalf("dashboard pass failed: %v", err)
	}

	fmt.Printf("Needs reorder: %v (order %s kg)\n",
		snapshot.Inventory.NeedsReorder, snapshot.Inventory.RecommendedOrderQty)
	fmt.Printf("Cycle time:    %v s -> %s\n", snapshot.CycleTime.Value, snapshot.CycleTime.Status)
	fmt.Printf("Defect rate:   %v %% -> %s\n", snapshot.DefectRate.Value, snapshot.DefectRate.Status)
	fmt.Printf("Throughput:    %d units/hour\n", snapshot.HourlyThroughput)

	fmt.Println("\nCapacity by stage:")
	for _, result := range snapshot.Capacity {
		fmt.Printf("  %-22s %.2f units/shift\n", result.StageName, result.DailyCapacityUnits)
	}

	history, err := service.AlertHistory()
	if err != nil {
		log.Fatalf("failed to read alert history: %v", err)
	}
	fmt.Printf("\nEvaluation events recorded: %d\n", len(history))
	for _, event := range history {
		fmt.Printf("  %s\n", event.Type())
	}
}

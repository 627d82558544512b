package services

import (
	"math"

	"github.com/rahuldagarjn01-netizen/Coffee/pkg/domain/entities"
)

// SecondsPerHour is the numerator for the live hourly throughput figure.
const SecondsPerHour = 3600.0

// CapacitySimulator converts per-unit cycle times and a fixed shift duration
// into projected throughput across process stages.
type CapacitySimulator struct{}

// NewCapacitySimulator creates a new capacity simulator
func NewCapacitySimulator() *CapacitySimulator {
	return &CapacitySimulator{}
}

// Simulate projects daily output for each stage as
// shiftDurationSeconds / CycleTimeSeconds. Results preserve the input stage
// order, which the presentation layer uses directly as chart category order.
func (s *CapacitySimulator) Simulate(shiftDurationSeconds float64, stages []entities.ProcessStage) ([]entities.CapacityResult, error) {
	if math.IsNaN(shiftDurationSeconds) || math.IsInf(shiftDurationSeconds, 0) || shiftDurationSeconds <= 0 {
		return nil, entities.NewInvalidInput("shift duration", "must be positive, got %v", shiftDurationSeconds)
	}

	results := make([]entities.CapacityResult, 0, len(stages))
	for _, stage := range stages {
		validated, err := entities.NewProcessStage(stage.Name, stage.CycleTimeSeconds)
		if err != nil {
			return nil, err
		}

		results = append(results, entities.CapacityResult{
			StageName:          validated.Name,
			DailyCapacityUnits: shiftDurationSeconds / validated.CycleTimeSeconds,
		})
	}

	return results, nil
}

// HourlyThroughput returns the whole-unit hourly output ceiling for the given
// cycle time, truncating the fractional remainder.
func (s *CapacitySimulator) HourlyThroughput(cycleTimeSeconds float64) (int, error) {
	if math.IsNaN(cycleTimeSeconds) || math.IsInf(cycleTimeSeconds, 0) || cycleTimeSeconds <= 0 {
		return 0, entities.NewInvalidInput("cycle time", "must be positive, got %v", cycleTimeSeconds)
	}

	return int(SecondsPerHour / cycleTimeSeconds), nil
}

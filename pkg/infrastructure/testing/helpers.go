package testing

import (
	"github.com/shopspring/decimal"

	"github.com/rahuldagarjn01-netizen/Coffee/pkg/application/dto"
	"github.com/rahuldagarjn01-netizen/Coffee/pkg/infrastructure/config"
	"github.com/rahuldagarjn01-netizen/Coffee/pkg/infrastructure/repositories/memory"
)

// BuildVikhroliScenario returns the reference facility model and a trend
// repository loaded with the canned shift series
func BuildVikhroliScenario() (*config.FacilityConfig, *memory.TrendRepository) {
	return config.Default(), memory.NewIllustrativeTrendRepository()
}

// HealthyInputs returns live readings that trip no alerts: stock above the
// reorder point, cycle time under the yellow threshold, low defect rate
func HealthyInputs() dto.LiveInputs {
	return dto.LiveInputs{
		CurrentStockKg:   decimal.NewFromInt(45),
		CycleTimeSeconds: 29,
		DefectRatePct:    1.2,
	}
}

// DegradedInputs returns live readings at the alert boundaries: stock exactly
// on the reorder point and cycle time exactly on the red threshold
func DegradedInputs() dto.LiveInputs {
	return dto.LiveInputs{
		CurrentStockKg:   decimal.NewFromInt(37),
		CycleTimeSeconds: 40,
		DefectRatePct:    3.0,
	}
}

package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/rahuldagarjn01-netizen/Coffee/pkg/domain/entities"
)

// LiveInputs are the raw floor readings driving one dashboard pass, as
// collected by the presentation layer.
type LiveInputs struct {
	CurrentStockKg   decimal.Decimal `json:"current_stock_kg"`
	CycleTimeSeconds float64         `json:"cycle_time_seconds"`
	DefectRatePct    float64         `json:"defect_rate_pct"`
}

// KpiReport is one monitored metric with its classification and the
// thresholds it was judged against.
type KpiReport struct {
	Metric string                 `json:"metric"`
	Value  float64                `json:"value"`
	Unit   string                 `json:"unit"`
	Status entities.KpiStatus     `json:"status"`
	Bounds entities.KpiThresholds `json:"bounds"`
}

// DashboardSnapshot contains the complete output of one evaluation pass.
// Each render builds a fresh snapshot from current inputs; nothing is shared
// between requests.
type DashboardSnapshot struct {
	GeneratedAt time.Time  `json:"generated_at"`
	Inputs      LiveInputs `json:"inputs"`

	Inventory     entities.InventoryDecision `json:"inventory"`
	SafetyStockKg decimal.Decimal            `json:"safety_stock_kg"`

	CycleTime             KpiReport `json:"cycle_time"`
	DefectRate            KpiReport `json:"defect_rate"`
	CycleTimeDeltaSeconds float64   `json:"cycle_time_delta_seconds"`
	HourlyThroughput      int       `json:"hourly_throughput"`

	Capacity []entities.CapacityResult `json:"capacity"`
	Trend    []entities.TrendPoint     `json:"trend"`

	Recommendation string   `json:"recommendation,omitempty"`
	Alerts         []string `json:"alerts,omitempty"`
}

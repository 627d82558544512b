package events

import (
	"github.com/rahuldagarjn01-netizen/Coffee/pkg/domain/entities"
)

const (
	ReorderTriggeredEvent  = "inventory.reorder.triggered"
	KpiBreachedEvent       = "kpi.threshold.breached"
	DashboardRenderedEvent = "dashboard.rendered"
)

// ReorderTriggered is recorded when stock reaches the reorder point.
type ReorderTriggered struct {
	State    entities.InventoryState    `json:"state"`
	Decision entities.InventoryDecision `json:"decision"`
}

// KpiBreached is recorded when a metric classifies WARNING or CRITICAL.
type KpiBreached struct {
	Metric string             `json:"metric"`
	Value  float64            `json:"value"`
	Status entities.KpiStatus `json:"status"`
}

// DashboardRendered is recorded once per completed evaluation pass.
type DashboardRendered struct {
	AlertCount int `json:"alert_count"`
}

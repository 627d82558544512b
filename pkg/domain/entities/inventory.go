package entities

import (
	"github.com/shopspring/decimal"
)

// InventoryState is a snapshot of raw-material stock against the facility's
// reorder policy. Quantities are kilograms of green coffee; decimals keep
// fractional buffers like a 12.5 kg safety stock exact.
type InventoryState struct {
	CurrentStock     decimal.Decimal
	ReorderPoint     decimal.Decimal
	EconomicOrderQty decimal.Decimal
	SafetyStock      decimal.Decimal
}

// NewInventoryState creates a validated InventoryState
func NewInventoryState(currentStock, reorderPoint, economicOrderQty, safetyStock decimal.Decimal) (*InventoryState, error) {
	if currentStock.IsNegative() {
		return nil, NewInvalidInput("current stock", "cannot be negative, got %s", currentStock)
	}
	if reorderPoint.IsNegative() {
		return nil, NewInvalidInput("reorder point", "cannot be negative, got %s", reorderPoint)
	}
	if !economicOrderQty.IsPositive() {
		return nil, NewInvalidInput("economic order quantity", "must be positive, got %s", economicOrderQty)
	}
	if safetyStock.IsNegative() {
		return nil, NewInvalidInput("safety stock", "cannot be negative, got %s", safetyStock)
	}

	return &InventoryState{
		CurrentStock:     currentStock,
		ReorderPoint:     reorderPoint,
		EconomicOrderQty: economicOrderQty,
		SafetyStock:      safetyStock,
	}, nil
}

// InventoryDecision is the reorder recommendation derived from an
// InventoryState. Computed on demand, never stored.
type InventoryDecision struct {
	NeedsReorder        bool
	RecommendedOrderQty decimal.Decimal
}

package services

import (
	"github.com/rahuldagarjn01-netizen/Coffee/pkg/domain/entities"
)

// InventoryPolicy evaluates stock levels against the facility's reorder
// point / economic order quantity model.
type InventoryPolicy struct{}

// NewInventoryPolicy creates a new inventory policy evaluator
func NewInventoryPolicy() *InventoryPolicy {
	return &InventoryPolicy{}
}

// Evaluate derives a reorder decision from the given inventory state.
// Reorder triggers when current stock is at or below the reorder point; the
// boundary is inclusive. The recommended quantity is always the configured
// EOQ regardless of how far stock has fallen below the reorder point; order
// size is not scaled to the deficit.
func (p *InventoryPolicy) Evaluate(state entities.InventoryState) (*entities.InventoryDecision, error) {
	validated, err := entities.NewInventoryState(
		state.CurrentStock,
		state.ReorderPoint,
		state.EconomicOrderQty,
		state.SafetyStock,
	)
	if err != nil {
		return nil, err
	}

	return &entities.InventoryDecision{
		NeedsReorder:        validated.CurrentStock.LessThanOrEqual(validated.ReorderPoint),
		RecommendedOrderQty: validated.EconomicOrderQty,
	}, nil
}

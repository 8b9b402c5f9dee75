package services

import (
	"github.com/shopspring/decimal"

	"github.com/distordia/mrp/pkg/domain/entities"
)

// ComputePosition folds a material's ledger entries into a stock
// position. On-hand is the sum of all signed quantities in ledger order;
// available is always recomputed from on-hand and reserved. With no
// entries the position is zero, not an error.
//
// Reserved stays zero until an explicit reservation mechanism exists;
// the field is carried so the arithmetic never has to change.
func ComputePosition(key entities.MaterialKey, entries []*entities.LedgerEntry) entities.InventoryPosition {
	onHand := decimal.Zero
	for _, entry := range entries {
		onHand = onHand.Add(entry.Quantity)
	}
	reserved := decimal.Zero
	return entities.InventoryPosition{
		MaterialKey: key,
		OnHand:      onHand,
		Reserved:    reserved,
		Available:   onHand.Sub(reserved),
	}
}

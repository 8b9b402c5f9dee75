package entities

import (
	"time"

	"github.com/shopspring/decimal"
)

// EntryKind classifies an inventory transaction.
type EntryKind string

const (
	EntryReceipt    EntryKind = "receipt"
	EntryIssue      EntryKind = "issue"
	EntryAdjustment EntryKind = "adjustment"
)

// LedgerEntry is one immutable inventory transaction. Quantity is
// signed: receipts are positive, issues negative, adjustments either.
type LedgerEntry struct {
	ID          string
	MaterialKey MaterialKey
	Quantity    decimal.Decimal
	Kind        EntryKind
	Reference   string
	Timestamp   time.Time
}

// InventoryPosition is a material's derived stock position. It is
// computed from the ledger on demand and never stored.
type InventoryPosition struct {
	MaterialKey MaterialKey
	OnHand      decimal.Decimal
	Reserved    decimal.Decimal
	Available   decimal.Decimal
}

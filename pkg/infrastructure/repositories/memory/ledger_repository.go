package memory

import (
	"time"

	"github.com/distordia/mrp/pkg/domain/entities"
	"github.com/distordia/mrp/pkg/domain/repositories"
	"github.com/distordia/mrp/pkg/domain/services"
)

// LedgerRepository is the in-memory append-only inventory transaction
// log. Entries are stored in insertion order; nothing is ever rewritten.
type LedgerRepository struct {
	entries []entities.LedgerEntry
	byKey   map[entities.MaterialKey][]int
}

// NewLedgerRepository creates an empty ledger.
func NewLedgerRepository() *LedgerRepository {
	return &LedgerRepository{
		byKey: make(map[entities.MaterialKey][]int),
	}
}

// Verify interface compliance
var _ repositories.LedgerRepository = (*LedgerRepository)(nil)

// Append commits a transaction. It always succeeds: quantities are
// trusted as signed by the caller and no balance check is applied. A
// missing id or timestamp is filled in.
func (r *LedgerRepository) Append(entry *entities.LedgerEntry) error {
	if entry.ID == "" {
		entry.ID = "txn_" + idNode().Generate().String()
	}
	if entry.Timestamp.IsZero() {
		entry.Timestamp = time.Now()
	}
	index := len(r.entries)
	r.entries = append(r.entries, *entry)
	r.byKey[entry.MaterialKey] = append(r.byKey[entry.MaterialKey], index)
	return nil
}

// Entries returns a material's transactions in ledger order.
func (r *LedgerRepository) Entries(key entities.MaterialKey) []*entities.LedgerEntry {
	indexes := r.byKey[key]
	entries := make([]*entities.LedgerEntry, 0, len(indexes))
	for _, i := range indexes {
		entry := r.entries[i]
		entries = append(entries, &entry)
	}
	return entries
}

// AllEntries returns the full log in ledger order.
func (r *LedgerRepository) AllEntries() []*entities.LedgerEntry {
	entries := make([]*entities.LedgerEntry, 0, len(r.entries))
	for i := range r.entries {
		entry := r.entries[i]
		entries = append(entries, &entry)
	}
	return entries
}

// Position folds the material's entries into its current stock position.
// An unknown key yields a zero position.
func (r *LedgerRepository) Position(key entities.MaterialKey) entities.InventoryPosition {
	return services.ComputePosition(key, r.Entries(key))
}

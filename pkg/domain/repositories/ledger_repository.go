package repositories

import "github.com/distordia/mrp/pkg/domain/entities"

// LedgerRepository stores inventory transactions. The log is append-only:
// entries are never mutated or removed, and insertion order is the ledger
// order.
type LedgerRepository interface {
	Append(entry *entities.LedgerEntry) error
	Entries(key entities.MaterialKey) []*entities.LedgerEntry
	AllEntries() []*entities.LedgerEntry
	Position(key entities.MaterialKey) entities.InventoryPosition
}

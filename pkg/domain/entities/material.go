package entities

import (
	"time"

	"github.com/shopspring/decimal"
)

// MaterialKey is an opaque material reference. It carries either a
// remote ledger asset address or a local catalog id; resolution decides
// which, never the shape of the string.
type MaterialKey string

// Origin records which catalog a resolved material snapshot came from.
type Origin int

const (
	OriginRemote Origin = iota
	OriginLocal
)

func (o Origin) String() string {
	switch o {
	case OriginRemote:
		return "remote"
	case OriginLocal:
		return "local"
	default:
		return "unknown"
	}
}

// Category classifies a material's production role.
type Category string

const (
	CategoryRaw          Category = "raw"
	CategorySemiFinished Category = "semi-finished"
	CategoryFinished     Category = "finished"
)

// LifecycleStatus is the masterdata lifecycle state carried on published
// material assets.
type LifecycleStatus int

const (
	StatusActive LifecycleStatus = iota + 1
	StatusSoldOut
	StatusPlanned
	StatusDiscontinued
	StatusPendingApproval
)

func (s LifecycleStatus) String() string {
	switch s {
	case StatusActive:
		return "Active"
	case StatusSoldOut:
		return "Sold Out"
	case StatusPlanned:
		return "Planned"
	case StatusDiscontinued:
		return "Discontinued"
	case StatusPendingApproval:
		return "Pending Approval"
	default:
		return "Unknown"
	}
}

// Material is a resolved point-in-time material snapshot. Snapshots are
// never written back; the owning catalog stays authoritative.
type Material struct {
	Key         MaterialKey
	Address     string
	Name        string
	Description string
	Unit        string
	UnitCost    decimal.Decimal
	Category    Category
	Origin      Origin
	Lifecycle   LifecycleStatus
	PublishedAt time.Time
}

// LocalMaterial is an offline catalog row.
type LocalMaterial struct {
	ID          string          `validate:"required"`
	Name        string          `validate:"required"`
	Description string          `validate:"-"`
	Unit        string          `validate:"required"`
	Cost        decimal.Decimal `validate:"-"`
	Category    Category        `validate:"required,oneof=raw semi-finished finished"`
}

// Material converts the catalog row into a resolved snapshot.
func (l *LocalMaterial) Material() *Material {
	return &Material{
		Key:         MaterialKey(l.ID),
		Name:        l.Name,
		Description: l.Description,
		Unit:        l.Unit,
		UnitCost:    l.Cost,
		Category:    l.Category,
		Origin:      OriginLocal,
		Lifecycle:   StatusActive,
	}
}

// LibraryRef is one entry of the curated component library: a remote
// asset address pinned by the user.
type LibraryRef struct {
	Address string
	AddedAt time.Time
}

package services

import (
	"testing"

	"github.com/shopspring/decimal"

	"github.com/distordia/mrp/pkg/domain/entities"
	"github.com/distordia/mrp/pkg/domain/services"
	"github.com/distordia/mrp/pkg/infrastructure/repositories/memory"
)

// fixture wires the in-memory stores the way the CLI does.
type fixture struct {
	remote   *memory.RemoteCatalog
	local    *memory.LocalCatalog
	ledger   *memory.LedgerRepository
	lots     *memory.LotRepository
	bom      *memory.BOMRepository
	resolver *services.Resolver
}

func newFixture() *fixture {
	f := &fixture{
		remote: memory.NewRemoteCatalog(),
		local:  memory.NewLocalCatalog(),
		ledger: memory.NewLedgerRepository(),
		lots:   memory.NewLotRepository(),
		bom:    memory.NewBOMRepository(),
	}
	f.resolver = services.NewResolver(f.remote, f.local)
	return f
}

func (f *fixture) addLocal(t *testing.T, id, name string, cost float64) {
	t.Helper()
	err := f.local.Save(&entities.LocalMaterial{
		ID:       id,
		Name:     name,
		Unit:     "pcs",
		Cost:     decimal.NewFromFloat(cost),
		Category: entities.CategoryRaw,
	})
	if err != nil {
		t.Fatalf("Failed to save local material %s: %v", id, err)
	}
}

func (f *fixture) addEdge(t *testing.T, parent, child entities.MaterialKey, qty int64) {
	t.Helper()
	edge, err := entities.NewBOMEdge(parent, child, decimal.NewFromInt(qty))
	if err != nil {
		t.Fatalf("Failed to create edge %s -> %s: %v", parent, child, err)
	}
	if err := f.bom.AddEdge(edge); err != nil {
		t.Fatalf("Failed to add edge %s -> %s: %v", parent, child, err)
	}
}

func (f *fixture) receipt(t *testing.T, key entities.MaterialKey, qty int64) {
	t.Helper()
	err := f.ledger.Append(&entities.LedgerEntry{
		MaterialKey: key,
		Quantity:    decimal.NewFromInt(qty),
		Kind:        entities.EntryReceipt,
		Reference:   "opening stock",
	})
	if err != nil {
		t.Fatalf("Failed to append receipt for %s: %v", key, err)
	}
}

func (f *fixture) addLot(t *testing.T, id string, key entities.MaterialKey, qty int64, location string) {
	t.Helper()
	lot, err := entities.NewLot(id, key, decimal.NewFromInt(qty), location)
	if err != nil {
		t.Fatalf("Failed to create lot %s: %v", id, err)
	}
	if err := f.lots.Save(lot); err != nil {
		t.Fatalf("Failed to save lot %s: %v", id, err)
	}
}

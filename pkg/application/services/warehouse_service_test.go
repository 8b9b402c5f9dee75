package services

import (
	"strings"
	"testing"

	"github.com/shopspring/decimal"

	"github.com/distordia/mrp/pkg/domain/entities"
)

func TestWarehouseService_ReceiveLot(t *testing.T) {
	f := newFixture()
	f.addLocal(t, "steel-rod", "Steel Rod", 4.75)

	warehouse := NewWarehouseService(f.lots, f.ledger, f.resolver)
	lot, err := warehouse.ReceiveLot("steel-rod", decimal.NewFromInt(50), "A-01", "PO-100")
	if err != nil {
		t.Fatalf("Failed to receive lot: %v", err)
	}

	if !strings.HasPrefix(lot.ID, "PLT-") {
		t.Errorf("Expected generated PLT id, got %s", lot.ID)
	}
	if lot.Status != entities.LotAvailable {
		t.Errorf("Expected available lot, got %s", lot.Status)
	}
	if lot.Reference != "PO-100" {
		t.Errorf("Expected reference PO-100, got %s", lot.Reference)
	}

	// Receiving books the matching receipt
	position := f.ledger.Position("steel-rod")
	if !position.OnHand.Equal(decimal.NewFromInt(50)) {
		t.Errorf("Expected on hand 50, got %s", position.OnHand)
	}
	entries := f.ledger.Entries("steel-rod")
	if len(entries) != 1 || entries[0].Kind != entities.EntryReceipt {
		t.Fatalf("Expected one receipt entry, got %+v", entries)
	}
}

func TestWarehouseService_ReceiveLot_Validation(t *testing.T) {
	f := newFixture()
	f.addLocal(t, "steel-rod", "Steel Rod", 4.75)
	warehouse := NewWarehouseService(f.lots, f.ledger, f.resolver)

	if _, err := warehouse.ReceiveLot("steel-rod", decimal.Zero, "A-01", ""); err == nil {
		t.Error("Expected error for zero quantity")
	}
	if _, err := warehouse.ReceiveLot("unknown", decimal.NewFromInt(5), "A-01", ""); err == nil {
		t.Error("Expected error for unresolvable material")
	}
	if len(f.lots.All()) != 0 {
		t.Errorf("Expected no lots after rejected receipts, got %d", len(f.lots.All()))
	}
}

func TestWarehouseService_ReceiveLot_PublishesPallet(t *testing.T) {
	f := newFixture()
	f.addLocal(t, "steel-rod", "Steel Rod", 4.75)

	warehouse := NewWarehouseService(f.lots, f.ledger, f.resolver).WithPublisher(f.remote)
	lot, err := warehouse.ReceiveLot("steel-rod", decimal.NewFromInt(50), "A-01", "PO-100")
	if err != nil {
		t.Fatalf("Failed to receive lot: %v", err)
	}

	found := false
	for _, asset := range f.remote.AllAssets() {
		if asset.Name == "mrp_pallet_"+lot.ID {
			found = true
		}
	}
	if !found {
		t.Error("Expected pallet asset to be registered")
	}
}

func TestWarehouseService_AdjustLot(t *testing.T) {
	f := newFixture()
	f.addLocal(t, "steel-rod", "Steel Rod", 4.75)
	warehouse := NewWarehouseService(f.lots, f.ledger, f.resolver)

	lot, err := warehouse.ReceiveLot("steel-rod", decimal.NewFromInt(50), "A-01", "")
	if err != nil {
		t.Fatalf("Failed to receive lot: %v", err)
	}

	adjusted, err := warehouse.AdjustLot(lot.ID, decimal.NewFromInt(-20), "cycle count")
	if err != nil {
		t.Fatalf("Failed to adjust lot: %v", err)
	}
	if !adjusted.Quantity.Equal(decimal.NewFromInt(30)) {
		t.Errorf("Expected quantity 30, got %s", adjusted.Quantity)
	}

	position := f.ledger.Position("steel-rod")
	if !position.OnHand.Equal(decimal.NewFromInt(30)) {
		t.Errorf("Expected on hand 30, got %s", position.OnHand)
	}

	// Draining the lot marks it empty
	if _, err := warehouse.AdjustLot(lot.ID, decimal.NewFromInt(-30), ""); err != nil {
		t.Fatalf("Failed to drain lot: %v", err)
	}
	drained, _ := f.lots.Get(lot.ID)
	if drained.Status != entities.LotEmpty {
		t.Errorf("Expected empty lot, got %s", drained.Status)
	}
}

func TestWarehouseService_AdjustLot_Validation(t *testing.T) {
	f := newFixture()
	f.addLocal(t, "steel-rod", "Steel Rod", 4.75)
	f.addLot(t, "PLT-1", "steel-rod", 10, "A-01")
	warehouse := NewWarehouseService(f.lots, f.ledger, f.resolver)

	if _, err := warehouse.AdjustLot("PLT-1", decimal.Zero, ""); err == nil {
		t.Error("Expected error for zero delta")
	}
	if _, err := warehouse.AdjustLot("PLT-1", decimal.NewFromInt(-11), ""); err == nil {
		t.Error("Expected error for adjustment below zero")
	}
	if _, err := warehouse.AdjustLot("missing", decimal.NewFromInt(1), ""); err == nil {
		t.Error("Expected error for unknown lot")
	}
	if len(f.ledger.AllEntries()) != 0 {
		t.Errorf("Expected no ledger entries after rejected adjustments, got %d", len(f.ledger.AllEntries()))
	}
}

func TestWarehouseService_MoveLot(t *testing.T) {
	f := newFixture()
	f.addLocal(t, "steel-rod", "Steel Rod", 4.75)
	f.addLot(t, "PLT-1", "steel-rod", 10, "A-01")
	warehouse := NewWarehouseService(f.lots, f.ledger, f.resolver)

	lot, err := warehouse.MoveLot("PLT-1", "B-07")
	if err != nil {
		t.Fatalf("Failed to move lot: %v", err)
	}
	if lot.Location != "B-07" {
		t.Errorf("Expected location B-07, got %s", lot.Location)
	}
	// Moves carry no ledger impact
	if len(f.ledger.AllEntries()) != 0 {
		t.Errorf("Expected no ledger entries, got %d", len(f.ledger.AllEntries()))
	}

	if _, err := warehouse.MoveLot("PLT-1", ""); err == nil {
		t.Error("Expected error for empty location")
	}
}

func TestWarehouseService_SetLotStatus(t *testing.T) {
	f := newFixture()
	f.addLocal(t, "steel-rod", "Steel Rod", 4.75)
	f.addLot(t, "PLT-1", "steel-rod", 10, "A-01")
	warehouse := NewWarehouseService(f.lots, f.ledger, f.resolver)

	lot, err := warehouse.SetLotStatus("PLT-1", entities.LotReserved)
	if err != nil {
		t.Fatalf("Failed to set status: %v", err)
	}
	if lot.Status != entities.LotReserved {
		t.Errorf("Expected reserved, got %s", lot.Status)
	}

	if _, err := warehouse.SetLotStatus("PLT-1", "bogus"); err == nil {
		t.Error("Expected error for unknown status")
	}
}

func TestWarehouseService_SetLotStatus_ZeroQuantityForcesEmpty(t *testing.T) {
	f := newFixture()
	f.addLocal(t, "steel-rod", "Steel Rod", 4.75)
	f.addLot(t, "PLT-1", "steel-rod", 0, "A-01")
	warehouse := NewWarehouseService(f.lots, f.ledger, f.resolver)

	lot, err := warehouse.SetLotStatus("PLT-1", entities.LotAvailable)
	if err != nil {
		t.Fatalf("Failed to set status: %v", err)
	}
	if lot.Status != entities.LotEmpty {
		t.Errorf("Expected zero-quantity lot to stay empty, got %s", lot.Status)
	}
}

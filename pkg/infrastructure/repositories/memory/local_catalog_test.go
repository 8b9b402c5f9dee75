package memory

import (
	"testing"

	"github.com/shopspring/decimal"

	"github.com/distordia/mrp/pkg/domain/entities"
)

func TestLocalCatalog_SaveGetList(t *testing.T) {
	catalog := NewLocalCatalog()

	err := catalog.Save(&entities.LocalMaterial{
		ID:       "bolt-m6",
		Name:     "Bolt M6",
		Unit:     "pcs",
		Cost:     decimal.NewFromFloat(0.1),
		Category: entities.CategoryRaw,
	})
	if err != nil {
		t.Fatalf("Failed to save: %v", err)
	}

	material, ok := catalog.Get("bolt-m6")
	if !ok {
		t.Fatal("Expected material to be found")
	}
	if material.Name != "Bolt M6" {
		t.Errorf("Expected Bolt M6, got %s", material.Name)
	}

	// Saving the same id replaces the row
	if err := catalog.Save(&entities.LocalMaterial{
		ID:       "bolt-m6",
		Name:     "Bolt M6 Zinc",
		Unit:     "pcs",
		Category: entities.CategoryRaw,
	}); err != nil {
		t.Fatalf("Failed to replace: %v", err)
	}
	if got := len(catalog.List()); got != 1 {
		t.Fatalf("Expected 1 row after replace, got %d", got)
	}
	replaced, _ := catalog.Get("bolt-m6")
	if replaced.Name != "Bolt M6 Zinc" {
		t.Errorf("Expected replaced name, got %s", replaced.Name)
	}

	if err := catalog.Save(&entities.LocalMaterial{Name: "no id"}); err == nil {
		t.Error("Expected error for empty id")
	}
}

func TestLocalCatalog_Delete(t *testing.T) {
	catalog := NewLocalCatalog()

	for _, id := range []string{"a", "b", "c"} {
		if err := catalog.Save(&entities.LocalMaterial{ID: id, Name: id, Unit: "pcs", Category: entities.CategoryRaw}); err != nil {
			t.Fatalf("Failed to save %s: %v", id, err)
		}
	}

	if err := catalog.Delete("b"); err != nil {
		t.Fatalf("Failed to delete: %v", err)
	}
	if _, ok := catalog.Get("b"); ok {
		t.Error("Expected b to be gone")
	}
	// Remaining rows stay addressable after reindexing
	if material, ok := catalog.Get("c"); !ok || material.ID != "c" {
		t.Errorf("Expected c to survive, got %+v", material)
	}

	if err := catalog.Delete("b"); err == nil {
		t.Error("Expected error deleting twice")
	}
}

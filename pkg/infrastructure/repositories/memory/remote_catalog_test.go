package memory

import (
	"strings"
	"testing"

	"github.com/distordia/mrp/pkg/domain/entities"
)

func TestRemoteCatalog_SaveAndGet(t *testing.T) {
	catalog := NewRemoteCatalog()

	catalog.SaveAsset(entities.ChainAsset{Address: "asset-1", Name: "first", Data: "{}"})
	catalog.SaveAsset(entities.ChainAsset{Address: "asset-2", Name: "second", Data: "{}"})

	asset, ok := catalog.GetAsset("asset-1")
	if !ok {
		t.Fatal("Expected asset to be found")
	}
	if asset.Name != "first" {
		t.Errorf("Expected first, got %s", asset.Name)
	}

	if _, ok := catalog.GetAsset("missing"); ok {
		t.Error("Expected miss for unknown address")
	}
}

func TestRemoteCatalog_SaveAssetUpdatesInPlace(t *testing.T) {
	catalog := NewRemoteCatalog()

	catalog.SaveAsset(entities.ChainAsset{Address: "asset-1", Name: "v1", Data: "{}"})
	catalog.SaveAsset(entities.ChainAsset{Address: "asset-2", Name: "other", Data: "{}"})
	catalog.SaveAsset(entities.ChainAsset{Address: "asset-1", Name: "v2", Data: "{}"})

	assets := catalog.AllAssets()
	if len(assets) != 2 {
		t.Fatalf("Expected 2 assets, got %d", len(assets))
	}
	// Updates keep first-seen order
	if assets[0].Address != "asset-1" || assets[0].Name != "v2" {
		t.Errorf("Expected updated asset-1 first, got %+v", assets[0])
	}
}

func TestRemoteCatalog_Publish(t *testing.T) {
	catalog := NewRemoteCatalog()

	address, err := catalog.Publish("mrp_material_widget", []byte(`{"assetType":"material_master_data"}`))
	if err != nil {
		t.Fatalf("Failed to publish: %v", err)
	}
	if !strings.HasPrefix(address, "asset-") {
		t.Errorf("Expected generated address, got %s", address)
	}

	asset, ok := catalog.GetAsset(address)
	if !ok {
		t.Fatal("Expected published asset to be retrievable")
	}
	if asset.Name != "mrp_material_widget" {
		t.Errorf("Expected asset name to round-trip, got %s", asset.Name)
	}
}

package main

import (
	"fmt"

	"github.com/shopspring/decimal"

	appservices "github.com/distordia/mrp/pkg/application/services"
	"github.com/distordia/mrp/pkg/domain/entities"
	"github.com/distordia/mrp/pkg/domain/services"
	"github.com/distordia/mrp/pkg/infrastructure/repositories/memory"
)

func main() {
	// Create repositories
	remote := memory.NewRemoteCatalog()
	local := memory.NewLocalCatalog()
	ledger := memory.NewLedgerRepository()
	lots := memory.NewLotRepository()
	bom := memory.NewBOMRepository()

	resolver := services.NewResolver(remote, local)

	// Publish one material to the remote catalog, keep the rest offline
	boardKey := publishMaterial(remote, &entities.Material{
		Name:     "Controller Board",
		Unit:     "pcs",
		UnitCost: decimal.NewFromFloat(42.50),
		Category: entities.CategorySemiFinished,
	})

	local.Save(&entities.LocalMaterial{
		ID:       "speaker-unit",
		Name:     "Speaker Unit",
		Unit:     "pcs",
		Cost:     decimal.NewFromFloat(12.00),
		Category: entities.CategoryRaw,
	})
	local.Save(&entities.LocalMaterial{
		ID:       "smart-speaker",
		Name:     "Smart Speaker",
		Unit:     "pcs",
		Cost:     decimal.NewFromFloat(120.00),
		Category: entities.CategoryFinished,
	})
	local.Save(&entities.LocalMaterial{
		ID:       "capacitor",
		Name:     "Capacitor",
		Unit:     "pcs",
		Cost:     decimal.NewFromFloat(0.35),
		Category: entities.CategoryRaw,
	})

	// Smart speaker needs one board and two speaker units; each board
	// needs eight capacitors
	mustEdge(bom, "smart-speaker", boardKey, 1)
	mustEdge(bom, "smart-speaker", "speaker-unit", 2)
	mustEdge(bom, boardKey, "capacitor", 8)

	// Receive stock through the warehouse so lots and ledger stay coupled
	warehouse := appservices.NewWarehouseService(lots, ledger, resolver).WithPublisher(remote)
	warehouse.ReceiveLot(boardKey, decimal.NewFromInt(4), "A-01", "PO-1001")
	warehouse.ReceiveLot("speaker-unit", decimal.NewFromInt(6), "A-02", "PO-1002")
	warehouse.ReceiveLot("speaker-unit", decimal.NewFromInt(5), "B-01", "PO-1003")
	warehouse.ReceiveLot("capacitor", decimal.NewFromInt(20), "C-07", "PO-1004")

	fmt.Println("🔧 Planning 5 smart speakers...")
	fmt.Println()

	planning := appservices.NewPlanningService(bom, ledger, resolver)
	lines, err := planning.Explode("smart-speaker", decimal.NewFromInt(5))
	if err != nil {
		fmt.Printf("❌ Planning failed: %v\n", err)
		return
	}

	summary := planning.Summarize(lines)
	fmt.Println("📊 Net Requirements:")
	for _, line := range lines {
		marker := ""
		if line.Nested {
			marker = " (nested)"
		}
		fmt.Printf("  %-18s required %-8s available %-8s short %s%s\n",
			line.MaterialName,
			line.RequiredQty.String(),
			line.AvailableQty.String(),
			line.Shortfall.String(),
			marker)
	}
	fmt.Printf("  Total cost: %s, shortfall lines: %d\n", summary.TotalCost.StringFixed(2), summary.ShortfallCount)
	fmt.Println()

	// Pick components for 3 units
	fmt.Println("📦 Picking components for 3 units...")
	picking := appservices.NewPickingService(bom, lots, ledger, resolver)
	plan, err := picking.BuildPickPlan("smart-speaker", decimal.NewFromInt(3))
	if err != nil {
		fmt.Printf("❌ Pick planning failed: %v\n", err)
		return
	}

	for _, line := range plan.Lines {
		fmt.Printf("  %-18s allocated %s of %s\n", line.MaterialName, line.AllocatedQty.String(), line.RequiredQty.String())
		for _, pick := range line.Picks {
			fmt.Printf("    %s @ %s: %s\n", pick.LotID, pick.Location, pick.Quantity.String())
		}
	}

	if err := picking.Confirm(plan); err != nil {
		fmt.Printf("❌ Confirmation failed: %v\n", err)
		return
	}
	fmt.Printf("✅ Confirmed %s\n", plan.ID)

	position := ledger.Position("speaker-unit")
	fmt.Printf("📒 Speaker units on hand after picking: %s\n", position.OnHand.String())
}

func publishMaterial(remote *memory.RemoteCatalog, material *entities.Material) entities.MaterialKey {
	name, data, err := services.EncodeMaterialAsset(material, entities.StatusActive)
	if err != nil {
		panic(err)
	}
	address, err := remote.Publish(name, data)
	if err != nil {
		panic(err)
	}
	return entities.MaterialKey(address)
}

func mustEdge(bom *memory.BOMRepository, parent entities.MaterialKey, child entities.MaterialKey, qty int64) {
	edge, err := entities.NewBOMEdge(parent, child, decimal.NewFromInt(qty))
	if err != nil {
		panic(err)
	}
	if err := bom.AddEdge(edge); err != nil {
		panic(err)
	}
}

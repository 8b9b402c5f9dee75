package services

import (
	"github.com/shopspring/decimal"

	"github.com/distordia/mrp/pkg/domain/entities"
	"github.com/distordia/mrp/pkg/domain/repositories"
	"github.com/distordia/mrp/pkg/domain/services"
)

// PlanningService computes flattened net requirements for a planned
// production quantity by exploding the BOM against current ledger
// positions.
type PlanningService struct {
	bom      repositories.BOMRepository
	ledger   repositories.LedgerRepository
	resolver *services.Resolver
}

// NewPlanningService creates a planning service over the injected stores.
func NewPlanningService(bom repositories.BOMRepository, ledger repositories.LedgerRepository, resolver *services.Resolver) *PlanningService {
	return &PlanningService{
		bom:      bom,
		ledger:   ledger,
		resolver: resolver,
	}
}

// explosion accumulates requirement lines in first-visit order with
// additive merging per material key.
type explosion struct {
	service *PlanningService
	lines   []entities.RequirementLine
	index   map[entities.MaterialKey]int
}

// Explode flattens the multi-level BOM under rootKey into deduplicated
// net requirements for plannedQty units.
//
// Every path from the root to a material contributes the product of the
// per-edge quantities along it; contributions to the same material are
// added, never overwritten. A material reached only through lower-level
// BOMs is flagged nested; any direct usage clears the flag, regardless
// of the order the edges are visited in. Children that fail to resolve
// are skipped, consistent with the soft-fail policy for catalog lookups.
func (s *PlanningService) Explode(rootKey entities.MaterialKey, plannedQty decimal.Decimal) ([]entities.RequirementLine, error) {
	if rootKey == "" {
		return nil, &entities.ValidationError{Msg: "root material key cannot be empty"}
	}
	if !plannedQty.IsPositive() {
		return nil, &entities.ValidationError{Msg: "planned quantity must be positive, got " + plannedQty.String()}
	}

	ex := &explosion{
		service: s,
		index:   make(map[entities.MaterialKey]int),
	}

	path := []entities.MaterialKey{rootKey}
	onPath := map[entities.MaterialKey]bool{rootKey: true}

	for _, edge := range s.bom.ChildrenOf(rootKey) {
		if err := ex.contribute(edge.ChildKey, edge.QtyPer.Mul(plannedQty), false, path, onPath); err != nil {
			return nil, err
		}
	}

	return ex.lines, nil
}

// contribute records quantity qty of key and recurses into key's own BOM
// scaled by that quantity. path holds the ancestor chain for cycle
// detection; revisiting an ancestor aborts the whole explosion rather
// than recursing forever on malformed data.
func (ex *explosion) contribute(key entities.MaterialKey, qty decimal.Decimal, nested bool, path []entities.MaterialKey, onPath map[entities.MaterialKey]bool) error {
	if onPath[key] {
		return &entities.CycleError{Path: append(append([]entities.MaterialKey{}, path...), key)}
	}

	material, err := ex.service.resolver.Resolve(key)
	if err != nil {
		return nil
	}

	ex.upsert(key, material, qty, nested)

	childEdges := ex.service.bom.ChildrenOf(key)
	if len(childEdges) == 0 {
		return nil
	}

	path = append(path, key)
	onPath[key] = true
	defer func() {
		onPath[key] = false
	}()

	for _, edge := range childEdges {
		if err := ex.contribute(edge.ChildKey, edge.QtyPer.Mul(qty), true, path, onPath); err != nil {
			return err
		}
	}
	return nil
}

// upsert adds qty to an existing line or inserts a new one. A direct
// contribution always clears the nested flag: a material used directly
// by the root is never nested, even when a subassembly pulled it in
// first.
func (ex *explosion) upsert(key entities.MaterialKey, material *entities.Material, qty decimal.Decimal, nested bool) {
	if i, exists := ex.index[key]; exists {
		ex.lines[i].RequiredQty = ex.lines[i].RequiredQty.Add(qty)
		if !nested {
			ex.lines[i].Nested = false
		}
		ex.lines[i].Recalculate()
		return
	}

	position := ex.service.ledger.Position(key)
	line := entities.RequirementLine{
		MaterialKey:  key,
		MaterialName: material.Name,
		Unit:         material.Unit,
		RequiredQty:  qty,
		AvailableQty: position.Available,
		UnitCost:     material.UnitCost,
		Nested:       nested,
	}
	line.Recalculate()

	ex.index[key] = len(ex.lines)
	ex.lines = append(ex.lines, line)
}

// Summarize folds a requirement list into its planning summary.
func (s *PlanningService) Summarize(lines []entities.RequirementLine) entities.PlanSummary {
	summary := entities.PlanSummary{
		MaterialCount: len(lines),
		TotalCost:     decimal.Zero,
	}
	for _, line := range lines {
		summary.TotalCost = summary.TotalCost.Add(line.TotalCost)
		if line.Shortfall.IsPositive() {
			summary.ShortfallCount++
		}
	}
	return summary
}

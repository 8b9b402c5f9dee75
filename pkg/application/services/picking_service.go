package services

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/distordia/mrp/pkg/domain/entities"
	"github.com/distordia/mrp/pkg/domain/repositories"
	"github.com/distordia/mrp/pkg/domain/services"
)

// PickingService turns a product order into a pick plan by allocating
// the product's direct component requirements against warehouse lots,
// and executes confirmed plans.
//
// Picking operates one BOM level deep: sub-assemblies are picked as
// whole units, not broken into their own components. Feasibility is
// judged against lots, not the ledger; the two may legitimately diverge.
type PickingService struct {
	bom       repositories.BOMRepository
	lots      repositories.LotRepository
	ledger    repositories.LedgerRepository
	resolver  *services.Resolver
	publisher repositories.AssetPublisher
}

// NewPickingService creates a picking service over the injected stores.
func NewPickingService(bom repositories.BOMRepository, lots repositories.LotRepository, ledger repositories.LedgerRepository, resolver *services.Resolver) *PickingService {
	return &PickingService{
		bom:      bom,
		lots:     lots,
		ledger:   ledger,
		resolver: resolver,
	}
}

// WithPublisher enables picking list registration on the remote ledger
// for every confirmed plan.
func (s *PickingService) WithPublisher(publisher repositories.AssetPublisher) *PickingService {
	s.publisher = publisher
	return s
}

// ComponentRequirement is one flattened (material, quantity) demand pair.
type ComponentRequirement struct {
	MaterialKey entities.MaterialKey
	RequiredQty decimal.Decimal
}

// BuildPickPlan generates an open pick plan for orderQty units of the
// product at rootKey. Duplicate edges to the same component are
// aggregated before allocation so lots are never allocated twice.
func (s *PickingService) BuildPickPlan(rootKey entities.MaterialKey, orderQty decimal.Decimal) (*entities.PickPlan, error) {
	if !orderQty.IsPositive() {
		return nil, &entities.ValidationError{Msg: "order quantity must be positive, got " + orderQty.String()}
	}

	edges := s.bom.ChildrenOf(rootKey)
	if len(edges) == 0 {
		return nil, &entities.ValidationError{Msg: fmt.Sprintf("no BOM defined for product %s", rootKey)}
	}

	var requirements []ComponentRequirement
	index := make(map[entities.MaterialKey]int)
	for _, edge := range edges {
		required := edge.QtyPer.Mul(orderQty)
		if i, exists := index[edge.ChildKey]; exists {
			requirements[i].RequiredQty = requirements[i].RequiredQty.Add(required)
			continue
		}
		index[edge.ChildKey] = len(requirements)
		requirements = append(requirements, ComponentRequirement{
			MaterialKey: edge.ChildKey,
			RequiredQty: required,
		})
	}

	productName := string(rootKey)
	if product, err := s.resolver.Resolve(rootKey); err == nil {
		productName = product.Name
	}

	plan := &entities.PickPlan{
		ID:          "PICK-" + uuid.NewString(),
		RootKey:     rootKey,
		ProductName: productName,
		PlannedQty:  orderQty,
		Lines:       s.Allocate(requirements),
		Status:      entities.PickPlanOpen,
		CreatedAt:   time.Now(),
	}
	return plan, nil
}

// Allocate resolves each requirement against available lots. Lots are
// consumed greedily in storage order; for every line allocated plus
// shortfall equals the requirement exactly.
func (s *PickingService) Allocate(requirements []ComponentRequirement) []entities.PickLine {
	lines := make([]entities.PickLine, 0, len(requirements))
	for _, req := range requirements {
		line := entities.PickLine{
			MaterialKey: req.MaterialKey,
			RequiredQty: req.RequiredQty,
		}
		if material, err := s.resolver.Resolve(req.MaterialKey); err == nil {
			line.MaterialName = material.Name
			line.Unit = material.Unit
		} else {
			line.MaterialName = string(req.MaterialKey)
		}

		line.Picks, line.AllocatedQty = allocateAgainstLots(req.RequiredQty, s.lots.Available(req.MaterialKey))
		line.Shortfall = req.RequiredQty.Sub(line.AllocatedQty)
		lines = append(lines, line)
	}
	return lines
}

// allocateAgainstLots consumes lots in the given order until the
// requirement is met or the lots run out. It does not mutate the lots;
// only confirmation does.
func allocateAgainstLots(required decimal.Decimal, lots []*entities.Lot) ([]entities.Pick, decimal.Decimal) {
	remaining := required
	var picks []entities.Pick

	for _, lot := range lots {
		if !remaining.IsPositive() {
			break
		}
		take := decimal.Min(remaining, lot.Quantity)
		picks = append(picks, entities.Pick{
			LotID:    lot.ID,
			Location: lot.Location,
			Quantity: take,
		})
		remaining = remaining.Sub(take)
	}

	return picks, required.Sub(remaining)
}

// Confirm executes an open pick plan: every picked lot is decremented by
// its picked quantity and one ledger issue entry is appended per line
// for the full required quantity.
//
// A plan with any shortfall is rejected before anything is touched;
// neither lots nor ledger change.
func (s *PickingService) Confirm(plan *entities.PickPlan) error {
	if plan.Status != entities.PickPlanOpen {
		return &entities.ValidationError{Msg: fmt.Sprintf("pick plan %s is not open", plan.ID)}
	}

	var short []entities.MaterialKey
	for _, line := range plan.Lines {
		if line.Shortfall.IsPositive() {
			short = append(short, line.MaterialKey)
		}
	}
	if len(short) > 0 {
		return &entities.ShortfallError{PlanID: plan.ID, Short: short}
	}

	// Resolve every picked lot up front so a stale plan cannot leave the
	// stores half-mutated.
	picked := make(map[string]*entities.Lot)
	taken := make(map[string]decimal.Decimal)
	for _, line := range plan.Lines {
		for _, pick := range line.Picks {
			lot, ok := s.lots.Get(pick.LotID)
			if !ok {
				return &entities.ValidationError{Msg: fmt.Sprintf("pick plan %s references unknown lot %s", plan.ID, pick.LotID)}
			}
			if lot.Status != entities.LotAvailable {
				return &entities.ValidationError{Msg: fmt.Sprintf("lot %s is no longer available (%s)", lot.ID, lot.Status)}
			}
			picked[pick.LotID] = lot
			taken[pick.LotID] = taken[pick.LotID].Add(pick.Quantity)
			if lot.Quantity.LessThan(taken[pick.LotID]) {
				return &entities.ValidationError{Msg: fmt.Sprintf("lot %s no longer holds %s units", lot.ID, taken[pick.LotID].String())}
			}
		}
	}

	for _, line := range plan.Lines {
		for _, pick := range line.Picks {
			lot := picked[pick.LotID]
			if err := lot.SetQuantity(lot.Quantity.Sub(pick.Quantity)); err != nil {
				return err
			}
		}

		entry := &entities.LedgerEntry{
			MaterialKey: line.MaterialKey,
			Quantity:    line.RequiredQty.Neg(),
			Kind:        entities.EntryIssue,
			Reference:   "Pick " + plan.ID,
		}
		if err := s.ledger.Append(entry); err != nil {
			return fmt.Errorf("failed to record issue for %s: %w", line.MaterialKey, err)
		}
	}

	plan.Status = entities.PickPlanPicked

	if s.publisher != nil {
		name, data, err := services.EncodePickPlanAsset(plan)
		if err != nil {
			return err
		}
		if _, err := s.publisher.Publish(name, data); err != nil {
			return fmt.Errorf("failed to register picking list %s: %w", plan.ID, err)
		}
	}
	return nil
}

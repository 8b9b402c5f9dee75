package entities

import (
	"time"

	"github.com/shopspring/decimal"
)

// PickPlanStatus tracks whether a plan has been executed.
type PickPlanStatus string

const (
	PickPlanOpen   PickPlanStatus = "open"
	PickPlanPicked PickPlanStatus = "picked"
)

// Pick is one allocation of quantity against a specific lot.
type Pick struct {
	LotID    string
	Location string
	Quantity decimal.Decimal
}

// PickLine is the allocation result for one component requirement.
// AllocatedQty plus Shortfall always equals RequiredQty exactly.
type PickLine struct {
	MaterialKey  MaterialKey
	MaterialName string
	Unit         string
	RequiredQty  decimal.Decimal
	AllocatedQty decimal.Decimal
	Shortfall    decimal.Decimal
	Picks        []Pick
}

// PickPlan allocates the direct component requirements of one product
// order to specific warehouse lots.
type PickPlan struct {
	ID          string
	RootKey     MaterialKey
	ProductName string
	PlannedQty  decimal.Decimal
	Lines       []PickLine
	Status      PickPlanStatus
	CreatedAt   time.Time
}

// TotalShortfall sums the shortfall across all lines.
func (p *PickPlan) TotalShortfall() decimal.Decimal {
	total := decimal.Zero
	for _, line := range p.Lines {
		total = total.Add(line.Shortfall)
	}
	return total
}

// HasShortfall reports whether any line is short.
func (p *PickPlan) HasShortfall() bool {
	for _, line := range p.Lines {
		if line.Shortfall.IsPositive() {
			return true
		}
	}
	return false
}

package entities

import "github.com/shopspring/decimal"

// RequirementLine is one flattened net requirement produced by BOM
// explosion. Nested marks materials that entered the plan through a
// lower-level BOM rather than a direct edge of the planned product.
type RequirementLine struct {
	MaterialKey  MaterialKey
	MaterialName string
	Unit         string
	RequiredQty  decimal.Decimal
	AvailableQty decimal.Decimal
	Shortfall    decimal.Decimal
	UnitCost     decimal.Decimal
	TotalCost    decimal.Decimal
	Nested       bool
}

// Recalculate refreshes the derived fields after RequiredQty changes.
// Shortfall is clamped at zero and the total cost follows the required
// quantity.
func (r *RequirementLine) Recalculate() {
	shortfall := r.RequiredQty.Sub(r.AvailableQty)
	if shortfall.IsNegative() {
		shortfall = decimal.Zero
	}
	r.Shortfall = shortfall
	r.TotalCost = r.RequiredQty.Mul(r.UnitCost)
}

// PlanSummary aggregates a requirement list.
type PlanSummary struct {
	MaterialCount  int
	TotalCost      decimal.Decimal
	ShortfallCount int
}

// ProcurementCost is the estimated cost of purchasing every shortfall in
// the list: sum over short lines of shortfall times unit cost.
func ProcurementCost(lines []RequirementLine) decimal.Decimal {
	total := decimal.Zero
	for _, line := range lines {
		if line.Shortfall.IsPositive() {
			total = total.Add(line.Shortfall.Mul(line.UnitCost))
		}
	}
	return total
}

package entities

import (
	"testing"

	"github.com/shopspring/decimal"
)

func TestRequirementLine_Recalculate(t *testing.T) {
	tests := []struct {
		name          string
		required      decimal.Decimal
		available     decimal.Decimal
		unitCost      decimal.Decimal
		wantShortfall decimal.Decimal
		wantTotalCost decimal.Decimal
	}{
		{
			name:          "shortage",
			required:      decimal.NewFromInt(10),
			available:     decimal.NewFromInt(4),
			unitCost:      decimal.NewFromInt(3),
			wantShortfall: decimal.NewFromInt(6),
			wantTotalCost: decimal.NewFromInt(30),
		},
		{
			name:          "surplus_clamps_to_zero",
			required:      decimal.NewFromInt(10),
			available:     decimal.NewFromInt(25),
			unitCost:      decimal.NewFromInt(3),
			wantShortfall: decimal.Zero,
			wantTotalCost: decimal.NewFromInt(30),
		},
		{
			name:          "exact_match",
			required:      decimal.NewFromInt(10),
			available:     decimal.NewFromInt(10),
			unitCost:      decimal.NewFromFloat(1.5),
			wantShortfall: decimal.Zero,
			wantTotalCost: decimal.NewFromInt(15),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			line := RequirementLine{
				MaterialKey:  "m1",
				RequiredQty:  tt.required,
				AvailableQty: tt.available,
				UnitCost:     tt.unitCost,
			}
			line.Recalculate()

			if !line.Shortfall.Equal(tt.wantShortfall) {
				t.Errorf("Expected shortfall %s, got %s", tt.wantShortfall, line.Shortfall)
			}
			if !line.TotalCost.Equal(tt.wantTotalCost) {
				t.Errorf("Expected total cost %s, got %s", tt.wantTotalCost, line.TotalCost)
			}
		})
	}
}

func TestProcurementCost(t *testing.T) {
	lines := []RequirementLine{
		{MaterialKey: "m1", Shortfall: decimal.NewFromInt(6), UnitCost: decimal.NewFromInt(3)},
		{MaterialKey: "m2", Shortfall: decimal.Zero, UnitCost: decimal.NewFromInt(100)},
		{MaterialKey: "m3", Shortfall: decimal.NewFromInt(2), UnitCost: decimal.NewFromFloat(0.5)},
	}

	cost := ProcurementCost(lines)
	if !cost.Equal(decimal.NewFromInt(19)) {
		t.Errorf("Expected procurement cost 19, got %s", cost)
	}
}

package output

import (
	"io"
	"os"
	"strings"
	"testing"

	"github.com/shopspring/decimal"

	"github.com/distordia/mrp/pkg/application/dto"
	"github.com/distordia/mrp/pkg/domain/entities"
)

// captureStdout runs fn with os.Stdout redirected and returns what it
// printed.
func captureStdout(t *testing.T, fn func() error) string {
	t.Helper()

	r, w, err := os.Pipe()
	if err != nil {
		t.Fatalf("Failed to create pipe: %v", err)
	}
	orig := os.Stdout
	os.Stdout = w
	defer func() { os.Stdout = orig }()

	if err := fn(); err != nil {
		t.Fatalf("Failed to render: %v", err)
	}
	w.Close()

	data, err := io.ReadAll(r)
	if err != nil {
		t.Fatalf("Failed to read captured output: %v", err)
	}
	return string(data)
}

func TestGeneratePlan_TextReportsProcurementCost(t *testing.T) {
	short := entities.RequirementLine{
		MaterialKey:  "driver",
		MaterialName: "Speaker Driver",
		Unit:         "pcs",
		RequiredQty:  decimal.NewFromInt(8),
		AvailableQty: decimal.NewFromInt(3),
		UnitCost:     decimal.NewFromInt(12),
	}
	short.Recalculate()
	covered := entities.RequirementLine{
		MaterialKey:  "housing",
		MaterialName: "Housing",
		Unit:         "pcs",
		RequiredQty:  decimal.NewFromInt(4),
		AvailableQty: decimal.NewFromInt(10),
		UnitCost:     decimal.NewFromInt(7),
	}
	covered.Recalculate()

	result := &dto.PlanResult{
		RootKey:     "speaker",
		ProductName: "Smart Speaker",
		PlannedQty:  decimal.NewFromInt(4),
		Lines:       []entities.RequirementLine{short, covered},
	}
	result.Summary = entities.PlanSummary{
		MaterialCount:  2,
		TotalCost:      short.TotalCost.Add(covered.TotalCost),
		ShortfallCount: 1,
	}

	out := captureStdout(t, func() error {
		return GeneratePlan(result, Config{Format: "text"})
	})

	// Only the short line contributes: 5 x 12
	if !strings.Contains(out, "Procurement cost: 60.00") {
		t.Errorf("Expected procurement cost 60.00 in output, got:\n%s", out)
	}
	if !strings.Contains(out, "Speaker Driver") {
		t.Errorf("Expected short material listed, got:\n%s", out)
	}
}

func TestGeneratePlan_TextSkipsProcurementWhenCovered(t *testing.T) {
	covered := entities.RequirementLine{
		MaterialKey:  "housing",
		MaterialName: "Housing",
		Unit:         "pcs",
		RequiredQty:  decimal.NewFromInt(4),
		AvailableQty: decimal.NewFromInt(10),
		UnitCost:     decimal.NewFromInt(7),
	}
	covered.Recalculate()

	result := &dto.PlanResult{
		RootKey:     "speaker",
		ProductName: "Smart Speaker",
		PlannedQty:  decimal.NewFromInt(4),
		Lines:       []entities.RequirementLine{covered},
		Summary: entities.PlanSummary{
			MaterialCount: 1,
			TotalCost:     covered.TotalCost,
		},
	}

	out := captureStdout(t, func() error {
		return GeneratePlan(result, Config{Format: "text"})
	})

	if strings.Contains(out, "Procurement") {
		t.Errorf("Expected no procurement section for a covered plan, got:\n%s", out)
	}
}

func TestGeneratePlan_UnsupportedFormat(t *testing.T) {
	result := &dto.PlanResult{ProductName: "Smart Speaker", PlannedQty: decimal.NewFromInt(1)}
	if err := GeneratePlan(result, Config{Format: "yaml"}); err == nil {
		t.Error("Expected error for unsupported format")
	}
}

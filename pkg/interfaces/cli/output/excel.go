package output

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/xuri/excelize/v2"

	"github.com/distordia/mrp/pkg/application/dto"
	"github.com/distordia/mrp/pkg/domain/entities"
)

// PlanWorkbook builds an XLSX workbook holding the requirement lines and
// a summary block. The caller owns closing the file.
func PlanWorkbook(result *dto.PlanResult) *excelize.File {
	f := excelize.NewFile()
	sheet := "Sheet1"

	f.SetCellValue(sheet, "A1", "Material")
	f.SetCellValue(sheet, "B1", "Name")
	f.SetCellValue(sheet, "C1", "Unit")
	f.SetCellValue(sheet, "D1", "Required")
	f.SetCellValue(sheet, "E1", "Available")
	f.SetCellValue(sheet, "F1", "Shortfall")
	f.SetCellValue(sheet, "G1", "Unit Cost")
	f.SetCellValue(sheet, "H1", "Total Cost")
	f.SetCellValue(sheet, "I1", "Nested")

	for i, line := range result.Lines {
		row := i + 2
		f.SetCellValue(sheet, fmt.Sprintf("A%d", row), string(line.MaterialKey))
		f.SetCellValue(sheet, fmt.Sprintf("B%d", row), line.MaterialName)
		f.SetCellValue(sheet, fmt.Sprintf("C%d", row), line.Unit)
		f.SetCellValue(sheet, fmt.Sprintf("D%d", row), line.RequiredQty.InexactFloat64())
		f.SetCellValue(sheet, fmt.Sprintf("E%d", row), line.AvailableQty.InexactFloat64())
		f.SetCellValue(sheet, fmt.Sprintf("F%d", row), line.Shortfall.InexactFloat64())
		f.SetCellValue(sheet, fmt.Sprintf("G%d", row), line.UnitCost.InexactFloat64())
		f.SetCellValue(sheet, fmt.Sprintf("H%d", row), line.TotalCost.InexactFloat64())
		f.SetCellValue(sheet, fmt.Sprintf("I%d", row), line.Nested)
	}

	base := len(result.Lines) + 3
	f.SetCellValue(sheet, fmt.Sprintf("A%d", base), "Product")
	f.SetCellValue(sheet, fmt.Sprintf("B%d", base), result.ProductName)
	f.SetCellValue(sheet, fmt.Sprintf("A%d", base+1), "Planned Qty")
	f.SetCellValue(sheet, fmt.Sprintf("B%d", base+1), result.PlannedQty.InexactFloat64())
	f.SetCellValue(sheet, fmt.Sprintf("A%d", base+2), "Total Cost")
	f.SetCellValue(sheet, fmt.Sprintf("B%d", base+2), result.Summary.TotalCost.InexactFloat64())
	f.SetCellValue(sheet, fmt.Sprintf("A%d", base+3), "Shortfalls")
	f.SetCellValue(sheet, fmt.Sprintf("B%d", base+3), result.Summary.ShortfallCount)

	return f
}

// PickPlanWorkbook builds an XLSX workbook with one row per lot pick.
func PickPlanWorkbook(plan *entities.PickPlan) *excelize.File {
	f := excelize.NewFile()
	sheet := "Sheet1"

	f.SetCellValue(sheet, "A1", "Material")
	f.SetCellValue(sheet, "B1", "Name")
	f.SetCellValue(sheet, "C1", "Unit")
	f.SetCellValue(sheet, "D1", "Required")
	f.SetCellValue(sheet, "E1", "Allocated")
	f.SetCellValue(sheet, "F1", "Shortfall")
	f.SetCellValue(sheet, "G1", "Lot")
	f.SetCellValue(sheet, "H1", "Location")
	f.SetCellValue(sheet, "I1", "Pick Qty")

	row := 2
	for _, line := range plan.Lines {
		writeLine := func(pick *entities.Pick) {
			f.SetCellValue(sheet, fmt.Sprintf("A%d", row), string(line.MaterialKey))
			f.SetCellValue(sheet, fmt.Sprintf("B%d", row), line.MaterialName)
			f.SetCellValue(sheet, fmt.Sprintf("C%d", row), line.Unit)
			f.SetCellValue(sheet, fmt.Sprintf("D%d", row), line.RequiredQty.InexactFloat64())
			f.SetCellValue(sheet, fmt.Sprintf("E%d", row), line.AllocatedQty.InexactFloat64())
			f.SetCellValue(sheet, fmt.Sprintf("F%d", row), line.Shortfall.InexactFloat64())
			if pick != nil {
				f.SetCellValue(sheet, fmt.Sprintf("G%d", row), pick.LotID)
				f.SetCellValue(sheet, fmt.Sprintf("H%d", row), pick.Location)
				f.SetCellValue(sheet, fmt.Sprintf("I%d", row), pick.Quantity.InexactFloat64())
			}
			row++
		}

		if len(line.Picks) == 0 {
			writeLine(nil)
			continue
		}
		for i := range line.Picks {
			writeLine(&line.Picks[i])
		}
	}

	base := row + 1
	f.SetCellValue(sheet, fmt.Sprintf("A%d", base), "Plan")
	f.SetCellValue(sheet, fmt.Sprintf("B%d", base), plan.ID)
	f.SetCellValue(sheet, fmt.Sprintf("A%d", base+1), "Product")
	f.SetCellValue(sheet, fmt.Sprintf("B%d", base+1), plan.ProductName)
	f.SetCellValue(sheet, fmt.Sprintf("A%d", base+2), "Status")
	f.SetCellValue(sheet, fmt.Sprintf("B%d", base+2), string(plan.Status))

	return f
}

func generatePlanExcel(result *dto.PlanResult, config Config) error {
	f := PlanWorkbook(result)
	defer f.Close()
	return saveWorkbook(f, "plan_requirements.xlsx", config)
}

func generatePickExcel(plan *entities.PickPlan, config Config) error {
	f := PickPlanWorkbook(plan)
	defer f.Close()
	return saveWorkbook(f, "pick_plan.xlsx", config)
}

func saveWorkbook(f *excelize.File, filename string, config Config) error {
	dir := config.OutputDir
	if dir == "" {
		dir = "."
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	path := filepath.Join(dir, filename)
	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("failed to write workbook: %w", err)
	}
	if config.Verbose {
		fmt.Printf("💾 Workbook saved to: %s\n", path)
	}
	return nil
}

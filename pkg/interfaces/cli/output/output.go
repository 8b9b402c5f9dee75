package output

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/distordia/mrp/pkg/application/dto"
	"github.com/distordia/mrp/pkg/domain/entities"
)

// Config holds output generation configuration
type Config struct {
	Format    string // "text", "json", "xlsx"
	OutputDir string
	Verbose   bool
}

// GeneratePlan renders a net requirements plan in the configured format
func GeneratePlan(result *dto.PlanResult, config Config) error {
	switch config.Format {
	case "text":
		return generatePlanText(result, config)
	case "json":
		return generateJSON(result, "plan_requirements.json", config)
	case "xlsx":
		return generatePlanExcel(result, config)
	default:
		return fmt.Errorf("unsupported output format: %s", config.Format)
	}
}

// GeneratePickPlan renders a pick plan in the configured format
func GeneratePickPlan(plan *entities.PickPlan, config Config) error {
	switch config.Format {
	case "text":
		return generatePickText(plan, config)
	case "json":
		return generateJSON(plan, "pick_plan.json", config)
	case "xlsx":
		return generatePickExcel(plan, config)
	default:
		return fmt.Errorf("unsupported output format: %s", config.Format)
	}
}

func generatePlanText(result *dto.PlanResult, config Config) error {
	fmt.Printf("📊 Net Requirements: %s x %s\n", result.ProductName, result.PlannedQty.String())
	fmt.Printf("Materials: %d\n", result.Summary.MaterialCount)
	fmt.Printf("Shortfalls: %d\n", result.Summary.ShortfallCount)
	fmt.Printf("Total Cost: %s\n", result.Summary.TotalCost.StringFixed(2))
	fmt.Println()

	if len(result.Lines) > 0 {
		fmt.Printf("%-20s %-25s %-6s %-12s %-12s %-12s %-12s\n",
			"Material", "Name", "Unit", "Required", "Available", "Shortfall", "Total Cost")
		fmt.Printf("%-20s %-25s %-6s %-12s %-12s %-12s %-12s\n",
			"--------------------", "-------------------------", "------",
			"------------", "------------", "------------", "------------")

		for _, line := range result.Lines {
			name := line.MaterialName
			if line.Nested {
				name = "↳ " + name
			}
			fmt.Printf("%-20s %-25s %-6s %-12s %-12s %-12s %-12s\n",
				line.MaterialKey,
				name,
				line.Unit,
				line.RequiredQty.String(),
				line.AvailableQty.String(),
				line.Shortfall.String(),
				line.TotalCost.StringFixed(2))
		}
		fmt.Println()
	}

	shortages := shortfallLines(result.Lines)
	if len(shortages) > 0 {
		fmt.Printf("⚠️  Procurement needed:\n")
		for _, line := range shortages {
			fmt.Printf("  %s: %s %s short (%s at unit cost)\n",
				line.MaterialName,
				line.Shortfall.String(),
				line.Unit,
				line.Shortfall.Mul(line.UnitCost).StringFixed(2))
		}
		fmt.Printf("  Procurement cost: %s\n", entities.ProcurementCost(result.Lines).StringFixed(2))
		fmt.Println()
	}

	if config.Verbose && len(result.Dropped) > 0 {
		fmt.Printf("ℹ️  Excluded catalog references:\n")
		for _, dropped := range result.Dropped {
			fmt.Printf("  %s\n", dropped)
		}
		fmt.Println()
	}

	return nil
}

func shortfallLines(lines []entities.RequirementLine) []entities.RequirementLine {
	var short []entities.RequirementLine
	for _, line := range lines {
		if line.Shortfall.IsPositive() {
			short = append(short, line)
		}
	}
	return short
}

func generatePickText(plan *entities.PickPlan, config Config) error {
	fmt.Printf("📦 Pick Plan %s\n", plan.ID)
	fmt.Printf("Product: %s x %s\n", plan.ProductName, plan.PlannedQty.String())
	fmt.Printf("Status: %s\n", plan.Status)
	fmt.Println()

	for _, line := range plan.Lines {
		fmt.Printf("%-20s %-25s required %s %s, allocated %s",
			line.MaterialKey,
			line.MaterialName,
			line.RequiredQty.String(),
			line.Unit,
			line.AllocatedQty.String())
		if line.Shortfall.IsPositive() {
			fmt.Printf(" (short %s)", line.Shortfall.String())
		}
		fmt.Println()

		for _, pick := range line.Picks {
			fmt.Printf("    %-12s %-10s %s\n", pick.LotID, pick.Location, pick.Quantity.String())
		}
	}
	fmt.Println()

	if plan.HasShortfall() {
		fmt.Printf("⚠️  Plan is short %s units in total and cannot be confirmed\n", plan.TotalShortfall().String())
	} else if config.Verbose {
		fmt.Printf("✅ Fully allocated\n")
	}

	return nil
}

func generateJSON(result interface{}, filename string, config Config) error {
	jsonData, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal JSON: %w", err)
	}

	if config.OutputDir == "" {
		fmt.Println(string(jsonData))
		return nil
	}

	if err := os.MkdirAll(config.OutputDir, 0755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}
	path := filepath.Join(config.OutputDir, filename)
	if err := os.WriteFile(path, jsonData, 0644); err != nil {
		return fmt.Errorf("failed to write JSON file: %w", err)
	}

	if config.Verbose {
		fmt.Printf("💾 JSON results saved to: %s\n", path)
	}
	return nil
}

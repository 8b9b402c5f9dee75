package commands

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/distordia/mrp/pkg/application/dto"
	appservices "github.com/distordia/mrp/pkg/application/services"
	"github.com/distordia/mrp/pkg/domain/entities"
	"github.com/distordia/mrp/pkg/domain/services"
	"github.com/distordia/mrp/pkg/infrastructure/repositories/csv"
	"github.com/distordia/mrp/pkg/infrastructure/repositories/memory"
	"github.com/distordia/mrp/pkg/interfaces/cli/output"
)

// Config holds the CLI configuration
type Config struct {
	ScenarioDir  string
	Mode         string // "plan" or "pick"
	Product      string
	Quantity     string
	Confirm      bool
	OutputFormat string
	OutputDir    string
	Verbose      bool
	Help         bool
}

// MRPCommand handles the main CLI workflow
type MRPCommand struct {
	config Config
}

// NewMRPCommand creates a new CLI command handler
func NewMRPCommand(config Config) *MRPCommand {
	return &MRPCommand{config: config}
}

// Execute runs the planning or picking workflow
func (c *MRPCommand) Execute(ctx context.Context) error {
	if c.config.Help {
		c.printUsage()
		return nil
	}

	qty, err := c.validateConfig()
	if err != nil {
		c.printUsage()
		return err
	}

	if c.config.Verbose {
		fmt.Printf("📂 Loading scenario from %s...\n", c.config.ScenarioDir)
	}

	loader := csv.NewLoader()
	scenario, err := loader.LoadScenario(c.config.ScenarioDir)
	if err != nil {
		return fmt.Errorf("failed to load scenario: %w", err)
	}

	s, err := buildStores(scenario)
	if err != nil {
		return err
	}

	if c.config.Verbose {
		fmt.Printf("📂 Loaded %d assets, %d local materials, %d BOM edges, %d lots\n",
			len(scenario.Assets), len(scenario.LocalMaterials), len(scenario.Edges), len(scenario.Lots))
	}

	validation := services.NewGraphValidator().Validate(s.bom.AllEdges())
	if validation.HasCycles {
		for _, cycle := range validation.CyclePaths {
			fmt.Fprintf(os.Stderr, "cycle: %s\n", joinPath(cycle))
		}
		return errors.New("BOM contains cycles, refusing to plan")
	}

	outputConfig := output.Config{
		Format:    c.config.OutputFormat,
		OutputDir: c.config.OutputDir,
		Verbose:   c.config.Verbose,
	}
	rootKey := entities.MaterialKey(c.config.Product)

	switch c.config.Mode {
	case "plan":
		return c.runPlan(s, rootKey, qty, scenario.Library, outputConfig)
	case "pick":
		return c.runPick(s, rootKey, qty, outputConfig)
	default:
		return fmt.Errorf("unknown mode: %s (use plan or pick)", c.config.Mode)
	}
}

func (c *MRPCommand) validateConfig() (decimal.Decimal, error) {
	if c.config.ScenarioDir == "" {
		return decimal.Zero, errors.New("scenario directory is required")
	}
	if c.config.Product == "" {
		return decimal.Zero, errors.New("product is required")
	}
	qty, err := decimal.NewFromString(c.config.Quantity)
	if err != nil {
		return decimal.Zero, fmt.Errorf("invalid quantity %q: %w", c.config.Quantity, err)
	}
	if !qty.IsPositive() {
		return decimal.Zero, fmt.Errorf("quantity must be positive, got %s", qty.String())
	}
	switch c.config.OutputFormat {
	case "text", "json", "xlsx":
	default:
		return decimal.Zero, fmt.Errorf("unsupported output format: %s", c.config.OutputFormat)
	}
	return qty, nil
}

// stores bundles the in-memory repositories for one run.
type stores struct {
	remote   *memory.RemoteCatalog
	local    *memory.LocalCatalog
	ledger   *memory.LedgerRepository
	lots     *memory.LotRepository
	bom      *memory.BOMRepository
	resolver *services.Resolver
}

func buildStores(scenario *csv.Scenario) (*stores, error) {
	s := &stores{
		remote: memory.NewRemoteCatalog(),
		local:  memory.NewLocalCatalog(),
		ledger: memory.NewLedgerRepository(),
		lots:   memory.NewLotRepository(),
		bom:    memory.NewBOMRepository(),
	}

	s.remote.LoadAssets(scenario.Assets)
	if err := s.local.LoadMaterials(scenario.LocalMaterials); err != nil {
		return nil, fmt.Errorf("failed to load local materials: %w", err)
	}
	if err := s.bom.LoadEdges(scenario.Edges); err != nil {
		return nil, fmt.Errorf("failed to load BOM: %w", err)
	}
	if err := s.lots.LoadLots(scenario.Lots); err != nil {
		return nil, fmt.Errorf("failed to load lots: %w", err)
	}
	for _, entry := range scenario.Entries {
		if err := s.ledger.Append(entry); err != nil {
			return nil, fmt.Errorf("failed to load ledger: %w", err)
		}
	}

	s.resolver = services.NewResolver(s.remote, s.local)
	return s, nil
}

func (c *MRPCommand) runPlan(s *stores, rootKey entities.MaterialKey, qty decimal.Decimal, library []entities.LibraryRef, outputConfig output.Config) error {
	planning := appservices.NewPlanningService(s.bom, s.ledger, s.resolver)

	if c.config.Verbose {
		fmt.Printf("🔄 Exploding requirements for %s x %s...\n", rootKey, qty.String())
	}

	lines, err := planning.Explode(rootKey, qty)
	if err != nil {
		return err
	}

	productName := string(rootKey)
	if product, resolveErr := s.resolver.Resolve(rootKey); resolveErr == nil {
		productName = product.Name
	}

	_, dropped := s.resolver.MaterialSet(library)
	result := &dto.PlanResult{
		RootKey:     rootKey,
		ProductName: productName,
		PlannedQty:  qty,
		Lines:       lines,
		Summary:     planning.Summarize(lines),
		Dropped:     dropped,
	}
	return output.GeneratePlan(result, outputConfig)
}

func (c *MRPCommand) runPick(s *stores, rootKey entities.MaterialKey, qty decimal.Decimal, outputConfig output.Config) error {
	picking := appservices.NewPickingService(s.bom, s.lots, s.ledger, s.resolver).WithPublisher(s.remote)

	plan, err := picking.BuildPickPlan(rootKey, qty)
	if err != nil {
		return err
	}

	if c.config.Confirm {
		if err := picking.Confirm(plan); err != nil {
			var shortfall *entities.ShortfallError
			if errors.As(err, &shortfall) {
				if renderErr := output.GeneratePickPlan(plan, outputConfig); renderErr != nil {
					return renderErr
				}
			}
			return err
		}
		if c.config.Verbose {
			fmt.Printf("✅ Pick plan %s confirmed\n", plan.ID)
		}
	}

	return output.GeneratePickPlan(plan, outputConfig)
}

func joinPath(path []entities.MaterialKey) string {
	parts := make([]string, len(path))
	for i, key := range path {
		parts[i] = string(key)
	}
	return strings.Join(parts, " -> ")
}

func (c *MRPCommand) printUsage() {
	fmt.Println("MRP - material planning and warehouse picking")
	fmt.Println()
	fmt.Println("Usage:")
	fmt.Println("  mrp -scenario <dir> -product <key> -qty <n> [options]")
	fmt.Println()
	fmt.Println("Options:")
	fmt.Println("  -scenario string   Directory holding the scenario CSV files")
	fmt.Println("  -product string    Material key of the product to plan")
	fmt.Println("  -qty string        Quantity to plan or pick (default \"1\")")
	fmt.Println("  -mode string       \"plan\" for net requirements, \"pick\" for lot allocation (default \"plan\")")
	fmt.Println("  -confirm           Confirm the pick plan, deducting lots and booking issues")
	fmt.Println("  -format string     Output format: text, json, xlsx (default \"text\")")
	fmt.Println("  -output string     Directory for file output (stdout when empty)")
	fmt.Println("  -verbose           Verbose progress output")
	fmt.Println("  -help              Show this help")
	fmt.Println()
	fmt.Println("Scenario files: materials.csv, assets.csv, library.csv, bom.csv, lots.csv, ledger.csv")
	fmt.Println("Missing files load as empty datasets.")
}

package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/joho/godotenv"

	"github.com/distordia/mrp/pkg/interfaces/cli/commands"
)

func main() {
	// Optional .env file provides defaults for the flags below.
	_ = godotenv.Load()

	var (
		scenarioDir = flag.String(
			"scenario",
			envOr("MRP_SCENARIO_DIR", ""),
			"Path to scenario directory containing CSV files",
		)
		product = flag.String("product", "", "Material key of the product to plan")
		qty     = flag.String("qty", "1", "Quantity to plan or pick")
		mode    = flag.String("mode", "plan", "Run mode: plan, pick")
		confirm = flag.Bool("confirm", false, "Confirm the pick plan (pick mode only)")
		format  = flag.String("format", envOr("MRP_FORMAT", "text"), "Output format: text, json, xlsx")
		outDir  = flag.String("output", envOr("MRP_OUTPUT_DIR", ""), "Output directory for results (optional)")
		verbose = flag.Bool("verbose", false, "Enable verbose output")
		help    = flag.Bool("help", false, "Show help message")
	)

	flag.Parse()

	config := commands.Config{
		ScenarioDir:  *scenarioDir,
		Mode:         *mode,
		Product:      *product,
		Quantity:     *qty,
		Confirm:      *confirm,
		OutputFormat: *format,
		OutputDir:    *outDir,
		Verbose:      *verbose,
		Help:         *help,
	}

	cmd := commands.NewMRPCommand(config)
	ctx := context.Background()

	if err := cmd.Execute(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func envOr(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

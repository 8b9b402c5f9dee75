package csv

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/go-playground/validator"
	"github.com/shopspring/decimal"

	"github.com/distordia/mrp/pkg/domain/entities"
	"github.com/distordia/mrp/pkg/domain/services"
)

// Scenario holds everything a planning or picking run needs, loaded from
// a directory of CSV files. Files that are absent load as empty.
type Scenario struct {
	LocalMaterials []*entities.LocalMaterial
	Assets         []entities.ChainAsset
	Library        []entities.LibraryRef
	Edges          []*entities.BOMEdge
	Lots           []*entities.Lot
	Entries        []*entities.LedgerEntry
}

// Loader reads scenario data from CSV files.
type Loader struct {
	validate *validator.Validate
}

// NewLoader creates a new CSV loader.
func NewLoader() *Loader {
	return &Loader{
		validate: validator.New(),
	}
}

// LoadScenario loads every scenario file found in dir: materials.csv,
// assets.csv, library.csv, bom.csv, lots.csv and ledger.csv.
func (l *Loader) LoadScenario(dir string) (*Scenario, error) {
	scenario := &Scenario{}
	var err error

	if scenario.LocalMaterials, err = l.LoadLocalMaterials(filepath.Join(dir, "materials.csv")); err != nil {
		return nil, err
	}
	if scenario.Assets, err = l.LoadAssets(filepath.Join(dir, "assets.csv")); err != nil {
		return nil, err
	}
	if scenario.Library, err = l.LoadLibrary(filepath.Join(dir, "library.csv")); err != nil {
		return nil, err
	}
	if scenario.Edges, err = l.LoadBOM(filepath.Join(dir, "bom.csv")); err != nil {
		return nil, err
	}
	if scenario.Lots, err = l.LoadLots(filepath.Join(dir, "lots.csv")); err != nil {
		return nil, err
	}
	if scenario.Entries, err = l.LoadLedger(filepath.Join(dir, "ledger.csv")); err != nil {
		return nil, err
	}

	return scenario, nil
}

// LoadLocalMaterials loads offline catalog rows from a CSV file.
func (l *Loader) LoadLocalMaterials(filename string) ([]*entities.LocalMaterial, error) {
	records, err := readRows(filename, []string{"id", "name", "description", "unit", "cost", "category"})
	if err != nil || records == nil {
		return nil, err
	}

	var materials []*entities.LocalMaterial
	for i, record := range records {
		cost, err := decimal.NewFromString(record[4])
		if err != nil {
			return nil, fmt.Errorf("materials CSV row %d: invalid cost %q: %w", i+2, record[4], err)
		}
		material := &entities.LocalMaterial{
			ID:          record[0],
			Name:        record[1],
			Description: record[2],
			Unit:        record[3],
			Cost:        cost,
			Category:    entities.Category(record[5]),
		}
		if err := l.validate.Struct(material); err != nil {
			return nil, fmt.Errorf("materials CSV row %d: %w", i+2, err)
		}
		materials = append(materials, material)
	}
	return materials, nil
}

// LoadAssets loads remote catalog rows and encodes them into ledger
// asset records, the same shape a chain sync would produce.
func (l *Loader) LoadAssets(filename string) ([]entities.ChainAsset, error) {
	records, err := readRows(filename, []string{"address", "name", "unit", "cost", "category", "status"})
	if err != nil || records == nil {
		return nil, err
	}

	var assets []entities.ChainAsset
	for i, record := range records {
		cost, err := decimal.NewFromString(record[3])
		if err != nil {
			return nil, fmt.Errorf("assets CSV row %d: invalid cost %q: %w", i+2, record[3], err)
		}
		status, err := parseLifecycle(record[5])
		if err != nil {
			return nil, fmt.Errorf("assets CSV row %d: %w", i+2, err)
		}

		material := &entities.Material{
			Key:      entities.MaterialKey(record[0]),
			Name:     record[1],
			Unit:     record[2],
			UnitCost: cost,
			Category: entities.Category(record[4]),
		}
		name, data, err := services.EncodeMaterialAsset(material, status)
		if err != nil {
			return nil, fmt.Errorf("assets CSV row %d: %w", i+2, err)
		}
		assets = append(assets, entities.ChainAsset{
			Address: record[0],
			Name:    name,
			Data:    string(data),
		})
	}
	return assets, nil
}

// LoadLibrary loads curated component library references.
func (l *Loader) LoadLibrary(filename string) ([]entities.LibraryRef, error) {
	records, err := readRows(filename, []string{"address"})
	if err != nil || records == nil {
		return nil, err
	}

	var library []entities.LibraryRef
	for _, record := range records {
		library = append(library, entities.LibraryRef{
			Address: record[0],
			AddedAt: time.Now(),
		})
	}
	return library, nil
}

// LoadBOM loads BOM edges from a CSV file.
func (l *Loader) LoadBOM(filename string) ([]*entities.BOMEdge, error) {
	records, err := readRows(filename, []string{"parent_key", "child_key", "qty_per"})
	if err != nil || records == nil {
		return nil, err
	}

	var edges []*entities.BOMEdge
	for i, record := range records {
		qty, err := decimal.NewFromString(record[2])
		if err != nil {
			return nil, fmt.Errorf("BOM CSV row %d: invalid quantity %q: %w", i+2, record[2], err)
		}
		edge, err := entities.NewBOMEdge(entities.MaterialKey(record[0]), entities.MaterialKey(record[1]), qty)
		if err != nil {
			return nil, fmt.Errorf("BOM CSV row %d: %w", i+2, err)
		}
		edges = append(edges, edge)
	}
	return edges, nil
}

// LoadLots loads warehouse lots from a CSV file.
func (l *Loader) LoadLots(filename string) ([]*entities.Lot, error) {
	records, err := readRows(filename, []string{"lot_id", "material_key", "quantity", "location", "status", "reference"})
	if err != nil || records == nil {
		return nil, err
	}

	var lots []*entities.Lot
	for i, record := range records {
		qty, err := decimal.NewFromString(record[2])
		if err != nil {
			return nil, fmt.Errorf("lots CSV row %d: invalid quantity %q: %w", i+2, record[2], err)
		}
		lot, err := entities.NewLot(record[0], entities.MaterialKey(record[1]), qty, record[3])
		if err != nil {
			return nil, fmt.Errorf("lots CSV row %d: %w", i+2, err)
		}
		if record[4] != "" {
			lot.Status = entities.LotStatus(record[4])
		}
		if lot.Quantity.IsZero() {
			lot.Status = entities.LotEmpty
		}
		lot.Reference = record[5]
		lots = append(lots, lot)
	}
	return lots, nil
}

// LoadLedger loads opening inventory transactions from a CSV file.
func (l *Loader) LoadLedger(filename string) ([]*entities.LedgerEntry, error) {
	records, err := readRows(filename, []string{"material_key", "quantity", "kind", "reference"})
	if err != nil || records == nil {
		return nil, err
	}

	var entries []*entities.LedgerEntry
	for i, record := range records {
		qty, err := decimal.NewFromString(record[1])
		if err != nil {
			return nil, fmt.Errorf("ledger CSV row %d: invalid quantity %q: %w", i+2, record[1], err)
		}
		kind := entities.EntryKind(record[2])
		switch kind {
		case entities.EntryReceipt, entities.EntryIssue, entities.EntryAdjustment:
		default:
			return nil, fmt.Errorf("ledger CSV row %d: unknown entry kind %q", i+2, record[2])
		}
		entries = append(entries, &entities.LedgerEntry{
			MaterialKey: entities.MaterialKey(record[0]),
			Quantity:    qty,
			Kind:        kind,
			Reference:   record[3],
		})
	}
	return entries, nil
}

func parseLifecycle(value string) (entities.LifecycleStatus, error) {
	switch value {
	case "", "1", "active":
		return entities.StatusActive, nil
	case "2", "sold-out":
		return entities.StatusSoldOut, nil
	case "3", "planned":
		return entities.StatusPlanned, nil
	case "4", "discontinued":
		return entities.StatusDiscontinued, nil
	case "5", "pending-approval":
		return entities.StatusPendingApproval, nil
	default:
		return 0, fmt.Errorf("unknown lifecycle status %q", value)
	}
}

// readRows reads a CSV file, validates the header and returns the data
// rows. A missing file returns nil rows without an error.
func readRows(filename string, expectedHeader []string) ([][]string, error) {
	file, err := os.Open(filename)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to open %s: %w", filename, err)
	}
	defer file.Close()

	reader := csv.NewReader(file)
	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", filename, err)
	}
	if len(records) == 0 {
		return nil, nil
	}

	header := records[0]
	if len(header) != len(expectedHeader) {
		return nil, fmt.Errorf("%s: header mismatch, expected %v, got %v", filename, expectedHeader, header)
	}
	for i := range header {
		if header[i] != expectedHeader[i] {
			return nil, fmt.Errorf("%s: header mismatch, expected %v, got %v", filename, expectedHeader, header)
		}
	}

	for i, record := range records[1:] {
		if len(record) != len(expectedHeader) {
			return nil, fmt.Errorf("%s row %d: expected %d columns, got %d", filename, i+2, len(expectedHeader), len(record))
		}
	}

	return records[1:], nil
}

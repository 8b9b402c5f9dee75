package services

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/distordia/mrp/pkg/domain/entities"
)

// Asset type discriminators carried in every ledger payload.
const (
	AssetTypeMaterial = "material_master_data"
	AssetTypePallet   = "warehouse_pallet"
	AssetTypeInvoice  = "sales_invoice"
	AssetTypePickList = "picking_list"
)

const payloadVersion = "1.0"

// materialPayload is the on-ledger attribute payload of a masterdata
// asset. Field names match the published wire format.
type materialPayload struct {
	Lifecycle    int             `json:"distordia"`
	AssetType    string          `json:"assetType"`
	MaterialID   string          `json:"materialId,omitempty"`
	MaterialName string          `json:"materialName"`
	Description  string          `json:"description,omitempty"`
	Unit         string          `json:"unit"`
	MaterialType string          `json:"materialType"`
	BaseCost     decimal.Decimal `json:"baseCost"`
	Currency     string          `json:"currency,omitempty"`
	Version      string          `json:"version"`
	PublishedAt  string          `json:"publishedAt,omitempty"`
}

// ParseMaterialAsset decodes a remote ledger record into a material
// snapshot. An error means the record is not a parseable masterdata
// asset; callers treat it as absent rather than failing.
func ParseMaterialAsset(asset *entities.ChainAsset) (*entities.Material, error) {
	var payload materialPayload
	if err := json.Unmarshal([]byte(asset.Data), &payload); err != nil {
		return nil, fmt.Errorf("unparseable asset payload at %s: %w", asset.Address, err)
	}
	if payload.AssetType != AssetTypeMaterial {
		return nil, fmt.Errorf("asset %s is not material masterdata (type %q)", asset.Address, payload.AssetType)
	}
	if payload.MaterialName == "" {
		return nil, fmt.Errorf("asset %s has no material name", asset.Address)
	}

	publishedAt, _ := time.Parse(time.RFC3339, payload.PublishedAt)

	return &entities.Material{
		Key:         entities.MaterialKey(asset.Address),
		Address:     asset.Address,
		Name:        payload.MaterialName,
		Description: payload.Description,
		Unit:        payload.Unit,
		UnitCost:    payload.BaseCost,
		Category:    entities.Category(payload.MaterialType),
		Origin:      entities.OriginRemote,
		Lifecycle:   entities.LifecycleStatus(payload.Lifecycle),
		PublishedAt: publishedAt,
	}, nil
}

// EncodeMaterialAsset builds the asset name and payload for publishing a
// material to the remote ledger.
func EncodeMaterialAsset(m *entities.Material, status entities.LifecycleStatus) (string, []byte, error) {
	payload := materialPayload{
		Lifecycle:    int(status),
		AssetType:    AssetTypeMaterial,
		MaterialID:   string(m.Key),
		MaterialName: m.Name,
		Description:  m.Description,
		Unit:         m.Unit,
		MaterialType: string(m.Category),
		BaseCost:     m.UnitCost,
		Currency:     "USD",
		Version:      payloadVersion,
		PublishedAt:  time.Now().UTC().Format(time.RFC3339),
	}
	data, err := json.Marshal(payload)
	if err != nil {
		return "", nil, fmt.Errorf("failed to encode material asset: %w", err)
	}
	name := "mrp_material_" + strings.ReplaceAll(strings.ToLower(m.Name), " ", "_") + "_" + string(m.Key)
	return name, data, nil
}

// palletPayload is the on-ledger shape of a warehouse lot.
type palletPayload struct {
	Lifecycle    int             `json:"distordia"`
	AssetType    string          `json:"assetType"`
	PalletID     string          `json:"palletId"`
	MaterialKey  string          `json:"materialId"`
	MaterialName string          `json:"materialName,omitempty"`
	Quantity     decimal.Decimal `json:"quantity"`
	Unit         string          `json:"unit,omitempty"`
	Location     string          `json:"location"`
	PalletStatus string          `json:"palletStatus"`
	ReceivedAt   string          `json:"receivedAt,omitempty"`
	Reference    string          `json:"reference,omitempty"`
	Version      string          `json:"version"`
}

// EncodePalletAsset builds the asset name and payload for publishing a
// lot to the remote ledger.
func EncodePalletAsset(lot *entities.Lot, materialName, unit string) (string, []byte, error) {
	payload := palletPayload{
		Lifecycle:    int(entities.StatusActive),
		AssetType:    AssetTypePallet,
		PalletID:     lot.ID,
		MaterialKey:  string(lot.MaterialKey),
		MaterialName: materialName,
		Quantity:     lot.Quantity,
		Unit:         unit,
		Location:     lot.Location,
		PalletStatus: string(lot.Status),
		ReceivedAt:   lot.ReceivedAt.UTC().Format(time.RFC3339),
		Reference:    lot.Reference,
		Version:      payloadVersion,
	}
	data, err := json.Marshal(payload)
	if err != nil {
		return "", nil, fmt.Errorf("failed to encode pallet asset: %w", err)
	}
	return "mrp_pallet_" + lot.ID, data, nil
}

// invoicePayload is the on-ledger shape of an issued sales invoice.
type invoicePayload struct {
	Lifecycle     int                    `json:"distordia"`
	AssetType     string                 `json:"assetType"`
	InvoiceNumber string                 `json:"invoiceNumber"`
	Customer      string                 `json:"customer"`
	Lines         []entities.InvoiceLine `json:"lines"`
	Subtotal      decimal.Decimal        `json:"subtotal"`
	Tax           decimal.Decimal        `json:"tax"`
	Total         decimal.Decimal        `json:"total"`
	Currency      string                 `json:"currency"`
	Status        string                 `json:"status"`
	IssuedAt      string                 `json:"issuedAt"`
	Version       string                 `json:"version"`
}

// EncodeInvoiceAsset builds the asset name and payload for publishing an
// invoice to the remote ledger.
func EncodeInvoiceAsset(invoice *entities.Invoice) (string, []byte, error) {
	payload := invoicePayload{
		Lifecycle:     int(entities.StatusActive),
		AssetType:     AssetTypeInvoice,
		InvoiceNumber: invoice.InvoiceNumber,
		Customer:      invoice.Customer,
		Lines:         invoice.Lines,
		Subtotal:      invoice.Subtotal,
		Tax:           invoice.Tax,
		Total:         invoice.Total,
		Currency:      invoice.Currency,
		Status:        string(invoice.Status),
		IssuedAt:      invoice.IssuedAt.UTC().Format(time.RFC3339),
		Version:       payloadVersion,
	}
	data, err := json.Marshal(payload)
	if err != nil {
		return "", nil, fmt.Errorf("failed to encode invoice asset: %w", err)
	}
	return "mrp_invoice_" + invoice.InvoiceNumber, data, nil
}

// pickListPayload is the on-ledger shape of a confirmed or open pick plan.
type pickListPayload struct {
	Lifecycle   int                 `json:"distordia"`
	AssetType   string              `json:"assetType"`
	PickPlanID  string              `json:"pickingListId"`
	ProductKey  string              `json:"productId"`
	ProductName string              `json:"productName"`
	OrderQty    decimal.Decimal     `json:"orderQuantity"`
	Lines       []entities.PickLine `json:"lines"`
	Status      string              `json:"status"`
	CreatedAt   string              `json:"createdAt"`
	Version     string              `json:"version"`
}

// EncodePickPlanAsset builds the asset name and payload for publishing a
// pick plan to the remote ledger.
func EncodePickPlanAsset(plan *entities.PickPlan) (string, []byte, error) {
	payload := pickListPayload{
		Lifecycle:   int(entities.StatusActive),
		AssetType:   AssetTypePickList,
		PickPlanID:  plan.ID,
		ProductKey:  string(plan.RootKey),
		ProductName: plan.ProductName,
		OrderQty:    plan.PlannedQty,
		Lines:       plan.Lines,
		Status:      string(plan.Status),
		CreatedAt:   plan.CreatedAt.UTC().Format(time.RFC3339),
		Version:     payloadVersion,
	}
	data, err := json.Marshal(payload)
	if err != nil {
		return "", nil, fmt.Errorf("failed to encode pick plan asset: %w", err)
	}
	return "mrp_picklist_" + plan.ID, data, nil
}

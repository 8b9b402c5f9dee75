package services

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/distordia/mrp/pkg/domain/entities"
	"github.com/distordia/mrp/pkg/domain/repositories"
	"github.com/distordia/mrp/pkg/domain/services"
)

// WarehouseService handles lot receiving and maintenance, keeping the
// inventory ledger coupled to every stock movement.
type WarehouseService struct {
	lots      repositories.LotRepository
	ledger    repositories.LedgerRepository
	resolver  *services.Resolver
	publisher repositories.AssetPublisher
}

// NewWarehouseService creates a warehouse service over the injected stores.
func NewWarehouseService(lots repositories.LotRepository, ledger repositories.LedgerRepository, resolver *services.Resolver) *WarehouseService {
	return &WarehouseService{
		lots:     lots,
		ledger:   ledger,
		resolver: resolver,
	}
}

// WithPublisher enables pallet asset registration on the remote ledger
// for every received lot.
func (s *WarehouseService) WithPublisher(publisher repositories.AssetPublisher) *WarehouseService {
	s.publisher = publisher
	return s
}

// ReceiveLot books a new lot into the warehouse and records the matching
// receipt transaction. The material reference must resolve. When a
// publisher is configured the lot is also registered as a pallet asset.
func (s *WarehouseService) ReceiveLot(key entities.MaterialKey, quantity decimal.Decimal, location, reference string) (*entities.Lot, error) {
	if !quantity.IsPositive() {
		return nil, &entities.ValidationError{Msg: "received quantity must be positive, got " + quantity.String()}
	}
	material, err := s.resolver.Resolve(key)
	if err != nil {
		return nil, err
	}

	id := "PLT-" + strings.ToUpper(uuid.NewString()[:8])
	lot, err := entities.NewLot(id, key, quantity, location)
	if err != nil {
		return nil, err
	}
	lot.Reference = reference

	if err := s.lots.Save(lot); err != nil {
		return nil, err
	}

	entry := &entities.LedgerEntry{
		MaterialKey: key,
		Quantity:    quantity,
		Kind:        entities.EntryReceipt,
		Reference:   receiptReference(lot.ID, reference),
	}
	if err := s.ledger.Append(entry); err != nil {
		return nil, fmt.Errorf("failed to record receipt for %s: %w", key, err)
	}

	if s.publisher != nil {
		name, data, err := services.EncodePalletAsset(lot, material.Name, material.Unit)
		if err != nil {
			return nil, err
		}
		if _, err := s.publisher.Publish(name, data); err != nil {
			return nil, fmt.Errorf("failed to register pallet %s: %w", lot.ID, err)
		}
	}

	return lot, nil
}

func receiptReference(lotID, reference string) string {
	if reference == "" {
		return "Receive " + lotID
	}
	return reference
}

// AdjustLot applies a signed quantity delta to a lot and records an
// adjustment transaction. The lot cannot go negative.
func (s *WarehouseService) AdjustLot(lotID string, delta decimal.Decimal, reference string) (*entities.Lot, error) {
	if delta.IsZero() {
		return nil, &entities.ValidationError{Msg: "adjustment delta cannot be zero"}
	}
	lot, ok := s.lots.Get(lotID)
	if !ok {
		return nil, fmt.Errorf("lot not found: %s", lotID)
	}

	if err := lot.SetQuantity(lot.Quantity.Add(delta)); err != nil {
		return nil, err
	}

	entry := &entities.LedgerEntry{
		MaterialKey: lot.MaterialKey,
		Quantity:    delta,
		Kind:        entities.EntryAdjustment,
		Reference:   adjustReference(lotID, reference),
	}
	if err := s.ledger.Append(entry); err != nil {
		return nil, fmt.Errorf("failed to record adjustment for %s: %w", lot.MaterialKey, err)
	}

	return lot, nil
}

func adjustReference(lotID, reference string) string {
	if reference == "" {
		return "Adjust " + lotID
	}
	return reference
}

// MoveLot relocates a lot. Location changes carry no ledger impact.
func (s *WarehouseService) MoveLot(lotID, location string) (*entities.Lot, error) {
	if location == "" {
		return nil, &entities.ValidationError{Msg: "location cannot be empty"}
	}
	lot, ok := s.lots.Get(lotID)
	if !ok {
		return nil, fmt.Errorf("lot not found: %s", lotID)
	}
	lot.Location = location
	lot.UpdatedAt = time.Now()
	return lot, nil
}

// SetLotStatus transitions a lot's handling status. A lot holding zero
// quantity stays empty regardless of the requested status.
func (s *WarehouseService) SetLotStatus(lotID string, status entities.LotStatus) (*entities.Lot, error) {
	switch status {
	case entities.LotAvailable, entities.LotReserved, entities.LotPicked, entities.LotShipped, entities.LotEmpty:
	default:
		return nil, &entities.ValidationError{Msg: fmt.Sprintf("unknown lot status %q", status)}
	}

	lot, ok := s.lots.Get(lotID)
	if !ok {
		return nil, fmt.Errorf("lot not found: %s", lotID)
	}
	if lot.Quantity.IsZero() {
		status = entities.LotEmpty
	}
	lot.Status = status
	lot.UpdatedAt = time.Now()
	return lot, nil
}

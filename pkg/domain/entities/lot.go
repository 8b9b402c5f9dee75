package entities

import (
	"time"

	"github.com/shopspring/decimal"
)

// LotStatus tracks the handling state of a physical lot.
type LotStatus string

const (
	LotAvailable LotStatus = "available"
	LotReserved  LotStatus = "reserved"
	LotPicked    LotStatus = "picked"
	LotShipped   LotStatus = "shipped"
	LotEmpty     LotStatus = "empty"
)

// Label returns the display label for a lot status.
func (s LotStatus) Label() string {
	switch s {
	case LotAvailable:
		return "Available"
	case LotReserved:
		return "Reserved"
	case LotPicked:
		return "Picked"
	case LotShipped:
		return "Shipped"
	case LotEmpty:
		return "Empty"
	default:
		return "Unknown"
	}
}

// Lot is a discrete physical quantity of one material at one location
// (a pallet). Lots are mutated in place by receiving, adjustment and pick
// confirmation; a quantity of exactly zero forces the status to empty.
type Lot struct {
	ID          string
	MaterialKey MaterialKey
	Quantity    decimal.Decimal
	Location    string
	Status      LotStatus
	Reference   string
	ReceivedAt  time.Time
	UpdatedAt   time.Time
}

// NewLot creates a validated Lot.
func NewLot(id string, materialKey MaterialKey, quantity decimal.Decimal, location string) (*Lot, error) {
	if id == "" {
		return nil, &ValidationError{Msg: "lot id cannot be empty"}
	}
	if materialKey == "" {
		return nil, &ValidationError{Msg: "material key cannot be empty"}
	}
	if location == "" {
		return nil, &ValidationError{Msg: "location cannot be empty"}
	}
	if quantity.IsNegative() {
		return nil, &ValidationError{Msg: "lot quantity cannot be negative, got " + quantity.String()}
	}

	status := LotAvailable
	if quantity.IsZero() {
		status = LotEmpty
	}

	return &Lot{
		ID:          id,
		MaterialKey: materialKey,
		Quantity:    quantity,
		Location:    location,
		Status:      status,
		ReceivedAt:  time.Now(),
	}, nil
}

// SetQuantity replaces the lot quantity, enforcing the zero-means-empty
// rule and reviving an empty lot that receives stock again.
func (l *Lot) SetQuantity(qty decimal.Decimal) error {
	if qty.IsNegative() {
		return &ValidationError{Msg: "lot quantity cannot be negative, got " + qty.String()}
	}
	l.Quantity = qty
	switch {
	case qty.IsZero():
		l.Status = LotEmpty
	case l.Status == LotEmpty:
		l.Status = LotAvailable
	}
	l.UpdatedAt = time.Now()
	return nil
}

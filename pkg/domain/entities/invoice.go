package entities

import (
	"time"

	"github.com/shopspring/decimal"
)

// InvoiceStatus tracks the invoice lifecycle.
type InvoiceStatus string

const (
	InvoiceDraft     InvoiceStatus = "draft"
	InvoiceIssued    InvoiceStatus = "issued"
	InvoicePaid      InvoiceStatus = "paid"
	InvoiceCancelled InvoiceStatus = "cancelled"
)

// InvoiceLine is one billed material position. LineTotal is quantity
// times unit price.
type InvoiceLine struct {
	MaterialKey  MaterialKey
	MaterialName string
	Unit         string
	Quantity     decimal.Decimal
	UnitPrice    decimal.Decimal
	LineTotal    decimal.Decimal
}

// Invoice is a sales invoice over resolved materials. Tax is a plain
// multiplication of the subtotal by the tax rate; anything beyond that is
// outside this module.
type Invoice struct {
	ID            string
	InvoiceNumber string
	Customer      string
	Lines         []InvoiceLine
	Subtotal      decimal.Decimal
	TaxRate       decimal.Decimal
	Tax           decimal.Decimal
	Total         decimal.Decimal
	Currency      string
	Status        InvoiceStatus
	Notes         string
	IssuedAt      time.Time
	CreatedAt     time.Time
}

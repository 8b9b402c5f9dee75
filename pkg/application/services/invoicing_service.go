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

// InvoicingService builds sales invoices over resolved materials and
// issues the matching inventory transactions. Tax stays a single
// multiplication of the subtotal by the supplied rate.
type InvoicingService struct {
	ledger    repositories.LedgerRepository
	resolver  *services.Resolver
	publisher repositories.AssetPublisher
}

// NewInvoicingService creates an invoicing service over the injected stores.
func NewInvoicingService(ledger repositories.LedgerRepository, resolver *services.Resolver) *InvoicingService {
	return &InvoicingService{
		ledger:   ledger,
		resolver: resolver,
	}
}

// WithPublisher enables invoice registration on the remote ledger at
// issue time.
func (s *InvoicingService) WithPublisher(publisher repositories.AssetPublisher) *InvoicingService {
	s.publisher = publisher
	return s
}

// InvoiceLineInput is one requested billing position.
type InvoiceLineInput struct {
	MaterialKey entities.MaterialKey
	Quantity    decimal.Decimal
	UnitPrice   decimal.Decimal
}

// BuildInvoice creates a draft invoice. Every line's material must
// resolve; line totals, subtotal, tax and total are computed here and
// never recomputed downstream.
func (s *InvoicingService) BuildInvoice(customer string, inputs []InvoiceLineInput, taxRate decimal.Decimal, notes string) (*entities.Invoice, error) {
	if customer == "" {
		return nil, &entities.ValidationError{Msg: "customer cannot be empty"}
	}
	if len(inputs) == 0 {
		return nil, &entities.ValidationError{Msg: "invoice needs at least one line item"}
	}
	if taxRate.IsNegative() {
		return nil, &entities.ValidationError{Msg: "tax rate cannot be negative, got " + taxRate.String()}
	}

	subtotal := decimal.Zero
	lines := make([]entities.InvoiceLine, 0, len(inputs))
	for _, input := range inputs {
		if !input.Quantity.IsPositive() {
			return nil, &entities.ValidationError{Msg: "line quantity must be positive, got " + input.Quantity.String()}
		}
		if input.UnitPrice.IsNegative() {
			return nil, &entities.ValidationError{Msg: "unit price cannot be negative, got " + input.UnitPrice.String()}
		}
		material, err := s.resolver.Resolve(input.MaterialKey)
		if err != nil {
			return nil, err
		}

		lineTotal := input.Quantity.Mul(input.UnitPrice)
		subtotal = subtotal.Add(lineTotal)
		lines = append(lines, entities.InvoiceLine{
			MaterialKey:  input.MaterialKey,
			MaterialName: material.Name,
			Unit:         material.Unit,
			Quantity:     input.Quantity,
			UnitPrice:    input.UnitPrice,
			LineTotal:    lineTotal,
		})
	}

	tax := subtotal.Mul(taxRate)
	id := uuid.NewString()
	return &entities.Invoice{
		ID:            id,
		InvoiceNumber: "INV-" + strings.ToUpper(id[:8]),
		Customer:      customer,
		Lines:         lines,
		Subtotal:      subtotal,
		TaxRate:       taxRate,
		Tax:           tax,
		Total:         subtotal.Add(tax),
		Currency:      "USD",
		Status:        entities.InvoiceDraft,
		Notes:         notes,
		CreatedAt:     time.Now(),
	}, nil
}

// Issue moves a draft invoice to issued and records one inventory issue
// entry per line for the sold quantity.
func (s *InvoicingService) Issue(invoice *entities.Invoice) error {
	if invoice.Status != entities.InvoiceDraft {
		return &entities.ValidationError{Msg: fmt.Sprintf("invoice %s is not a draft", invoice.InvoiceNumber)}
	}

	for _, line := range invoice.Lines {
		entry := &entities.LedgerEntry{
			MaterialKey: line.MaterialKey,
			Quantity:    line.Quantity.Neg(),
			Kind:        entities.EntryIssue,
			Reference:   "Invoice " + invoice.InvoiceNumber,
		}
		if err := s.ledger.Append(entry); err != nil {
			return fmt.Errorf("failed to record issue for %s: %w", line.MaterialKey, err)
		}
	}

	invoice.Status = entities.InvoiceIssued
	invoice.IssuedAt = time.Now()

	if s.publisher != nil {
		name, data, err := services.EncodeInvoiceAsset(invoice)
		if err != nil {
			return err
		}
		if _, err := s.publisher.Publish(name, data); err != nil {
			return fmt.Errorf("failed to register invoice %s: %w", invoice.InvoiceNumber, err)
		}
	}
	return nil
}

// MarkPaid transitions an issued invoice to paid.
func (s *InvoicingService) MarkPaid(invoice *entities.Invoice) error {
	if invoice.Status != entities.InvoiceIssued {
		return &entities.ValidationError{Msg: fmt.Sprintf("invoice %s is not issued", invoice.InvoiceNumber)}
	}
	invoice.Status = entities.InvoicePaid
	return nil
}

// Cancel voids a draft or issued invoice. Stock already issued is
// corrected by a compensating adjustment per line.
func (s *InvoicingService) Cancel(invoice *entities.Invoice) error {
	switch invoice.Status {
	case entities.InvoiceDraft:
	case entities.InvoiceIssued:
		for _, line := range invoice.Lines {
			entry := &entities.LedgerEntry{
				MaterialKey: line.MaterialKey,
				Quantity:    line.Quantity,
				Kind:        entities.EntryAdjustment,
				Reference:   "Cancel invoice " + invoice.InvoiceNumber,
			}
			if err := s.ledger.Append(entry); err != nil {
				return fmt.Errorf("failed to reverse issue for %s: %w", line.MaterialKey, err)
			}
		}
	default:
		return &entities.ValidationError{Msg: fmt.Sprintf("invoice %s cannot be cancelled from %s", invoice.InvoiceNumber, invoice.Status)}
	}
	invoice.Status = entities.InvoiceCancelled
	return nil
}

package receipt

import (
	"context"
	"time"

	"zeneva/internal/domain"
)

type CreateLine struct {
	ProductID      string
	Name           string
	Quantity       int
	UnitPriceCents int64
}

type CreateInput struct {
	TenantID      string
	Number        string
	CustomerID    *string
	StaffID       *string
	PaymentMethod domain.PaymentMethod
	SubtotalCents int64
	DiscountCents int64
	TaxRatePct    float64
	TaxCents      int64
	TotalCents    int64
	Notes         string
	Lines         []CreateLine
}

// Summary aggregates sales over a period for cash-flow reporting.
type Summary struct {
	ReceiptCount  int
	SubtotalCents int64
	DiscountCents int64
	TaxCents      int64
	TotalCents    int64
}

type Repository interface {
	// Create persists the receipt with its lines, decrements product
	// stock, and updates the customer purchase rollup, all in one
	// transaction.
	Create(ctx context.Context, in CreateInput) (*domain.Receipt, error)
	GetByID(ctx context.Context, tenantID, id string) (*domain.Receipt, error)
	ListByTenant(ctx context.Context, tenantID string, from, to time.Time) ([]domain.Receipt, error)
	SummaryBetween(ctx context.Context, tenantID string, from, to time.Time) (*Summary, error)
}

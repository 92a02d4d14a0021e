package checkout

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"zeneva/internal/domain"
	"zeneva/internal/pos"
	receiptrepo "zeneva/internal/repository/receipt"
)

var (
	// ErrEmptyCart is returned when checkout is attempted with no lines.
	ErrEmptyCart = errors.New("cart is empty")
	// ErrNoPaymentMethod is returned when no payment method was chosen.
	ErrNoPaymentMethod = errors.New("payment method required")
)

// Service turns a finalized POS session snapshot into a persisted
// receipt. The session itself is reset by the caller once this
// succeeds; nothing here mutates session state.
type Service struct {
	receipts receiptRepo
}

type receiptRepo interface {
	Create(ctx context.Context, in receiptrepo.CreateInput) (*domain.Receipt, error)
	GetByID(ctx context.Context, tenantID, id string) (*domain.Receipt, error)
	ListByTenant(ctx context.Context, tenantID string, from, to time.Time) ([]domain.Receipt, error)
	SummaryBetween(ctx context.Context, tenantID string, from, to time.Time) (*receiptrepo.Summary, error)
}

func New(receipts receiptrepo.Repository) *Service {
	return &Service{receipts: receipts}
}

// Complete persists the snapshot as a receipt. All-or-nothing: a stock
// shortfall on any line fails the whole sale.
func (s *Service) Complete(ctx context.Context, tenantID, staffID string, snap pos.Snapshot) (*domain.Receipt, error) {
	if len(snap.Lines) == 0 {
		return nil, ErrEmptyCart
	}
	if snap.PaymentMethod == "" {
		return nil, ErrNoPaymentMethod
	}

	lines := make([]receiptrepo.CreateLine, 0, len(snap.Lines))
	for _, l := range snap.Lines {
		if l.Quantity <= 0 {
			return nil, fmt.Errorf("line %s has non-positive quantity", l.ItemID)
		}
		lines = append(lines, receiptrepo.CreateLine{
			ProductID:      l.ItemID,
			Name:           l.Name,
			Quantity:       l.Quantity,
			UnitPriceCents: l.UnitPriceCents,
		})
	}

	var customerID *string
	if snap.Customer != nil {
		id := snap.Customer.ID
		customerID = &id
	}
	var staff *string
	if staffID != "" {
		staff = &staffID
	}

	return s.receipts.Create(ctx, receiptrepo.CreateInput{
		TenantID:      tenantID,
		Number:        newReceiptNumber(),
		CustomerID:    customerID,
		StaffID:       staff,
		PaymentMethod: snap.PaymentMethod,
		SubtotalCents: snap.Totals.SubtotalCents,
		DiscountCents: snap.DiscountCents,
		TaxRatePct:    snap.TaxRatePct,
		TaxCents:      snap.Totals.TaxCents,
		TotalCents:    snap.Totals.TotalCents,
		Notes:         snap.Notes,
		Lines:         lines,
	})
}

func (s *Service) Get(ctx context.Context, tenantID, id string) (*domain.Receipt, error) {
	return s.receipts.GetByID(ctx, tenantID, id)
}

func (s *Service) List(ctx context.Context, tenantID string, from, to time.Time) ([]domain.Receipt, error) {
	return s.receipts.ListByTenant(ctx, tenantID, from, to)
}

// DailySummary aggregates one calendar day of sales.
func (s *Service) DailySummary(ctx context.Context, tenantID string, day time.Time) (*receiptrepo.Summary, error) {
	start := time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, day.Location())
	return s.receipts.SummaryBetween(ctx, tenantID, start, start.AddDate(0, 0, 1))
}

func newReceiptNumber() string {
	short := strings.ToUpper(strings.ReplaceAll(uuid.NewString(), "-", ""))[:8]
	return fmt.Sprintf("RCP-%s-%s", time.Now().UTC().Format("20060102"), short)
}

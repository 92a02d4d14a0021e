package expense

import (
	"context"
	"errors"
	"strings"
	"time"

	"zeneva/internal/domain"
	expenserepo "zeneva/internal/repository/expense"
	receiptrepo "zeneva/internal/repository/receipt"
)

// Service tracks outgoing money and folds it together with receipt
// income into a cash-flow view.
type Service struct {
	expenses expenserepo.Repository
	receipts receiptRepo
}

type receiptRepo interface {
	SummaryBetween(ctx context.Context, tenantID string, from, to time.Time) (*receiptrepo.Summary, error)
}

func New(expenses expenserepo.Repository, receipts receiptRepo) *Service {
	return &Service{expenses: expenses, receipts: receipts}
}

type Input struct {
	Category    string    `json:"category"`
	Description string    `json:"description"`
	AmountCents int64     `json:"amountCents"`
	IncurredAt  time.Time `json:"incurredAt"`
}

func (s *Service) Create(ctx context.Context, tenantID string, in Input) (*domain.Expense, error) {
	category := strings.TrimSpace(in.Category)
	if category == "" {
		return nil, errors.New("category required")
	}
	if in.AmountCents <= 0 {
		return nil, errors.New("amount must be positive")
	}
	incurred := in.IncurredAt
	if incurred.IsZero() {
		incurred = time.Now()
	}
	return s.expenses.Create(ctx, &domain.Expense{
		TenantID:    tenantID,
		Category:    category,
		Description: strings.TrimSpace(in.Description),
		AmountCents: in.AmountCents,
		IncurredAt:  incurred,
	})
}

func (s *Service) List(ctx context.Context, tenantID string, from, to time.Time) ([]domain.Expense, error) {
	return s.expenses.ListByTenant(ctx, tenantID, from, to)
}

func (s *Service) Delete(ctx context.Context, tenantID, id string) error {
	return s.expenses.Delete(ctx, tenantID, id)
}

// CashFlow is income vs spending over a period.
type CashFlow struct {
	From          time.Time                   `json:"from"`
	To            time.Time                   `json:"to"`
	IncomeCents   int64                       `json:"incomeCents"`
	ExpenseCents  int64                       `json:"expenseCents"`
	NetCents      int64                       `json:"netCents"`
	ReceiptCount  int                         `json:"receiptCount"`
	ByCategory    []expenserepo.CategoryTotal `json:"byCategory"`
}

// Report aggregates receipts and expenses for the period.
func (s *Service) Report(ctx context.Context, tenantID string, from, to time.Time) (*CashFlow, error) {
	income, err := s.receipts.SummaryBetween(ctx, tenantID, from, to)
	if err != nil {
		return nil, err
	}
	byCategory, err := s.expenses.TotalsByCategory(ctx, tenantID, from, to)
	if err != nil {
		return nil, err
	}

	var spent int64
	for _, ct := range byCategory {
		spent += ct.AmountCents
	}

	return &CashFlow{
		From:         from,
		To:           to,
		IncomeCents:  income.TotalCents,
		ExpenseCents: spent,
		NetCents:     income.TotalCents - spent,
		ReceiptCount: income.ReceiptCount,
		ByCategory:   byCategory,
	}, nil
}

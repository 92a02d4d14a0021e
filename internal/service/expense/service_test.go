package expense

import (
	"context"
	"testing"
	"time"

	"zeneva/internal/domain"
	expenserepo "zeneva/internal/repository/expense"
	receiptrepo "zeneva/internal/repository/receipt"
)

type stubExpenseRepo struct {
	last       *domain.Expense
	categories []expenserepo.CategoryTotal
}

func (s *stubExpenseRepo) Create(_ context.Context, e *domain.Expense) (*domain.Expense, error) {
	s.last = e
	return e, nil
}

func (s *stubExpenseRepo) ListByTenant(_ context.Context, _ string, _, _ time.Time) ([]domain.Expense, error) {
	return nil, nil
}

func (s *stubExpenseRepo) TotalsByCategory(_ context.Context, _ string, _, _ time.Time) ([]expenserepo.CategoryTotal, error) {
	return s.categories, nil
}

func (s *stubExpenseRepo) Delete(_ context.Context, _, _ string) error { return nil }

type stubReceiptSummary struct {
	summary receiptrepo.Summary
}

func (s *stubReceiptSummary) SummaryBetween(_ context.Context, _ string, _, _ time.Time) (*receiptrepo.Summary, error) {
	return &s.summary, nil
}

func TestCreateValidation(t *testing.T) {
	svc := New(&stubExpenseRepo{}, &stubReceiptSummary{})
	if _, err := svc.Create(context.Background(), "t1", Input{AmountCents: 100}); err == nil {
		t.Fatal("expected category validation error")
	}
	if _, err := svc.Create(context.Background(), "t1", Input{Category: "rent", AmountCents: 0}); err == nil {
		t.Fatal("expected amount validation error")
	}
}

func TestCreateDefaultsIncurredAt(t *testing.T) {
	repo := &stubExpenseRepo{}
	svc := New(repo, &stubReceiptSummary{})
	before := time.Now()
	if _, err := svc.Create(context.Background(), "t1", Input{Category: "rent", AmountCents: 100}); err != nil {
		t.Fatalf("Create: %v", err)
	}
	if repo.last.IncurredAt.Before(before) {
		t.Fatalf("incurredAt not defaulted: %v", repo.last.IncurredAt)
	}
}

func TestReport(t *testing.T) {
	expenses := &stubExpenseRepo{categories: []expenserepo.CategoryTotal{
		{Category: "rent", AmountCents: 50000},
		{Category: "fuel", AmountCents: 12000},
	}}
	receipts := &stubReceiptSummary{summary: receiptrepo.Summary{ReceiptCount: 9, TotalCents: 150000}}
	svc := New(expenses, receipts)

	from := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	to := from.AddDate(0, 1, 0)
	got, err := svc.Report(context.Background(), "t1", from, to)
	if err != nil {
		t.Fatalf("Report: %v", err)
	}
	if got.IncomeCents != 150000 || got.ExpenseCents != 62000 {
		t.Fatalf("unexpected totals %+v", got)
	}
	if got.NetCents != 88000 {
		t.Fatalf("net = %d, want 88000", got.NetCents)
	}
	if got.ReceiptCount != 9 || len(got.ByCategory) != 2 {
		t.Fatalf("unexpected report %+v", got)
	}
}

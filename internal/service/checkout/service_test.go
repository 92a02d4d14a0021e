package checkout

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"zeneva/internal/domain"
	"zeneva/internal/pos"
	receiptrepo "zeneva/internal/repository/receipt"
)

type stubReceiptRepo struct {
	created   *domain.Receipt
	createErr error
	lastInput receiptrepo.CreateInput
}

func (s *stubReceiptRepo) Create(_ context.Context, in receiptrepo.CreateInput) (*domain.Receipt, error) {
	s.lastInput = in
	return s.created, s.createErr
}

func (s *stubReceiptRepo) GetByID(_ context.Context, _, _ string) (*domain.Receipt, error) {
	return s.created, s.createErr
}

func (s *stubReceiptRepo) ListByTenant(_ context.Context, _ string, _, _ time.Time) ([]domain.Receipt, error) {
	return nil, nil
}

func (s *stubReceiptRepo) SummaryBetween(_ context.Context, _ string, _, _ time.Time) (*receiptrepo.Summary, error) {
	return &receiptrepo.Summary{}, nil
}

func sessionSnapshot(t *testing.T) pos.Snapshot {
	t.Helper()
	s := pos.NewSession("s1", 7.5)
	s.AddItem(pos.ProductSnapshot{ItemID: "p1", Name: "Tee", UnitPriceCents: 4000}, 2)
	s.SetPaymentMethod(domain.PaymentCash)
	return s.Snapshot()
}

func TestCompleteEmptyCart(t *testing.T) {
	svc := &Service{receipts: &stubReceiptRepo{}}
	snap := pos.NewSession("s1", 7.5).Snapshot()
	if _, err := svc.Complete(context.Background(), "t1", "", snap); !errors.Is(err, ErrEmptyCart) {
		t.Fatalf("expected ErrEmptyCart, got %v", err)
	}
}

func TestCompleteRequiresPaymentMethod(t *testing.T) {
	svc := &Service{receipts: &stubReceiptRepo{}}
	s := pos.NewSession("s1", 7.5)
	s.AddItem(pos.ProductSnapshot{ItemID: "p1", Name: "Tee", UnitPriceCents: 4000}, 1)
	if _, err := svc.Complete(context.Background(), "t1", "", s.Snapshot()); !errors.Is(err, ErrNoPaymentMethod) {
		t.Fatalf("expected ErrNoPaymentMethod, got %v", err)
	}
}

func TestCompletePassesTotalsThrough(t *testing.T) {
	repo := &stubReceiptRepo{created: &domain.Receipt{ID: "r1"}}
	svc := &Service{receipts: repo}

	s := pos.NewSession("s1", 7.5)
	s.AddItem(pos.ProductSnapshot{ItemID: "p1", Name: "Tee", UnitPriceCents: 4000}, 2)
	s.AddItem(pos.ProductSnapshot{ItemID: "p2", Name: "Mug", UnitPriceCents: 2000}, 1)
	s.ApplyDiscount(2000)
	s.SetPaymentMethod(domain.PaymentTransfer)
	s.SelectCustomer(&domain.Customer{ID: "c9"})
	s.SetNotes("weekend sale")

	got, err := svc.Complete(context.Background(), "t1", "staff-1", s.Snapshot())
	if err != nil {
		t.Fatalf("Complete: %v", err)
	}
	if got.ID != "r1" {
		t.Fatalf("unexpected receipt %+v", got)
	}

	in := repo.lastInput
	if in.SubtotalCents != 10000 || in.DiscountCents != 2000 || in.TaxCents != 600 || in.TotalCents != 8600 {
		t.Fatalf("totals not passed through: %+v", in)
	}
	if in.CustomerID == nil || *in.CustomerID != "c9" {
		t.Fatalf("customer not passed through: %+v", in.CustomerID)
	}
	if in.StaffID == nil || *in.StaffID != "staff-1" {
		t.Fatalf("staff not passed through: %+v", in.StaffID)
	}
	if len(in.Lines) != 2 || in.Lines[0].ProductID != "p1" || in.Lines[1].ProductID != "p2" {
		t.Fatalf("lines mismatch: %+v", in.Lines)
	}
	if in.Notes != "weekend sale" || in.PaymentMethod != domain.PaymentTransfer {
		t.Fatalf("notes/payment mismatch: %+v", in)
	}
	if !strings.HasPrefix(in.Number, "RCP-") {
		t.Fatalf("unexpected receipt number %q", in.Number)
	}
}

func TestCompleteRejectsNonPositiveQuantity(t *testing.T) {
	svc := &Service{receipts: &stubReceiptRepo{}}
	s := pos.NewSession("s1", 7.5)
	s.AddItem(pos.ProductSnapshot{ItemID: "p1", Name: "Tee", UnitPriceCents: 4000}, 1)
	s.UpdateQuantity("p1", 0)
	s.SetPaymentMethod(domain.PaymentCash)
	if _, err := svc.Complete(context.Background(), "t1", "", s.Snapshot()); err == nil {
		t.Fatal("expected error for zero-quantity line")
	}
}

func TestCompletePropagatesStockError(t *testing.T) {
	repo := &stubReceiptRepo{createErr: domain.ErrInsufficientStock}
	svc := &Service{receipts: repo}
	if _, err := svc.Complete(context.Background(), "t1", "", sessionSnapshot(t)); !errors.Is(err, domain.ErrInsufficientStock) {
		t.Fatalf("expected ErrInsufficientStock, got %v", err)
	}
}

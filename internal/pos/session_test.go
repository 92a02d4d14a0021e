package pos

import (
	"testing"

	"zeneva/internal/domain"
)

const houseRate = 7.5

func snapshotProduct(id string, price int64) ProductSnapshot {
	return ProductSnapshot{ItemID: id, Name: "item " + id, UnitPriceCents: price}
}

// checkDerived recomputes totals independently of the session's stored
// state and fails if they drifted.
func checkDerived(t *testing.T, snap Snapshot) {
	t.Helper()
	want := CalculateTotals(snap.Lines, snap.DiscountCents, snap.TaxRatePct)
	if snap.Totals != want {
		t.Fatalf("stale totals: stored %+v, recomputed %+v", snap.Totals, want)
	}
}

func TestAddItemMergesSameItem(t *testing.T) {
	s := NewSession("s1", houseRate)
	s.AddItem(snapshotProduct("a", 1000), 2)
	s.AddItem(snapshotProduct("a", 1000), 3)

	snap := s.Snapshot()
	if len(snap.Lines) != 1 {
		t.Fatalf("expected one line, got %d", len(snap.Lines))
	}
	line := snap.Lines[0]
	if line.Quantity != 5 {
		t.Fatalf("quantity = %d, want 5", line.Quantity)
	}
	if line.TotalCents() != 5000 {
		t.Fatalf("line total = %d, want 5000", line.TotalCents())
	}
	if snap.Totals.SubtotalCents != 5000 {
		t.Fatalf("subtotal = %d, want 5000", snap.Totals.SubtotalCents)
	}
	checkDerived(t, snap)
}

func TestAddItemPreservesInsertionOrder(t *testing.T) {
	s := NewSession("s1", houseRate)
	s.AddItem(snapshotProduct("a", 100), 1)
	s.AddItem(snapshotProduct("b", 200), 1)
	s.AddItem(snapshotProduct("c", 300), 1)
	s.AddItem(snapshotProduct("b", 200), 4)

	snap := s.Snapshot()
	wantOrder := []string{"a", "b", "c"}
	if len(snap.Lines) != len(wantOrder) {
		t.Fatalf("expected %d lines, got %d", len(wantOrder), len(snap.Lines))
	}
	for i, id := range wantOrder {
		if snap.Lines[i].ItemID != id {
			t.Fatalf("line %d = %s, want %s", i, snap.Lines[i].ItemID, id)
		}
	}
}

func TestSnapshotFreezesCatalogPrice(t *testing.T) {
	s := NewSession("s1", houseRate)
	s.AddItem(snapshotProduct("a", 1000), 1)
	// A later catalog price change arrives as a different snapshot for
	// the same item; the open cart keeps the price it was added at.
	s.AddItem(ProductSnapshot{ItemID: "a", Name: "item a", UnitPriceCents: 9999}, 1)

	snap := s.Snapshot()
	if snap.Lines[0].UnitPriceCents != 1000 {
		t.Fatalf("unit price = %d, want frozen 1000", snap.Lines[0].UnitPriceCents)
	}
	if snap.Lines[0].Quantity != 2 {
		t.Fatalf("quantity = %d, want 2", snap.Lines[0].Quantity)
	}
}

func TestRemoveItem(t *testing.T) {
	s := NewSession("s1", houseRate)
	s.AddItem(snapshotProduct("a", 100), 1)
	s.AddItem(snapshotProduct("b", 200), 1)
	s.RemoveItem("a")

	snap := s.Snapshot()
	if len(snap.Lines) != 1 || snap.Lines[0].ItemID != "b" {
		t.Fatalf("unexpected lines %+v", snap.Lines)
	}
	checkDerived(t, snap)
}

func TestRemoveMissingItemIsNoop(t *testing.T) {
	s := NewSession("s1", houseRate)
	s.AddItem(snapshotProduct("a", 100), 1)
	s.RemoveItem("nope")

	snap := s.Snapshot()
	if len(snap.Lines) != 1 {
		t.Fatalf("expected lines unchanged, got %+v", snap.Lines)
	}
	checkDerived(t, snap)
}

func TestUpdateQuantity(t *testing.T) {
	s := NewSession("s1", houseRate)
	s.AddItem(snapshotProduct("a", 250), 1)
	s.UpdateQuantity("a", 4)

	snap := s.Snapshot()
	if snap.Lines[0].Quantity != 4 {
		t.Fatalf("quantity = %d, want 4", snap.Lines[0].Quantity)
	}
	if snap.Totals.SubtotalCents != 1000 {
		t.Fatalf("subtotal = %d, want 1000", snap.Totals.SubtotalCents)
	}
	checkDerived(t, snap)
}

func TestUpdateQuantityZeroKeepsLine(t *testing.T) {
	s := NewSession("s1", houseRate)
	s.AddItem(snapshotProduct("a", 250), 2)
	s.UpdateQuantity("a", 0)

	snap := s.Snapshot()
	if len(snap.Lines) != 1 {
		t.Fatalf("zero quantity should keep the line, got %+v", snap.Lines)
	}
	if snap.Totals.SubtotalCents != 0 {
		t.Fatalf("subtotal = %d, want 0", snap.Totals.SubtotalCents)
	}
	checkDerived(t, snap)
}

func TestClearCartKeepsSelections(t *testing.T) {
	s := NewSession("s1", houseRate)
	s.AddItem(snapshotProduct("a", 100), 1)
	s.SelectCustomer(&domain.Customer{ID: "cust-1", Name: "Ada"})
	s.SetPaymentMethod(domain.PaymentCash)
	s.ApplyDiscount(50)
	s.SetNotes("gift wrap")
	s.ClearCart()

	snap := s.Snapshot()
	if len(snap.Lines) != 0 {
		t.Fatalf("expected empty lines, got %+v", snap.Lines)
	}
	if snap.Customer == nil || snap.Customer.ID != "cust-1" {
		t.Fatalf("customer cleared unexpectedly: %+v", snap.Customer)
	}
	if snap.PaymentMethod != domain.PaymentCash {
		t.Fatalf("payment method cleared unexpectedly: %q", snap.PaymentMethod)
	}
	if snap.DiscountCents != 50 || snap.Notes != "gift wrap" {
		t.Fatalf("discount/notes cleared unexpectedly: %+v", snap)
	}
	checkDerived(t, snap)
}

func TestApplyDiscountClampsNegative(t *testing.T) {
	s := NewSession("s1", houseRate)
	s.ApplyDiscount(-50)
	if snap := s.Snapshot(); snap.DiscountCents != 0 {
		t.Fatalf("discount = %d, want 0", snap.DiscountCents)
	}
}

func TestSetTaxRateClampsNegative(t *testing.T) {
	s := NewSession("s1", houseRate)
	s.SetTaxRate(-3)
	if snap := s.Snapshot(); snap.TaxRatePct != 0 {
		t.Fatalf("tax rate = %v, want 0", snap.TaxRatePct)
	}
}

func TestSelectCustomerIdempotentAndNullable(t *testing.T) {
	s := NewSession("s1", houseRate)
	c := &domain.Customer{ID: "cust-1"}
	s.SelectCustomer(c)
	s.SelectCustomer(c)
	if snap := s.Snapshot(); snap.Customer == nil || snap.Customer.ID != "cust-1" {
		t.Fatalf("unexpected customer %+v", snap.Customer)
	}
	s.SelectCustomer(nil)
	if snap := s.Snapshot(); snap.Customer != nil {
		t.Fatalf("customer should be cleared, got %+v", snap.Customer)
	}
}

func TestReset(t *testing.T) {
	s := NewSession("s1", houseRate)
	s.AddItem(snapshotProduct("a", 100), 2)
	s.SelectCustomer(&domain.Customer{ID: "cust-1"})
	s.SetPaymentMethod(domain.PaymentTransfer)
	s.ApplyDiscount(30)
	s.SetTaxRate(12)
	s.SetNotes("note")
	s.Reset()

	snap := s.Snapshot()
	if len(snap.Lines) != 0 {
		t.Fatalf("lines not cleared: %+v", snap.Lines)
	}
	if snap.Customer != nil || snap.PaymentMethod != "" {
		t.Fatalf("selections not cleared: %+v", snap)
	}
	if snap.DiscountCents != 0 || snap.Notes != "" {
		t.Fatalf("discount/notes not cleared: %+v", snap)
	}
	if snap.TaxRatePct != houseRate {
		t.Fatalf("tax rate = %v, want house default %v", snap.TaxRatePct, houseRate)
	}
	if snap.Totals != (Totals{}) {
		t.Fatalf("totals not cleared: %+v", snap.Totals)
	}
}

func TestTotalsConsistentAfterEveryMutation(t *testing.T) {
	s := NewSession("s1", houseRate)
	steps := []func(){
		func() { s.AddItem(snapshotProduct("a", 1234), 3) },
		func() { s.AddItem(snapshotProduct("b", 55), 10) },
		func() { s.ApplyDiscount(500) },
		func() { s.SetTaxRate(10) },
		func() { s.UpdateQuantity("a", 1) },
		func() { s.RemoveItem("b") },
		func() { s.ApplyDiscount(99999) },
		func() { s.ClearCart() },
	}
	for i, step := range steps {
		step()
		snap := s.Snapshot()
		want := CalculateTotals(snap.Lines, snap.DiscountCents, snap.TaxRatePct)
		if snap.Totals != want {
			t.Fatalf("step %d: stored %+v, recomputed %+v", i, snap.Totals, want)
		}
	}
}

func TestSnapshotLinesAreCopies(t *testing.T) {
	s := NewSession("s1", houseRate)
	s.AddItem(snapshotProduct("a", 100), 1)
	snap := s.Snapshot()
	snap.Lines[0].Quantity = 99
	if s.Snapshot().Lines[0].Quantity != 1 {
		t.Fatal("mutating a snapshot leaked into the session")
	}
}

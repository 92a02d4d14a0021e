package domain

import "time"

type Receipt struct {
	ID            string        `json:"id"`
	TenantID      string        `json:"-"`
	Number        string        `json:"number"`
	CustomerID    *string       `json:"customerId,omitempty"`
	StaffID       *string       `json:"staffId,omitempty"`
	PaymentMethod PaymentMethod `json:"paymentMethod"`
	SubtotalCents int64         `json:"subtotalCents"`
	DiscountCents int64         `json:"discountCents"`
	TaxRatePct    float64       `json:"taxRatePct"`
	TaxCents      int64         `json:"taxCents"`
	TotalCents    int64         `json:"totalCents"`
	Notes         string        `json:"notes,omitempty"`
	CreatedAt     time.Time     `json:"createdAt"`
	Lines         []ReceiptLine `json:"lines,omitempty"`
}

// ReceiptLine carries the catalog snapshot that was in the cart, not a
// live product reference; later price edits never rewrite old receipts.
type ReceiptLine struct {
	ID             string `json:"id"`
	ReceiptID      string `json:"receiptId"`
	ProductID      string `json:"productId"`
	Name           string `json:"name"`
	Quantity       int    `json:"quantity"`
	UnitPriceCents int64  `json:"unitPriceCents"`
	TotalCents     int64  `json:"totalCents"`
}

// Package pos holds the in-memory checkout session for one register:
// cart lines, customer and payment selection, discount, tax rate, and
// the totals derived from them. A session does no I/O; persistence of
// a finished sale belongs to the checkout service.
package pos

import "zeneva/internal/domain"

// ProductSnapshot is what AddItem copies into a line. Name and price
// are frozen at add time so a catalog edit never moves an open cart.
type ProductSnapshot struct {
	ItemID         string
	Name           string
	UnitPriceCents int64
}

// Line is one catalog item held in a session.
type Line struct {
	ItemID         string `json:"itemId"`
	Name           string `json:"name"`
	UnitPriceCents int64  `json:"unitPriceCents"`
	Quantity       int    `json:"quantity"`
}

// TotalCents is the derived line total.
func (l Line) TotalCents() int64 {
	return l.UnitPriceCents * int64(l.Quantity)
}

// Session is the complete state of one in-progress checkout. Methods
// are not safe for concurrent use; Manager serializes access when a
// session is shared with HTTP handlers.
type Session struct {
	id           string
	lines        []Line
	customer     *domain.Customer
	payment      domain.PaymentMethod
	discount     int64
	taxRatePct   float64
	houseTaxRate float64
	notes        string
	totals       Totals
}

// NewSession returns an empty session using the house tax rate.
func NewSession(id string, houseTaxRatePct float64) *Session {
	s := &Session{
		id:           id,
		taxRatePct:   houseTaxRatePct,
		houseTaxRate: houseTaxRatePct,
	}
	s.recompute()
	return s
}

func (s *Session) ID() string { return s.id }

// AddItem appends a line for the product, or bumps the quantity when a
// line for the same item already exists. One line per item id, always.
func (s *Session) AddItem(p ProductSnapshot, quantity int) {
	for i := range s.lines {
		if s.lines[i].ItemID == p.ItemID {
			s.lines[i].Quantity += quantity
			s.recompute()
			return
		}
	}
	s.lines = append(s.lines, Line{
		ItemID:         p.ItemID,
		Name:           p.Name,
		UnitPriceCents: p.UnitPriceCents,
		Quantity:       quantity,
	})
	s.recompute()
}

// RemoveItem drops the line for itemID. Missing ids are a no-op.
func (s *Session) RemoveItem(itemID string) {
	for i := range s.lines {
		if s.lines[i].ItemID == itemID {
			s.lines = append(s.lines[:i], s.lines[i+1:]...)
			break
		}
	}
	s.recompute()
}

// UpdateQuantity replaces the line's quantity as given. A zero keeps
// the line in the cart; removal is always an explicit RemoveItem.
func (s *Session) UpdateQuantity(itemID string, quantity int) {
	for i := range s.lines {
		if s.lines[i].ItemID == itemID {
			s.lines[i].Quantity = quantity
			break
		}
	}
	s.recompute()
}

// ClearCart empties the lines, leaving customer, payment, discount,
// and notes as they are.
func (s *Session) ClearCart() {
	s.lines = nil
	s.recompute()
}

func (s *Session) SelectCustomer(c *domain.Customer) {
	s.customer = c
}

func (s *Session) SetPaymentMethod(m domain.PaymentMethod) {
	s.payment = m
}

// ApplyDiscount stores a fixed currency discount, clamped at zero.
func (s *Session) ApplyDiscount(amountCents int64) {
	if amountCents < 0 {
		amountCents = 0
	}
	s.discount = amountCents
	s.recompute()
}

// SetTaxRate overrides the session tax rate, clamped at zero.
func (s *Session) SetTaxRate(pct float64) {
	if pct < 0 {
		pct = 0
	}
	s.taxRatePct = pct
	s.recompute()
}

func (s *Session) SetNotes(text string) {
	s.notes = text
}

// Reset restores the empty initial state, including the house tax
// rate. Called after a completed checkout or a cancellation.
func (s *Session) Reset() {
	s.lines = nil
	s.customer = nil
	s.payment = ""
	s.discount = 0
	s.taxRatePct = s.houseTaxRate
	s.notes = ""
	s.recompute()
}

func (s *Session) recompute() {
	s.totals = CalculateTotals(s.lines, s.discount, s.taxRatePct)
}

// Snapshot is a read-only copy of the session, handed to renderers and
// to the receipt writer at checkout.
type Snapshot struct {
	ID            string               `json:"id"`
	Lines         []Line               `json:"lines"`
	Customer      *domain.Customer     `json:"customer,omitempty"`
	PaymentMethod domain.PaymentMethod `json:"paymentMethod,omitempty"`
	DiscountCents int64                `json:"discountCents"`
	TaxRatePct    float64              `json:"taxRatePct"`
	Notes         string               `json:"notes,omitempty"`
	Totals        Totals               `json:"totals"`
}

// Snapshot copies the current state. The lines slice is cloned so the
// caller cannot reach back into the session.
func (s *Session) Snapshot() Snapshot {
	lines := make([]Line, len(s.lines))
	copy(lines, s.lines)
	return Snapshot{
		ID:            s.id,
		Lines:         lines,
		Customer:      s.customer,
		PaymentMethod: s.payment,
		DiscountCents: s.discount,
		TaxRatePct:    s.taxRatePct,
		Notes:         s.notes,
		Totals:        s.totals,
	}
}

package pos

import "math"

// Totals are the derived amounts for a session. They are recomputed
// from scratch after every mutation and never stored independently.
type Totals struct {
	SubtotalCents int64 `json:"subtotalCents"`
	TaxCents      int64 `json:"taxCents"`
	TotalCents    int64 `json:"totalCents"`
}

// CalculateTotals derives subtotal, tax, and total from the lines.
// The taxable base floors at zero when the discount exceeds the
// subtotal; the grand total does not, so an oversized discount yields
// a negative total. Rejecting that is a register-UI concern.
func CalculateTotals(lines []Line, discountCents int64, taxRatePct float64) Totals {
	var subtotal int64
	for _, l := range lines {
		subtotal += l.UnitPriceCents * int64(l.Quantity)
	}

	taxable := subtotal - discountCents
	if taxable < 0 {
		taxable = 0
	}
	tax := int64(math.Round(float64(taxable) * taxRatePct / 100))

	return Totals{
		SubtotalCents: subtotal,
		TaxCents:      tax,
		TotalCents:    subtotal - discountCents + tax,
	}
}

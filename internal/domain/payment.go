package domain

import (
	"fmt"
	"strings"
)

// PaymentMethod is how a sale was settled. The zero value means the
// cashier has not picked one yet.
type PaymentMethod string

const (
	PaymentCash     PaymentMethod = "cash"
	PaymentCard     PaymentMethod = "card" // external POS terminal
	PaymentTransfer PaymentMethod = "transfer"
	PaymentCheque   PaymentMethod = "cheque"
	PaymentOther    PaymentMethod = "other"
)

// ParsePaymentMethod normalizes a client-supplied method string.
func ParsePaymentMethod(s string) (PaymentMethod, error) {
	switch PaymentMethod(strings.ToLower(strings.TrimSpace(s))) {
	case PaymentCash:
		return PaymentCash, nil
	case PaymentCard:
		return PaymentCard, nil
	case PaymentTransfer:
		return PaymentTransfer, nil
	case PaymentCheque:
		return PaymentCheque, nil
	case PaymentOther:
		return PaymentOther, nil
	}
	return "", fmt.Errorf("unknown payment method %q", s)
}

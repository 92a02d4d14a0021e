package domain

import "time"

// Customer is a CRM record scoped to one tenant. POS sessions carry an
// optional reference to one of these; walk-in sales carry none.
type Customer struct {
	ID              string    `json:"id"`
	TenantID        string    `json:"-"`
	Name            string    `json:"name"`
	Email           string    `json:"email,omitempty"`
	Phone           string    `json:"phone,omitempty"`
	Notes           string    `json:"notes,omitempty"`
	PurchaseCount   int       `json:"purchaseCount"`
	TotalSpentCents int64     `json:"totalSpentCents"`
	CreatedAt       time.Time `json:"createdAt"`
}

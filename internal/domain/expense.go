package domain

import "time"

type Expense struct {
	ID          string    `json:"id"`
	TenantID    string    `json:"-"`
	Category    string    `json:"category"`
	Description string    `json:"description,omitempty"`
	AmountCents int64     `json:"amountCents"`
	IncurredAt  time.Time `json:"incurredAt"`
	CreatedAt   time.Time `json:"createdAt"`
}

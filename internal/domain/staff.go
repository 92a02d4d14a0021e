package domain

import "time"

// Staff is a login account for one tenant's back office and registers.
type Staff struct {
	ID           string    `json:"id"`
	TenantID     string    `json:"-"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	Name         string    `json:"name"`
	Role         string    `json:"role"`
	CreatedAt    time.Time `json:"createdAt"`
}

const (
	RoleOwner   = "owner"
	RoleCashier = "cashier"
)

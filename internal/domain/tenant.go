package domain

import "time"

// Tenant is one business account. Every catalog, CRM, and sales record
// hangs off a tenant; the slug scopes public storefront URLs.
type Tenant struct {
	ID          string     `json:"id"`
	Slug        string     `json:"slug"`
	Name        string     `json:"name"`
	Email       string     `json:"email"`
	Plan        string     `json:"plan"`
	TrialEndsAt *time.Time `json:"trialEndsAt,omitempty"`
	CreatedAt   time.Time  `json:"createdAt"`
}

const (
	PlanTrial   = "trial"
	PlanStarter = "starter"
	PlanGrowth  = "growth"
)

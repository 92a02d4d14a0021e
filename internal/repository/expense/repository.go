package expense

import (
	"context"
	"time"

	"zeneva/internal/domain"
)

// CategoryTotal is one slice of spending over a period.
type CategoryTotal struct {
	Category    string
	AmountCents int64
}

type Repository interface {
	Create(ctx context.Context, expense *domain.Expense) (*domain.Expense, error)
	ListByTenant(ctx context.Context, tenantID string, from, to time.Time) ([]domain.Expense, error)
	TotalsByCategory(ctx context.Context, tenantID string, from, to time.Time) ([]CategoryTotal, error)
	Delete(ctx context.Context, tenantID, id string) error
}

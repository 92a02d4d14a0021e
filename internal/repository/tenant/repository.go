package tenant

import (
	"context"
	"time"

	"zeneva/internal/domain"
)

type Repository interface {
	Create(ctx context.Context, tenant *domain.Tenant) (*domain.Tenant, error)
	GetByID(ctx context.Context, id string) (*domain.Tenant, error)
	GetBySlug(ctx context.Context, slug string) (*domain.Tenant, error)
	SetTrialEndsAt(ctx context.Context, id string, endsAt time.Time) error
	SetPlan(ctx context.Context, id, plan string) error
}

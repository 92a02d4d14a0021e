package customer

import (
	"context"

	"zeneva/internal/domain"
)

type Repository interface {
	Create(ctx context.Context, customer *domain.Customer) (*domain.Customer, error)
	GetByID(ctx context.Context, tenantID, id string) (*domain.Customer, error)
	ListByTenant(ctx context.Context, tenantID string) ([]domain.Customer, error)
	Update(ctx context.Context, customer *domain.Customer) (*domain.Customer, error)
	Delete(ctx context.Context, tenantID, id string) error
}

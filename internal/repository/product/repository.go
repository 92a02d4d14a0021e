package product

import (
	"context"

	"zeneva/internal/domain"
)

type Repository interface {
	Create(ctx context.Context, product *domain.Product) (*domain.Product, error)
	Upsert(ctx context.Context, product domain.Product) (*domain.Product, error)
	GetByID(ctx context.Context, tenantID, id string) (*domain.Product, error)
	GetBySKU(ctx context.Context, tenantID, sku string) (*domain.Product, error)
	ListByTenant(ctx context.Context, tenantID string) ([]domain.Product, error)
	ListLowStock(ctx context.Context, tenantID string) ([]domain.Product, error)
	Update(ctx context.Context, product *domain.Product) (*domain.Product, error)
	AdjustStock(ctx context.Context, tenantID, id string, delta int) (*domain.Product, error)
	Delete(ctx context.Context, tenantID, id string) error
}

package cache

import (
	"context"
	"errors"

	"zeneva/internal/domain"
)

// ProductCache fronts catalog lookups on the hot storefront path.
type ProductCache interface {
	Get(ctx context.Context, tenantID, productID string) (*domain.Product, error)
	Set(ctx context.Context, tenantID string, product *domain.Product) error
	Delete(ctx context.Context, tenantID, productID string) error
}

var ErrCacheMiss = errors.New("cache miss")

// Noop is used when no Redis address is configured; every lookup goes
// straight to the repository.
type Noop struct{}

func (Noop) Get(context.Context, string, string) (*domain.Product, error) {
	return nil, ErrCacheMiss
}

func (Noop) Set(context.Context, string, *domain.Product) error { return nil }

func (Noop) Delete(context.Context, string, string) error { return nil }

package catalog

import (
	"context"
	"errors"
	"log"
	"strings"

	"golang.org/x/sync/singleflight"

	"zeneva/internal/cache"
	"zeneva/internal/domain"
	productrepo "zeneva/internal/repository/product"
)

// Service owns the product catalog: CRUD, stock adjustments, and the
// cached lookup the storefront and POS screens hit on every scan.
type Service struct {
	repo   productrepo.Repository
	cache  cache.ProductCache
	logger *log.Logger
	sfg    singleflight.Group
}

func New(repo productrepo.Repository, productCache cache.ProductCache, logger *log.Logger) *Service {
	if productCache == nil {
		productCache = cache.Noop{}
	}
	return &Service{repo: repo, cache: productCache, logger: logger}
}

type CreateInput struct {
	SKU         string `json:"sku"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Category    string `json:"category"`
	PriceCents  int64  `json:"priceCents"`
	Currency    string `json:"currency"`
	StockQty    int    `json:"stockQty"`
	LowStockAt  int    `json:"lowStockAt"`
	ImageURL    string `json:"imageUrl"`
}

func (s *Service) Create(ctx context.Context, tenantID string, in CreateInput) (*domain.Product, error) {
	sku := strings.ToUpper(strings.TrimSpace(in.SKU))
	name := strings.TrimSpace(in.Name)
	if sku == "" {
		return nil, errors.New("sku required")
	}
	if name == "" {
		return nil, errors.New("name required")
	}
	if in.PriceCents < 0 {
		return nil, errors.New("price must not be negative")
	}
	if in.StockQty < 0 {
		return nil, errors.New("stock must not be negative")
	}
	return s.repo.Create(ctx, &domain.Product{
		TenantID:    tenantID,
		SKU:         sku,
		Name:        name,
		Description: strings.TrimSpace(in.Description),
		Category:    strings.TrimSpace(in.Category),
		PriceCents:  in.PriceCents,
		Currency:    in.Currency,
		StockQty:    in.StockQty,
		LowStockAt:  in.LowStockAt,
		ImageURL:    in.ImageURL,
	})
}

func (s *Service) Update(ctx context.Context, tenantID, id string, in CreateInput) (*domain.Product, error) {
	sku := strings.ToUpper(strings.TrimSpace(in.SKU))
	if sku == "" || strings.TrimSpace(in.Name) == "" {
		return nil, errors.New("sku and name required")
	}
	updated, err := s.repo.Update(ctx, &domain.Product{
		ID:          id,
		TenantID:    tenantID,
		SKU:         sku,
		Name:        strings.TrimSpace(in.Name),
		Description: strings.TrimSpace(in.Description),
		Category:    strings.TrimSpace(in.Category),
		PriceCents:  in.PriceCents,
		Currency:    in.Currency,
		LowStockAt:  in.LowStockAt,
		ImageURL:    in.ImageURL,
	})
	if err != nil {
		return nil, err
	}
	s.invalidate(ctx, tenantID, id)
	return updated, nil
}

func (s *Service) Delete(ctx context.Context, tenantID, id string) error {
	if err := s.repo.Delete(ctx, tenantID, id); err != nil {
		return err
	}
	s.invalidate(ctx, tenantID, id)
	return nil
}

// Get serves the cached lookup. Concurrent misses for the same product
// collapse into one repository read.
func (s *Service) Get(ctx context.Context, tenantID, id string) (*domain.Product, error) {
	v, err, _ := s.sfg.Do(tenantID+"/"+id, func() (interface{}, error) {
		p, err := s.cache.Get(ctx, tenantID, id)
		if err == nil {
			p.TenantID = tenantID
			return p, nil
		}
		if !errors.Is(err, cache.ErrCacheMiss) {
			s.logger.Printf("product cache get: %v", err)
		}

		p, err = s.repo.GetByID(ctx, tenantID, id)
		if err != nil {
			return nil, err
		}
		go func() {
			if err := s.cache.Set(context.Background(), tenantID, p); err != nil {
				s.logger.Printf("product cache set: %v", err)
			}
		}()
		return p, nil
	})
	if err != nil {
		return nil, err
	}
	return v.(*domain.Product), nil
}

func (s *Service) GetBySKU(ctx context.Context, tenantID, sku string) (*domain.Product, error) {
	return s.repo.GetBySKU(ctx, tenantID, strings.ToUpper(strings.TrimSpace(sku)))
}

func (s *Service) List(ctx context.Context, tenantID string) ([]domain.Product, error) {
	return s.repo.ListByTenant(ctx, tenantID)
}

func (s *Service) ListLowStock(ctx context.Context, tenantID string) ([]domain.Product, error) {
	return s.repo.ListLowStock(ctx, tenantID)
}

// AdjustStock applies a manual stock correction (restock or shrinkage).
func (s *Service) AdjustStock(ctx context.Context, tenantID, id string, delta int) (*domain.Product, error) {
	p, err := s.repo.AdjustStock(ctx, tenantID, id, delta)
	if err != nil {
		return nil, err
	}
	s.invalidate(ctx, tenantID, id)
	return p, nil
}

func (s *Service) invalidate(ctx context.Context, tenantID, id string) {
	if err := s.cache.Delete(ctx, tenantID, id); err != nil {
		s.logger.Printf("product cache delete: %v", err)
	}
}

package customer

import (
	"context"
	"errors"
	"strings"

	"zeneva/internal/domain"
	custrepo "zeneva/internal/repository/customer"
)

// Service is the CRM layer: the customers a tenant can attach to a
// sale, plus the rollups the receipt writer maintains for them.
type Service struct {
	repo custrepo.Repository
}

func New(repo custrepo.Repository) *Service {
	return &Service{repo: repo}
}

type Input struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	Phone string `json:"phone"`
	Notes string `json:"notes"`
}

func (s *Service) Create(ctx context.Context, tenantID string, in Input) (*domain.Customer, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return nil, errors.New("name required")
	}
	return s.repo.Create(ctx, &domain.Customer{
		TenantID: tenantID,
		Name:     name,
		Email:    strings.TrimSpace(strings.ToLower(in.Email)),
		Phone:    strings.TrimSpace(in.Phone),
		Notes:    in.Notes,
	})
}

func (s *Service) Update(ctx context.Context, tenantID, id string, in Input) (*domain.Customer, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return nil, errors.New("name required")
	}
	return s.repo.Update(ctx, &domain.Customer{
		ID:       id,
		TenantID: tenantID,
		Name:     name,
		Email:    strings.TrimSpace(strings.ToLower(in.Email)),
		Phone:    strings.TrimSpace(in.Phone),
		Notes:    in.Notes,
	})
}

func (s *Service) Get(ctx context.Context, tenantID, id string) (*domain.Customer, error) {
	return s.repo.GetByID(ctx, tenantID, id)
}

func (s *Service) List(ctx context.Context, tenantID string) ([]domain.Customer, error) {
	return s.repo.ListByTenant(ctx, tenantID)
}

func (s *Service) Delete(ctx context.Context, tenantID, id string) error {
	return s.repo.Delete(ctx, tenantID, id)
}

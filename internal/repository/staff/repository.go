package staff

import (
	"context"

	"zeneva/internal/domain"
)

type Repository interface {
	Create(ctx context.Context, staff *domain.Staff) (*domain.Staff, error)
	GetByID(ctx context.Context, tenantID, id string) (*domain.Staff, error)
	GetByEmail(ctx context.Context, tenantID, email string) (*domain.Staff, error)
}

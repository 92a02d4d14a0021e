package staff

import (
	"context"
	"errors"

	"zeneva/internal/domain"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

const columns = `id::text, tenant_id::text, email, password_hash, name, role, created_at`

type postgresRepo struct {
	pool *pgxpool.Pool
}

func NewPostgres(pool *pgxpool.Pool) Repository {
	return &postgresRepo{pool: pool}
}

func (r *postgresRepo) Create(ctx context.Context, s *domain.Staff) (*domain.Staff, error) {
	const q = `
INSERT INTO staff (tenant_id, email, password_hash, name, role)
VALUES ($1, $2, $3, $4, $5)
RETURNING ` + columns
	out, err := scanStaff(r.pool.QueryRow(ctx, q, s.TenantID, s.Email, s.PasswordHash, s.Name, s.Role))
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return nil, domain.ErrAlreadyExists
		}
		return nil, err
	}
	return out, nil
}

func (r *postgresRepo) GetByID(ctx context.Context, tenantID, id string) (*domain.Staff, error) {
	const q = `SELECT ` + columns + ` FROM staff WHERE tenant_id = $1 AND id = $2`
	return scanStaff(r.pool.QueryRow(ctx, q, tenantID, id))
}

func (r *postgresRepo) GetByEmail(ctx context.Context, tenantID, email string) (*domain.Staff, error) {
	const q = `SELECT ` + columns + ` FROM staff WHERE tenant_id = $1 AND email = $2`
	return scanStaff(r.pool.QueryRow(ctx, q, tenantID, email))
}

func scanStaff(row pgx.Row) (*domain.Staff, error) {
	var s domain.Staff
	err := row.Scan(&s.ID, &s.TenantID, &s.Email, &s.PasswordHash, &s.Name, &s.Role, &s.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &s, nil
}

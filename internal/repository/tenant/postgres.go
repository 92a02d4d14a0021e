package tenant

import (
	"context"
	"errors"
	"time"

	"zeneva/internal/domain"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

type postgresRepo struct {
	pool *pgxpool.Pool
}

func NewPostgres(pool *pgxpool.Pool) Repository {
	return &postgresRepo{pool: pool}
}

func (r *postgresRepo) Create(ctx context.Context, t *domain.Tenant) (*domain.Tenant, error) {
	const q = `
INSERT INTO tenants (slug, name, email, plan, trial_ends_at)
VALUES ($1, $2, $3, $4, $5)
RETURNING id::text, created_at
`
	out := *t
	err := r.pool.QueryRow(ctx, q, t.Slug, t.Name, t.Email, t.Plan, t.TrialEndsAt).Scan(&out.ID, &out.CreatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return nil, domain.ErrAlreadyExists
		}
		return nil, err
	}
	return &out, nil
}

func (r *postgresRepo) GetByID(ctx context.Context, id string) (*domain.Tenant, error) {
	const q = `
SELECT id::text, slug, name, email, plan, trial_ends_at, created_at
FROM tenants
WHERE id = $1
`
	return r.fetch(ctx, q, id)
}

func (r *postgresRepo) GetBySlug(ctx context.Context, slug string) (*domain.Tenant, error) {
	const q = `
SELECT id::text, slug, name, email, plan, trial_ends_at, created_at
FROM tenants
WHERE slug = $1
`
	return r.fetch(ctx, q, slug)
}

func (r *postgresRepo) SetTrialEndsAt(ctx context.Context, id string, endsAt time.Time) error {
	cmd, err := r.pool.Exec(ctx, `UPDATE tenants SET trial_ends_at = $1 WHERE id = $2`, endsAt, id)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *postgresRepo) SetPlan(ctx context.Context, id, plan string) error {
	cmd, err := r.pool.Exec(ctx, `UPDATE tenants SET plan = $1 WHERE id = $2`, plan, id)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *postgresRepo) fetch(ctx context.Context, q string, arg any) (*domain.Tenant, error) {
	var t domain.Tenant
	err := r.pool.QueryRow(ctx, q, arg).Scan(&t.ID, &t.Slug, &t.Name, &t.Email, &t.Plan, &t.TrialEndsAt, &t.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &t, nil
}

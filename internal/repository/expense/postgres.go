package expense

import (
	"context"
	"time"

	"zeneva/internal/domain"
	"github.com/jackc/pgx/v5/pgxpool"
)

type postgresRepo struct {
	pool *pgxpool.Pool
}

func NewPostgres(pool *pgxpool.Pool) Repository {
	return &postgresRepo{pool: pool}
}

func (r *postgresRepo) Create(ctx context.Context, e *domain.Expense) (*domain.Expense, error) {
	const q = `
INSERT INTO expenses (tenant_id, category, description, amount_cents, incurred_at)
VALUES ($1, $2, $3, $4, $5)
RETURNING id::text, created_at
`
	out := *e
	if err := r.pool.QueryRow(ctx, q, e.TenantID, e.Category, e.Description, e.AmountCents, e.IncurredAt).Scan(&out.ID, &out.CreatedAt); err != nil {
		return nil, err
	}
	return &out, nil
}

func (r *postgresRepo) ListByTenant(ctx context.Context, tenantID string, from, to time.Time) ([]domain.Expense, error) {
	const q = `
SELECT id::text, tenant_id::text, category, description, amount_cents, incurred_at, created_at
FROM expenses
WHERE tenant_id = $1 AND incurred_at >= $2 AND incurred_at < $3
ORDER BY incurred_at DESC
`
	rows, err := r.pool.Query(ctx, q, tenantID, from, to)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []domain.Expense
	for rows.Next() {
		var e domain.Expense
		if err := rows.Scan(&e.ID, &e.TenantID, &e.Category, &e.Description, &e.AmountCents, &e.IncurredAt, &e.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, e)
	}
	return out, rows.Err()
}

func (r *postgresRepo) TotalsByCategory(ctx context.Context, tenantID string, from, to time.Time) ([]CategoryTotal, error) {
	const q = `
SELECT category, COALESCE(SUM(amount_cents), 0)
FROM expenses
WHERE tenant_id = $1 AND incurred_at >= $2 AND incurred_at < $3
GROUP BY category
ORDER BY 2 DESC
`
	rows, err := r.pool.Query(ctx, q, tenantID, from, to)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []CategoryTotal
	for rows.Next() {
		var ct CategoryTotal
		if err := rows.Scan(&ct.Category, &ct.AmountCents); err != nil {
			return nil, err
		}
		out = append(out, ct)
	}
	return out, rows.Err()
}

func (r *postgresRepo) Delete(ctx context.Context, tenantID, id string) error {
	cmd, err := r.pool.Exec(ctx, `DELETE FROM expenses WHERE tenant_id = $1 AND id = $2`, tenantID, id)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

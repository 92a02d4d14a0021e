package customer

import (
	"context"
	"errors"
	"log"

	"zeneva/internal/domain"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const columns = `id::text, tenant_id::text, name, email, phone, notes, purchase_count, total_spent_cents, created_at`

type postgresRepo struct {
	pool   *pgxpool.Pool
	logger *log.Logger
}

func NewPostgres(pool *pgxpool.Pool, logger *log.Logger) Repository {
	return &postgresRepo{pool: pool, logger: logger}
}

func (r *postgresRepo) Create(ctx context.Context, c *domain.Customer) (*domain.Customer, error) {
	const q = `
INSERT INTO customers (tenant_id, name, email, phone, notes)
VALUES ($1, $2, $3, $4, $5)
RETURNING ` + columns
	return scanCustomer(r.pool.QueryRow(ctx, q, c.TenantID, c.Name, c.Email, c.Phone, c.Notes))
}

func (r *postgresRepo) GetByID(ctx context.Context, tenantID, id string) (*domain.Customer, error) {
	const q = `SELECT ` + columns + ` FROM customers WHERE tenant_id = $1 AND id = $2`
	return scanCustomer(r.pool.QueryRow(ctx, q, tenantID, id))
}

func (r *postgresRepo) ListByTenant(ctx context.Context, tenantID string) ([]domain.Customer, error) {
	const q = `SELECT ` + columns + ` FROM customers WHERE tenant_id = $1 ORDER BY name ASC`
	rows, err := r.pool.Query(ctx, q, tenantID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []domain.Customer
	for rows.Next() {
		var c domain.Customer
		if err := rows.Scan(&c.ID, &c.TenantID, &c.Name, &c.Email, &c.Phone, &c.Notes, &c.PurchaseCount, &c.TotalSpentCents, &c.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, rows.Err()
}

func (r *postgresRepo) Update(ctx context.Context, c *domain.Customer) (*domain.Customer, error) {
	const q = `
UPDATE customers
SET name = $3, email = $4, phone = $5, notes = $6
WHERE tenant_id = $1 AND id = $2
RETURNING ` + columns
	return scanCustomer(r.pool.QueryRow(ctx, q, c.TenantID, c.ID, c.Name, c.Email, c.Phone, c.Notes))
}

func (r *postgresRepo) Delete(ctx context.Context, tenantID, id string) error {
	cmd, err := r.pool.Exec(ctx, `DELETE FROM customers WHERE tenant_id = $1 AND id = $2`, tenantID, id)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func scanCustomer(row pgx.Row) (*domain.Customer, error) {
	var c domain.Customer
	err := row.Scan(&c.ID, &c.TenantID, &c.Name, &c.Email, &c.Phone, &c.Notes, &c.PurchaseCount, &c.TotalSpentCents, &c.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &c, nil
}

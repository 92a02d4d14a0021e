package product

import (
	"context"
	"errors"

	"zeneva/internal/domain"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

const columns = `id::text, tenant_id::text, sku, name, description, category, price_cents, currency, stock_qty, low_stock_at, image_url, active, created_at`

type postgresRepo struct {
	pool *pgxpool.Pool
}

func NewPostgres(pool *pgxpool.Pool) Repository {
	return &postgresRepo{pool: pool}
}

func (r *postgresRepo) Create(ctx context.Context, p *domain.Product) (*domain.Product, error) {
	const q = `
INSERT INTO products (tenant_id, sku, name, description, category, price_cents, currency, stock_qty, low_stock_at, image_url, active)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, true)
RETURNING ` + columns
	row := r.pool.QueryRow(ctx, q, p.TenantID, p.SKU, p.Name, p.Description, p.Category, p.PriceCents, p.Currency, p.StockQty, p.LowStockAt, p.ImageURL)
	out, err := scanProduct(row)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return nil, domain.ErrAlreadyExists
		}
		return nil, err
	}
	return out, nil
}

// Upsert inserts or refreshes a product by (tenant, sku). Used by the
// importer and seeder; stock is replaced, not accumulated.
func (r *postgresRepo) Upsert(ctx context.Context, p domain.Product) (*domain.Product, error) {
	const q = `
INSERT INTO products (tenant_id, sku, name, description, category, price_cents, currency, stock_qty, low_stock_at, image_url, active)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, true)
ON CONFLICT (tenant_id, sku) DO UPDATE
SET name = EXCLUDED.name,
    description = EXCLUDED.description,
    category = EXCLUDED.category,
    price_cents = EXCLUDED.price_cents,
    currency = EXCLUDED.currency,
    stock_qty = EXCLUDED.stock_qty,
    low_stock_at = EXCLUDED.low_stock_at,
    image_url = EXCLUDED.image_url,
    active = true
RETURNING ` + columns
	row := r.pool.QueryRow(ctx, q, p.TenantID, p.SKU, p.Name, p.Description, p.Category, p.PriceCents, p.Currency, p.StockQty, p.LowStockAt, p.ImageURL)
	return scanProduct(row)
}

func (r *postgresRepo) GetByID(ctx context.Context, tenantID, id string) (*domain.Product, error) {
	const q = `SELECT ` + columns + ` FROM products WHERE tenant_id = $1 AND id = $2`
	return scanProduct(r.pool.QueryRow(ctx, q, tenantID, id))
}

func (r *postgresRepo) GetBySKU(ctx context.Context, tenantID, sku string) (*domain.Product, error) {
	const q = `SELECT ` + columns + ` FROM products WHERE tenant_id = $1 AND sku = $2`
	return scanProduct(r.pool.QueryRow(ctx, q, tenantID, sku))
}

func (r *postgresRepo) ListByTenant(ctx context.Context, tenantID string) ([]domain.Product, error) {
	const q = `SELECT ` + columns + ` FROM products WHERE tenant_id = $1 AND active ORDER BY name ASC`
	return r.list(ctx, q, tenantID)
}

func (r *postgresRepo) ListLowStock(ctx context.Context, tenantID string) ([]domain.Product, error) {
	const q = `SELECT ` + columns + ` FROM products WHERE tenant_id = $1 AND active AND stock_qty <= low_stock_at ORDER BY stock_qty ASC`
	return r.list(ctx, q, tenantID)
}

func (r *postgresRepo) Update(ctx context.Context, p *domain.Product) (*domain.Product, error) {
	const q = `
UPDATE products
SET sku = $3, name = $4, description = $5, category = $6, price_cents = $7, currency = $8, low_stock_at = $9, image_url = $10
WHERE tenant_id = $1 AND id = $2
RETURNING ` + columns
	row := r.pool.QueryRow(ctx, q, p.TenantID, p.ID, p.SKU, p.Name, p.Description, p.Category, p.PriceCents, p.Currency, p.LowStockAt, p.ImageURL)
	return scanProduct(row)
}

// AdjustStock applies a delta; negative deltas fail with
// ErrInsufficientStock instead of going below zero.
func (r *postgresRepo) AdjustStock(ctx context.Context, tenantID, id string, delta int) (*domain.Product, error) {
	const q = `
UPDATE products
SET stock_qty = stock_qty + $3
WHERE tenant_id = $1 AND id = $2 AND stock_qty + $3 >= 0
RETURNING ` + columns
	out, err := scanProduct(r.pool.QueryRow(ctx, q, tenantID, id, delta))
	if errors.Is(err, domain.ErrNotFound) {
		// Either the product is missing or the delta would underflow.
		if _, getErr := r.GetByID(ctx, tenantID, id); getErr == nil {
			return nil, domain.ErrInsufficientStock
		}
		return nil, domain.ErrNotFound
	}
	return out, err
}

func (r *postgresRepo) Delete(ctx context.Context, tenantID, id string) error {
	cmd, err := r.pool.Exec(ctx, `UPDATE products SET active = false WHERE tenant_id = $1 AND id = $2`, tenantID, id)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *postgresRepo) list(ctx context.Context, q string, args ...any) ([]domain.Product, error) {
	rows, err := r.pool.Query(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []domain.Product
	for rows.Next() {
		var p domain.Product
		if err := rows.Scan(
			&p.ID, &p.TenantID, &p.SKU, &p.Name, &p.Description, &p.Category,
			&p.PriceCents, &p.Currency, &p.StockQty, &p.LowStockAt, &p.ImageURL, &p.Active, &p.CreatedAt,
		); err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, rows.Err()
}

func scanProduct(row pgx.Row) (*domain.Product, error) {
	var p domain.Product
	err := row.Scan(
		&p.ID, &p.TenantID, &p.SKU, &p.Name, &p.Description, &p.Category,
		&p.PriceCents, &p.Currency, &p.StockQty, &p.LowStockAt, &p.ImageURL, &p.Active, &p.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &p, nil
}

// Package seed loads a demo tenant with staff, products, and customers
// for manual testing. Safe to run repeatedly.
package seed

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"golang.org/x/crypto/bcrypt"
)

type productSeed struct {
	SKU        string
	Name       string
	Category   string
	PriceCents int64
	StockQty   int
	LowStockAt int
}

type customerSeed struct {
	Name  string
	Email string
	Phone string
}

// Apply inserts the demo data. Idempotent via ON CONFLICT.
func Apply(ctx context.Context, pool *pgxpool.Pool) error {
	tenantID, err := ensureTenant(ctx, pool, "demo-store", "Demo Store", "owner@demo-store.test")
	if err != nil {
		return fmt.Errorf("ensure tenant: %w", err)
	}

	if err := ensureStaff(ctx, pool, tenantID, "owner@demo-store.test", "demo-password", "Demo Owner", "owner"); err != nil {
		return fmt.Errorf("ensure staff: %w", err)
	}

	products := []productSeed{
		{SKU: "TEE-BLK-M", Name: "Black T-Shirt (M)", Category: "apparel", PriceCents: 2500, StockQty: 40, LowStockAt: 5},
		{SKU: "TEE-WHT-M", Name: "White T-Shirt (M)", Category: "apparel", PriceCents: 2500, StockQty: 35, LowStockAt: 5},
		{SKU: "MUG-LOGO", Name: "Logo Mug", Category: "kitchen", PriceCents: 1200, StockQty: 60, LowStockAt: 10},
		{SKU: "CAP-NVY", Name: "Navy Cap", Category: "apparel", PriceCents: 1800, StockQty: 3, LowStockAt: 5},
	}
	for _, p := range products {
		if err := upsertProduct(ctx, pool, tenantID, p); err != nil {
			return fmt.Errorf("upsert product %s: %w", p.SKU, err)
		}
	}

	customers := []customerSeed{
		{Name: "Ada Obi", Email: "ada@example.test", Phone: "+2348010000001"},
		{Name: "Ben Eze", Email: "ben@example.test", Phone: "+2348010000002"},
	}
	for _, c := range customers {
		if err := upsertCustomer(ctx, pool, tenantID, c); err != nil {
			return fmt.Errorf("upsert customer %s: %w", c.Email, err)
		}
	}

	return nil
}

func ensureTenant(ctx context.Context, pool *pgxpool.Pool, slug, name, email string) (string, error) {
	const q = `
INSERT INTO tenants (slug, name, email, plan, trial_ends_at)
VALUES ($1, $2, $3, 'trial', now() + interval '14 days')
ON CONFLICT (slug) DO UPDATE SET name = EXCLUDED.name
RETURNING id::text
`
	var id string
	if err := pool.QueryRow(ctx, q, slug, name, email).Scan(&id); err != nil {
		return "", err
	}
	return id, nil
}

func ensureStaff(ctx context.Context, pool *pgxpool.Pool, tenantID, email, password, name, role string) error {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	const q = `
INSERT INTO staff (tenant_id, email, password_hash, name, role)
VALUES ($1, $2, $3, $4, $5)
ON CONFLICT (tenant_id, email) DO NOTHING
`
	_, err = pool.Exec(ctx, q, tenantID, email, string(hash), name, role)
	return err
}

func upsertProduct(ctx context.Context, pool *pgxpool.Pool, tenantID string, p productSeed) error {
	const q = `
INSERT INTO products (tenant_id, sku, name, category, price_cents, currency, stock_qty, low_stock_at, active)
VALUES ($1, $2, $3, $4, $5, 'NGN', $6, $7, true)
ON CONFLICT (tenant_id, sku) DO UPDATE
SET name = EXCLUDED.name,
    category = EXCLUDED.category,
    price_cents = EXCLUDED.price_cents,
    low_stock_at = EXCLUDED.low_stock_at,
    active = true
`
	_, err := pool.Exec(ctx, q, tenantID, p.SKU, p.Name, p.Category, p.PriceCents, p.StockQty, p.LowStockAt)
	return err
}

func upsertCustomer(ctx context.Context, pool *pgxpool.Pool, tenantID string, c customerSeed) error {
	const q = `
INSERT INTO customers (tenant_id, name, email, phone)
SELECT $1, $2, $3, $4
WHERE NOT EXISTS (
	SELECT 1 FROM customers WHERE tenant_id = $1 AND email = $3
)
`
	_, err := pool.Exec(ctx, q, tenantID, c.Name, c.Email, c.Phone)
	return err
}

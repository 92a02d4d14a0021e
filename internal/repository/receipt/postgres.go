package receipt

import (
	"context"
	"errors"
	"time"

	"zeneva/internal/domain"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const columns = `id::text, tenant_id::text, number, customer_id::text, staff_id::text, payment_method, subtotal_cents, discount_cents, tax_rate_pct, tax_cents, total_cents, notes, created_at`

type postgresRepo struct {
	pool *pgxpool.Pool
}

func NewPostgres(pool *pgxpool.Pool) Repository {
	return &postgresRepo{pool: pool}
}

func (r *postgresRepo) Create(ctx context.Context, in CreateInput) (*domain.Receipt, error) {
	tx, err := r.pool.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return nil, err
	}
	defer tx.Rollback(ctx)

	const insertReceipt = `
INSERT INTO receipts (tenant_id, number, customer_id, staff_id, payment_method, subtotal_cents, discount_cents, tax_rate_pct, tax_cents, total_cents, notes)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
RETURNING id::text, created_at
`
	rec := domain.Receipt{
		TenantID:      in.TenantID,
		Number:        in.Number,
		CustomerID:    in.CustomerID,
		StaffID:       in.StaffID,
		PaymentMethod: in.PaymentMethod,
		SubtotalCents: in.SubtotalCents,
		DiscountCents: in.DiscountCents,
		TaxRatePct:    in.TaxRatePct,
		TaxCents:      in.TaxCents,
		TotalCents:    in.TotalCents,
		Notes:         in.Notes,
	}
	if err := tx.QueryRow(ctx, insertReceipt,
		in.TenantID, in.Number, in.CustomerID, in.StaffID, string(in.PaymentMethod),
		in.SubtotalCents, in.DiscountCents, in.TaxRatePct, in.TaxCents, in.TotalCents, in.Notes,
	).Scan(&rec.ID, &rec.CreatedAt); err != nil {
		return nil, err
	}

	for i, line := range in.Lines {
		total := line.UnitPriceCents * int64(line.Quantity)
		var lineID string
		if err := tx.QueryRow(ctx, `
INSERT INTO receipt_lines (receipt_id, product_id, name, quantity, unit_price_cents, total_cents, position)
VALUES ($1, $2, $3, $4, $5, $6, $7)
RETURNING id::text
`, rec.ID, line.ProductID, line.Name, line.Quantity, line.UnitPriceCents, total, i).Scan(&lineID); err != nil {
			return nil, err
		}
		rec.Lines = append(rec.Lines, domain.ReceiptLine{
			ID:             lineID,
			ReceiptID:      rec.ID,
			ProductID:      line.ProductID,
			Name:           line.Name,
			Quantity:       line.Quantity,
			UnitPriceCents: line.UnitPriceCents,
			TotalCents:     total,
		})

		cmd, err := tx.Exec(ctx, `
UPDATE products
SET stock_qty = stock_qty - $3
WHERE tenant_id = $1 AND id = $2 AND stock_qty >= $3
`, in.TenantID, line.ProductID, line.Quantity)
		if err != nil {
			return nil, err
		}
		if cmd.RowsAffected() == 0 {
			return nil, domain.ErrInsufficientStock
		}
	}

	if in.CustomerID != nil {
		if _, err := tx.Exec(ctx, `
UPDATE customers
SET purchase_count = purchase_count + 1,
    total_spent_cents = total_spent_cents + $3
WHERE tenant_id = $1 AND id = $2
`, in.TenantID, *in.CustomerID, in.TotalCents); err != nil {
			return nil, err
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, err
	}
	return &rec, nil
}

func (r *postgresRepo) GetByID(ctx context.Context, tenantID, id string) (*domain.Receipt, error) {
	const q = `SELECT ` + columns + ` FROM receipts WHERE tenant_id = $1 AND id = $2`
	rec, err := scanReceipt(r.pool.QueryRow(ctx, q, tenantID, id))
	if err != nil {
		return nil, err
	}

	const linesQuery = `
SELECT id::text, receipt_id::text, product_id::text, name, quantity, unit_price_cents, total_cents
FROM receipt_lines
WHERE receipt_id = $1
ORDER BY position ASC
`
	rows, err := r.pool.Query(ctx, linesQuery, rec.ID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var line domain.ReceiptLine
		if err := rows.Scan(&line.ID, &line.ReceiptID, &line.ProductID, &line.Name, &line.Quantity, &line.UnitPriceCents, &line.TotalCents); err != nil {
			return nil, err
		}
		rec.Lines = append(rec.Lines, line)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return rec, nil
}

func (r *postgresRepo) ListByTenant(ctx context.Context, tenantID string, from, to time.Time) ([]domain.Receipt, error) {
	const q = `
SELECT ` + columns + `
FROM receipts
WHERE tenant_id = $1 AND created_at >= $2 AND created_at < $3
ORDER BY created_at DESC
`
	rows, err := r.pool.Query(ctx, q, tenantID, from, to)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []domain.Receipt
	for rows.Next() {
		rec, err := scanReceipt(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, *rec)
	}
	return out, rows.Err()
}

func (r *postgresRepo) SummaryBetween(ctx context.Context, tenantID string, from, to time.Time) (*Summary, error) {
	const q = `
SELECT COUNT(*),
       COALESCE(SUM(subtotal_cents), 0),
       COALESCE(SUM(discount_cents), 0),
       COALESCE(SUM(tax_cents), 0),
       COALESCE(SUM(total_cents), 0)
FROM receipts
WHERE tenant_id = $1 AND created_at >= $2 AND created_at < $3
`
	var s Summary
	if err := r.pool.QueryRow(ctx, q, tenantID, from, to).Scan(
		&s.ReceiptCount, &s.SubtotalCents, &s.DiscountCents, &s.TaxCents, &s.TotalCents,
	); err != nil {
		return nil, err
	}
	return &s, nil
}

func scanReceipt(row pgx.Row) (*domain.Receipt, error) {
	var rec domain.Receipt
	var method string
	err := row.Scan(
		&rec.ID, &rec.TenantID, &rec.Number, &rec.CustomerID, &rec.StaffID, &method,
		&rec.SubtotalCents, &rec.DiscountCents, &rec.TaxRatePct, &rec.TaxCents, &rec.TotalCents,
		&rec.Notes, &rec.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	rec.PaymentMethod = domain.PaymentMethod(method)
	return &rec, nil
}

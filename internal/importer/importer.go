// Package importer loads a product catalog from a CSV export into one
// tenant. Rows upsert by SKU, so re-running the same file is safe.
package importer

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"zeneva/internal/domain"
)

type ProductWriter interface {
	Upsert(ctx context.Context, product domain.Product) (*domain.Product, error)
}

// CSVImporter reads catalog CSV rows and upserts products by SKU.
type CSVImporter struct {
	reader      *csv.Reader
	productRepo ProductWriter
	tenantID    string
	currency    string
}

func NewCSVImporter(r io.Reader, repo ProductWriter, tenantID, defaultCurrency string) *CSVImporter {
	csvr := csv.NewReader(r)
	csvr.FieldsPerRecord = -1 // rows may have trailing commas
	return &CSVImporter{
		reader:      csvr,
		productRepo: repo,
		tenantID:    tenantID,
		currency:    defaultCurrency,
	}
}

// Run parses CSV rows and upserts one product per row. The first error
// stops the run; rows already written stay written.
func (i *CSVImporter) Run(ctx context.Context) (int, error) {
	headers, err := i.reader.Read()
	if err != nil {
		return 0, fmt.Errorf("read headers: %w", err)
	}
	index := headerIndex(headers)
	if _, ok := index["sku"]; !ok {
		return 0, errors.New("csv has no sku column")
	}

	imported := 0
	line := 1
	for {
		record, err := i.reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		line++
		if err != nil {
			return imported, fmt.Errorf("read row %d: %w", line, err)
		}

		p, err := i.parseRow(record, index)
		if err != nil {
			return imported, fmt.Errorf("row %d: %w", line, err)
		}
		if p == nil {
			continue
		}

		if _, err := i.productRepo.Upsert(ctx, *p); err != nil {
			return imported, fmt.Errorf("upsert product %q: %w", p.SKU, err)
		}
		imported++
	}

	return imported, nil
}

func (i *CSVImporter) parseRow(record []string, index map[string]int) (*domain.Product, error) {
	sku := strings.ToUpper(pick(record, index, "sku"))
	name := pick(record, index, "name")
	if sku == "" && name == "" {
		return nil, nil // blank row
	}
	if sku == "" {
		return nil, errors.New("missing sku")
	}
	if name == "" {
		return nil, fmt.Errorf("missing name for sku %s", sku)
	}

	price, err := parseCents(pick(record, index, "price"))
	if err != nil {
		return nil, fmt.Errorf("sku %s: %w", sku, err)
	}

	stock := 0
	if raw := pick(record, index, "stock"); raw != "" {
		stock, err = strconv.Atoi(raw)
		if err != nil || stock < 0 {
			return nil, fmt.Errorf("sku %s: bad stock %q", sku, raw)
		}
	}
	lowStock := 0
	if raw := pick(record, index, "low_stock_at"); raw != "" {
		lowStock, err = strconv.Atoi(raw)
		if err != nil || lowStock < 0 {
			return nil, fmt.Errorf("sku %s: bad low_stock_at %q", sku, raw)
		}
	}

	currency := pick(record, index, "currency")
	if currency == "" {
		currency = i.currency
	}

	return &domain.Product{
		TenantID:    i.tenantID,
		SKU:         sku,
		Name:        name,
		Description: pick(record, index, "description"),
		Category:    pick(record, index, "category"),
		PriceCents:  price,
		Currency:    strings.ToUpper(currency),
		StockQty:    stock,
		LowStockAt:  lowStock,
		ImageURL:    pick(record, index, "image_url"),
		Active:      true,
	}, nil
}

// parseCents accepts either integer minor units ("2500") or a decimal
// major amount ("25.00").
func parseCents(raw string) (int64, error) {
	if raw == "" {
		return 0, errors.New("missing price")
	}
	if strings.Contains(raw, ".") {
		parts := strings.SplitN(raw, ".", 2)
		major, err := strconv.ParseInt(parts[0], 10, 64)
		if err != nil {
			return 0, fmt.Errorf("bad price %q", raw)
		}
		frac := parts[1]
		if len(frac) > 2 {
			return 0, fmt.Errorf("bad price %q", raw)
		}
		for len(frac) < 2 {
			frac += "0"
		}
		minor, err := strconv.ParseInt(frac, 10, 64)
		if err != nil {
			return 0, fmt.Errorf("bad price %q", raw)
		}
		if major < 0 {
			return 0, fmt.Errorf("negative price %q", raw)
		}
		return major*100 + minor, nil
	}
	cents, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || cents < 0 {
		return 0, fmt.Errorf("bad price %q", raw)
	}
	return cents, nil
}

func headerIndex(headers []string) map[string]int {
	idx := make(map[string]int, len(headers))
	for i, h := range headers {
		idx[strings.ToLower(strings.TrimSpace(h))] = i
	}
	return idx
}

func pick(record []string, index map[string]int, key string) string {
	pos, ok := index[key]
	if !ok || pos >= len(record) {
		return ""
	}
	return strings.TrimSpace(record[pos])
}

package domain

import "time"

type Product struct {
	ID          string    `json:"id"`
	TenantID    string    `json:"-"`
	SKU         string    `json:"sku"`
	Name        string    `json:"name"`
	Description string    `json:"description,omitempty"`
	Category    string    `json:"category,omitempty"`
	PriceCents  int64     `json:"priceCents"`
	Currency    string    `json:"currency"`
	StockQty    int       `json:"stockQty"`
	LowStockAt  int       `json:"lowStockAt"`
	ImageURL    string    `json:"imageUrl,omitempty"`
	Active      bool      `json:"active"`
	CreatedAt   time.Time `json:"createdAt"`
}

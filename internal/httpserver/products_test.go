package httpserver

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"zeneva/internal/domain"
)

func TestCreateProduct(t *testing.T) {
	env := newTestEnv(t)

	body := `{"sku":"TEE-01","name":"T-Shirt","priceCents":2500,"stockQty":10}`
	out := doJSON(t, env, http.MethodPost, "/tenants/acme/products", body, http.StatusCreated)
	if out["sku"] != "TEE-01" {
		t.Fatalf("sku = %v", out["sku"])
	}
	// currency defaulted from config
	if out["currency"] != "NGN" {
		t.Fatalf("currency = %v", out["currency"])
	}
}

func TestCreateProduct_Duplicate(t *testing.T) {
	env := newTestEnv(t)
	env.catalog.err = domain.ErrAlreadyExists

	body := `{"sku":"TEE-01","name":"T-Shirt","priceCents":2500}`
	doJSON(t, env, http.MethodPost, "/tenants/acme/products", body, http.StatusConflict)
}

func TestAdjustStock_Insufficient(t *testing.T) {
	env := newTestEnv(t)
	env.catalog.products["prd-1"] = &domain.Product{ID: "prd-1", Name: "Mug", StockQty: 2, Active: true}

	doJSON(t, env, http.MethodPost, "/tenants/acme/products/prd-1/stock", `{"delta":-5}`, http.StatusConflict)

	out := doJSON(t, env, http.MethodPost, "/tenants/acme/products/prd-1/stock", `{"delta":-2}`, http.StatusOK)
	if out["stockQty"].(float64) != 0 {
		t.Fatalf("stock = %v", out["stockQty"])
	}
}

func TestAdjustStock_ZeroDelta(t *testing.T) {
	env := newTestEnv(t)
	doJSON(t, env, http.MethodPost, "/tenants/acme/products/prd-1/stock", `{"delta":0}`, http.StatusBadRequest)
}

func TestStorefront_HidesInactive(t *testing.T) {
	env := newTestEnv(t)
	env.catalog.products["prd-1"] = &domain.Product{ID: "prd-1", Name: "Mug", Active: true}
	env.catalog.products["prd-2"] = &domain.Product{ID: "prd-2", Name: "Retired", Active: false}

	req := httptest.NewRequest(http.MethodGet, "/store/acme/products", nil)
	rec := httptest.NewRecorder()
	env.router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d body=%s", rec.Code, rec.Body.String())
	}
	if strings.Contains(rec.Body.String(), "Retired") {
		t.Fatalf("inactive product visible: %s", rec.Body.String())
	}
	if !strings.Contains(rec.Body.String(), "Mug") {
		t.Fatalf("active product missing: %s", rec.Body.String())
	}

	req = httptest.NewRequest(http.MethodGet, "/store/acme/products/prd-2", nil)
	rec = httptest.NewRecorder()
	env.router.ServeHTTP(rec, req)
	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404 for inactive product, got %d", rec.Code)
	}
}

func TestStorefront_NoAuthRequired(t *testing.T) {
	env := newTestEnv(t)

	req := httptest.NewRequest(http.MethodGet, "/store/acme/products", nil)
	rec := httptest.NewRecorder()
	env.router.ServeHTTP(rec, req)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200 without token, got %d", rec.Code)
	}
}

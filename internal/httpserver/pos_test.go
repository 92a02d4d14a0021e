package httpserver

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"zeneva/internal/domain"
)

func authedRequest(method, target, body string) *http.Request {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, target, nil)
	} else {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("Authorization", "Bearer token-abc")
	return req
}

func doJSON(t *testing.T, env *testEnv, method, target, body string, wantStatus int) map[string]any {
	t.Helper()
	rec := httptest.NewRecorder()
	env.router.ServeHTTP(rec, authedRequest(method, target, body))
	if rec.Code != wantStatus {
		t.Fatalf("%s %s: expected %d, got %d body=%s", method, target, wantStatus, rec.Code, rec.Body.String())
	}
	if rec.Body.Len() == 0 {
		return nil
	}
	var out map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &out); err != nil {
		t.Fatalf("decode response: %v body=%s", err, rec.Body.String())
	}
	return out
}

func openSession(t *testing.T, env *testEnv) string {
	t.Helper()
	out := doJSON(t, env, http.MethodPost, "/tenants/acme/pos/sessions", "", http.StatusCreated)
	id, _ := out["id"].(string)
	if id == "" {
		t.Fatalf("no session id in %v", out)
	}
	return id
}

func TestPOS_SessionFlow(t *testing.T) {
	env := newTestEnv(t)
	env.catalog.products["prd-1"] = &domain.Product{
		ID: "prd-1", TenantID: testTenant.ID, SKU: "TEE-01", Name: "T-Shirt",
		PriceCents: 2500, Currency: "NGN", StockQty: 10, Active: true,
	}

	id := openSession(t, env)
	base := "/tenants/acme/pos/sessions/" + id

	out := doJSON(t, env, http.MethodPost, base+"/items", `{"productId":"prd-1","quantity":2}`, http.StatusOK)
	totals := out["totals"].(map[string]any)
	if totals["subtotalCents"].(float64) != 5000 {
		t.Fatalf("subtotal = %v", totals["subtotalCents"])
	}

	// adding the same product again merges into one line
	out = doJSON(t, env, http.MethodPost, base+"/items", `{"productId":"prd-1","quantity":3}`, http.StatusOK)
	lines := out["lines"].([]any)
	if len(lines) != 1 {
		t.Fatalf("expected 1 line, got %d", len(lines))
	}
	if lines[0].(map[string]any)["quantity"].(float64) != 5 {
		t.Fatalf("quantity = %v", lines[0].(map[string]any)["quantity"])
	}

	doJSON(t, env, http.MethodPost, base+"/discount", `{"amountCents":2000}`, http.StatusOK)
	out = doJSON(t, env, http.MethodPost, base+"/tax-rate", `{"pct":7.5}`, http.StatusOK)
	totals = out["totals"].(map[string]any)
	// 12500 - 2000 = 10500 taxable, 7.5% = 788 tax
	if totals["taxCents"].(float64) != 788 {
		t.Fatalf("tax = %v", totals["taxCents"])
	}
	if totals["totalCents"].(float64) != 11288 {
		t.Fatalf("total = %v", totals["totalCents"])
	}

	doJSON(t, env, http.MethodPost, base+"/payment-method", `{"method":"cash"}`, http.StatusOK)
	doJSON(t, env, http.MethodPost, base+"/notes", `{"text":"walk-in"}`, http.StatusOK)

	doJSON(t, env, http.MethodPost, base+"/checkout", "", http.StatusCreated)
	if env.checkout.gotStaff != "stf-1" {
		t.Fatalf("staff id = %q", env.checkout.gotStaff)
	}
	snap := env.checkout.gotSnap
	if snap.Totals.TotalCents != 11288 || snap.PaymentMethod != domain.PaymentCash {
		t.Fatalf("unexpected snapshot %+v", snap)
	}
	if snap.Notes != "walk-in" {
		t.Fatalf("notes = %q", snap.Notes)
	}

	// session closed after checkout
	rec := httptest.NewRecorder()
	env.router.ServeHTTP(rec, authedRequest(http.MethodGet, base, ""))
	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404 after checkout, got %d", rec.Code)
	}
}

func TestPOS_CheckoutFailureKeepsSession(t *testing.T) {
	env := newTestEnv(t)
	env.catalog.products["prd-1"] = &domain.Product{
		ID: "prd-1", TenantID: testTenant.ID, Name: "T-Shirt", PriceCents: 2500, Active: true,
	}
	env.checkout.err = domain.ErrInsufficientStock

	id := openSession(t, env)
	base := "/tenants/acme/pos/sessions/" + id
	doJSON(t, env, http.MethodPost, base+"/items", `{"productId":"prd-1"}`, http.StatusOK)
	doJSON(t, env, http.MethodPost, base+"/payment-method", `{"method":"card"}`, http.StatusOK)

	doJSON(t, env, http.MethodPost, base+"/checkout", "", http.StatusConflict)

	// still open, cart intact
	out := doJSON(t, env, http.MethodGet, base, "", http.StatusOK)
	if len(out["lines"].([]any)) != 1 {
		t.Fatalf("expected cart to survive failed checkout: %v", out)
	}
}

func TestPOS_UpdateAndRemoveItem(t *testing.T) {
	env := newTestEnv(t)
	env.catalog.products["prd-1"] = &domain.Product{ID: "prd-1", Name: "Mug", PriceCents: 1200, Active: true}

	id := openSession(t, env)
	base := "/tenants/acme/pos/sessions/" + id
	doJSON(t, env, http.MethodPost, base+"/items", `{"productId":"prd-1","quantity":4}`, http.StatusOK)

	out := doJSON(t, env, http.MethodPatch, base+"/items/prd-1", `{"quantity":0}`, http.StatusOK)
	lines := out["lines"].([]any)
	if len(lines) != 1 || lines[0].(map[string]any)["quantity"].(float64) != 0 {
		t.Fatalf("expected zero-quantity line kept: %v", lines)
	}

	out = doJSON(t, env, http.MethodDelete, base+"/items/prd-1", "", http.StatusOK)
	if len(out["lines"].([]any)) != 0 {
		t.Fatalf("expected line removed: %v", out)
	}
}

func TestPOS_SelectAndDetachCustomer(t *testing.T) {
	env := newTestEnv(t)
	customers := &stubCustomerSvc{customers: map[string]*domain.Customer{
		"cus-1": {ID: "cus-1", TenantID: testTenant.ID, Name: "Ada"},
	}}
	router, err := buildRouter(logDiscard(), nil, Deps{
		Tenants:   env.tenants,
		Staff:     env.staff,
		Catalog:   env.catalog,
		Customers: customers,
		Checkout:  env.checkout,
		Expenses:  stubExpenseSvc{},
		POS:       env.pos,
	}, nil)
	if err != nil {
		t.Fatalf("build router: %v", err)
	}
	env.router = router

	id := openSession(t, env)
	base := "/tenants/acme/pos/sessions/" + id

	out := doJSON(t, env, http.MethodPost, base+"/customer", `{"customerId":"cus-1"}`, http.StatusOK)
	if out["customer"].(map[string]any)["name"] != "Ada" {
		t.Fatalf("customer not attached: %v", out)
	}

	out = doJSON(t, env, http.MethodPost, base+"/customer", `{"customerId":""}`, http.StatusOK)
	if _, ok := out["customer"]; ok {
		t.Fatalf("customer not detached: %v", out)
	}

	doJSON(t, env, http.MethodPost, base+"/customer", `{"customerId":"nope"}`, http.StatusNotFound)
}

func TestPOS_ResetRestoresDefaults(t *testing.T) {
	env := newTestEnv(t)
	env.catalog.products["prd-1"] = &domain.Product{ID: "prd-1", Name: "Mug", PriceCents: 1200, Active: true}

	id := openSession(t, env)
	base := "/tenants/acme/pos/sessions/" + id
	doJSON(t, env, http.MethodPost, base+"/items", `{"productId":"prd-1"}`, http.StatusOK)
	doJSON(t, env, http.MethodPost, base+"/tax-rate", `{"pct":0}`, http.StatusOK)
	doJSON(t, env, http.MethodPost, base+"/discount", `{"amountCents":100}`, http.StatusOK)

	out := doJSON(t, env, http.MethodPost, base+"/reset", "", http.StatusOK)
	if len(out["lines"].([]any)) != 0 {
		t.Fatalf("lines survived reset: %v", out)
	}
	if out["taxRatePct"].(float64) != 7.5 {
		t.Fatalf("tax rate = %v, want house default", out["taxRatePct"])
	}
	if out["discountCents"].(float64) != 0 {
		t.Fatalf("discount = %v", out["discountCents"])
	}
}

func TestPOS_BadPaymentMethod(t *testing.T) {
	env := newTestEnv(t)
	id := openSession(t, env)
	target := fmt.Sprintf("/tenants/acme/pos/sessions/%s/payment-method", id)
	doJSON(t, env, http.MethodPost, target, `{"method":"bitcoin"}`, http.StatusBadRequest)
}

func TestPOS_UnknownSession(t *testing.T) {
	env := newTestEnv(t)
	doJSON(t, env, http.MethodGet, "/tenants/acme/pos/sessions/no-such-session", "", http.StatusNotFound)
}

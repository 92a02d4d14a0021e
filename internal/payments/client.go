// Package payments proxies transaction initialization to a hosted
// Paystack-compatible gateway. Card charging itself happens on the
// gateway's checkout page; we only create and verify transactions.
package payments

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
)

var ErrNotConfigured = errors.New("payment gateway not configured")

type Client struct {
	baseURL   string
	secretKey string
	http      *http.Client
}

func NewClient(baseURL, secretKey string) *Client {
	return &Client{
		baseURL:   strings.TrimRight(baseURL, "/"),
		secretKey: secretKey,
		http:      &http.Client{Timeout: 15 * time.Second},
	}
}

func (c *Client) Configured() bool {
	return c.baseURL != "" && c.secretKey != ""
}

type InitializeInput struct {
	Email       string `json:"email"`
	AmountCents int64  `json:"amountCents"`
	Currency    string `json:"currency"`
	CallbackURL string `json:"callbackUrl"`
}

// Authorization is what the frontend needs to send the shopper to the
// gateway's checkout page.
type Authorization struct {
	AuthorizationURL string `json:"authorizationUrl"`
	AccessCode       string `json:"accessCode"`
	Reference        string `json:"reference"`
}

type Transaction struct {
	Reference   string `json:"reference"`
	Status      string `json:"status"`
	AmountCents int64  `json:"amountCents"`
	Currency    string `json:"currency"`
	PaidAt      string `json:"paidAt,omitempty"`
}

type gatewayEnvelope struct {
	Status  bool            `json:"status"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

// Initialize creates a transaction and returns the checkout
// authorization. The reference is generated here so a retry can be
// traced back to one sale.
func (c *Client) Initialize(ctx context.Context, in InitializeInput) (*Authorization, error) {
	if !c.Configured() {
		return nil, ErrNotConfigured
	}
	if in.Email == "" {
		return nil, errors.New("email required")
	}
	if in.AmountCents <= 0 {
		return nil, errors.New("amount must be positive")
	}

	reference := "zv-" + uuid.NewString()
	payload := map[string]any{
		"email":     in.Email,
		"amount":    in.AmountCents,
		"reference": reference,
	}
	if in.Currency != "" {
		payload["currency"] = in.Currency
	}
	if in.CallbackURL != "" {
		payload["callback_url"] = in.CallbackURL
	}

	var data struct {
		AuthorizationURL string `json:"authorization_url"`
		AccessCode       string `json:"access_code"`
		Reference        string `json:"reference"`
	}
	if err := c.call(ctx, http.MethodPost, "/transaction/initialize", payload, &data); err != nil {
		return nil, err
	}
	return &Authorization{
		AuthorizationURL: data.AuthorizationURL,
		AccessCode:       data.AccessCode,
		Reference:        data.Reference,
	}, nil
}

// Verify fetches the gateway's view of a transaction.
func (c *Client) Verify(ctx context.Context, reference string) (*Transaction, error) {
	if !c.Configured() {
		return nil, ErrNotConfigured
	}
	if strings.TrimSpace(reference) == "" {
		return nil, errors.New("reference required")
	}

	var data struct {
		Reference string `json:"reference"`
		Status    string `json:"status"`
		Amount    int64  `json:"amount"`
		Currency  string `json:"currency"`
		PaidAt    string `json:"paid_at"`
	}
	if err := c.call(ctx, http.MethodGet, "/transaction/verify/"+reference, nil, &data); err != nil {
		return nil, err
	}
	return &Transaction{
		Reference:   data.Reference,
		Status:      data.Status,
		AmountCents: data.Amount,
		Currency:    data.Currency,
		PaidAt:      data.PaidAt,
	}, nil
}

func (c *Client) call(ctx context.Context, method, path string, payload any, out any) error {
	var body *bytes.Reader
	if payload != nil {
		data, err := json.Marshal(payload)
		if err != nil {
			return err
		}
		body = bytes.NewReader(data)
	} else {
		body = bytes.NewReader(nil)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return err
	}
	req.Header.Set("Authorization", "Bearer "+c.secretKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("call payment gateway: %w", err)
	}
	defer resp.Body.Close()

	var envelope gatewayEnvelope
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil {
		return fmt.Errorf("decode gateway response: %w", err)
	}
	if resp.StatusCode != http.StatusOK || !envelope.Status {
		msg := envelope.Message
		if msg == "" {
			msg = fmt.Sprintf("status %d", resp.StatusCode)
		}
		return fmt.Errorf("payment gateway: %s", msg)
	}
	return json.Unmarshal(envelope.Data, out)
}

// Package restclient implements the admin core's CurrencyStore over the
// currency store's HTTP API.
package restclient

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/SscSPs/currency_admin/internal/apperrors"
	"github.com/SscSPs/currency_admin/internal/core/admin"
	"github.com/SscSPs/currency_admin/internal/core/domain"
	"github.com/SscSPs/currency_admin/internal/dto"
)

const maxBodyBytes = 8 << 20

var _ admin.CurrencyStore = (*Client)(nil)

// Client talks to the currency store. It is safe for concurrent use.
type Client struct {
	baseURL    string
	httpClient *http.Client
	tokens     TokenSource
	logger     *slog.Logger
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient replaces the default http.Client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		if hc != nil {
			c.httpClient = hc
		}
	}
}

// WithTokenSource sets how bearer tokens are obtained. Without one no
// Authorization header is sent.
func WithTokenSource(ts TokenSource) Option {
	return func(c *Client) {
		c.tokens = ts
	}
}

// WithLogger sets the logger used for request tracing.
func WithLogger(logger *slog.Logger) Option {
	return func(c *Client) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// New creates a client for the API rooted at baseURL, e.g.
// http://localhost:8080/api/v1.
func New(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: 60 * time.Second},
		logger:     slog.Default(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// ListCurrencies returns every currency, whatever the response shape.
func (c *Client) ListCurrencies(ctx context.Context) ([]domain.Currency, error) {
	body, err := c.do(ctx, http.MethodGet, "/currencies", nil)
	if err != nil {
		return nil, fmt.Errorf("list currencies: %w", err)
	}
	items, err := decodeList[dto.CurrencyResponse](body)
	if err != nil {
		return nil, fmt.Errorf("list currencies: %w", err)
	}
	currencies := make([]domain.Currency, len(items))
	for i, item := range items {
		currencies[i] = item.ToDomain()
	}
	return currencies, nil
}

// ListExchangeRates returns the exchange rate history.
func (c *Client) ListExchangeRates(ctx context.Context) ([]domain.ExchangeRate, error) {
	body, err := c.do(ctx, http.MethodGet, "/exchange-rates", nil)
	if err != nil {
		return nil, fmt.Errorf("list exchange rates: %w", err)
	}
	items, err := decodeList[dto.ExchangeRateResponse](body)
	if err != nil {
		return nil, fmt.Errorf("list exchange rates: %w", err)
	}
	rates := make([]domain.ExchangeRate, len(items))
	for i, item := range items {
		if rates[i], err = item.ToDomain(); err != nil {
			return nil, fmt.Errorf("list exchange rates: %w", err)
		}
	}
	return rates, nil
}

func (c *Client) CreateCurrency(ctx context.Context, draft domain.CurrencyDraft) (*domain.Currency, error) {
	return c.writeCurrency(ctx, http.MethodPost, "/currencies", dto.CurrencyRequestFromDraft(draft))
}

func (c *Client) UpdateCurrency(ctx context.Context, id int64, draft domain.CurrencyDraft) (*domain.Currency, error) {
	return c.writeCurrency(ctx, http.MethodPut, currencyPath(id), dto.CurrencyRequestFromDraft(draft))
}

// PatchCurrency sends only the fields set in patch.
func (c *Client) PatchCurrency(ctx context.Context, id int64, patch domain.CurrencyPatch) (*domain.Currency, error) {
	return c.writeCurrency(ctx, http.MethodPatch, currencyPath(id), patch)
}

func (c *Client) DeleteCurrency(ctx context.Context, id int64) error {
	if _, err := c.do(ctx, http.MethodDelete, currencyPath(id), nil); err != nil {
		return fmt.Errorf("delete currency %d: %w", id, err)
	}
	return nil
}

// RefreshRates asks the store to snapshot current rates. The response body is
// only logged; callers observe the result through a reload.
func (c *Client) RefreshRates(ctx context.Context) error {
	body, err := c.do(ctx, http.MethodPost, "/currencies/update-rates", nil)
	if err != nil {
		return fmt.Errorf("refresh rates: %w", err)
	}
	var resp dto.RefreshRatesResponse
	if len(bytes.TrimSpace(body)) > 0 && json.Unmarshal(body, &resp) == nil {
		c.logger.DebugContext(ctx, "store refreshed rates", slog.Int("updated", resp.Updated), slog.Time("timestamp", resp.Timestamp))
	}
	return nil
}

func (c *Client) writeCurrency(ctx context.Context, method, path string, payload any) (*domain.Currency, error) {
	body, err := c.do(ctx, method, path, payload)
	if err != nil {
		return nil, fmt.Errorf("%s %s: %w", method, path, err)
	}
	var resp dto.CurrencyResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, fmt.Errorf("%s %s: decode currency: %w", method, path, err)
	}
	currency := resp.ToDomain()
	return &currency, nil
}

// do sends one request and returns the body of a 2xx answer. Other statuses
// come back as *apperrors.RemoteError.
func (c *Client) do(ctx context.Context, method, path string, payload any) ([]byte, error) {
	var reqBody io.Reader
	if payload != nil {
		encoded, err := json.Marshal(payload)
		if err != nil {
			return nil, fmt.Errorf("encode request: %w", err)
		}
		reqBody = bytes.NewReader(encoded)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reqBody)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.tokens != nil {
		token, err := c.tokens.Token()
		if err != nil {
			return nil, fmt.Errorf("obtain token: %w", err)
		}
		req.Header.Set("Authorization", "Bearer "+token)
	}

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return nil, fmt.Errorf("read response: %w", err)
	}

	c.logger.DebugContext(ctx, "currency store call",
		slog.String("method", method),
		slog.String("path", path),
		slog.Int("status", resp.StatusCode),
		slog.Duration("duration", time.Since(start)))

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &apperrors.RemoteError{StatusCode: resp.StatusCode, Message: errorMessage(body)}
	}
	return body, nil
}

func currencyPath(id int64) string {
	return "/currencies/" + strconv.FormatInt(id, 10)
}

package main

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/SscSPs/currency_admin/internal/adapters/restclient"
	"github.com/SscSPs/currency_admin/internal/core/admin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const storeCurrencies = `[
  {"id": 1, "code": "USD", "name": "US Dollar", "symbol": "$", "exchangeRateToUsd": "1", "isBaseCurrency": true, "isActive": true, "lastUpdated": "2025-03-01T10:00:00Z"},
  {"id": 2, "code": "ZWL", "name": "Zimbabwe Dollar", "symbol": "Z$", "exchangeRateToUsd": "0.0031", "isBaseCurrency": false, "isActive": true, "lastUpdated": "2025-03-01T10:00:00Z"},
  {"id": 3, "code": "GBP", "name": "Pound Sterling", "symbol": "£", "exchangeRateToUsd": "1.27", "isBaseCurrency": false, "isActive": false, "lastUpdated": "2025-03-01T10:00:00Z"}
]`

const storeRates = `[
  {"id": 41, "fromCurrency": 3, "toCurrency": 1, "rate": "1.27", "date": "2025-03-01", "source": "currency-master"}
]`

type call struct {
	method string
	path   string
	body   map[string]any
}

// fakeStore answers the currency store routes the CLI uses and records
// every mutating call.
type fakeStore struct {
	mu    sync.Mutex
	calls []call
}

func (f *fakeStore) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	path := strings.TrimPrefix(r.URL.Path, "/api/v1")
	if r.Method != http.MethodGet {
		var body map[string]any
		raw, _ := io.ReadAll(r.Body)
		_ = json.Unmarshal(raw, &body)
		f.mu.Lock()
		f.calls = append(f.calls, call{method: r.Method, path: path, body: body})
		f.mu.Unlock()
	}

	w.Header().Set("Content-Type", "application/json")
	switch {
	case r.Method == http.MethodGet && path == "/currencies":
		_, _ = io.WriteString(w, storeCurrencies)
	case r.Method == http.MethodGet && path == "/exchange-rates":
		_, _ = io.WriteString(w, storeRates)
	case r.Method == http.MethodPost && path == "/currencies":
		w.WriteHeader(http.StatusCreated)
		_, _ = io.WriteString(w, `{"id": 4, "code": "EUR"}`)
	case r.Method == http.MethodPost && path == "/currencies/update-rates":
		_, _ = io.WriteString(w, `{"message": "Exchange rates updated successfully", "updated": 2}`)
	case r.Method == http.MethodPut || r.Method == http.MethodPatch:
		_, _ = io.WriteString(w, `{"id": 3, "code": "GBP"}`)
	case r.Method == http.MethodDelete:
		w.WriteHeader(http.StatusNoContent)
	default:
		w.WriteHeader(http.StatusNotFound)
		_, _ = io.WriteString(w, `{"error": "not found", "message": "not found"}`)
	}
}

func (f *fakeStore) mutations() []call {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]call(nil), f.calls...)
}

type harness struct {
	store  *fakeStore
	app    *app
	out    *bytes.Buffer
	errOut *bytes.Buffer
}

func newHarness(t *testing.T, stdin string) *harness {
	t.Helper()
	store := &fakeStore{}
	srv := httptest.NewServer(store)
	t.Cleanup(srv.Close)

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	client := restclient.New(srv.URL+"/api/v1", restclient.WithTokenSource(restclient.StaticToken("test-token")))
	out, errOut := &bytes.Buffer{}, &bytes.Buffer{}
	return &harness{
		store:  store,
		app:    newApp(client, logger, 5*time.Second, strings.NewReader(stdin), out, errOut),
		out:    out,
		errOut: errOut,
	}
}

func (h *harness) run(args ...string) error {
	return h.app.run(context.Background(), args)
}

func TestList(t *testing.T) {
	h := newHarness(t, "")

	require.NoError(t, h.run("list"))

	out := h.out.String()
	assert.Contains(t, out, "Rate to USD")
	assert.Contains(t, out, "$ USD — US Dollar")
	assert.Contains(t, out, "$0.003100")
	assert.Contains(t, out, "Inactive")
}

func TestList_ActiveOnly(t *testing.T) {
	h := newHarness(t, "")

	require.NoError(t, h.run("list", "--active"))

	assert.NotContains(t, h.out.String(), "GBP")
}

func TestStats(t *testing.T) {
	h := newHarness(t, "")

	require.NoError(t, h.run("stats"))

	out := h.out.String()
	assert.Regexp(t, `Total Currencies\s+3`, out)
	assert.Regexp(t, `Active Currencies\s+2`, out)
	assert.Regexp(t, `ZWL Rate\s+0\.00`, out)
	assert.Regexp(t, `USD Rate\s+1\.00`, out)
}

func TestRates_ShowsCodes(t *testing.T) {
	h := newHarness(t, "")

	require.NoError(t, h.run("rates"))

	assert.Regexp(t, `41\s+GBP\s+USD\s+1\.270000\s+2025-03-01\s+currency-master`, h.out.String())
}

func TestExport(t *testing.T) {
	h := newHarness(t, "")
	path := filepath.Join(t.TempDir(), "currencies.csv")

	require.NoError(t, h.run("export", "--out", path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	require.Len(t, lines, 4)
	assert.Equal(t, "ID,Currency,Rate to USD,Base Currency,Status,Last Updated", lines[0])
	assert.True(t, strings.HasPrefix(lines[1], "1,$ USD — US Dollar,$1.000000,Yes,Active,"))
	assert.Contains(t, h.out.String(), "Exported 3 currencies")
}

func TestCreate_InvalidDraftIsNotSent(t *testing.T) {
	h := newHarness(t, "")

	err := h.run("create", "--code", "EU", "--symbol", "€")

	var verr *admin.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Contains(t, h.errOut.String(), "code: Must be 3 characters")
	assert.Contains(t, h.errOut.String(), "name: Currency name is required")
	assert.Empty(t, h.store.mutations())
}

func TestCreate(t *testing.T) {
	h := newHarness(t, "")

	require.NoError(t, h.run("create", "--code", "eur", "--name", "Euro", "--symbol", "€", "--rate", "0.92"))

	calls := h.store.mutations()
	require.Len(t, calls, 1)
	assert.Equal(t, http.MethodPost, calls[0].method)
	assert.Equal(t, "EUR", calls[0].body["code"])
	assert.Equal(t, true, calls[0].body["isActive"])
	assert.Equal(t, false, calls[0].body["isBaseCurrency"])
	assert.Contains(t, h.out.String(), admin.MsgCreated)
}

func TestUpdate_KeepsUntouchedFields(t *testing.T) {
	h := newHarness(t, "")

	require.NoError(t, h.run("update", "3", "--name", "British Pound"))

	calls := h.store.mutations()
	require.Len(t, calls, 1)
	assert.Equal(t, http.MethodPut, calls[0].method)
	assert.Equal(t, "/currencies/3", calls[0].path)
	assert.Equal(t, "British Pound", calls[0].body["name"])
	assert.Equal(t, "GBP", calls[0].body["code"])
	assert.Equal(t, false, calls[0].body["isActive"])
}

func TestUpdate_RequiresAField(t *testing.T) {
	h := newHarness(t, "")

	assert.ErrorIs(t, h.run("update", "3"), errUsage)
	assert.Empty(t, h.store.mutations())
}

func TestUpdate_UnknownID(t *testing.T) {
	h := newHarness(t, "")

	err := h.run("update", "99", "--name", "Nobody")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "currency 99 not found")
	assert.Empty(t, h.store.mutations())
}

func TestToggle_ActivatesInactiveCurrency(t *testing.T) {
	h := newHarness(t, "")

	require.NoError(t, h.run("toggle", "3"))

	calls := h.store.mutations()
	require.Len(t, calls, 1)
	assert.Equal(t, http.MethodPatch, calls[0].method)
	assert.Equal(t, map[string]any{"isActive": true}, calls[0].body)
	assert.Contains(t, h.out.String(), admin.MsgActivated)
}

func TestDelete_DeclinedAtPrompt(t *testing.T) {
	h := newHarness(t, "n\n")

	require.NoError(t, h.run("delete", "2"))

	assert.Contains(t, h.out.String(), "Delete Z$ ZWL — Zimbabwe Dollar?")
	assert.Contains(t, h.out.String(), "Deletion cancelled.")
	assert.Empty(t, h.store.mutations())
	_, pending := h.app.console.Lifecycle.PendingDeletion()
	assert.False(t, pending)
}

func TestDelete_ConfirmedAtPrompt(t *testing.T) {
	h := newHarness(t, "yes\n")

	require.NoError(t, h.run("delete", "2"))

	calls := h.store.mutations()
	require.Len(t, calls, 1)
	assert.Equal(t, http.MethodDelete, calls[0].method)
	assert.Equal(t, "/currencies/2", calls[0].path)
	assert.Contains(t, h.out.String(), admin.MsgDeleted)
}

func TestDelete_Yes(t *testing.T) {
	h := newHarness(t, "")

	require.NoError(t, h.run("delete", "--yes", "2"))

	require.Len(t, h.store.mutations(), 1)
	assert.NotContains(t, h.out.String(), "[y/N]")
}

func TestRefreshRates(t *testing.T) {
	h := newHarness(t, "")

	require.NoError(t, h.run("refresh-rates"))

	calls := h.store.mutations()
	require.Len(t, calls, 1)
	assert.Equal(t, "/currencies/update-rates", calls[0].path)
	assert.Contains(t, h.out.String(), admin.MsgRatesUpdated)
}

func TestUnknownCommand(t *testing.T) {
	h := newHarness(t, "")

	assert.ErrorIs(t, h.run("frobnicate"), errUsage)
	assert.ErrorIs(t, h.run(), errUsage)
	assert.Contains(t, h.errOut.String(), `unknown command "frobnicate"`)
}

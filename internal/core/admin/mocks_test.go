package admin_test

import (
	"context"
	"sync"

	"github.com/SscSPs/currency_admin/internal/core/domain"
	"github.com/stretchr/testify/mock"
)

// --- Mock CurrencyStore ---
type MockCurrencyStore struct {
	mock.Mock
}

func (m *MockCurrencyStore) ListCurrencies(ctx context.Context) ([]domain.Currency, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Currency), args.Error(1)
}

func (m *MockCurrencyStore) ListExchangeRates(ctx context.Context) ([]domain.ExchangeRate, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.ExchangeRate), args.Error(1)
}

func (m *MockCurrencyStore) CreateCurrency(ctx context.Context, draft domain.CurrencyDraft) (*domain.Currency, error) {
	args := m.Called(ctx, draft)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Currency), args.Error(1)
}

func (m *MockCurrencyStore) UpdateCurrency(ctx context.Context, id int64, draft domain.CurrencyDraft) (*domain.Currency, error) {
	args := m.Called(ctx, id, draft)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Currency), args.Error(1)
}

func (m *MockCurrencyStore) PatchCurrency(ctx context.Context, id int64, patch domain.CurrencyPatch) (*domain.Currency, error) {
	args := m.Called(ctx, id, patch)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Currency), args.Error(1)
}

func (m *MockCurrencyStore) DeleteCurrency(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockCurrencyStore) RefreshRates(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

// --- Mock Reloader ---
type MockReloader struct {
	mock.Mock
}

func (m *MockReloader) Load(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

// --- Mock DraftSaver ---
type MockDraftSaver struct {
	mock.Mock
}

func (m *MockDraftSaver) Create(ctx context.Context, draft domain.CurrencyDraft) error {
	args := m.Called(ctx, draft)
	return args.Error(0)
}

func (m *MockDraftSaver) Update(ctx context.Context, id int64, draft domain.CurrencyDraft) error {
	args := m.Called(ctx, id, draft)
	return args.Error(0)
}

// recordingNotifier keeps every notification in order.
type recordingNotifier struct {
	mu       sync.Mutex
	messages []notification
}

type notification struct {
	level   string
	message string
}

func (n *recordingNotifier) Success(_ context.Context, message string) {
	n.record("success", message)
}

func (n *recordingNotifier) Failure(_ context.Context, message string) {
	n.record("failure", message)
}

func (n *recordingNotifier) Warning(_ context.Context, message string) {
	n.record("warning", message)
}

func (n *recordingNotifier) record(level, message string) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.messages = append(n.messages, notification{level: level, message: message})
}

func (n *recordingNotifier) all() []notification {
	n.mu.Lock()
	defer n.mu.Unlock()
	return append([]notification(nil), n.messages...)
}

func (n *recordingNotifier) byLevel(level string) []string {
	var out []string
	for _, msg := range n.all() {
		if msg.level == level {
			out = append(out, msg.message)
		}
	}
	return out
}

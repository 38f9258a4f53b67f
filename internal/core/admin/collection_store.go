package admin

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/SscSPs/currency_admin/internal/core/domain"
	"golang.org/x/sync/errgroup"
)

// Snapshot is a consistent, caller-owned copy of the collection state.
type Snapshot struct {
	Currencies    []domain.Currency
	ExchangeRates []domain.ExchangeRate
	Loading       bool
	LoadedAt      time.Time
	Anomalies     []Anomaly
}

// Stats derives the dashboard figures from the snapshot.
func (s Snapshot) Stats() Stats {
	return ComputeStats(s.Currencies)
}

// CollectionStore caches the currency and exchange rate lists fetched from
// the remote store. Only Load writes them.
type CollectionStore struct {
	store    CurrencyStore
	notifier Notifier
	opts     options

	// loadMu serialises loads so a reload requested mid-load runs after it.
	loadMu sync.Mutex

	mu            sync.RWMutex
	currencies    []domain.Currency
	exchangeRates []domain.ExchangeRate
	loading       bool
	loadedAt      time.Time
	anomalies     []Anomaly
}

// NewCollectionStore creates an empty store. Call Load to populate it.
func NewCollectionStore(store CurrencyStore, notifier Notifier, opts ...Option) *CollectionStore {
	return &CollectionStore{
		store:    store,
		notifier: notifier,
		opts:     applyOptions(opts),
	}
}

// Load fetches both lists concurrently and waits for both. Each half that
// succeeds replaces its list; a failed half keeps the previous data. Any
// failure is reported once through the notifier and returned.
func (s *CollectionStore) Load(ctx context.Context) error {
	s.loadMu.Lock()
	defer s.loadMu.Unlock()

	s.setLoading(true)
	defer s.setLoading(false)

	var (
		currencies    []domain.Currency
		exchangeRates []domain.ExchangeRate
		currenciesErr error
		ratesErr      error
	)

	var g errgroup.Group
	g.Go(func() error {
		currencies, currenciesErr = bounded(ctx, s.opts.timeout, s.store.ListCurrencies)
		return currenciesErr
	})
	g.Go(func() error {
		exchangeRates, ratesErr = bounded(ctx, s.opts.timeout, s.store.ListExchangeRates)
		return ratesErr
	})
	loadErr := g.Wait()

	var anomalies []Anomaly
	if currenciesErr == nil {
		anomalies = DetectAnomalies(currencies)
	}

	s.mu.Lock()
	if currenciesErr == nil {
		s.currencies = currencies
		s.anomalies = anomalies
	}
	if ratesErr == nil {
		s.exchangeRates = exchangeRates
	}
	if currenciesErr == nil && ratesErr == nil {
		s.loadedAt = s.opts.now()
	}
	s.mu.Unlock()

	for _, a := range anomalies {
		s.opts.logger.WarnContext(ctx, "currency collection anomaly", slog.String("kind", string(a.Kind)), slog.Any("codes", a.Codes))
		s.notifier.Warning(ctx, a.Message())
	}

	if loadErr != nil {
		// Wait keeps only the first failure; report both halves.
		err := errors.Join(currenciesErr, ratesErr)
		s.opts.logger.ErrorContext(ctx, "failed to load currency data",
			slog.Bool("currencies_ok", currenciesErr == nil),
			slog.Bool("exchange_rates_ok", ratesErr == nil),
			slog.String("error", err.Error()))
		s.notifier.Failure(ctx, MsgLoadFailed)
		return fmt.Errorf("load currency data: %w", err)
	}

	s.opts.logger.DebugContext(ctx, "currency data loaded",
		slog.Int("currencies", len(currencies)),
		slog.Int("exchange_rates", len(exchangeRates)))
	return nil
}

// Snapshot returns a copy of the current state.
func (s *CollectionStore) Snapshot() Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return Snapshot{
		Currencies:    append([]domain.Currency(nil), s.currencies...),
		ExchangeRates: append([]domain.ExchangeRate(nil), s.exchangeRates...),
		Loading:       s.loading,
		LoadedAt:      s.loadedAt,
		Anomalies:     append([]Anomaly(nil), s.anomalies...),
	}
}

// Stats derives the dashboard figures from the current currencies.
func (s *CollectionStore) Stats() Stats {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return ComputeStats(s.currencies)
}

// Loading reports whether a Load is running.
func (s *CollectionStore) Loading() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.loading
}

// Currency looks a record up by id in the last loaded list.
func (s *CollectionStore) Currency(id int64) (domain.Currency, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, c := range s.currencies {
		if c.ID == id {
			return c, true
		}
	}
	return domain.Currency{}, false
}

func (s *CollectionStore) setLoading(v bool) {
	s.mu.Lock()
	s.loading = v
	s.mu.Unlock()
}

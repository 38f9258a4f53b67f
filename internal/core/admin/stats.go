package admin

import (
	"fmt"
	"sort"
	"strings"

	"github.com/SscSPs/currency_admin/internal/core/domain"
	"github.com/shopspring/decimal"
)

// Unavailable is shown for a statistic that cannot be computed.
const Unavailable = "—"

// RateStat is the rate to USD of one well-known currency, if it exists.
type RateStat struct {
	Rate      decimal.Decimal
	Available bool
}

func (r RateStat) String() string {
	if !r.Available {
		return Unavailable
	}
	return r.Rate.StringFixed(2)
}

// Stats are the aggregate figures shown above the currency table.
type Stats struct {
	Total   int
	Active  int
	ZWLRate RateStat
	USDRate RateStat
}

// ComputeStats derives Stats from a currency list.
func ComputeStats(currencies []domain.Currency) Stats {
	stats := Stats{Total: len(currencies)}
	for _, c := range currencies {
		if c.IsActive {
			stats.Active++
		}
		switch c.Code {
		case domain.ZWLCode:
			if !stats.ZWLRate.Available {
				stats.ZWLRate = RateStat{Rate: c.ExchangeRateToUSD, Available: true}
			}
		case domain.USDCode:
			if !stats.USDRate.Available {
				stats.USDRate = RateStat{Rate: c.ExchangeRateToUSD, Available: true}
			}
		}
	}
	return stats
}

// AnomalyKind names a broken collection-level invariant.
type AnomalyKind string

const (
	AnomalyMultipleBaseCurrencies AnomalyKind = "multiple_base_currencies"
)

// Anomaly is an inconsistency found in data returned by the store.
// It is reported, never repaired.
type Anomaly struct {
	Kind  AnomalyKind
	Codes []string
}

// Message is the operator-facing warning text.
func (a Anomaly) Message() string {
	switch a.Kind {
	case AnomalyMultipleBaseCurrencies:
		return fmt.Sprintf("Multiple base currencies found: %s", strings.Join(a.Codes, ", "))
	default:
		return fmt.Sprintf("Currency data anomaly (%s): %s", a.Kind, strings.Join(a.Codes, ", "))
	}
}

// DetectAnomalies checks the single base currency invariant.
func DetectAnomalies(currencies []domain.Currency) []Anomaly {
	var bases []string
	for _, c := range currencies {
		if c.IsBaseCurrency {
			bases = append(bases, c.Code)
		}
	}
	if len(bases) <= 1 {
		return nil
	}
	sort.Strings(bases)
	return []Anomaly{{Kind: AnomalyMultipleBaseCurrencies, Codes: bases}}
}

package utils

import (
	"time"

	"github.com/SscSPs/currency_admin/internal/core/domain"
	"github.com/shopspring/decimal"
)

// LastUpdatedLayout is the local-time layout of "last updated" cells.
const LastUpdatedLayout = "2006-01-02 15:04:05"

// FormatRateToUSD renders a rate to USD with six decimals.
// Example: 0.92 returns "$0.920000"
func FormatRateToUSD(rate decimal.Decimal) string {
	return "$" + rate.StringFixed(6)
}

// FormatWithPrecision formats an amount with the given precision
// Example: 1.005 with precision 2 returns "1.01"
func FormatWithPrecision(amount decimal.Decimal, precision int) string {
	return amount.StringFixed(int32(precision))
}

// FormatCurrencyLabel renders "symbol code — name".
func FormatCurrencyLabel(c domain.Currency) string {
	return c.Symbol + " " + c.Code + " — " + c.Name
}

// FormatYesNo renders a flag as Yes/No.
func FormatYesNo(v bool) string {
	if v {
		return "Yes"
	}
	return "No"
}

// FormatActiveStatus renders isActive as Active/Inactive.
func FormatActiveStatus(active bool) string {
	if active {
		return "Active"
	}
	return "Inactive"
}

// FormatLocalTime renders t in the local zone, or "" for the zero time.
func FormatLocalTime(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Local().Format(LastUpdatedLayout)
}

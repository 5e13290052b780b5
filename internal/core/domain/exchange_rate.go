package domain

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// DefaultBaseCurrency is used when a caller does not name a base currency.
const DefaultBaseCurrency = "EUR"

// ExchangeRate is the last known conversion rate for an ordered currency pair.
// Rate is expressed as units of TargetCurrency per 1 unit of BaseCurrency.
type ExchangeRate struct {
	ID             string          `json:"id"`
	BaseCurrency   string          `json:"base_currency"`
	TargetCurrency string          `json:"target_currency"`
	Rate           decimal.Decimal `json:"rate"`
	LastUpdated    time.Time       `json:"last_updated"`
}

// HistoryDateLayout is the format of HistoryPoint.Date.
const HistoryDateLayout = "2006-01-02"

// HistoryPoint is one day of a currency's history against the history base.
// Rate is nil when the provider had no value for that date. Label is the
// short chart label ("Jan 2").
type HistoryPoint struct {
	Date  string           `json:"date"`
	Label string           `json:"label"`
	Rate  *decimal.Decimal `json:"rate"`
}

// NormalizeCurrencyCode trims and uppercases a currency code.
func NormalizeCurrencyCode(code string) string {
	return strings.ToUpper(strings.TrimSpace(code))
}

// IsCurrencyCode reports whether code looks like an ISO 4217 code (three ASCII letters).
func IsCurrencyCode(code string) bool {
	if len(code) != 3 {
		return false
	}
	for _, r := range code {
		if (r < 'A' || r > 'Z') && (r < 'a' || r > 'z') {
			return false
		}
	}
	return true
}

// FindRate returns the rate for target within rates, if present.
func FindRate(rates []ExchangeRate, base, target string) (ExchangeRate, bool) {
	for _, r := range rates {
		if r.BaseCurrency == base && r.TargetCurrency == target {
			return r, true
		}
	}
	return ExchangeRate{}, false
}

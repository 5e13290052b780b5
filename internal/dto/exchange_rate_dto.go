package dto

import (
	"time"

	"github.com/SscSPs/fx_wallet_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// GetExchangeRatesQuery binds GET /exchange-rates. An empty base means EUR.
type GetExchangeRatesQuery struct {
	Base string `form:"base" binding:"omitempty,currency_code"`
}

// ForceRefreshRequest is the body of POST /exchange-rates.
type ForceRefreshRequest struct {
	BaseCurrency string `json:"baseCurrency" binding:"required,currency_code"`
}

// HistoryQuery binds GET /exchange-rates/history.
type HistoryQuery struct {
	Currency string `form:"currency" binding:"required,currency_code"`
	Days     int    `form:"days" binding:"omitempty,min=1,max=31"`
}

// ExchangeRateResponse is one stored row as the dashboard reads it.
type ExchangeRateResponse struct {
	ID             string          `json:"id"`
	BaseCurrency   string          `json:"base_currency"`
	TargetCurrency string          `json:"target_currency"`
	Rate           decimal.Decimal `json:"rate"`
	LastUpdated    time.Time       `json:"last_updated"`
}

// HistoryPointResponse is one day of rate history.
type HistoryPointResponse struct {
	Date  string           `json:"date"`
	Label string           `json:"label"`
	Rate  *decimal.Decimal `json:"rate"`
}

// ToExchangeRateResponse converts a domain.ExchangeRate to ExchangeRateResponse DTO
func ToExchangeRateResponse(rate domain.ExchangeRate) ExchangeRateResponse {
	return ExchangeRateResponse{
		ID:             rate.ID,
		BaseCurrency:   rate.BaseCurrency,
		TargetCurrency: rate.TargetCurrency,
		Rate:           rate.Rate,
		LastUpdated:    rate.LastUpdated,
	}
}

// ToListExchangeRateResponse converts a slice of domain rates. It never returns nil.
func ToListExchangeRateResponse(rates []domain.ExchangeRate) []ExchangeRateResponse {
	responses := make([]ExchangeRateResponse, len(rates))
	for i, rate := range rates {
		responses[i] = ToExchangeRateResponse(rate)
	}
	return responses
}

func ToListHistoryPointResponse(points []domain.HistoryPoint) []HistoryPointResponse {
	responses := make([]HistoryPointResponse, len(points))
	for i, p := range points {
		responses[i] = HistoryPointResponse{Date: p.Date, Label: p.Label, Rate: p.Rate}
	}
	return responses
}

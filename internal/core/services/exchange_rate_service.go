package services

import (
	"context"
	"errors"
	"log/slog"
	"sort"
	"time"

	"github.com/SscSPs/fx_wallet_backend/internal/apperrors"
	"github.com/SscSPs/fx_wallet_backend/internal/core/domain"
	portsgw "github.com/SscSPs/fx_wallet_backend/internal/core/ports/gateways"
	portsrepo "github.com/SscSPs/fx_wallet_backend/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/fx_wallet_backend/internal/core/ports/services"
	"github.com/SscSPs/fx_wallet_backend/internal/platform/metrics"
	"golang.org/x/sync/errgroup"
)

const (
	defaultHistoryDays = 7
	defaultHistoryBase = "EUR"

	syncFresh     = "fresh"
	syncRefreshed = "refreshed"
	syncForced    = "forced"
	syncFailed    = "failed"
)

// exchangeRateService keeps the stored rates in step with the provider.
// It is the only writer of exchange_rates rows.
type exchangeRateService struct {
	BaseService
	rateRepo    portsrepo.ExchangeRateRepositoryFacade
	provider    portsgw.RateProvider
	ttl         time.Duration
	historyDays int
	historyBase string
}

// ExchangeRateOption is a functional option for configuring the exchange rate service
type ExchangeRateOption func(*exchangeRateService)

// WithRateEvents publishes an exchange_rates change after every upsert.
func WithRateEvents(events portsgw.EventSource) ExchangeRateOption {
	return func(s *exchangeRateService) {
		s.Events = events
	}
}

// WithRateClock replaces the wall clock.
func WithRateClock(now func() time.Time) ExchangeRateOption {
	return func(s *exchangeRateService) {
		s.Now = now
	}
}

// WithRateTTL overrides the freshness threshold.
func WithRateTTL(ttl time.Duration) ExchangeRateOption {
	return func(s *exchangeRateService) {
		if ttl > 0 {
			s.ttl = ttl
		}
	}
}

// WithHistoryDefaults sets the default number of days and the base currency
// history is quoted against.
func WithHistoryDefaults(days int, base string) ExchangeRateOption {
	return func(s *exchangeRateService) {
		if days > 0 {
			s.historyDays = days
		}
		if base = domain.NormalizeCurrencyCode(base); base != "" {
			s.historyBase = base
		}
	}
}

// NewExchangeRateService creates the rate synchronization service.
func NewExchangeRateService(rateRepo portsrepo.ExchangeRateRepositoryFacade, provider portsgw.RateProvider, options ...ExchangeRateOption) portssvc.ExchangeRateSvcFacade {
	svc := &exchangeRateService{
		rateRepo:    rateRepo,
		provider:    provider,
		ttl:         domain.RateTTL,
		historyDays: defaultHistoryDays,
		historyBase: defaultHistoryBase,
	}
	for _, option := range options {
		option(svc)
	}
	return svc
}

var _ portssvc.ExchangeRateSvcFacade = (*exchangeRateService)(nil)

func (s *exchangeRateService) GetRates(ctx context.Context, baseCurrency string) ([]domain.ExchangeRate, error) {
	base, err := s.prepare(baseCurrency, "base currency")
	if err != nil {
		return nil, err
	}

	current, err := s.rateRepo.FindRatesByBase(ctx, base)
	if err != nil {
		s.LogError(ctx, err, "Failed to read stored rates", slog.String("base_currency", base))
		metrics.RateSyncs.WithLabelValues(base, syncFailed).Inc()
		return nil, asStoreError("failed to read exchange rates", err)
	}

	if len(current) > 0 && !domain.NeedsRefresh(current[0].LastUpdated, s.CurrentTime(), s.ttl) {
		metrics.RateSyncs.WithLabelValues(base, syncFresh).Inc()
		return current, nil
	}

	s.LogInfo(ctx, "Fetching new rates", slog.String("base_currency", base), slog.Int("stored_rows", len(current)))
	return s.refresh(ctx, base, syncRefreshed)
}

func (s *exchangeRateService) ForceRefresh(ctx context.Context, baseCurrency string) ([]domain.ExchangeRate, error) {
	base, err := s.prepare(baseCurrency, "base currency")
	if err != nil {
		return nil, err
	}
	s.LogInfo(ctx, "Force updating rates", slog.String("base_currency", base))
	return s.refresh(ctx, base, syncForced)
}

// prepare normalizes and validates a currency code, then checks the credential
// so that nothing reaches the network without one.
func (s *exchangeRateService) prepare(code, field string) (string, error) {
	code = domain.NormalizeCurrencyCode(code)
	if code == "" {
		return "", apperrors.NewValidationError(field + " is required")
	}
	if !domain.IsCurrencyCode(code) {
		return "", apperrors.NewValidationError(field + " must be a 3-letter currency code")
	}
	if !s.provider.Configured() {
		return "", apperrors.NewConfigurationError("ExchangeRatesAPI is not configured")
	}
	return code, nil
}

// refresh fetches, upserts, publishes and re-reads. A provider failure leaves
// the store untouched.
func (s *exchangeRateService) refresh(ctx context.Context, base, result string) ([]domain.ExchangeRate, error) {
	latest, err := s.provider.LatestRates(ctx, base)
	if err != nil {
		s.LogError(ctx, err, "Failed to fetch exchange rates", slog.String("base_currency", base))
		metrics.RateSyncs.WithLabelValues(base, syncFailed).Inc()
		return nil, err
	}

	now := s.CurrentTime()
	rows := make([]domain.ExchangeRate, 0, len(latest))
	for target, rate := range latest {
		rows = append(rows, domain.ExchangeRate{
			BaseCurrency:   base,
			TargetCurrency: target,
			Rate:           rate,
			LastUpdated:    now,
		})
	}
	sort.Slice(rows, func(i, j int) bool { return rows[i].TargetCurrency < rows[j].TargetCurrency })

	if err := s.rateRepo.UpsertRates(ctx, rows); err != nil {
		s.LogError(ctx, err, "Failed to upsert exchange rates", slog.String("base_currency", base), slog.Int("rows", len(rows)))
		metrics.RateSyncs.WithLabelValues(base, syncFailed).Inc()
		return nil, asStoreError("failed to store exchange rates", err)
	}
	s.PublishChange(ctx, domain.TableExchangeRates, domain.ChangeUpsert, base)

	updated, err := s.rateRepo.FindRatesByBase(ctx, base)
	if err != nil {
		s.LogError(ctx, err, "Failed to re-read exchange rates", slog.String("base_currency", base))
		metrics.RateSyncs.WithLabelValues(base, syncFailed).Inc()
		return nil, asStoreError("failed to read exchange rates", err)
	}

	metrics.RateSyncs.WithLabelValues(base, result).Inc()
	s.LogInfo(ctx, "Exchange rates updated", slog.String("base_currency", base), slog.Int("rows", len(updated)))
	return updated, nil
}

// GetHistory issues one provider request per day concurrently. Any failure
// fails the whole call; there is no partial history.
func (s *exchangeRateService) GetHistory(ctx context.Context, currency string, days int) ([]domain.HistoryPoint, error) {
	symbol, err := s.prepare(currency, "currency")
	if err != nil {
		return nil, err
	}
	if days <= 0 {
		days = s.historyDays
	}

	now := s.CurrentTime()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	points := make([]domain.HistoryPoint, days)

	g, gctx := errgroup.WithContext(ctx)
	for i := 0; i < days; i++ {
		i := i // per-iteration copy: go directive is below 1.22
		day := today.AddDate(0, 0, i-(days-1))
		points[i] = domain.HistoryPoint{
			Date:  day.Format(domain.HistoryDateLayout),
			Label: day.Format("Jan 2"),
		}
		g.Go(func() error {
			rates, err := s.provider.HistoricalRates(gctx, day, s.historyBase, symbol)
			if err != nil {
				return err
			}
			if rate, ok := rates[symbol]; ok {
				points[i].Rate = &rate
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		s.LogError(ctx, err, "Failed to fetch historical rates", slog.String("currency", symbol), slog.Int("days", days))
		if errors.Is(err, apperrors.ErrUpstream) || errors.Is(err, apperrors.ErrConfiguration) {
			return nil, err
		}
		return nil, apperrors.NewUpstreamError("Failed to fetch historical rates", err)
	}
	return points, nil
}

func asStoreError(msg string, err error) error {
	if errors.Is(err, apperrors.ErrStore) {
		return err
	}
	return apperrors.NewStoreError(msg, err)
}

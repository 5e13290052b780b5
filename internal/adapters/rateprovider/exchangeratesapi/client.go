// Package exchangeratesapi is a client for the exchangeratesapi.io REST API
// (and providers speaking the same envelope: success, error.info, rates).
package exchangeratesapi

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/SscSPs/fx_wallet_backend/internal/apperrors"
	portsgw "github.com/SscSPs/fx_wallet_backend/internal/core/ports/gateways"
	"github.com/SscSPs/fx_wallet_backend/internal/platform/metrics"
	"github.com/shopspring/decimal"
	"github.com/tidwall/gjson"
	"golang.org/x/time/rate"
)

const (
	dateLayout     = "2006-01-02"
	maxBodyBytes   = 1 << 20
	endpointLatest = "latest"
	endpointDated  = "historical"
)

// Client issues one request per call to the upstream API.
type Client struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
	limiter    *rate.Limiter
}

// Option customizes a Client.
type Option func(*Client)

// WithHTTPClient replaces the default HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.httpClient = hc }
}

// WithRateLimit throttles outbound calls to rps with the given burst.
// rps <= 0 disables throttling.
func WithRateLimit(rps float64, burst int) Option {
	return func(c *Client) {
		if rps <= 0 {
			c.limiter = nil
			return
		}
		c.limiter = rate.NewLimiter(rate.Limit(rps), burst)
	}
}

// NewClient creates a Client for baseURL (e.g. "http://api.exchangeratesapi.io/v1").
func NewClient(baseURL, apiKey string, timeout time.Duration, opts ...Option) *Client {
	c := &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		apiKey:     apiKey,
		httpClient: &http.Client{Timeout: timeout},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

var _ portsgw.RateProvider = (*Client)(nil)

// Configured reports whether an access key is present.
func (c *Client) Configured() bool {
	return c.apiKey != ""
}

// LatestRates calls /latest?access_key=..&base=..
func (c *Client) LatestRates(ctx context.Context, baseCurrency string) (map[string]decimal.Decimal, error) {
	q := url.Values{}
	q.Set("base", baseCurrency)
	body, err := c.get(ctx, endpointLatest, "/latest", q)
	if err != nil {
		return nil, err
	}
	return parseRates(body, "Failed to fetch exchange rates")
}

// HistoricalRates calls /{date}?access_key=..&base=..&symbols=..
func (c *Client) HistoricalRates(ctx context.Context, date time.Time, baseCurrency string, symbols ...string) (map[string]decimal.Decimal, error) {
	q := url.Values{}
	q.Set("base", baseCurrency)
	if len(symbols) > 0 {
		q.Set("symbols", strings.Join(symbols, ","))
	}
	day := date.Format(dateLayout)
	body, err := c.get(ctx, endpointDated, "/"+day, q)
	if err != nil {
		return nil, err
	}
	return parseRates(body, "Failed to fetch data for "+day)
}

func (c *Client) get(ctx context.Context, endpoint, path string, q url.Values) ([]byte, error) {
	if !c.Configured() {
		return nil, apperrors.NewConfigurationError("EXCHANGE_RATES_API_KEY is not configured")
	}
	if c.limiter != nil {
		if err := c.limiter.Wait(ctx); err != nil {
			return nil, apperrors.NewUpstreamError("exchange-rate request cancelled while throttled", err)
		}
	}

	q.Set("access_key", c.apiKey)
	reqURL := c.baseURL + path + "?" + q.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, apperrors.NewUpstreamError("failed to create provider request", redactKey(err, c.apiKey))
	}
	req.Header.Set("Accept", "application/json")

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	metrics.ProviderDuration.WithLabelValues(endpoint).Observe(time.Since(start).Seconds())
	if err != nil {
		metrics.ProviderRequests.WithLabelValues(endpoint, "transport_error").Inc()
		return nil, apperrors.NewUpstreamError("exchange-rate provider unreachable", redactKey(err, c.apiKey))
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		metrics.ProviderRequests.WithLabelValues(endpoint, "read_error").Inc()
		return nil, apperrors.NewUpstreamError("failed to read provider response", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		metrics.ProviderRequests.WithLabelValues(endpoint, "http_"+fmt.Sprint(resp.StatusCode)).Inc()
		msg := fmt.Sprintf("Failed to fetch exchange rates: %s", http.StatusText(resp.StatusCode))
		if info := gjson.GetBytes(body, "error.info"); info.Exists() {
			msg += " (" + info.String() + ")"
		}
		return nil, apperrors.NewUpstreamError(msg, nil)
	}

	metrics.ProviderRequests.WithLabelValues(endpoint, "ok").Inc()
	return body, nil
}

// parseRates validates the success envelope and extracts the rates object.
// A null rate means the provider has no data for that symbol and is left out.
// Any rate that is not positive rejects the whole payload.
func parseRates(body []byte, what string) (map[string]decimal.Decimal, error) {
	if !gjson.ValidBytes(body) {
		return nil, apperrors.NewUpstreamError(what+": provider returned invalid JSON", nil)
	}
	doc := gjson.ParseBytes(body)
	if !doc.Get("success").Bool() {
		info := doc.Get("error.info").String()
		if info == "" {
			info = doc.Get("error.type").String()
		}
		if info == "" {
			info = "Unknown error"
		}
		return nil, apperrors.NewUpstreamError("API Error: "+info, nil)
	}

	rates := doc.Get("rates")
	if !rates.IsObject() {
		return nil, apperrors.NewUpstreamError(what+": response has no rates", nil)
	}

	out := make(map[string]decimal.Decimal)
	var parseErr error
	rates.ForEach(func(key, value gjson.Result) bool {
		if value.Type == gjson.Null {
			return true
		}
		// Raw keeps the provider's digits; going through float64 would round them.
		d, err := decimal.NewFromString(value.Raw)
		if err != nil {
			parseErr = fmt.Errorf("rate for %s: %w", key.String(), err)
			return false
		}
		if !d.IsPositive() {
			parseErr = fmt.Errorf("rate for %s is %s, want a positive number", key.String(), d)
			return false
		}
		out[strings.ToUpper(key.String())] = d
		return true
	})
	if parseErr != nil {
		return nil, apperrors.NewUpstreamError(what+": malformed rate", parseErr)
	}
	return out, nil
}

// redactKey strips the access key from transport errors, which embed the URL.
func redactKey(err error, key string) error {
	if key == "" {
		return err
	}
	return errors.New(strings.ReplaceAll(err.Error(), key, "REDACTED"))
}

package ratecache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/tidwall/gjson"
)

// HTTPFetcher calls GET {BaseURL}/exchange-rates?base=.. on the rate
// synchronization service.
type HTTPFetcher struct {
	BaseURL string
	Client  *http.Client
}

func NewHTTPFetcher(baseURL string, timeout time.Duration) *HTTPFetcher {
	return &HTTPFetcher{
		BaseURL: strings.TrimRight(baseURL, "/"),
		Client:  &http.Client{Timeout: timeout},
	}
}

var _ Fetcher = (*HTTPFetcher)(nil)

// FetchRates returns the service's rows for base. A JSON {"error": ".."}
// body becomes the returned error.
func (f *HTTPFetcher) FetchRates(ctx context.Context, baseCurrency string) ([]Rate, error) {
	reqURL := f.BaseURL + "/exchange-rates?" + url.Values{"base": {baseCurrency}}.Encode()
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := f.Client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, 4<<20))
	if err != nil {
		return nil, fmt.Errorf("read response: %w", err)
	}

	if msg := gjson.GetBytes(body, "error"); msg.Exists() {
		return nil, errors.New(msg.String())
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status %s", resp.Status)
	}

	var rates []Rate
	if err := json.Unmarshal(body, &rates); err != nil {
		return nil, fmt.Errorf("decode rates: %w", err)
	}
	return rates, nil
}

// Package ratesource talks to the external reference-rate provider.
package ratesource

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/shopspring/decimal"

	"github.com/kioskfx/currency_exchange_app/internal/core/domain"
)

// ExchangeAPI fetches reference rates over HTTP. The provider returns rates
// expressed as units of currency per 1 unit of the requested base currency.
type ExchangeAPI struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
	logger     *slog.Logger
}

// ratesResponse mirrors the provider payload. Quotes values are left untyped
// on purpose: the provider occasionally ships rates as strings, and a single
// malformed entry must not fail the whole batch.
type ratesResponse struct {
	Success bool                   `json:"success"`
	Source  string                 `json:"source"`
	Quotes  map[string]interface{} `json:"quotes"`
	Error   struct {
		Info string `json:"info"`
	} `json:"error"`
}

// NewExchangeAPI creates a rate source client for the given provider URL.
func NewExchangeAPI(baseURL, apiKey string, timeout time.Duration, logger *slog.Logger) *ExchangeAPI {
	return &ExchangeAPI{
		baseURL: baseURL,
		apiKey:  apiKey,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		logger: logger,
	}
}

// FetchRates loads the current reference rates for the given base currency.
// Malformed quote entries are skipped with a warning so the remaining
// currencies still refresh.
func (e *ExchangeAPI) FetchRates(ctx context.Context, baseCurrency string) (domain.RateQuotes, error) {
	url := fmt.Sprintf("%s/live?base=%s", e.baseURL, baseCurrency)
	if e.apiKey != "" {
		url += "&access_key=" + e.apiKey
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("building rates request: %w", err)
	}

	resp, err := e.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetching rates: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("rate provider returned status %d", resp.StatusCode)
	}

	var apiResp ratesResponse
	if err := json.NewDecoder(resp.Body).Decode(&apiResp); err != nil {
		return nil, fmt.Errorf("decoding rates response: %w", err)
	}
	if !apiResp.Success {
		if apiResp.Error.Info != "" {
			return nil, fmt.Errorf("rate provider reported failure: %s", apiResp.Error.Info)
		}
		return nil, fmt.Errorf("rate provider reported failure")
	}

	quotes := make(domain.RateQuotes, len(apiResp.Quotes))
	for code, value := range apiResp.Quotes {
		rate, err := parseRate(value)
		if err != nil {
			e.logger.Warn("Skipping malformed quote entry",
				slog.String("currency", code),
				slog.String("error", err.Error()),
			)
			continue
		}
		quotes[code] = rate
	}

	return quotes, nil
}

func parseRate(value interface{}) (decimal.Decimal, error) {
	switch v := value.(type) {
	case float64:
		return decimal.NewFromFloat(v), nil
	case string:
		rate, err := decimal.NewFromString(v)
		if err != nil {
			return decimal.Zero, fmt.Errorf("bad rate value %q: %w", v, err)
		}
		return rate, nil
	default:
		return decimal.Zero, fmt.Errorf("unexpected rate type %T", value)
	}
}

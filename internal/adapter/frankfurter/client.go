// Package frankfurter adapts the Frankfurter public exchange-rate API
// (https://api.frankfurter.app) to the rates.Provider port.
package frankfurter

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	portrates "github.com/alanyang/currency-mesh/internal/port/rates"
)

var _ portrates.Provider = (*Client)(nil)

const DefaultBaseURL = "https://api.frankfurter.app"

type Client struct {
	httpClient *http.Client
	baseURL    string
}

func NewClient(baseURL string, timeout time.Duration) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &Client{
		httpClient: &http.Client{Timeout: timeout},
		baseURL:    baseURL,
	}
}

// rateResponse mirrors the provider's payload:
// {"amount":1.0,"base":"USD","date":"2025-01-01","rates":{"EUR":0.92}}
type rateResponse struct {
	Base  string             `json:"base"`
	Date  string             `json:"date"`
	Rates map[string]float64 `json:"rates"`
}

func (c *Client) GetRate(ctx context.Context, from, to, date string) (portrates.Quote, error) {
	if date == "" {
		date = "latest"
	}

	u := fmt.Sprintf("%s/%s?from=%s&to=%s", c.baseURL, date, url.QueryEscape(from), url.QueryEscape(to))
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return portrates.Quote{}, fmt.Errorf("building rate request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return portrates.Quote{}, fmt.Errorf("calling rate API: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return portrates.Quote{}, fmt.Errorf("reading rate response: %w", err)
	}

	if resp.StatusCode == http.StatusNotFound {
		return portrates.Quote{}, fmt.Errorf("%w: %s/%s", portrates.ErrNotFound, from, to)
	}
	if resp.StatusCode != http.StatusOK {
		return portrates.Quote{}, fmt.Errorf("rate API returned %d", resp.StatusCode)
	}

	var parsed rateResponse
	if err := json.Unmarshal(body, &parsed); err != nil {
		return portrates.Quote{}, fmt.Errorf("decoding rate response: %w", err)
	}

	rate, ok := parsed.Rates[to]
	if !ok {
		return portrates.Quote{}, fmt.Errorf("%w: no rate for %s in response", portrates.ErrNotFound, to)
	}

	return portrates.Quote{
		Rate: rate,
		Date: parsed.Date,
		Raw:  json.RawMessage(body),
	}, nil
}

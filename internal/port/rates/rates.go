package rates

import (
	"context"
	"encoding/json"
	"errors"
)

//go:generate mockgen -destination=../../mocks/rates_mock.go -package=mocks github.com/alanyang/currency-mesh/internal/port/rates Provider

// ErrNotFound means the provider does not know the requested pair.
var ErrNotFound = errors.New("rates: pair not found")

// Quote is one answer from the rate provider. Raw keeps the provider's
// payload verbatim for downstream reporting.
type Quote struct {
	Rate float64         `json:"rate"`
	Date string          `json:"date"`
	Raw  json.RawMessage `json:"raw"`
}

// Provider looks up the exchange rate between two currency codes.
// An empty date means the latest available rate.
type Provider interface {
	GetRate(ctx context.Context, from, to, date string) (Quote, error)
}

package conversion

import (
	"encoding/json"
	"errors"
	"fmt"
	"regexp"
)

var codePattern = regexp.MustCompile(`^[A-Z]{3}$`)

var (
	ErrMissingCurrency = errors.New("conversion: missing currency code")
	ErrInvalidCurrency = errors.New("conversion: currency code must be three uppercase letters")
	ErrInvalidRate     = errors.New("conversion: rate must be positive")
)

// Result is the outcome of a single successful rate lookup. It is only
// ever constructed after the rate provider has answered; an invalid rate
// is rejected at construction, not carried forward.
type Result struct {
	From string          `json:"from"`
	To   string          `json:"to"`
	Rate float64         `json:"rate"`
	Raw  json.RawMessage `json:"raw,omitempty"`
}

func New(from, to string, rate float64, raw json.RawMessage) (Result, error) {
	r := Result{From: from, To: to, Rate: rate, Raw: raw}
	if err := r.Validate(); err != nil {
		return Result{}, err
	}
	return r, nil
}

// Validate checks the structural invariant: two well-formed ISO-style
// codes and a strictly positive rate.
func (r Result) Validate() error {
	if r.From == "" || r.To == "" {
		return ErrMissingCurrency
	}
	if !codePattern.MatchString(r.From) {
		return fmt.Errorf("%w: %q", ErrInvalidCurrency, r.From)
	}
	if !codePattern.MatchString(r.To) {
		return fmt.Errorf("%w: %q", ErrInvalidCurrency, r.To)
	}
	if r.Rate <= 0 {
		return fmt.Errorf("%w: %v", ErrInvalidRate, r.Rate)
	}
	return nil
}

// Pair is a source/target currency pair extracted from a user query.
type Pair struct {
	From string `json:"from"`
	To   string `json:"to"`
}

func (p Pair) Complete() bool { return p.From != "" && p.To != "" }

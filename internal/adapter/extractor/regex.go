package extractor

import (
	"context"
	"regexp"
	"strings"

	"github.com/alanyang/currency-mesh/internal/domain/conversion"
	portextractor "github.com/alanyang/currency-mesh/internal/port/extractor"
)

var _ portextractor.Extractor = (*Regex)(nil)

var tokenPattern = regexp.MustCompile(`[A-Za-z]+`)

// isoCodes is the set of codes the deterministic extractor recognizes,
// the currencies Frankfurter serves.
var isoCodes = map[string]bool{
	"AUD": true, "BGN": true, "BRL": true, "CAD": true, "CHF": true,
	"CNY": true, "CZK": true, "DKK": true, "EUR": true, "GBP": true,
	"HKD": true, "HUF": true, "IDR": true, "ILS": true, "INR": true,
	"ISK": true, "JPY": true, "KRW": true, "MXN": true, "MYR": true,
	"NOK": true, "NZD": true, "PHP": true, "PLN": true, "RON": true,
	"SEK": true, "SGD": true, "THB": true, "TRY": true, "USD": true,
	"ZAR": true,
}

// currencyNames maps common English currency words to codes.
var currencyNames = map[string]string{
	"dollar": "USD", "dollars": "USD",
	"euro": "EUR", "euros": "EUR",
	"pound": "GBP", "pounds": "GBP", "sterling": "GBP",
	"yen":  "JPY",
	"yuan": "CNY", "renminbi": "CNY",
	"franc": "CHF", "francs": "CHF",
	"rupee": "INR", "rupees": "INR",
	"won":   "KRW",
	"krona": "SEK", "kronor": "SEK",
	"zloty": "PLN",
	"real":  "BRL", "reais": "BRL",
}

// Regex is the deterministic fallback strategy: a pure function over the
// query text, no external calls, always terminates. The first two
// distinct currencies mentioned become the source and target, in order.
type Regex struct{}

func NewRegex() *Regex { return &Regex{} }

func (Regex) ExtractPair(_ context.Context, query string) (conversion.Pair, error) {
	var codes []string
	seen := map[string]bool{}

	for _, token := range tokenPattern.FindAllString(query, -1) {
		code := ""
		if upper := strings.ToUpper(token); len(token) == 3 && token == upper && isoCodes[upper] {
			code = upper
		} else if mapped, ok := currencyNames[strings.ToLower(token)]; ok {
			code = mapped
		}
		if code == "" || seen[code] {
			continue
		}
		seen[code] = true
		codes = append(codes, code)
		if len(codes) == 2 {
			break
		}
	}

	var pair conversion.Pair
	if len(codes) > 0 {
		pair.From = codes[0]
	}
	if len(codes) > 1 {
		pair.To = codes[1]
	}
	return pair, nil
}

// Package extractor implements the currency-pair extraction strategies:
// an LLM-backed primary, a deterministic regex fallback, and the chain
// that tries them in a fixed order.
package extractor

import (
	"context"
	"log/slog"

	"github.com/alanyang/currency-mesh/internal/domain/conversion"
	portextractor "github.com/alanyang/currency-mesh/internal/port/extractor"
)

var _ portextractor.Extractor = (*Chain)(nil)

// Chain runs the primary strategy and falls back to the secondary when
// the primary errors or leaves the pair incomplete. The fallback's
// answer only replaces the primary's if it is at least as complete.
type Chain struct {
	primary  portextractor.Extractor
	fallback portextractor.Extractor
}

func NewChain(primary, fallback portextractor.Extractor) *Chain {
	return &Chain{primary: primary, fallback: fallback}
}

func (c *Chain) ExtractPair(ctx context.Context, query string) (conversion.Pair, error) {
	pair, err := c.primary.ExtractPair(ctx, query)
	if err == nil && pair.Complete() {
		return pair, nil
	}
	if err != nil {
		slog.WarnContext(ctx, "primary extractor failed, falling back", "error", err)
		pair = conversion.Pair{}
	}

	fbPair, fbErr := c.fallback.ExtractPair(ctx, query)
	if fbErr != nil {
		// Fallback is a pure function and should not fail; keep whatever
		// the primary produced.
		slog.ErrorContext(ctx, "fallback extractor failed", "error", fbErr)
		return pair, nil
	}
	if countCodes(fbPair) >= countCodes(pair) {
		return fbPair, nil
	}
	return pair, nil
}

func countCodes(p conversion.Pair) int {
	n := 0
	if p.From != "" {
		n++
	}
	if p.To != "" {
		n++
	}
	return n
}

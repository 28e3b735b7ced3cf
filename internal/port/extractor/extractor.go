package extractor

import (
	"context"

	"github.com/alanyang/currency-mesh/internal/domain/conversion"
)

//go:generate mockgen -destination=../../mocks/extractor_mock.go -package=mocks github.com/alanyang/currency-mesh/internal/port/extractor Extractor

// Extractor pulls a currency pair out of a free-text query. An
// implementation may return a partial pair; callers decide whether an
// incomplete pair is an error or a request for clarification.
type Extractor interface {
	ExtractPair(ctx context.Context, query string) (conversion.Pair, error)
}

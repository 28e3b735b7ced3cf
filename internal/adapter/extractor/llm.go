package extractor

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/alanyang/currency-mesh/internal/domain/conversion"
	portextractor "github.com/alanyang/currency-mesh/internal/port/extractor"
	porttextgen "github.com/alanyang/currency-mesh/internal/port/textgen"
)

var _ portextractor.Extractor = (*LLM)(nil)

const llmSystemPrompt = `You extract currency codes from user queries. ` +
	`Reply with a single JSON object of the form {"from":"USD","to":"EUR"} ` +
	`using ISO 4217 codes. Use an empty string for any code the query does ` +
	`not determine. Reply with JSON only, no prose.`

// LLM asks a text-generation model for the currency pair. It is the
// primary strategy; any failure here is recoverable via the regex
// fallback.
type LLM struct {
	gen porttextgen.Generator
}

func NewLLM(gen porttextgen.Generator) *LLM {
	return &LLM{gen: gen}
}

func (l *LLM) ExtractPair(ctx context.Context, query string) (conversion.Pair, error) {
	out, err := l.gen.Generate(ctx, llmSystemPrompt, query)
	if err != nil {
		return conversion.Pair{}, fmt.Errorf("llm extraction: %w", err)
	}

	var pair conversion.Pair
	if err := json.Unmarshal([]byte(stripFences(out)), &pair); err != nil {
		return conversion.Pair{}, fmt.Errorf("llm extraction: unparseable reply %q: %w", out, err)
	}
	pair.From = strings.ToUpper(strings.TrimSpace(pair.From))
	pair.To = strings.ToUpper(strings.TrimSpace(pair.To))
	return pair, nil
}

// stripFences removes a markdown code fence if the model wrapped its
// JSON in one.
func stripFences(s string) string {
	s = strings.TrimSpace(s)
	if !strings.HasPrefix(s, "```") {
		return s
	}
	s = strings.TrimPrefix(s, "```json")
	s = strings.TrimPrefix(s, "```")
	s = strings.TrimSuffix(s, "```")
	return strings.TrimSpace(s)
}

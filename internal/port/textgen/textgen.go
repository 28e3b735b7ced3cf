package textgen

import "context"

//go:generate mockgen -destination=../../mocks/textgen_mock.go -package=mocks github.com/alanyang/currency-mesh/internal/port/textgen Generator

// Generator produces prose from a structured prompt. It may fail or
// time out; callers map failures into their own error taxonomy.
type Generator interface {
	Generate(ctx context.Context, system, prompt string) (string, error)
}

package reporter

import (
	"context"

	"github.com/alanyang/currency-mesh/internal/domain/conversion"
	"github.com/alanyang/currency-mesh/internal/domain/report"
)

//go:generate mockgen -destination=../../mocks/reporter_mock.go -package=mocks github.com/alanyang/currency-mesh/internal/port/reporter Client

// Client invokes the reporting agent's message/send capability. A
// returned error means the remote answer is absent (timeout, connection
// failure, malformed envelope); callers treat that as a partial failure,
// not a fatal one.
type Client interface {
	GenerateReport(ctx context.Context, conv conversion.Result, sessionID string) (report.Result, error)
}

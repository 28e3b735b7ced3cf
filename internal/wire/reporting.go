package wire

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/alanyang/currency-mesh/internal/adapter/memory"
	reportingsvc "github.com/alanyang/currency-mesh/internal/service/reporting"
	"github.com/alanyang/currency-mesh/internal/transport"
	"github.com/alanyang/currency-mesh/internal/transport/card"
	mcptransport "github.com/alanyang/currency-mesh/internal/transport/mcp"
)

// BuildReporting wires the reporting agent.
func BuildReporting(ctx context.Context) (*App, error) {
	store, pool, err := sessionStore(ctx)
	if err != nil {
		return nil, err
	}

	gen, err := textGenerator()
	if err != nil {
		return nil, err
	}

	bus := memory.NewBus()
	svc := reportingsvc.NewService(gen, store, bus)

	port := envOr("REPORTING_PORT", "5002")
	agentCard := card.Reporting(fmt.Sprintf("http://localhost:%s", port))
	mcpServer := mcptransport.NewReporting(svc)

	router := transport.NewReportingRouter(ctx, svc, bus, agentCard, mcpServer.Handler())

	slog.Info("reporting agent wired", "port", port)

	return &App{
		Pool:   pool,
		Server: newServer(port, router),
	}, nil
}

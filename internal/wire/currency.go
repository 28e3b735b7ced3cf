package wire

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/alanyang/currency-mesh/internal/adapter/a2aclient"
	extractoradapter "github.com/alanyang/currency-mesh/internal/adapter/extractor"
	"github.com/alanyang/currency-mesh/internal/adapter/frankfurter"
	"github.com/alanyang/currency-mesh/internal/adapter/memory"
	currencysvc "github.com/alanyang/currency-mesh/internal/service/currency"
	"github.com/alanyang/currency-mesh/internal/transport"
	"github.com/alanyang/currency-mesh/internal/transport/card"
	mcptransport "github.com/alanyang/currency-mesh/internal/transport/mcp"
)

// BuildCurrency wires the currency agent.
func BuildCurrency(ctx context.Context) (*App, error) {
	store, pool, err := sessionStore(ctx)
	if err != nil {
		return nil, err
	}

	gen, err := textGenerator()
	if err != nil {
		return nil, err
	}

	rates := frankfurter.NewClient(envOr("FRANKFURTER_URL", frankfurter.DefaultBaseURL), outboundTimeout)
	chain := extractoradapter.NewChain(extractoradapter.NewLLM(gen), extractoradapter.NewRegex())

	reportingURL := envOr("REPORTING_AGENT_URL", "http://localhost:5002")
	reporter := a2aclient.NewClient(reportingURL, outboundTimeout)

	// Resolve the peer's card at startup; failure is non-fatal, the peer
	// may simply not be up yet.
	if peerCard, err := reporter.Card(ctx); err != nil {
		slog.Warn("reporting agent card not resolvable", "url", reportingURL, "error", err)
	} else {
		slog.Info("resolved reporting agent card", "name", peerCard["name"], "version", peerCard["version"])
	}

	bus := memory.NewBus()
	svc := currencysvc.NewService(chain, rates, reporter, store, bus)

	port := envOr("CURRENCY_PORT", "5001")
	agentCard := card.Currency(fmt.Sprintf("http://localhost:%s", port))
	mcpServer := mcptransport.NewCurrency(svc, rates)

	router := transport.NewCurrencyRouter(ctx, svc, bus, agentCard, mcpServer.Handler())

	slog.Info("currency agent wired", "port", port, "reporting_agent", reportingURL)

	return &App{
		Pool:   pool,
		Server: newServer(port, router),
	}, nil
}

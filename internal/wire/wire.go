// Package wire is the composition root for both agents: the only place
// concrete adapters are bound to their port interfaces.
package wire

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	pgdb "github.com/alanyang/currency-mesh/internal/adapter/postgres"
	pgsession "github.com/alanyang/currency-mesh/internal/adapter/postgres/session"
	"github.com/alanyang/currency-mesh/internal/adapter/memory"
	openaiadapter "github.com/alanyang/currency-mesh/internal/adapter/openai"
	portsession "github.com/alanyang/currency-mesh/internal/port/session"
	porttextgen "github.com/alanyang/currency-mesh/internal/port/textgen"
)

// App holds the top-level resources needed to run and gracefully stop an
// agent. Pool is nil when the in-memory session store is in use.
type App struct {
	Pool   *pgxpool.Pool
	Server *http.Server
}

const outboundTimeout = 30 * time.Second

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// sessionStore picks Postgres when DATABASE_URL is set, the in-process
// store otherwise.
func sessionStore(ctx context.Context) (portsession.Store, *pgxpool.Pool, error) {
	dbURL := os.Getenv("DATABASE_URL")
	if dbURL == "" {
		slog.Info("DATABASE_URL not set, using in-memory session store")
		return memory.NewSessionStore(), nil, nil
	}

	pool, err := pgdb.Connect(ctx, dbURL)
	if err != nil {
		return nil, nil, fmt.Errorf("connecting to database: %w", err)
	}
	return pgsession.New(pool), pool, nil
}

func textGenerator() (porttextgen.Generator, error) {
	apiKey := os.Getenv("OPENAI_API_KEY")
	if apiKey == "" {
		return nil, fmt.Errorf("OPENAI_API_KEY not set")
	}
	return openaiadapter.NewClient(openaiadapter.Config{
		APIKey:  apiKey,
		Model:   envOr("OPENAI_MODEL", "gpt-4o-mini"),
		BaseURL: os.Getenv("OPENAI_BASE_URL"),
	}), nil
}

func newServer(port string, handler http.Handler) *http.Server {
	return &http.Server{
		Addr:    ":" + port,
		Handler: handler,
	}
}

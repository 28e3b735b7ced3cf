package transport

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	portbus "github.com/alanyang/currency-mesh/internal/port/eventbus"
	currencysvc "github.com/alanyang/currency-mesh/internal/service/currency"
	reportingsvc "github.com/alanyang/currency-mesh/internal/service/reporting"
	"github.com/alanyang/currency-mesh/internal/transport/a2a"
	"github.com/alanyang/currency-mesh/internal/transport/card"
	wshandler "github.com/alanyang/currency-mesh/internal/transport/ws"
)

// NewCurrencyRouter wires the currency agent's HTTP surface: the a2a
// endpoint, the agent card, the websocket progress stream, and the MCP
// endpoint.
func NewCurrencyRouter(
	ctx context.Context,
	svc *currencysvc.Service,
	bus portbus.EventBus,
	agentCard card.Card,
	mcpHandler http.Handler,
) *gin.Engine {
	r := base()

	a2a.RegisterCurrency(r.Group("/a2a"), svc, bus)
	card.Register(r, agentCard)
	mountWS(ctx, r, bus)
	mountMCP(r, mcpHandler)

	return r
}

// NewReportingRouter wires the reporting agent's HTTP surface.
func NewReportingRouter(
	ctx context.Context,
	svc *reportingsvc.Service,
	bus portbus.EventBus,
	agentCard card.Card,
	mcpHandler http.Handler,
) *gin.Engine {
	r := base()

	a2a.RegisterReporting(r.Group("/a2a"), svc, bus)
	card.Register(r, agentCard)
	mountWS(ctx, r, bus)
	mountMCP(r, mcpHandler)

	return r
}

func base() *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()

	r.Use(gin.Recovery())
	r.Use(RequestLogger())
	r.Use(CORSMiddleware())

	return r
}

func mountWS(ctx context.Context, r *gin.Engine, bus portbus.EventBus) {
	hub := wshandler.NewHub()
	hub.Register(r.Group("/api/ws"))

	if _, err := bus.Subscribe(ctx, hub.BroadcastHandler()); err != nil {
		slog.Error("failed to subscribe WS hub to event bus", "error", err)
	}
}

func mountMCP(r *gin.Engine, handler http.Handler) {
	if handler == nil {
		return
	}
	r.Any("/mcp", gin.WrapH(handler))
}

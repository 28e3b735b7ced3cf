// Package mcp exposes each agent's capabilities as MCP tools over
// streamable HTTP, so MCP-speaking clients can call them without the
// a2a envelope.
package mcp

import (
	"net/http"

	mcpserver "github.com/mark3labs/mcp-go/server"

	portrates "github.com/alanyang/currency-mesh/internal/port/rates"
	currencysvc "github.com/alanyang/currency-mesh/internal/service/currency"
	reportingsvc "github.com/alanyang/currency-mesh/internal/service/reporting"
)

// Server wraps the mark3labs/mcp-go MCPServer and its HTTP transport.
// Tool registration lives in tools.go.
type Server struct {
	httpSrv *mcpserver.StreamableHTTPServer
}

// NewCurrency builds the currency agent's MCP surface: get_exchange_rate
// for a bare lookup and convert for the full orchestrated flow.
func NewCurrency(svc *currencysvc.Service, rates portrates.Provider) *Server {
	mcpSrv := mcpserver.NewMCPServer(
		"currency-agent",
		"1.0.0",
		mcpserver.WithToolCapabilities(true),
	)
	RegisterCurrencyTools(mcpSrv, svc, rates)

	return &Server{httpSrv: mcpserver.NewStreamableHTTPServer(mcpSrv)}
}

// NewReporting builds the reporting agent's MCP surface.
func NewReporting(svc *reportingsvc.Service) *Server {
	mcpSrv := mcpserver.NewMCPServer(
		"reporting-agent",
		"1.0.0",
		mcpserver.WithToolCapabilities(true),
	)
	RegisterReportingTools(mcpSrv, svc)

	return &Server{httpSrv: mcpserver.NewStreamableHTTPServer(mcpSrv)}
}

// Handler returns an http.Handler serving the MCP endpoint.
func (s *Server) Handler() http.Handler {
	return s.httpSrv
}

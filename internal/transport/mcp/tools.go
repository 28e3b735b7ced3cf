package mcp

import (
	"context"
	"encoding/json"
	"fmt"

	mcpmcp "github.com/mark3labs/mcp-go/mcp"
	mcpserver "github.com/mark3labs/mcp-go/server"

	"github.com/alanyang/currency-mesh/internal/domain/conversion"
	portrates "github.com/alanyang/currency-mesh/internal/port/rates"
	currencysvc "github.com/alanyang/currency-mesh/internal/service/currency"
	reportingsvc "github.com/alanyang/currency-mesh/internal/service/reporting"
)

// RegisterCurrencyTools registers the currency agent's tools.
func RegisterCurrencyTools(s *mcpserver.MCPServer, svc *currencysvc.Service, rates portrates.Provider) {
	s.AddTool(mcpmcp.NewTool("get_exchange_rate",
		mcpmcp.WithDescription("Look up the exchange rate between two ISO 4217 currency codes. Returns the rate, the quote date, and the provider's raw payload."),
		mcpmcp.WithString("from", mcpmcp.Required(), mcpmcp.Description("Source currency code, e.g. USD")),
		mcpmcp.WithString("to", mcpmcp.Required(), mcpmcp.Description("Target currency code, e.g. EUR")),
		mcpmcp.WithString("date", mcpmcp.Description("Quote date YYYY-MM-DD; omit for the latest rate")),
	), getExchangeRateHandler(rates))

	s.AddTool(mcpmcp.NewTool("convert",
		mcpmcp.WithDescription("Run the full conversion flow for a free-text query: extract the currency pair, fetch the rate, and delegate report generation to the reporting agent."),
		mcpmcp.WithString("query", mcpmcp.Required(), mcpmcp.Description("Natural-language conversion query")),
		mcpmcp.WithString("session_id", mcpmcp.Description("Opaque session id; omitted means a fresh session")),
	), convertHandler(svc))
}

// RegisterReportingTools registers the reporting agent's tools.
func RegisterReportingTools(s *mcpserver.MCPServer, svc *reportingsvc.Service) {
	s.AddTool(mcpmcp.NewTool("generate_report",
		mcpmcp.WithDescription("Generate a prose report for a finished currency conversion."),
		mcpmcp.WithString("from", mcpmcp.Required(), mcpmcp.Description("Source currency code")),
		mcpmcp.WithString("to", mcpmcp.Required(), mcpmcp.Description("Target currency code")),
		mcpmcp.WithNumber("rate", mcpmcp.Required(), mcpmcp.Description("Exchange rate, must be positive")),
		mcpmcp.WithString("session_id", mcpmcp.Description("Opaque session id")),
	), generateReportHandler(svc))
}

// ── Tool handlers ─────────────────────────────────────────────────────────

func getExchangeRateHandler(rates portrates.Provider) mcpserver.ToolHandlerFunc {
	return func(ctx context.Context, req mcpmcp.CallToolRequest) (*mcpmcp.CallToolResult, error) {
		from := mcpmcp.ParseString(req, "from", "")
		to := mcpmcp.ParseString(req, "to", "")
		date := mcpmcp.ParseString(req, "date", "")

		if from == "" || to == "" {
			return mcpmcp.NewToolResultText("error: from and to are required"), nil
		}

		quote, err := rates.GetRate(ctx, from, to, date)
		if err != nil {
			return mcpmcp.NewToolResultText(fmt.Sprintf("error: %s", err)), nil
		}

		result, _ := json.Marshal(map[string]any{
			"from": from,
			"to":   to,
			"rate": quote.Rate,
			"date": quote.Date,
		})
		return mcpmcp.NewToolResultText(string(result)), nil
	}
}

func convertHandler(svc *currencysvc.Service) mcpserver.ToolHandlerFunc {
	return func(ctx context.Context, req mcpmcp.CallToolRequest) (*mcpmcp.CallToolResult, error) {
		query := mcpmcp.ParseString(req, "query", "")
		sessionID := mcpmcp.ParseString(req, "session_id", "")

		if query == "" {
			return mcpmcp.NewToolResultText("error: query is required"), nil
		}

		result, err := svc.ConvertWithReport(ctx, query, sessionID)
		if err != nil {
			return mcpmcp.NewToolResultText(fmt.Sprintf("error: %s", err)), nil
		}

		out, _ := json.Marshal(result)
		return mcpmcp.NewToolResultText(string(out)), nil
	}
}

func generateReportHandler(svc *reportingsvc.Service) mcpserver.ToolHandlerFunc {
	return func(ctx context.Context, req mcpmcp.CallToolRequest) (*mcpmcp.CallToolResult, error) {
		conv := conversion.Result{
			From: mcpmcp.ParseString(req, "from", ""),
			To:   mcpmcp.ParseString(req, "to", ""),
			Rate: mcpmcp.ParseFloat64(req, "rate", 0),
		}
		sessionID := mcpmcp.ParseString(req, "session_id", "")

		rep, err := svc.GenerateReport(ctx, conv, sessionID)
		if err != nil {
			return mcpmcp.NewToolResultText(fmt.Sprintf("error: %s", err)), nil
		}

		out, _ := json.Marshal(rep)
		return mcpmcp.NewToolResultText(string(out)), nil
	}
}

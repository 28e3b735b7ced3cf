// Package currency orchestrates the conversion flow: pair extraction,
// rate lookup, and optional delegation to the reporting agent.
package currency

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/alanyang/currency-mesh/internal/domain/conversion"
	"github.com/alanyang/currency-mesh/internal/domain/event"
	"github.com/alanyang/currency-mesh/internal/domain/report"
	domainsession "github.com/alanyang/currency-mesh/internal/domain/session"
	portbus "github.com/alanyang/currency-mesh/internal/port/eventbus"
	portextractor "github.com/alanyang/currency-mesh/internal/port/extractor"
	portrates "github.com/alanyang/currency-mesh/internal/port/rates"
	portreporter "github.com/alanyang/currency-mesh/internal/port/reporter"
	portsession "github.com/alanyang/currency-mesh/internal/port/session"
	"github.com/alanyang/currency-mesh/internal/protocol"
)

type Service struct {
	extractor portextractor.Extractor
	rates     portrates.Provider
	reporter  portreporter.Client
	store     portsession.Store
	bus       portbus.EventBus
}

func NewService(
	ext portextractor.Extractor,
	rates portrates.Provider,
	rep portreporter.Client,
	store portsession.Store,
	bus portbus.EventBus,
) *Service {
	return &Service{
		extractor: ext,
		rates:     rates,
		reporter:  rep,
		store:     store,
		bus:       bus,
	}
}

// ConvertWithReport runs the full flow for one query. Rate-lookup
// failure is fatal to the request and short-circuits the reporting call;
// a reporting failure is not: the conversion is still returned with the
// report sub-object marked as errored.
func (s *Service) ConvertWithReport(ctx context.Context, query, sessionID string) (protocol.SendWithReportResult, error) {
	if sessionID == "" {
		sessionID = domainsession.NewSessionID()
	}
	s.append(ctx, sessionID, domainsession.RoleUser, query)
	s.publish(ctx, event.New(event.TypeQueryReceived, sessionID, "Processing your request..."))

	pair, err := s.extractor.ExtractPair(ctx, query)
	if err != nil || !pair.Complete() {
		// The deterministic fallback always terminates, so err here means
		// both strategies were exhausted.
		s.publish(ctx, event.New(event.TypeRequestFailed, sessionID, "Could not determine a currency pair."))
		return protocol.SendWithReportResult{
			Status:    protocol.StatusInputRequired,
			Message:   "Please name both the source and target currency, e.g. \"USD to EUR\".",
			SessionID: sessionID,
		}, nil
	}
	s.publish(ctx, event.New(event.TypePairExtracted, sessionID,
		fmt.Sprintf("Converting %s to %s.", pair.From, pair.To)))

	s.publish(ctx, event.New(event.TypeRateLookup, sessionID, "Looking up the exchange rates..."))
	quote, err := s.rates.GetRate(ctx, pair.From, pair.To, "")
	if err != nil {
		slog.ErrorContext(ctx, "rate lookup failed", "from", pair.From, "to", pair.To, "error", err)
		s.publish(ctx, event.New(event.TypeRequestFailed, sessionID, "Exchange rate lookup failed."))
		return protocol.SendWithReportResult{
			Status:    protocol.StatusError,
			Message:   fmt.Sprintf("exchange rate lookup failed for %s/%s: %v", pair.From, pair.To, err),
			SessionID: sessionID,
		}, nil
	}

	conv, err := conversion.New(pair.From, pair.To, quote.Rate, quote.Raw)
	if err != nil {
		// Provider answered with a malformed rate; treat like a lookup failure.
		slog.ErrorContext(ctx, "rate provider returned invalid rate", "rate", quote.Rate, "error", err)
		s.publish(ctx, event.New(event.TypeRequestFailed, sessionID, "Exchange rate lookup failed."))
		return protocol.SendWithReportResult{
			Status:    protocol.StatusError,
			Message:   fmt.Sprintf("rate provider returned an invalid rate: %v", err),
			SessionID: sessionID,
		}, nil
	}
	s.publish(ctx, event.New(event.TypeRateResolved, sessionID,
		fmt.Sprintf("1 %s = %v %s as of %s.", conv.From, conv.Rate, conv.To, quote.Date)))
	s.append(ctx, sessionID, domainsession.RoleAgent,
		fmt.Sprintf("1 %s = %v %s", conv.From, conv.Rate, conv.To))

	s.publish(ctx, event.New(event.TypeReportRequested, sessionID, "Generating comprehensive report..."))
	rep, err := s.reporter.GenerateReport(ctx, conv, sessionID)
	if err != nil {
		// Partial failure: the conversion stands, the report does not.
		slog.WarnContext(ctx, "reporting agent unavailable", "session_id", sessionID, "error", err)
		rep = reportUnavailable(err)
	}

	status := protocol.StatusCompleted
	if rep.Status == report.StatusError {
		s.publish(ctx, event.New(event.TypeReportGenerated, sessionID, "Report unavailable."))
	} else {
		s.publish(ctx, event.New(event.TypeReportGenerated, sessionID, "Report ready."))
	}
	s.publish(ctx, event.New(event.TypeRequestCompleted, sessionID, "Done."))

	return protocol.SendWithReportResult{
		Status:     status,
		Conversion: &conv,
		Report:     &rep,
		SessionID:  sessionID,
	}, nil
}

func reportUnavailable(err error) report.Result {
	return report.Failed(fmt.Sprintf("reporting agent unavailable: %v", err))
}

func (s *Service) append(ctx context.Context, sessionID string, role domainsession.Role, content string) {
	if err := s.store.Append(ctx, domainsession.NewEntry(sessionID, role, content)); err != nil {
		slog.ErrorContext(ctx, "failed to append session history", "session_id", sessionID, "error", err)
	}
}

func (s *Service) publish(ctx context.Context, e event.Event) {
	if err := s.bus.Publish(ctx, e); err != nil {
		slog.ErrorContext(ctx, "failed to publish event", "type", e.Type, "error", err)
	}
}

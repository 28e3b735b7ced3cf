// Package reporting turns a finished conversion into human-readable
// prose. Input validation happens here; downstream failures are folded
// into the report record rather than propagated as faults.
package reporting

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/alanyang/currency-mesh/internal/domain/conversion"
	"github.com/alanyang/currency-mesh/internal/domain/event"
	"github.com/alanyang/currency-mesh/internal/domain/report"
	domainsession "github.com/alanyang/currency-mesh/internal/domain/session"
	portbus "github.com/alanyang/currency-mesh/internal/port/eventbus"
	portsession "github.com/alanyang/currency-mesh/internal/port/session"
	porttextgen "github.com/alanyang/currency-mesh/internal/port/textgen"
)

const reportSystemPrompt = `You are a specialized assistant for generating ` +
	`currency conversion reports. Write a short, clear prose report about ` +
	`the conversion you are given. Do not invent rates or dates that are ` +
	`not in the data.`

type Service struct {
	gen   porttextgen.Generator
	store portsession.Store
	bus   portbus.EventBus
}

func NewService(gen porttextgen.Generator, store portsession.Store, bus portbus.EventBus) *Service {
	return &Service{gen: gen, store: store, bus: bus}
}

// GenerateReport validates the conversion and delegates phrasing to the
// text-generation capability. A structurally invalid conversion is an
// input error: the generator is never invoked and the returned record
// has Status error. Generator failures are likewise folded into the
// record, so the error return is always nil today; it stays in the
// signature because callers treat this as a fallible port.
func (s *Service) GenerateReport(ctx context.Context, conv conversion.Result, sessionID string) (report.Result, error) {
	if err := conv.Validate(); err != nil {
		slog.WarnContext(ctx, "rejecting invalid conversion result", "session_id", sessionID, "error", err)
		return report.Failed(fmt.Sprintf("invalid conversion result: %v", err)), nil
	}

	s.publish(ctx, event.New(event.TypeReportRequested, sessionID, "Generating currency conversion report..."))

	prompt := fmt.Sprintf(
		"Write a report for this currency conversion.\nFrom: %s\nTo: %s\nRate: 1 %s = %v %s\nProvider payload: %s",
		conv.From, conv.To, conv.From, conv.Rate, conv.To, string(conv.Raw),
	)

	text, err := s.gen.Generate(ctx, reportSystemPrompt, prompt)
	if err != nil {
		slog.ErrorContext(ctx, "report generation failed", "session_id", sessionID, "error", err)
		s.publish(ctx, event.New(event.TypeRequestFailed, sessionID, "Report generation failed."))
		return report.Failed(fmt.Sprintf("report generation failed: %v", err)), nil
	}
	if text == "" {
		s.publish(ctx, event.New(event.TypeRequestFailed, sessionID, "Report generation returned no text."))
		return report.Failed("report generation returned no text"), nil
	}

	s.append(ctx, sessionID, domainsession.RoleAgent, text)
	s.publish(ctx, event.New(event.TypeReportGenerated, sessionID, "Report ready."))

	return report.Completed(text), nil
}

// append records history best-effort; a store failure never fails the
// request.
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

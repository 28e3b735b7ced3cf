package event

import "time"

type Type string

const (
	TypeQueryReceived    Type = "query_received"
	TypePairExtracted    Type = "pair_extracted"
	TypeRateLookup       Type = "rate_lookup"
	TypeRateResolved     Type = "rate_resolved"
	TypeReportRequested  Type = "report_requested"
	TypeReportGenerated  Type = "report_generated"
	TypeRequestCompleted Type = "request_completed"
	TypeRequestFailed    Type = "request_failed"
)

// Event is a progress notification for one in-flight request, keyed by
// the opaque session id. Subscribers see events in publish order.
type Event struct {
	Type      Type      `json:"type"`
	SessionID string    `json:"session_id"`
	Message   string    `json:"message,omitempty"`
	Timestamp time.Time `json:"timestamp"`
}

func New(eventType Type, sessionID, message string) Event {
	return Event{
		Type:      eventType,
		SessionID: sessionID,
		Message:   message,
		Timestamp: time.Now().UTC(),
	}
}

package session

import (
	"context"

	domainsession "github.com/alanyang/currency-mesh/internal/domain/session"
)

//go:generate mockgen -destination=../../mocks/session_mock.go -package=mocks github.com/alanyang/currency-mesh/internal/port/session Store

// Store is the append-only conversation history, keyed by the opaque
// session id. There is no cross-session visibility and no mutation of
// appended entries.
type Store interface {
	Append(ctx context.Context, e domainsession.Entry) error
	History(ctx context.Context, sessionID string) ([]domainsession.Entry, error)
}

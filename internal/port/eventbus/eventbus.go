package eventbus

import (
	"context"

	"github.com/alanyang/currency-mesh/internal/domain/event"
)

//go:generate mockgen -destination=../../mocks/eventbus_mock.go -package=mocks github.com/alanyang/currency-mesh/internal/port/eventbus EventBus

type Handler func(ctx context.Context, e event.Event)

type Subscription interface {
	Unsubscribe()
}

// EventBus fans progress events out to subscribers. Handlers must not
// block; slow consumers are the subscriber's problem.
type EventBus interface {
	Publish(ctx context.Context, e event.Event) error
	Subscribe(ctx context.Context, handler Handler) (Subscription, error)
}

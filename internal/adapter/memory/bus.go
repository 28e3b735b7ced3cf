package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/alanyang/currency-mesh/internal/domain/event"
	portbus "github.com/alanyang/currency-mesh/internal/port/eventbus"
)

var _ portbus.EventBus = (*Bus)(nil)

// Bus is the in-process event bus. Publish delivers to every subscriber
// synchronously, in subscription order; handlers must return quickly.
type Bus struct {
	mu       sync.RWMutex
	nextID   int
	handlers map[int]portbus.Handler
}

func NewBus() *Bus {
	return &Bus{handlers: make(map[int]portbus.Handler)}
}

func (b *Bus) Publish(ctx context.Context, e event.Event) error {
	b.mu.RLock()
	ids := make([]int, 0, len(b.handlers))
	for id := range b.handlers {
		ids = append(ids, id)
	}
	sort.Ints(ids)
	handlers := make([]portbus.Handler, 0, len(ids))
	for _, id := range ids {
		handlers = append(handlers, b.handlers[id])
	}
	b.mu.RUnlock()

	for _, h := range handlers {
		h(ctx, e)
	}
	return nil
}

func (b *Bus) Subscribe(_ context.Context, handler portbus.Handler) (portbus.Subscription, error) {
	b.mu.Lock()
	id := b.nextID
	b.nextID++
	b.handlers[id] = handler
	b.mu.Unlock()

	return &subscription{bus: b, id: id}, nil
}

type subscription struct {
	bus  *Bus
	id   int
	once sync.Once
}

func (s *subscription) Unsubscribe() {
	s.once.Do(func() {
		s.bus.mu.Lock()
		delete(s.bus.handlers, s.id)
		s.bus.mu.Unlock()
	})
}

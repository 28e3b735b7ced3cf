package memory_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alanyang/currency-mesh/internal/adapter/memory"
	"github.com/alanyang/currency-mesh/internal/domain/event"
)

func TestBus_PublishReachesSubscribers(t *testing.T) {
	bus := memory.NewBus()
	ctx := context.Background()

	var got []event.Event
	_, err := bus.Subscribe(ctx, func(_ context.Context, e event.Event) {
		got = append(got, e)
	})
	require.NoError(t, err)

	require.NoError(t, bus.Publish(ctx, event.New(event.TypeRateLookup, "s-1", "looking up")))
	require.NoError(t, bus.Publish(ctx, event.New(event.TypeRateResolved, "s-1", "resolved")))

	require.Len(t, got, 2)
	assert.Equal(t, event.TypeRateLookup, got[0].Type)
	assert.Equal(t, event.TypeRateResolved, got[1].Type)
	assert.Equal(t, "s-1", got[0].SessionID)
}

func TestBus_UnsubscribeStopsDelivery(t *testing.T) {
	bus := memory.NewBus()
	ctx := context.Background()

	count := 0
	sub, err := bus.Subscribe(ctx, func(_ context.Context, _ event.Event) { count++ })
	require.NoError(t, err)

	require.NoError(t, bus.Publish(ctx, event.New(event.TypeQueryReceived, "s-1", "hi")))
	sub.Unsubscribe()
	require.NoError(t, bus.Publish(ctx, event.New(event.TypeQueryReceived, "s-1", "again")))

	assert.Equal(t, 1, count)
}

func TestBus_UnsubscribeIsIdempotent(t *testing.T) {
	bus := memory.NewBus()
	sub, err := bus.Subscribe(context.Background(), func(_ context.Context, _ event.Event) {})
	require.NoError(t, err)

	sub.Unsubscribe()
	sub.Unsubscribe()
}

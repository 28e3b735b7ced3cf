package memory_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alanyang/currency-mesh/internal/adapter/memory"
	domainsession "github.com/alanyang/currency-mesh/internal/domain/session"
)

func TestSessionStore_AppendAndHistory(t *testing.T) {
	store := memory.NewSessionStore()
	ctx := context.Background()

	require.NoError(t, store.Append(ctx, domainsession.NewEntry("s-1", domainsession.RoleUser, "first")))
	require.NoError(t, store.Append(ctx, domainsession.NewEntry("s-1", domainsession.RoleAgent, "second")))

	got, err := store.History(ctx, "s-1")
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "first", got[0].Content)
	assert.Equal(t, "second", got[1].Content)
}

func TestSessionStore_NoCrossSessionVisibility(t *testing.T) {
	store := memory.NewSessionStore()
	ctx := context.Background()

	require.NoError(t, store.Append(ctx, domainsession.NewEntry("s-1", domainsession.RoleUser, "mine")))

	got, err := store.History(ctx, "s-2")
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestSessionStore_HistoryIsACopy(t *testing.T) {
	store := memory.NewSessionStore()
	ctx := context.Background()

	require.NoError(t, store.Append(ctx, domainsession.NewEntry("s-1", domainsession.RoleUser, "original")))

	got, _ := store.History(ctx, "s-1")
	got[0].Content = "mutated"

	again, _ := store.History(ctx, "s-1")
	assert.Equal(t, "original", again[0].Content)
}

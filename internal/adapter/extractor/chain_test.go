package extractor_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	extractoradapter "github.com/alanyang/currency-mesh/internal/adapter/extractor"
	"github.com/alanyang/currency-mesh/internal/domain/conversion"
	"github.com/alanyang/currency-mesh/internal/mocks"
)

func newChain(t *testing.T) (*extractoradapter.Chain, *mocks.MockExtractor, *mocks.MockExtractor) {
	t.Helper()
	ctrl := gomock.NewController(t)
	primary := mocks.NewMockExtractor(ctrl)
	fallback := mocks.NewMockExtractor(ctrl)
	return extractoradapter.NewChain(primary, fallback), primary, fallback
}

func TestChain_PrimaryCompletePairWins(t *testing.T) {
	chain, primary, _ := newChain(t)
	primary.EXPECT().ExtractPair(gomock.Any(), "q").
		Return(conversion.Pair{From: "USD", To: "EUR"}, nil)

	got, err := chain.ExtractPair(context.Background(), "q")
	require.NoError(t, err)
	assert.Equal(t, conversion.Pair{From: "USD", To: "EUR"}, got)
}

func TestChain_PrimaryErrorFallsBack(t *testing.T) {
	chain, primary, fallback := newChain(t)
	primary.EXPECT().ExtractPair(gomock.Any(), "q").
		Return(conversion.Pair{}, errors.New("llm down"))
	fallback.EXPECT().ExtractPair(gomock.Any(), "q").
		Return(conversion.Pair{From: "USD", To: "EUR"}, nil)

	got, err := chain.ExtractPair(context.Background(), "q")
	require.NoError(t, err)
	assert.Equal(t, conversion.Pair{From: "USD", To: "EUR"}, got)
}

func TestChain_PrimaryIncompleteTriesFallback(t *testing.T) {
	chain, primary, fallback := newChain(t)
	primary.EXPECT().ExtractPair(gomock.Any(), "q").
		Return(conversion.Pair{From: "USD"}, nil)
	fallback.EXPECT().ExtractPair(gomock.Any(), "q").
		Return(conversion.Pair{From: "USD", To: "EUR"}, nil)

	got, err := chain.ExtractPair(context.Background(), "q")
	require.NoError(t, err)
	assert.Equal(t, conversion.Pair{From: "USD", To: "EUR"}, got)
}

func TestChain_KeepsPrimaryWhenFallbackFindsLess(t *testing.T) {
	chain, primary, fallback := newChain(t)
	primary.EXPECT().ExtractPair(gomock.Any(), "q").
		Return(conversion.Pair{From: "USD"}, nil)
	fallback.EXPECT().ExtractPair(gomock.Any(), "q").
		Return(conversion.Pair{}, nil)

	got, err := chain.ExtractPair(context.Background(), "q")
	require.NoError(t, err)
	assert.Equal(t, conversion.Pair{From: "USD"}, got)
}

func TestChain_BothEmptyIsNotAnError(t *testing.T) {
	// The caller decides what an empty pair means; the chain never fails.
	chain, primary, fallback := newChain(t)
	primary.EXPECT().ExtractPair(gomock.Any(), "q").
		Return(conversion.Pair{}, errors.New("llm down"))
	fallback.EXPECT().ExtractPair(gomock.Any(), "q").
		Return(conversion.Pair{}, nil)

	got, err := chain.ExtractPair(context.Background(), "q")
	require.NoError(t, err)
	assert.False(t, got.Complete())
}

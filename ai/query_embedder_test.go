package ai_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/francisfiscal/retrieval/ai"
	"github.com/francisfiscal/retrieval/ai/mock"
	"github.com/francisfiscal/retrieval/core"
)

func fastPolicy() ai.RetryPolicy {
	return ai.RetryPolicy{MaxAttempts: 3, BaseDelay: time.Millisecond}
}

func TestNewQueryEmbedder(t *testing.T) {
	t.Run("valid configuration", func(t *testing.T) {
		qe, err := ai.NewQueryEmbedder(mock.NewMockEmbedder())
		require.NoError(t, err)
		assert.NotNil(t, qe)
	})

	t.Run("nil embedder", func(t *testing.T) {
		_, err := ai.NewQueryEmbedder(nil)
		assert.Equal(t, ai.ErrEmbedderRequired, err)
	})
}

func TestEmbedQuery_InvalidInput(t *testing.T) {
	embedder := mock.NewMockEmbedder()
	qe, err := ai.NewQueryEmbedder(embedder)
	require.NoError(t, err)

	for _, query := range []string{"", "   ", "\t\n "} {
		_, err := qe.EmbedQuery(context.Background(), query)
		assert.ErrorIs(t, err, core.ErrInvalidQuery)
	}
	assert.Equal(t, 0, embedder.CallCount(), "blank input must not reach the provider")
}

func TestEmbedQuery_Memoization(t *testing.T) {
	embedder := mock.NewMockEmbedder()
	qe, err := ai.NewQueryEmbedder(embedder)
	require.NoError(t, err)

	ctx := context.Background()
	first, err := qe.EmbedQuery(ctx, "quelle est ma TMI ?")
	require.NoError(t, err)

	second, err := qe.EmbedQuery(ctx, "quelle est ma TMI ?")
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.Equal(t, 1, embedder.CallCount(), "repeat query must hit the cache")
	assert.Equal(t, 1, qe.CacheLen())

	_, err = qe.EmbedQuery(ctx, "plus-value résidence secondaire")
	require.NoError(t, err)
	assert.Equal(t, 2, embedder.CallCount())
}

func TestEmbedQuery_CacheBounded(t *testing.T) {
	embedder := mock.NewMockEmbedder()
	qe, err := ai.NewQueryEmbedder(embedder, ai.WithQueryCacheSize(2))
	require.NoError(t, err)

	ctx := context.Background()
	for _, q := range []string{"a b c d", "e f g h", "i j k l"} {
		_, err := qe.EmbedQuery(ctx, q)
		require.NoError(t, err)
	}

	assert.Equal(t, 2, qe.CacheLen(), "cache must stay within capacity")
}

func TestEmbedQuery_RetriesThenSucceeds(t *testing.T) {
	attempts := 0
	embedder := mock.NewMockEmbedder()
	embedder.EmbedTextFunc = func(ctx context.Context, text string) ([]float32, error) {
		attempts++
		if attempts < 3 {
			return nil, errors.New("429 rate limit exceeded")
		}
		return []float32{1, 0, 0}, nil
	}

	qe, err := ai.NewQueryEmbedder(embedder, ai.WithRetryPolicy(fastPolicy()))
	require.NoError(t, err)

	vector, err := qe.EmbedQuery(context.Background(), "barème impôt sur le revenu")
	require.NoError(t, err)
	assert.Equal(t, []float32{1, 0, 0}, vector)
	assert.Equal(t, 3, attempts)
}

func TestEmbedQuery_ExhaustedRetries(t *testing.T) {
	embedder := mock.NewMockEmbedder()
	embedder.EmbedTextFunc = func(ctx context.Context, text string) ([]float32, error) {
		return nil, errors.New("429 rate limit exceeded")
	}

	qe, err := ai.NewQueryEmbedder(embedder, ai.WithRetryPolicy(fastPolicy()))
	require.NoError(t, err)

	_, err = qe.EmbedQuery(context.Background(), "barème impôt sur le revenu")
	require.Error(t, err)

	var pe *ai.ProviderError
	require.ErrorAs(t, err, &pe)
	assert.Equal(t, ai.KindRateLimited, pe.Kind)
	assert.Equal(t, 3, pe.Attempts)
	assert.Equal(t, 0, qe.CacheLen(), "failures must not be cached")
}

func TestEmbedQuery_AuthFailureNotRetried(t *testing.T) {
	attempts := 0
	embedder := mock.NewMockEmbedder()
	embedder.EmbedTextFunc = func(ctx context.Context, text string) ([]float32, error) {
		attempts++
		return nil, &ai.ProviderError{Kind: ai.KindAuth, Attempts: 1, Err: errors.New("invalid api key")}
	}

	qe, err := ai.NewQueryEmbedder(embedder, ai.WithRetryPolicy(fastPolicy()))
	require.NoError(t, err)

	_, err = qe.EmbedQuery(context.Background(), "assurance vie fiscalité")
	require.Error(t, err)
	assert.True(t, ai.IsProviderError(err))
	assert.Equal(t, 1, attempts, "auth failures must not be retried")
}

func TestEmbedQuery_Timeout(t *testing.T) {
	embedder := mock.NewMockEmbedder()
	embedder.EmbedTextFunc = func(ctx context.Context, text string) ([]float32, error) {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(time.Second):
			return []float32{1}, nil
		}
	}

	qe, err := ai.NewQueryEmbedder(embedder,
		ai.WithRetryPolicy(fastPolicy()),
		ai.WithTimeout(20*time.Millisecond),
	)
	require.NoError(t, err)

	start := time.Now()
	_, err = qe.EmbedQuery(context.Background(), "délais de reprise")
	require.Error(t, err)
	assert.Less(t, time.Since(start), 500*time.Millisecond, "timeout must bound the call")
}

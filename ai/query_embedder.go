package ai

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"time"

	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/francisfiscal/retrieval/core"
)

const (
	// DefaultQueryCacheSize bounds the memoization cache. Chat traffic
	// repeats a small set of hot queries; a few hundred entries is enough
	// to absorb them without unbounded growth under varied traffic.
	DefaultQueryCacheSize = 200
)

// QueryEmbedder converts natural-language queries into dense vectors using
// the same model as the stored corpus. Results are memoized per distinct
// query string with a bounded LRU, and transient provider failures are
// retried with exponential backoff before a ProviderError reaches the
// caller.
//
// Safe for concurrent use. Concurrent misses on the same query may each
// call the provider; the computed value is deterministic, so last-writer-wins
// on the cache is harmless and only wastes one redundant call.
type QueryEmbedder struct {
	inner   Embedder
	cache   *lru.Cache[string, []float32]
	policy  RetryPolicy
	timeout time.Duration
	logger  *slog.Logger
}

// QueryEmbedderOption configures a QueryEmbedder.
type QueryEmbedderOption func(*queryEmbedderOptions)

type queryEmbedderOptions struct {
	cacheSize int
	policy    RetryPolicy
	timeout   time.Duration
	logger    *slog.Logger
}

// WithQueryCacheSize sets the memoization cache capacity.
// Default is DefaultQueryCacheSize.
func WithQueryCacheSize(size int) QueryEmbedderOption {
	return func(o *queryEmbedderOptions) {
		if size > 0 {
			o.cacheSize = size
		}
	}
}

// WithRetryPolicy sets the retry policy for provider calls.
// Default is DefaultRetryPolicy().
func WithRetryPolicy(policy RetryPolicy) QueryEmbedderOption {
	return func(o *queryEmbedderOptions) {
		o.policy = policy
	}
}

// WithTimeout bounds each provider call. On timeout the pipeline degrades
// to "no chunks found" instead of blocking the chat turn.
// Default is 10s.
func WithTimeout(timeout time.Duration) QueryEmbedderOption {
	return func(o *queryEmbedderOptions) {
		if timeout > 0 {
			o.timeout = timeout
		}
	}
}

// WithQueryLogger sets a custom logger. Default is slog.Default().
func WithQueryLogger(logger *slog.Logger) QueryEmbedderOption {
	return func(o *queryEmbedderOptions) {
		if logger != nil {
			o.logger = logger
		}
	}
}

// NewQueryEmbedder wraps an Embedder with memoization, retry and timeout
// handling for query-time use.
func NewQueryEmbedder(inner Embedder, opts ...QueryEmbedderOption) (*QueryEmbedder, error) {
	if inner == nil {
		return nil, ErrEmbedderRequired
	}

	options := &queryEmbedderOptions{
		cacheSize: DefaultQueryCacheSize,
		policy:    DefaultRetryPolicy(),
		timeout:   10 * time.Second,
		logger:    slog.Default(),
	}
	for _, opt := range opts {
		opt(options)
	}

	cache, err := lru.New[string, []float32](options.cacheSize)
	if err != nil {
		return nil, err
	}

	return &QueryEmbedder{
		inner:   inner,
		cache:   cache,
		policy:  options.policy,
		timeout: options.timeout,
		logger:  options.logger.With("component", "query-embedder"),
	}, nil
}

// EmbedQuery returns the embedding vector for a query string.
//
// Whitespace-only input fails fast with core.ErrInvalidQuery. On a cache
// miss the provider is called under the configured timeout and retry
// policy; after retries exhaust, a *ProviderError is returned and no
// partial value is cached.
func (qe *QueryEmbedder) EmbedQuery(ctx context.Context, query string) ([]float32, error) {
	if strings.TrimSpace(query) == "" {
		return nil, core.ErrInvalidQuery
	}

	if vector, ok := qe.cache.Get(query); ok {
		qe.logger.Debug("query embedding cache hit", "length", len(query))
		return vector, nil
	}

	callCtx, cancel := context.WithTimeout(ctx, qe.timeout)
	defer cancel()

	var vector []float32
	err := qe.policy.Do(callCtx, func() error {
		var embedErr error
		vector, embedErr = qe.inner.EmbedText(callCtx, query)
		return embedErr
	})
	if err != nil {
		qe.logger.Error("error generating embedding for query", "err", err)
		var pe *ProviderError
		if !errors.As(err, &pe) {
			err = &ProviderError{Kind: classify(err), Attempts: qe.policy.MaxAttempts, Err: err}
		}
		return nil, err
	}

	qe.cache.Add(query, vector)
	return vector, nil
}

// CacheLen returns the number of memoized queries. Exposed for tests and
// operational introspection.
func (qe *QueryEmbedder) CacheLen() int {
	return qe.cache.Len()
}

// classify maps a raw provider failure onto an ErrorKind. Providers speak
// through opaque SDK errors, so classification is best-effort on the error
// text; unknown failures stay retryable.
func classify(err error) ErrorKind {
	if err == nil {
		return KindUnknown
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return KindTimeout
	}
	msg := strings.ToLower(err.Error())
	switch {
	case strings.Contains(msg, "deadline exceeded") || strings.Contains(msg, "timeout"):
		return KindTimeout
	case strings.Contains(msg, "rate limit") || strings.Contains(msg, "429") || strings.Contains(msg, "quota"):
		return KindRateLimited
	case strings.Contains(msg, "unauthorized") || strings.Contains(msg, "401") || strings.Contains(msg, "403") || strings.Contains(msg, "api key"):
		return KindAuth
	default:
		return KindUnknown
	}
}

package vectorize

import (
	"context"
	"fmt"
	"time"

	"github.com/francisfiscal/retrieval/ai"
	"github.com/francisfiscal/retrieval/rank"
)

// BatchProcessor turns a batch of chunk texts into normalized embedding
// vectors, retrying transient provider failures. A positive timeout bounds
// each provider call; zero leaves only the caller's context.
type BatchProcessor struct {
	embedder ai.Embedder
	policy   ai.RetryPolicy
	timeout  time.Duration
}

// NewBatchProcessor creates a batch processor over the given embedder.
func NewBatchProcessor(embedder ai.Embedder, policy ai.RetryPolicy, timeout time.Duration) *BatchProcessor {
	return &BatchProcessor{
		embedder: embedder,
		policy:   policy,
		timeout:  timeout,
	}
}

// Process embeds the texts and returns one vector per text, in input
// order. Vectors are normalized for cosine similarity.
func (bp *BatchProcessor) Process(ctx context.Context, texts []string) ([][]float32, error) {
	if len(texts) == 0 {
		return nil, nil
	}

	var embeddings [][]float32
	err := bp.policy.Do(ctx, func() error {
		callCtx := ctx
		if bp.timeout > 0 {
			var cancel context.CancelFunc
			callCtx, cancel = context.WithTimeout(ctx, bp.timeout)
			defer cancel()
		}
		var err error
		embeddings, err = bp.embedder.EmbedTexts(callCtx, texts)
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("failed to generate embeddings after %d attempts: %w", bp.policy.MaxAttempts, err)
	}

	if len(embeddings) != len(texts) {
		return nil, fmt.Errorf("embedding count mismatch: expected %d, got %d", len(texts), len(embeddings))
	}

	for i := range embeddings {
		embeddings[i] = rank.NormalizeVector(embeddings[i])
	}
	return embeddings, nil
}

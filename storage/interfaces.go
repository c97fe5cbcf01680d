package storage

import (
	"context"

	"github.com/francisfiscal/retrieval/core"
)

// ChunkRepository provides access to the chunks of one compiled corpus.
// Implementations must be thread-safe and support concurrent reads.
type ChunkRepository interface {
	// PutChunks stores one or more chunks. Existing chunks with the same
	// ID are overwritten; compilation is idempotent.
	PutChunks(ctx context.Context, chunks ...*core.Chunk) error

	// GetChunk retrieves a single chunk by ID.
	// Returns ErrNotFound if the chunk doesn't exist.
	GetChunk(ctx context.Context, id string) (*core.Chunk, error)

	// GetChunks retrieves several chunks by ID. Missing IDs are omitted
	// from the result rather than failing the batch.
	GetChunks(ctx context.Context, ids ...string) ([]*core.Chunk, error)

	// ForEachChunk iterates all chunks in ascending ID order, calling fn
	// for each. Iteration stops on the first error from fn.
	// ID order is the stable iteration order downstream ranking relies on.
	ForEachChunk(ctx context.Context, fn func(*core.Chunk) error) error

	// Count returns the number of stored chunks.
	Count(ctx context.Context) (int, error)

	// Close closes the storage backend and releases resources.
	Close() error
}

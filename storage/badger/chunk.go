package badger

import (
	"context"
	"errors"
	"strconv"

	"github.com/dgraph-io/badger/v4"

	"github.com/francisfiscal/retrieval/core"
	"github.com/francisfiscal/retrieval/storage"
)

// ChunkRepository implements storage.ChunkRepository for BadgerDB.
type ChunkRepository struct {
	backend *Backend
}

var _ storage.ChunkRepository = (*ChunkRepository)(nil)

// NewChunkRepository creates a new ChunkRepository.
func NewChunkRepository(backend *Backend) *ChunkRepository {
	return &ChunkRepository{backend: backend}
}

// Close is a no-op; the backend owns the database handle.
func (r *ChunkRepository) Close() error {
	return nil
}

// PutChunks stores one or more chunks, overwriting existing IDs.
func (r *ChunkRepository) PutChunks(ctx context.Context, chunks ...*core.Chunk) error {
	return r.backend.WithTx(func(tx *badger.Txn) error {
		for _, chunk := range chunks {
			if err := core.ValidateChunk(chunk); err != nil {
				return err
			}

			key := makeChunkKey(chunk.Id)
			value := storage.MarshalChunk(chunk)
			if err := tx.Set(key, value); err != nil {
				return err
			}
		}
		return tx.Commit()
	}, true)
}

// GetChunk retrieves a single chunk by ID.
func (r *ChunkRepository) GetChunk(ctx context.Context, id string) (*core.Chunk, error) {
	var chunk *core.Chunk

	err := r.backend.WithTx(func(tx *badger.Txn) error {
		item, err := tx.Get(makeChunkKey(id))
		if err != nil {
			if errors.Is(err, badger.ErrKeyNotFound) {
				return storage.ErrNotFound
			}
			return err
		}
		return item.Value(func(val []byte) error {
			chunk, err = storage.UnmarshalChunk(val)
			return err
		})
	}, false)

	if err != nil {
		return nil, err
	}
	return chunk, nil
}

// GetChunks retrieves several chunks in one transaction. IDs without a
// stored chunk are skipped.
func (r *ChunkRepository) GetChunks(ctx context.Context, ids ...string) ([]*core.Chunk, error) {
	chunks := make([]*core.Chunk, 0, len(ids))

	err := r.backend.WithTx(func(tx *badger.Txn) error {
		for _, id := range ids {
			item, err := tx.Get(makeChunkKey(id))
			if err != nil {
				if errors.Is(err, badger.ErrKeyNotFound) {
					continue
				}
				return err
			}
			err = item.Value(func(val []byte) error {
				chunk, err := storage.UnmarshalChunk(val)
				if err != nil {
					return err
				}
				chunks = append(chunks, chunk)
				return nil
			})
			if err != nil {
				return err
			}
		}
		return nil
	}, false)

	if err != nil {
		return nil, err
	}
	return chunks, nil
}

// ForEachChunk iterates all chunks in ascending ID order.
// Badger iterates keys lexicographically, which for the chunk key layout is
// exactly ascending chunk ID order.
func (r *ChunkRepository) ForEachChunk(ctx context.Context, fn func(*core.Chunk) error) error {
	return r.backend.WithTx(func(tx *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.Prefix = []byte(chunkPrefix + ":")
		iter := tx.NewIterator(opts)
		defer iter.Close()

		for iter.Rewind(); iter.Valid(); iter.Next() {
			select {
			case <-ctx.Done():
				return ctx.Err()
			default:
			}

			var chunk *core.Chunk
			err := iter.Item().Value(func(val []byte) error {
				var err error
				chunk, err = storage.UnmarshalChunk(val)
				return err
			})
			if err != nil {
				return err
			}
			if err := fn(chunk); err != nil {
				return err
			}
		}
		return nil
	}, false)
}

// Count returns the number of stored chunks.
func (r *ChunkRepository) Count(ctx context.Context) (int, error) {
	count := 0
	err := r.backend.WithTx(func(tx *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.Prefix = []byte(chunkPrefix + ":")
		opts.PrefetchValues = false
		iter := tx.NewIterator(opts)
		defer iter.Close()

		for iter.Rewind(); iter.Valid(); iter.Next() {
			count++
		}
		return nil
	}, false)
	if err != nil {
		return 0, err
	}
	return count, nil
}

// SetSourceKind records the corpus source kind in store metadata.
// Written once at compile time; the loader reads it back to restore the
// corpus's authenticity expectations.
func (r *ChunkRepository) SetSourceKind(ctx context.Context, kind core.SourceKind) error {
	return r.backend.WithTx(func(tx *badger.Txn) error {
		if err := tx.Set(makeMetaKey("source_kind"), []byte(strconv.Itoa(int(kind)))); err != nil {
			return err
		}
		return tx.Commit()
	}, true)
}

// SourceKind reads the corpus source kind from store metadata.
// Returns SourceKindUnknown when the store predates the metadata key.
func (r *ChunkRepository) SourceKind(ctx context.Context) (core.SourceKind, error) {
	kind := core.SourceKindUnknown

	err := r.backend.WithTx(func(tx *badger.Txn) error {
		item, err := tx.Get(makeMetaKey("source_kind"))
		if err != nil {
			if errors.Is(err, badger.ErrKeyNotFound) {
				return nil
			}
			return err
		}
		return item.Value(func(val []byte) error {
			n, err := strconv.Atoi(string(val))
			if err != nil {
				return err
			}
			kind = core.SourceKind(n)
			return nil
		})
	}, false)

	if err != nil {
		return core.SourceKindUnknown, err
	}
	return kind, nil
}

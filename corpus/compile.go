package corpus

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/francisfiscal/retrieval/core"
	badgerstore "github.com/francisfiscal/retrieval/storage/badger"
)

// Compile packs a corpus's loose chunk and vector files into its compiled
// store. Subsequent loads read the store instead of re-parsing every file,
// which matters for the doctrine corpora with tens of thousands of chunks.
// Compiling is idempotent: an existing store is rebuilt in place.
func Compile(ctx context.Context, root, name string, logger *slog.Logger) (int, error) {
	if logger == nil {
		logger = slog.Default().With("component", "corpus-compiler")
	}

	dir := filepath.Join(root, name)
	if info, err := os.Stat(dir); err != nil || !info.IsDir() {
		return 0, fmt.Errorf("%w: %s", core.ErrCorpusNotFound, name)
	}

	kind := core.SourceKindFromString(name)
	chunksDir := filepath.Join(dir, chunksDirName)
	vectorsDir := filepath.Join(dir, vectorsDirName)

	entries, err := os.ReadDir(chunksDir)
	if err != nil {
		if os.IsNotExist(err) {
			return 0, fmt.Errorf("corpus %s has no chunks directory", name)
		}
		return 0, fmt.Errorf("failed to read chunks directory: %w", err)
	}

	var chunks []*core.Chunk
	skipped := 0
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".json") {
			continue
		}
		if err := ctx.Err(); err != nil {
			return 0, err
		}

		chunk, err := parseChunkFile(filepath.Join(chunksDir, entry.Name()), vectorsDir, kind)
		if err != nil {
			skipped++
			logger.Warn("skipping chunk file", "corpus", name, "file", entry.Name(), "error", err)
			continue
		}
		chunks = append(chunks, chunk)
	}

	storeDir := filepath.Join(dir, storeDirName)
	if err := os.RemoveAll(storeDir); err != nil {
		return 0, fmt.Errorf("failed to clear previous store: %w", err)
	}
	if err := os.MkdirAll(storeDir, 0o755); err != nil {
		return 0, fmt.Errorf("failed to create store directory: %w", err)
	}

	backend, err := badgerstore.OpenBackend(storeDir, false)
	if err != nil {
		return 0, fmt.Errorf("failed to open corpus store: %w", err)
	}
	defer backend.Close()

	repo := badgerstore.NewChunkRepository(backend)
	if err := repo.SetSourceKind(ctx, kind); err != nil {
		return 0, fmt.Errorf("failed to record source kind: %w", err)
	}
	if err := repo.PutChunks(ctx, chunks...); err != nil {
		return 0, fmt.Errorf("failed to store chunks: %w", err)
	}

	logger.Info("corpus compiled",
		"corpus", name,
		"chunks", len(chunks),
		"skipped", skipped)
	return len(chunks), nil
}

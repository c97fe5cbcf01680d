package corpus

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/francisfiscal/retrieval/core"
)

func TestCompileThenLoadFromStore(t *testing.T) {
	root := t.TempDir()
	chunksDir, vectorsDir := setupCorpusDir(t, root, "CGI")
	writeChunkFile(t, chunksDir, "CGI_197", "Barème progressif.", "197")
	writeChunkFile(t, chunksDir, "CGI_150U", "Plus-values immobilières.", "150 U")
	writeVectorFile(t, vectorsDir, "CGI_197", []float32{1, 0})
	writeVectorFile(t, vectorsDir, "CGI_150U", []float32{0, 1})

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelError}))
	count, err := Compile(context.Background(), root, "CGI", logger)
	require.NoError(t, err)
	assert.Equal(t, 2, count)

	// Loose files are no longer needed once the store exists.
	require.NoError(t, os.RemoveAll(chunksDir))
	require.NoError(t, os.RemoveAll(vectorsDir))

	loader := quietLoader(t, root)
	corpus, err := loader.Load(context.Background(), "CGI")
	require.NoError(t, err)

	assert.Equal(t, 2, corpus.Len())
	assert.Equal(t, core.SourceKindCGI, corpus.Kind())
	chunk, ok := corpus.Get("CGI_197")
	require.True(t, ok)
	assert.Equal(t, []float32{1, 0}, chunk.Vector)
}

func TestCompileMissingCorpus(t *testing.T) {
	_, err := Compile(context.Background(), t.TempDir(), "CGI", nil)
	assert.True(t, errors.Is(err, core.ErrCorpusNotFound))
}

func TestCompileRebuildsExistingStore(t *testing.T) {
	root := t.TempDir()
	chunksDir, vectorsDir := setupCorpusDir(t, root, "CGI")
	writeChunkFile(t, chunksDir, "CGI_197", "Barème.", "197")
	writeVectorFile(t, vectorsDir, "CGI_197", []float32{1})

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelError}))
	ctx := context.Background()

	count, err := Compile(ctx, root, "CGI", logger)
	require.NoError(t, err)
	assert.Equal(t, 1, count)

	writeChunkFile(t, chunksDir, "CGI_4B", "Domicile fiscal.", "4 B")
	count, err = Compile(ctx, root, "CGI", logger)
	require.NoError(t, err)
	assert.Equal(t, 2, count)
}

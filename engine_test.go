package retrieval

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/francisfiscal/retrieval/ai"
	"github.com/francisfiscal/retrieval/ai/mock"
	"github.com/francisfiscal/retrieval/core"
	"github.com/francisfiscal/retrieval/vectorize"
)

func writeChunkJSON(t *testing.T, dir, id, text, article string) {
	t.Helper()
	data, err := json.Marshal(map[string]any{
		"id":             id,
		"text":           text,
		"source_label":   "Art. " + article,
		"article_number": article,
	})
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(filepath.Join(dir, id+".json"), data, 0o644))
}

// TestEngineVectorizeThenSearch exercises the full offline-then-online
// path: chunks start without vectors, the vectorizer embeds them, and a
// fresh engine serves queries over the result. The mock embedder is
// deterministic, so the query matches the chunk sharing its text hash
// neighborhood only through real cosine ranking.
func TestEngineVectorizeThenSearch(t *testing.T) {
	root := t.TempDir()
	chunksDir := filepath.Join(root, "CGI", "chunks")
	require.NoError(t, os.MkdirAll(chunksDir, 0o755))
	writeChunkJSON(t, chunksDir, "CGI_197",
		"L'impôt est calculé en appliquant le barème progressif par tranche. Taux marginal.", "197")
	writeChunkJSON(t, chunksDir, "CGI_150U",
		"Les plus-values de cession d'immeubles des particuliers.", "150 U")

	embedder := mock.NewMockEmbedder()
	embedder.Dimensions = 64

	engine, err := NewEngine(root, WithEmbedder(embedder))
	require.NoError(t, err)
	defer engine.Close()

	var progress bytes.Buffer
	vectorizer := engine.NewVectorizer(nil, &progress)
	stats, err := vectorizer.Run(context.Background(), "CGI")
	require.NoError(t, err)
	assert.Equal(t, 2, stats.Embedded)

	results, err := engine.Search(context.Background(), "quelle est ma TMI ?", "CGI", 2)
	require.NoError(t, err)
	require.Len(t, results, 2)
	for _, result := range results {
		assert.True(t, result.Chunk.Source.IsOfficial())
		assert.NotEmpty(t, result.Text)
	}
}

func TestEngineSearchUnknownCorpus(t *testing.T) {
	engine, err := NewEngine(t.TempDir(), WithEmbedder(mock.NewMockEmbedder()))
	require.NoError(t, err)
	defer engine.Close()

	_, err = engine.Search(context.Background(), "quotient familial", "CH", 3)
	assert.True(t, errors.Is(err, core.ErrCorpusNotFound))
}

func TestEngineRequestTimeoutBoundsQueryEmbedding(t *testing.T) {
	root := t.TempDir()
	chunksDir := filepath.Join(root, "CGI", "chunks")
	require.NoError(t, os.MkdirAll(chunksDir, 0o755))
	writeChunkJSON(t, chunksDir, "CGI_197", "Le barème progressif par tranche.", "197")

	offline := mock.NewMockEmbedder()
	offline.Dimensions = 8
	prep, err := NewEngine(root, WithEmbedder(offline))
	require.NoError(t, err)
	var progress bytes.Buffer
	_, err = prep.NewVectorizer(nil, &progress).Run(context.Background(), "CGI")
	require.NoError(t, err)
	require.NoError(t, prep.Close())

	stalled := mock.NewMockEmbedder()
	stalled.EmbedTextFunc = func(ctx context.Context, _ string) ([]float32, error) {
		<-ctx.Done()
		return nil, ctx.Err()
	}

	engine, err := NewEngine(root,
		WithEmbedder(stalled),
		WithAIConfig(ai.NewConfig(ai.WithRequestTimeout(20*time.Millisecond))))
	require.NoError(t, err)
	defer engine.Close()

	_, err = engine.Search(context.Background(), "quelle est ma TMI ?", "CGI", 2)
	require.Error(t, err)
	var pe *ai.ProviderError
	require.ErrorAs(t, err, &pe)
	assert.Equal(t, ai.KindTimeout, pe.Kind)
}

func TestEngineVectorizeIsResumable(t *testing.T) {
	root := t.TempDir()
	chunksDir := filepath.Join(root, "LU", "chunks")
	require.NoError(t, os.MkdirAll(chunksDir, 0o755))
	writeChunkJSON(t, chunksDir, "LU_LIR_118", "Barème de l'impôt sur le revenu.", "118")

	embedder := mock.NewMockEmbedder()
	embedder.Dimensions = 8

	engine, err := NewEngine(root, WithEmbedder(embedder))
	require.NoError(t, err)
	defer engine.Close()

	var progress bytes.Buffer
	cfg := vectorize.DefaultConfig()

	first, err := engine.NewVectorizer(cfg, &progress).Run(context.Background(), "LU")
	require.NoError(t, err)
	assert.Equal(t, 1, first.Embedded)

	second, err := engine.NewVectorizer(cfg, &progress).Run(context.Background(), "LU")
	require.NoError(t, err)
	assert.Equal(t, 0, second.Embedded)
	assert.Equal(t, 1, second.Skipped)
}

package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestChunkMUS_RoundTrip(t *testing.T) {
	chunk := Chunk{
		Id:            "CGI_197",
		Text:          "L'impôt est calculé en appliquant le barème progressif au revenu imposable.",
		SourceLabel:   "CGI Article 197",
		ArticleNumber: "197",
		Source:        SourceKindCGI,
		Hierarchy: Hierarchy{
			Book:    "Livre premier",
			Title:   "Titre premier",
			Chapter: "Chapitre premier",
			Section: "Section V",
		},
		Vector: []float32{0.12, -0.5, 0.98, 0.0},
	}

	buf := make([]byte, ChunkMUS.Size(chunk))
	n := ChunkMUS.Marshal(chunk, buf)
	require.Equal(t, len(buf), n)

	decoded, n, err := ChunkMUS.Unmarshal(buf)
	require.NoError(t, err)
	assert.Equal(t, len(buf), n)
	assert.Equal(t, chunk, decoded)
}

func TestChunkMUS_Skip(t *testing.T) {
	chunk := Chunk{Id: "CGI_4B", Text: "Sont considérées comme ayant leur domicile fiscal en France."}

	buf := make([]byte, ChunkMUS.Size(chunk))
	ChunkMUS.Marshal(chunk, buf)

	n, err := ChunkMUS.Skip(buf)
	require.NoError(t, err)
	assert.Equal(t, len(buf), n)
}

func TestVectorMUS_RoundTrip(t *testing.T) {
	vector := []float32{1.0, -1.0, 0.5, 3.14159}

	buf := make([]byte, VectorMUS.Size(vector))
	VectorMUS.Marshal(vector, buf)

	decoded, _, err := VectorMUS.Unmarshal(buf)
	require.NoError(t, err)
	assert.Equal(t, vector, decoded)
}

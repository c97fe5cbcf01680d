package corpus

import (
	"sort"

	"github.com/francisfiscal/retrieval/core"
)

// Corpus is a named, read-only collection of (chunk, embedding) pairs
// sharing one embedding model. Built once by a Loader and never mutated;
// safe for concurrent readers.
type Corpus struct {
	name       string
	kind       core.SourceKind
	dimensions int
	chunks     []*core.Chunk
	byID       map[string]*core.Chunk
}

// newCorpus assembles a corpus from loaded chunks. Chunks are sorted by ID
// so iteration order (and therefore ranking tie-breaks) is deterministic
// regardless of filesystem enumeration order.
func newCorpus(name string, kind core.SourceKind, dimensions int, chunks []*core.Chunk) *Corpus {
	sort.Slice(chunks, func(i, j int) bool {
		return chunks[i].Id < chunks[j].Id
	})

	byID := make(map[string]*core.Chunk, len(chunks))
	for _, chunk := range chunks {
		byID[chunk.Id] = chunk
	}

	return &Corpus{
		name:       name,
		kind:       kind,
		dimensions: dimensions,
		chunks:     chunks,
		byID:       byID,
	}
}

// Name returns the corpus name (e.g. "CGI").
func (c *Corpus) Name() string {
	return c.name
}

// Kind returns the source kind the authenticity gate checks candidates
// against.
func (c *Corpus) Kind() core.SourceKind {
	return c.kind
}

// Dimensions returns the embedding dimensionality shared by all chunks,
// or 0 for a corpus with no embedded chunks.
func (c *Corpus) Dimensions() int {
	return c.dimensions
}

// Len returns the number of chunks.
func (c *Corpus) Len() int {
	return len(c.chunks)
}

// Chunks returns all chunks in ascending ID order. Callers must treat the
// slice as read-only.
func (c *Corpus) Chunks() []*core.Chunk {
	return c.chunks
}

// Get retrieves a chunk by ID.
func (c *Corpus) Get(id string) (*core.Chunk, bool) {
	chunk, ok := c.byID[id]
	return chunk, ok
}

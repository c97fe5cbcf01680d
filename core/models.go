package core

import (
	"encoding/binary"
	"fmt"

	"github.com/go-crypt/x/blake2b"
)

// IDFromContent derives a stable chunk identifier from text content using
// BLAKE2b hashing. It is used for chunks that have no natural identifier of
// their own (e.g. doctrine excerpts without an article number); identical
// content always produces the same identifier.
func IDFromContent(text string) string {
	h, _ := blake2b.New(8, nil) // 8 bytes = 64 bits
	h.Write([]byte(text))
	sum := h.Sum(nil)
	return fmt.Sprintf("chunk_%016x", binary.LittleEndian.Uint64(sum))
}

// SourceKind identifies the official corpus a chunk originates from.
type SourceKind int

const (
	// SourceKindUnknown marks a chunk whose provenance could not be established.
	SourceKindUnknown SourceKind = iota
	// SourceKindCGI is the French Code Général des Impôts.
	SourceKindCGI
	// SourceKindBOFiP is the Bulletin Officiel des Finances Publiques.
	SourceKindBOFiP
	// SourceKindAndorra is the Andorran tax statute corpus.
	SourceKindAndorra
	// SourceKindSwitzerland is the Swiss tax statute corpus.
	SourceKindSwitzerland
	// SourceKindLuxembourg is the Luxembourg tax statute corpus.
	SourceKindLuxembourg
)

var sourceKindNames = map[SourceKind]string{
	SourceKindUnknown:     "unknown",
	SourceKindCGI:         "CGI",
	SourceKindBOFiP:       "BOFiP",
	SourceKindAndorra:     "andorra",
	SourceKindSwitzerland: "switzerland",
	SourceKindLuxembourg:  "luxembourg",
}

// String returns the canonical name of the source kind.
func (k SourceKind) String() string {
	if name, ok := sourceKindNames[k]; ok {
		return name
	}
	return "unknown"
}

// IsOfficial reports whether the source kind refers to an official statutory
// or administrative corpus. Chunks from unofficial sources must never be
// surfaced as authoritative.
func (k SourceKind) IsOfficial() bool {
	return k != SourceKindUnknown
}

// SourceKindFromString parses a source kind from its canonical name.
// Unrecognized names map to SourceKindUnknown.
func SourceKindFromString(name string) SourceKind {
	for kind, n := range sourceKindNames {
		if n == name {
			return kind
		}
	}
	return SourceKindUnknown
}

// Hierarchy places a chunk within the structure of its source text.
// All fields are optional; doctrine chunks often carry none.
type Hierarchy struct {
	Book    string
	Title   string
	Chapter string
	Section string
}

// Chunk is the atomic retrievable unit: a bounded excerpt of statutory or
// administrative text together with its provenance and embedding.
// Chunks are produced offline and are immutable at query time.
type Chunk struct {
	Id            string     // Stable identifier, unique within a corpus (e.g. "CGI_197")
	Text          string     // The legal prose, never empty
	SourceLabel   string     // Human-readable citation (e.g. "CGI Article 197")
	ArticleNumber string     // Statutory article number if the chunk maps to one
	Source        SourceKind // Provenance, checked by the authenticity gate
	Hierarchy     Hierarchy
	Vector        []float32 // Embedding vector (populated by the vectorize pipeline)
}

// ScoredCandidate is an ephemeral per-query scoring record for one chunk.
// It is recomputed on every search and never persisted.
type ScoredCandidate struct {
	Chunk          *Chunk
	Similarity     float32 // Cosine similarity, in [-1, 1]
	KeywordScore   float32 // Keyword overlap ratio, in [0, 1]
	ReferenceBonus float32 // 1 when the raw query cites the chunk's article number
	FinalScore     float32
}

// SearchResult is the uniform result shape returned to callers.
type SearchResult struct {
	Chunk      *Chunk
	Text       string // Possibly truncated per the content-length policy
	Similarity float32
	FinalScore float32
}

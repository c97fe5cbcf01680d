// Package prompt renders retrieval results into the context block handed
// to the advisory model.
package prompt

import (
	"fmt"
	"strings"

	"github.com/francisfiscal/retrieval/core"
)

const contextHeader = `Extraits officiels (%s) à utiliser pour répondre. Cite la source de chaque
affirmation; si les extraits ne couvrent pas la question, dis-le explicitement.

`

// FormatContext renders search results as a numbered list of sourced
// extracts. Returns the empty string for an empty result set so callers
// can omit the block entirely.
func FormatContext(corpusLabel string, results []core.SearchResult) string {
	if len(results) == 0 {
		return ""
	}

	var b strings.Builder
	fmt.Fprintf(&b, contextHeader, corpusLabel)

	for i, result := range results {
		fmt.Fprintf(&b, "[%d] %s\n", i+1, sourceLine(result.Chunk))
		b.WriteString(strings.TrimSpace(result.Text))
		b.WriteString("\n\n")
	}
	return strings.TrimRight(b.String(), "\n") + "\n"
}

// sourceLine renders the provenance of one chunk, dropping the hierarchy
// parts a chunk does not carry.
func sourceLine(chunk *core.Chunk) string {
	parts := []string{chunk.SourceLabel}
	for _, part := range []string{
		chunk.Hierarchy.Book,
		chunk.Hierarchy.Title,
		chunk.Hierarchy.Chapter,
		chunk.Hierarchy.Section,
	} {
		if part != "" {
			parts = append(parts, part)
		}
	}
	return strings.Join(parts, ", ")
}

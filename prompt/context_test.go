package prompt

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/francisfiscal/retrieval/core"
)

func TestFormatContextEmpty(t *testing.T) {
	assert.Empty(t, FormatContext("CGI", nil))
}

func TestFormatContextNumbersAndSources(t *testing.T) {
	results := []core.SearchResult{
		{
			Chunk: &core.Chunk{
				SourceLabel: "Art. 197",
				Hierarchy:   core.Hierarchy{Book: "Livre I", Title: "Titre I"},
			},
			Text: "L'impôt est calculé en appliquant le barème progressif.\n",
		},
		{
			Chunk: &core.Chunk{SourceLabel: "BOI-IR-LIQ-20"},
			Text:  "Précisions doctrinales sur la liquidation.",
		},
	}

	got := FormatContext("CGI", results)

	assert.Contains(t, got, "Extraits officiels (CGI)")
	assert.Contains(t, got, "[1] Art. 197, Livre I, Titre I")
	assert.Contains(t, got, "[2] BOI-IR-LIQ-20")
	assert.True(t, strings.Index(got, "[1]") < strings.Index(got, "[2]"))
	assert.Contains(t, got, "barème progressif")
}

func TestFormatContextOmitsEmptyHierarchy(t *testing.T) {
	results := []core.SearchResult{
		{
			Chunk: &core.Chunk{SourceLabel: "Art. 4 B"},
			Text:  "Domicile fiscal.",
		},
	}

	got := FormatContext("CGI", results)
	assert.Contains(t, got, "[1] Art. 4 B\n")
}

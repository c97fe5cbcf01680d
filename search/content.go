package search

import "strings"

const (
	// fullTextResults is how many leading results carry their complete
	// chunk text. The model reads these closely; the rest are context.
	fullTextResults = 3

	// excerptRuneLimit bounds the text of results past the leading ones.
	excerptRuneLimit = 600

	ellipsis = " […]"
)

// resultText applies the content policy: leading results keep the full
// chunk text, later ones are cut down to the paragraphs most likely to
// matter for the query.
func resultText(rank int, text string, keywords []string) string {
	if rank < fullTextResults {
		return text
	}
	return excerpt(text, keywords, excerptRuneLimit)
}

// excerpt selects paragraphs containing query keywords, falling back to a
// prefix of the text when none match. Output never exceeds limit runes
// plus the ellipsis marker.
func excerpt(text string, keywords []string, limit int) string {
	if len([]rune(text)) <= limit {
		return text
	}

	paragraphs := strings.Split(text, "\n\n")
	var picked []string
	runes := 0
	for _, paragraph := range paragraphs {
		if !containsAnyKeyword(paragraph, keywords) {
			continue
		}
		size := len([]rune(paragraph))
		if runes+size > limit {
			break
		}
		picked = append(picked, paragraph)
		runes += size
	}

	if len(picked) > 0 {
		return strings.Join(picked, "\n\n") + ellipsis
	}
	return string([]rune(text)[:limit]) + ellipsis
}

func containsAnyKeyword(paragraph string, keywords []string) bool {
	lowered := strings.ToLower(paragraph)
	for _, keyword := range keywords {
		if strings.Contains(lowered, strings.ToLower(keyword)) {
			return true
		}
	}
	return false
}

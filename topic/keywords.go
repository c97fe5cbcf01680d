package topic

import "strings"

// Stop words to filter out of fallback keywords. Only words longer than
// three characters appear here; shorter ones are dropped by the length
// threshold anyway.
var stopWords = map[string]bool{
	"dans": true, "pour": true, "avec": true, "sans": true, "sous": true,
	"cette": true, "cela": true, "celui": true, "celle": true, "comme": true,
	"votre": true, "notre": true, "vous": true, "nous": true, "elle": true,
	"elles": true, "sont": true, "être": true, "avoir": true, "mais": true,
	"plus": true, "tout": true, "toute": true, "tous": true, "fait": true,
	"quel": true, "quelle": true, "quels": true, "quelles": true,
	"combien": true, "comment": true, "pourquoi": true, "quand": true,
	"alors": true, "donc": true, "ainsi": true, "leur": true, "leurs": true,
	"est-ce": true, "c'est": true, "j'ai": true, "mon": true, "mes": true,
}

// GenericKeywords derives fallback keywords from a query with no matching
// topic rule: lowercased whitespace tokens longer than three characters,
// punctuation trimmed, stop words removed, order preserved, duplicates
// dropped.
func GenericKeywords(query string) []string {
	words := strings.Fields(strings.ToLower(query))
	seen := make(map[string]bool, len(words))
	keywords := make([]string, 0, len(words))

	for _, word := range words {
		cleaned := strings.Trim(word, ".,!?;:'\"-()[]{}")
		if len([]rune(cleaned)) <= 3 {
			continue
		}
		if stopWords[cleaned] || seen[cleaned] {
			continue
		}
		seen[cleaned] = true
		keywords = append(keywords, cleaned)
	}

	return keywords
}

// Copyright 2025 Francis Fiscal
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package search

import (
	"regexp"
	"strings"
)

// Composite score weights. Similarity dominates; keyword overlap and the
// article-reference bonus break near-ties between semantically close
// chunks.
const (
	similarityWeight = 0.7
	keywordWeight    = 0.2
	referenceWeight  = 0.1
)

// keywordOverlap returns the fraction of keywords appearing as substrings
// of the chunk text, both sides lowercased. Empty keyword sets score 0.
func keywordOverlap(text string, keywords []string) float32 {
	if len(keywords) == 0 {
		return 0
	}

	lowered := strings.ToLower(text)
	matched := 0
	for _, keyword := range keywords {
		if strings.Contains(lowered, strings.ToLower(keyword)) {
			matched++
		}
	}
	return float32(matched) / float32(len(keywords))
}

// articleRefPattern recognizes explicit article citations in a query,
// e.g. "article 197", "art. 150 U" or "l'article 150-0 A". Continuation
// tokens are limited to digits, the Latin ordinals and single UPPERCASE
// letters (the CGI's suffix convention), so surrounding prose like
// "article 197 définit" is not swallowed into the number.
var articleRefPattern = regexp.MustCompile(`\b[Aa]rt(?:icle)?\.?\s+([0-9]+(?:[\s-](?:[0-9]+|(?:bis|ter|quater)\b|[A-Z]{1,2}\b))*)`)

// articleReferences extracts the article numbers a query cites, in
// normalized form. Returns nil when the query cites none.
func articleReferences(query string) []string {
	matches := articleRefPattern.FindAllStringSubmatch(query, -1)
	if len(matches) == 0 {
		return nil
	}

	refs := make([]string, 0, len(matches))
	for _, match := range matches {
		refs = append(refs, normalizeArticleNumber(match[1]))
	}
	return refs
}

// referenceBonus returns 1 when the query explicitly cites the chunk's
// article number, 0 otherwise.
func referenceBonus(refs []string, articleNumber string) float32 {
	if articleNumber == "" {
		return 0
	}
	normalized := normalizeArticleNumber(articleNumber)
	for _, ref := range refs {
		if ref == normalized {
			return 1
		}
	}
	return 0
}

// normalizeArticleNumber lowercases and collapses separators so that
// "150-0 A", "150 0 a" and "150-0-A" compare equal.
func normalizeArticleNumber(number string) string {
	fields := strings.FieldsFunc(strings.ToLower(number), func(r rune) bool {
		return r == ' ' || r == '-'
	})
	return strings.Join(fields, " ")
}

func compositeScore(similarity, keywordScore, refBonus float32) float32 {
	return similarityWeight*similarity + keywordWeight*keywordScore + referenceWeight*refBonus
}

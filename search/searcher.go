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
	"context"
	"fmt"
	"log/slog"
	"sort"
	"strings"
	"time"

	"github.com/francisfiscal/retrieval/ai"
	"github.com/francisfiscal/retrieval/core"
	"github.com/francisfiscal/retrieval/corpus"
	"github.com/francisfiscal/retrieval/rank"
	"github.com/francisfiscal/retrieval/topic"
)

const (
	// DefaultTopK is the result count when the caller passes a negative
	// topK. An explicit zero means zero: no results are returned.
	DefaultTopK = 3

	// candidateMultiplier widens the similarity cut before the
	// authenticity gate and re-ranking, so that filtering and keyword
	// signals have room to promote chunks from outside the top K.
	candidateMultiplier = 4
)

// Searcher runs retrieval queries against loaded corpora. Safe for
// concurrent use.
type Searcher struct {
	loader   *corpus.Loader
	embedder *ai.QueryEmbedder
	ranker   rank.Ranker
	monitor  Monitor
	logger   *slog.Logger
}

// SearcherOption configures a Searcher.
type SearcherOption func(*Searcher) error

// WithRanker swaps the similarity ranking strategy. The default is exact
// brute-force scoring; an ANN index satisfying rank.Ranker plugs in here.
func WithRanker(ranker rank.Ranker) SearcherOption {
	return func(s *Searcher) error {
		if ranker == nil {
			return fmt.Errorf("ranker cannot be nil")
		}
		s.ranker = ranker
		return nil
	}
}

// WithMonitor attaches a pipeline observer.
func WithMonitor(monitor Monitor) SearcherOption {
	return func(s *Searcher) error {
		if monitor == nil {
			return fmt.Errorf("monitor cannot be nil")
		}
		s.monitor = monitor
		return nil
	}
}

// WithSearcherLogger sets the logger for search diagnostics.
func WithSearcherLogger(logger *slog.Logger) SearcherOption {
	return func(s *Searcher) error {
		if logger == nil {
			return fmt.Errorf("logger cannot be nil")
		}
		s.logger = logger
		return nil
	}
}

// NewSearcher creates a Searcher over the given loader and query embedder.
func NewSearcher(loader *corpus.Loader, embedder *ai.QueryEmbedder, opts ...SearcherOption) (*Searcher, error) {
	if loader == nil {
		return nil, fmt.Errorf("corpus loader is required")
	}
	if embedder == nil {
		return nil, ai.ErrEmbedderRequired
	}

	s := &Searcher{
		loader:   loader,
		embedder: embedder,
		ranker:   rank.NewBruteForce(),
		monitor:  noopMonitor{},
		logger:   slog.Default().With("component", "search"),
	}
	for _, opt := range opts {
		if err := opt(s); err != nil {
			return nil, fmt.Errorf("failed to apply searcher option: %w", err)
		}
	}
	return s, nil
}

// Search answers a natural-language question against the named corpus and
// returns up to topK results in descending composite-score order. Blank
// queries are rejected with core.ErrInvalidQuery; an unknown corpus name
// yields core.ErrCorpusNotFound.
func (s *Searcher) Search(ctx context.Context, query, corpusName string, topK int) ([]core.SearchResult, error) {
	started := time.Now()

	if strings.TrimSpace(query) == "" {
		return nil, fmt.Errorf("%w: query cannot be blank", core.ErrInvalidQuery)
	}
	if topK < 0 {
		topK = DefaultTopK
	}

	c, err := s.loader.Load(ctx, corpusName)
	if err != nil {
		return nil, err
	}

	// topK zero asks for no results; the corpus lookup above still
	// surfaces configuration errors.
	if topK == 0 {
		s.monitor.SearchCompleted(corpusName, 0, time.Since(started))
		return []core.SearchResult{}, nil
	}

	enhancement := topic.RouterFor(c.Kind()).Enhance(query)
	s.monitor.QueryEnhanced(corpusName, query, enhancement.Query, enhancement.Keywords)

	queryVector, err := s.embedder.EmbedQuery(ctx, enhancement.Query)
	if err != nil {
		return nil, fmt.Errorf("failed to embed query: %w", err)
	}

	hits := s.ranker.Rank(queryVector, c.Chunks(), candidateMultiplier*topK)
	s.monitor.CandidatesRanked(corpusName, len(hits))

	candidates := s.gateAndScore(corpusName, c.Kind(), hits, enhancement.Keywords, query)

	// Stable: candidates arrive in descending similarity order, so equal
	// composite scores keep the similarity ranking.
	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].FinalScore > candidates[j].FinalScore
	})

	if len(candidates) > topK {
		candidates = candidates[:topK]
	}

	results := make([]core.SearchResult, 0, len(candidates))
	for i, candidate := range candidates {
		results = append(results, core.SearchResult{
			Chunk:      candidate.Chunk,
			Text:       resultText(i, candidate.Chunk.Text, enhancement.Keywords),
			Similarity: candidate.Similarity,
			FinalScore: candidate.FinalScore,
		})
	}

	s.monitor.SearchCompleted(corpusName, len(results), time.Since(started))
	s.logger.Debug("search pipeline finished",
		"corpus", corpusName,
		"topic", enhancement.Rule,
		"candidates", len(hits),
		"results", len(results))

	return results, nil
}

// gateAndScore drops candidates failing the source authenticity check and
// computes composite scores for the survivors.
func (s *Searcher) gateAndScore(corpusName string, expected core.SourceKind, hits []rank.Hit, keywords []string, rawQuery string) []core.ScoredCandidate {
	refs := articleReferences(rawQuery)

	candidates := make([]core.ScoredCandidate, 0, len(hits))
	for _, hit := range hits {
		if !core.IsOfficialSource(hit.Chunk, expected) {
			s.monitor.CandidateFiltered(corpusName, hit.Chunk.Id)
			continue
		}

		keywordScore := keywordOverlap(hit.Chunk.Text, keywords)
		refBonus := referenceBonus(refs, hit.Chunk.ArticleNumber)
		candidates = append(candidates, core.ScoredCandidate{
			Chunk:          hit.Chunk,
			Similarity:     hit.Similarity,
			KeywordScore:   keywordScore,
			ReferenceBonus: refBonus,
			FinalScore:     compositeScore(hit.Similarity, keywordScore, refBonus),
		})
	}
	return candidates
}

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


// Package rank implements similarity ranking of corpus chunks against a
// query vector.
package rank

import (
	"sort"

	"github.com/francisfiscal/retrieval/core"
)

// Hit is one ranked chunk with its raw cosine similarity.
type Hit struct {
	Chunk      *core.Chunk
	Similarity float32
}

// Ranker orders chunks by similarity to a query vector. The interface exists
// so an approximate-nearest-neighbor index can replace the exhaustive scan
// without changing call sites.
type Ranker interface {
	// Rank returns up to limit hits in descending similarity order.
	// Chunks with identical similarity keep their input order (stable),
	// so output is deterministic for a fixed corpus and query.
	// A limit <= 0 means no limit.
	Rank(queryVector []float32, chunks []*core.Chunk, limit int) []Hit
}

// BruteForce is the exhaustive O(N) ranker. At current corpus sizes (low
// thousands of chunks) a linear scan beats index maintenance.
type BruteForce struct{}

var _ Ranker = BruteForce{}

// NewBruteForce creates the default exhaustive ranker.
func NewBruteForce() BruteForce {
	return BruteForce{}
}

// Rank scores every chunk against the query vector. Chunks without an
// embedding are skipped.
func (BruteForce) Rank(queryVector []float32, chunks []*core.Chunk, limit int) []Hit {
	hits := make([]Hit, 0, len(chunks))
	for _, chunk := range chunks {
		if len(chunk.Vector) == 0 {
			continue
		}
		hits = append(hits, Hit{
			Chunk:      chunk,
			Similarity: CosineSimilarity(queryVector, chunk.Vector),
		})
	}

	// Stable keeps corpus order on ties, which makes output deterministic.
	sort.SliceStable(hits, func(i, j int) bool {
		return hits[i].Similarity > hits[j].Similarity
	})

	if limit > 0 && len(hits) > limit {
		hits = hits[:limit]
	}
	return hits
}

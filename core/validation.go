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


package core

import "fmt"

// ValidateChunk validates a Chunk according to domain rules.
//
// Validation rules:
//   - Id must not be empty
//   - Text must not be empty
//
// NOT validated (populated by later pipeline stages):
//   - Vector (can be empty until the vectorize pipeline runs)
//   - ArticleNumber and Hierarchy (doctrine chunks carry neither)
func ValidateChunk(chunk *Chunk) error {
	if chunk == nil {
		return fmt.Errorf("%w: chunk is nil", ErrInvalidChunk)
	}

	if chunk.Id == "" {
		return fmt.Errorf("%w: %w", ErrInvalidChunk, ErrEmptyChunkID)
	}

	if chunk.Text == "" {
		return fmt.Errorf("%w: %w", ErrInvalidChunk, ErrEmptyChunkText)
	}

	return nil
}

// IsOfficialSource reports whether a chunk may be surfaced as authoritative
// for the corpus identified by expected. The check runs against the chunk's
// own provenance metadata: the chunk must come from an official source and
// that source must be the corpus being searched. Chunks failing this check
// are filtered from results, never surfaced.
func IsOfficialSource(chunk *Chunk, expected SourceKind) bool {
	if chunk == nil {
		return false
	}
	if !chunk.Source.IsOfficial() {
		return false
	}
	return chunk.Source == expected
}

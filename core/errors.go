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

import "errors"

// Domain errors
var (
	// ErrCorpusNotFound indicates the named corpus does not exist on disk.
	// This is a configuration error; the caller decides whether to skip
	// the corpus or abort.
	ErrCorpusNotFound = errors.New("corpus not found")

	// ErrInvalidQuery indicates an empty or whitespace-only query string.
	ErrInvalidQuery = errors.New("invalid query")

	// ErrInvalidChunk indicates a Chunk failed validation.
	ErrInvalidChunk = errors.New("invalid chunk")

	// ErrEmptyChunkID indicates the chunk Id field is empty.
	ErrEmptyChunkID = errors.New("chunk id cannot be empty")

	// ErrEmptyChunkText indicates the chunk Text field is empty.
	ErrEmptyChunkText = errors.New("chunk text cannot be empty")

	// ErrDimensionMismatch indicates a vector whose dimensionality differs
	// from the rest of its corpus.
	ErrDimensionMismatch = errors.New("embedding dimension mismatch")
)

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


// Package ai defines the embedding capability consumed by the retrieval
// pipeline: the Embedder interface, its configuration, a typed error and
// retry policy for provider failures, and a memoizing QueryEmbedder that
// bounds repeated provider calls for hot queries.
//
// Concrete implementations live in subpackages: ai/openai for
// OpenAI-compatible embedding APIs and ai/mock for deterministic test
// doubles.
package ai

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


// Package storage defines the compiled-corpus persistence contract and the
// serialization helpers shared by its backends.
//
// A compiled corpus is a read-optimized store of (chunk, embedding) pairs
// produced by `francis compile` from the filesystem corpus layout. The
// filesystem remains the source of truth; the compiled store only exists to
// make cold starts cheap.
package storage

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


// Package topic maps raw user queries onto canonical legal-topic queries.
//
// Embedding similarity alone is frequently dominated by surface wording
// rather than legal topic: "TMI", a common French tax acronym, embeds far
// from the article 197 bracket text it refers to. The router expands such
// queries into statutory vocabulary before embedding, and supplies the
// keyword set the re-ranker scores against.
//
// Routing is a pure function over a static, ordered rule table shared by
// all jurisdictions; each jurisdiction only contributes its own table.
package topic

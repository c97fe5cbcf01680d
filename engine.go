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

package retrieval

import (
	"context"
	"io"
	"log/slog"
	"time"

	"github.com/francisfiscal/retrieval/ai"
	"github.com/francisfiscal/retrieval/ai/openai"
	"github.com/francisfiscal/retrieval/core"
	"github.com/francisfiscal/retrieval/corpus"
	"github.com/francisfiscal/retrieval/search"
	"github.com/francisfiscal/retrieval/vectorize"
)

// Engine wires the corpus loader, embedding provider and search pipeline
// behind one handle. One Engine serves all corpora under a root directory.
type Engine struct {
	root           string
	loader         *corpus.Loader
	embedder       ai.Embedder
	queries        *ai.QueryEmbedder
	searcher       *search.Searcher
	requestTimeout time.Duration
	logger         *slog.Logger
}

// EngineOption configures an Engine.
type EngineOption func(*engineOptions)

type engineOptions struct {
	aiConfig *ai.Config
	embedder ai.Embedder
	monitor  search.Monitor
	logger   *slog.Logger
}

// WithAIConfig sets the embedding provider configuration.
func WithAIConfig(config *ai.Config) EngineOption {
	return func(o *engineOptions) {
		o.aiConfig = config
	}
}

// WithEmbedder injects an embedder directly, bypassing provider
// construction. Used by tests and by callers with their own provider
// wiring.
func WithEmbedder(embedder ai.Embedder) EngineOption {
	return func(o *engineOptions) {
		o.embedder = embedder
	}
}

// WithSearchMonitor attaches a pipeline observer to the searcher.
func WithSearchMonitor(monitor search.Monitor) EngineOption {
	return func(o *engineOptions) {
		o.monitor = monitor
	}
}

// WithLogger sets the engine's base logger. Component loggers derive
// from it.
func WithLogger(logger *slog.Logger) EngineOption {
	return func(o *engineOptions) {
		o.logger = logger
	}
}

// NewEngine creates an Engine over the corpus root directory.
func NewEngine(corpusRoot string, opts ...EngineOption) (*Engine, error) {
	options := &engineOptions{
		aiConfig: ai.DefaultConfig(),
		logger:   slog.Default(),
	}
	for _, opt := range opts {
		opt(options)
	}

	loader, err := corpus.NewLoader(corpusRoot,
		corpus.WithLoaderLogger(options.logger.With("component", "corpus-loader")))
	if err != nil {
		return nil, err
	}

	embedder := options.embedder
	if embedder == nil {
		embedder, err = openai.NewEmbedder(options.aiConfig)
		if err != nil {
			loader.Close()
			return nil, err
		}
	}

	queries, err := ai.NewQueryEmbedder(embedder,
		ai.WithTimeout(options.aiConfig.RequestTimeout),
		ai.WithQueryLogger(options.logger.With("component", "query-embedder")))
	if err != nil {
		loader.Close()
		return nil, err
	}

	searcherOpts := []search.SearcherOption{
		search.WithSearcherLogger(options.logger.With("component", "search")),
	}
	if options.monitor != nil {
		searcherOpts = append(searcherOpts, search.WithMonitor(options.monitor))
	}
	searcher, err := search.NewSearcher(loader, queries, searcherOpts...)
	if err != nil {
		loader.Close()
		return nil, err
	}

	return &Engine{
		root:           corpusRoot,
		loader:         loader,
		embedder:       embedder,
		queries:        queries,
		searcher:       searcher,
		requestTimeout: options.aiConfig.RequestTimeout,
		logger:         options.logger,
	}, nil
}

// Search answers a question against the named corpus.
func (e *Engine) Search(ctx context.Context, query, corpusName string, topK int) ([]core.SearchResult, error) {
	return e.searcher.Search(ctx, query, corpusName, topK)
}

// Loader exposes the corpus loader.
func (e *Engine) Loader() *corpus.Loader {
	return e.loader
}

// NewVectorizer creates an embedding pipeline sharing the engine's
// provider, writing progress to the given writer. The engine's provider
// timeout applies unless the config sets its own.
func (e *Engine) NewVectorizer(config *vectorize.Config, progress io.Writer) *vectorize.Vectorizer {
	if config == nil {
		config = vectorize.DefaultConfig()
	}
	if config.RequestTimeout == 0 {
		config.RequestTimeout = e.requestTimeout
	}
	return vectorize.NewVectorizer(e.root, e.embedder, config, progress)
}

// Close releases the engine's resources.
func (e *Engine) Close() error {
	e.loader.Close()
	return nil
}

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

package corpus

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/panjf2000/ants/v2"

	"github.com/francisfiscal/retrieval/core"
	"github.com/francisfiscal/retrieval/storage"
	badgerstore "github.com/francisfiscal/retrieval/storage/badger"
)

const (
	// DefaultParserPoolSize bounds the workers parsing chunk files in
	// parallel during a load.
	DefaultParserPoolSize = 8

	// progressInterval is how many chunks between progress log lines on
	// large corpora.
	progressInterval = 500

	chunksDirName  = "chunks"
	vectorsDirName = "vectors"
	storeDirName   = "store"
)

// Loader loads corpora from a root directory, caching each corpus for the
// lifetime of the process. Loading the same name twice returns the same
// *Corpus; the cache is never invalidated, matching the read-only corpus
// contract.
type Loader struct {
	root   string
	logger *slog.Logger
	pool   *ants.Pool

	mu    sync.Mutex
	cache map[string]*Corpus
}

// LoaderOption configures a Loader.
type LoaderOption func(*Loader) error

// WithLoaderLogger sets the logger used for load progress and skip
// diagnostics.
func WithLoaderLogger(logger *slog.Logger) LoaderOption {
	return func(l *Loader) error {
		if logger == nil {
			return fmt.Errorf("logger cannot be nil")
		}
		l.logger = logger
		return nil
	}
}

// WithParserPoolSize sets the number of concurrent chunk parsers.
func WithParserPoolSize(size int) LoaderOption {
	return func(l *Loader) error {
		if size <= 0 {
			return fmt.Errorf("parser pool size must be positive, got %d", size)
		}
		pool, err := ants.NewPool(size)
		if err != nil {
			return fmt.Errorf("failed to create parser pool: %w", err)
		}
		l.pool = pool
		return nil
	}
}

// NewLoader creates a Loader rooted at the given directory. The root is not
// required to exist yet; missing corpora are reported per Load call.
func NewLoader(root string, opts ...LoaderOption) (*Loader, error) {
	if root == "" {
		return nil, fmt.Errorf("corpus root cannot be empty")
	}

	l := &Loader{
		root:   root,
		logger: slog.Default().With("component", "corpus-loader"),
		cache:  make(map[string]*Corpus),
	}
	for _, opt := range opts {
		if err := opt(l); err != nil {
			return nil, fmt.Errorf("failed to apply loader option: %w", err)
		}
	}

	if l.pool == nil {
		pool, err := ants.NewPool(DefaultParserPoolSize)
		if err != nil {
			return nil, fmt.Errorf("failed to create parser pool: %w", err)
		}
		l.pool = pool
	}

	return l, nil
}

// Close releases the loader's worker pool. Cached corpora remain usable.
func (l *Loader) Close() {
	l.pool.Release()
}

// Load returns the corpus with the given name, reading it from disk on
// first use. Returns core.ErrCorpusNotFound when no directory exists for
// the name. A directory with no chunk files yields an empty corpus, not
// an error.
func (l *Loader) Load(ctx context.Context, name string) (*Corpus, error) {
	if strings.TrimSpace(name) == "" {
		return nil, fmt.Errorf("%w: corpus name cannot be empty", core.ErrCorpusNotFound)
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	if corpus, ok := l.cache[name]; ok {
		return corpus, nil
	}

	corpus, err := l.loadFromDisk(ctx, name)
	if err != nil {
		return nil, err
	}

	l.cache[name] = corpus
	return corpus, nil
}

// Names lists the corpora available under the root, in sorted order.
func (l *Loader) Names() ([]string, error) {
	entries, err := os.ReadDir(l.root)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to read corpus root: %w", err)
	}

	var names []string
	for _, entry := range entries {
		if entry.IsDir() {
			names = append(names, entry.Name())
		}
	}
	return names, nil
}

func (l *Loader) loadFromDisk(ctx context.Context, name string) (*Corpus, error) {
	dir := filepath.Join(l.root, name)
	info, err := os.Stat(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", core.ErrCorpusNotFound, name)
		}
		return nil, fmt.Errorf("failed to stat corpus directory: %w", err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("%w: %s is not a directory", core.ErrCorpusNotFound, name)
	}

	kind := core.SourceKindFromString(name)

	// A compiled store takes precedence over loose files when present.
	storeDir := filepath.Join(dir, storeDirName)
	if info, err := os.Stat(storeDir); err == nil && info.IsDir() {
		return l.loadFromStore(ctx, name, kind, storeDir)
	}

	chunks, dimensions, err := l.loadFromFiles(ctx, name, kind, dir)
	if err != nil {
		return nil, err
	}

	l.logger.Info("corpus loaded",
		"corpus", name,
		"kind", kind.String(),
		"chunks", len(chunks),
		"dimensions", dimensions)

	return newCorpus(name, kind, dimensions, chunks), nil
}

func (l *Loader) loadFromFiles(ctx context.Context, name string, kind core.SourceKind, dir string) ([]*core.Chunk, int, error) {
	chunksDir := filepath.Join(dir, chunksDirName)
	entries, err := os.ReadDir(chunksDir)
	if err != nil {
		if os.IsNotExist(err) {
			l.logger.Warn("corpus has no chunks directory", "corpus", name)
			return nil, 0, nil
		}
		return nil, 0, fmt.Errorf("failed to read chunks directory: %w", err)
	}

	vectorsDir := filepath.Join(dir, vectorsDirName)

	var (
		wg      sync.WaitGroup
		mu      sync.Mutex
		chunks  []*core.Chunk
		skipped int
		loadErr error
	)

	parsed := 0
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".json") {
			continue
		}
		// In-flight parse tasks share the local slice; stop submitting
		// and fall through to the wait below.
		if err := ctx.Err(); err != nil {
			loadErr = err
			break
		}

		chunkPath := filepath.Join(chunksDir, entry.Name())
		wg.Add(1)
		submitErr := l.pool.Submit(func() {
			defer wg.Done()

			chunk, err := parseChunkFile(chunkPath, vectorsDir, kind)

			mu.Lock()
			defer mu.Unlock()
			if err != nil {
				skipped++
				l.logger.Warn("skipping chunk file", "corpus", name, "file", entry.Name(), "error", err)
				return
			}
			chunks = append(chunks, chunk)
			parsed++
			if parsed%progressInterval == 0 {
				l.logger.Info("corpus load progress", "corpus", name, "parsed", parsed)
			}
		})
		if submitErr != nil {
			wg.Done()
			loadErr = fmt.Errorf("failed to submit parse task: %w", submitErr)
			break
		}
	}
	wg.Wait()

	if loadErr != nil {
		return nil, 0, loadErr
	}
	if skipped > 0 {
		l.logger.Warn("corpus loaded with skipped chunks", "corpus", name, "skipped", skipped)
	}

	dimensions, chunks := enforceDimensions(l.logger, name, chunks)
	return chunks, dimensions, nil
}

func (l *Loader) loadFromStore(ctx context.Context, name string, kind core.SourceKind, storeDir string) (*Corpus, error) {
	backend, err := badgerstore.OpenBackend(storeDir, false)
	if err != nil {
		return nil, fmt.Errorf("failed to open corpus store: %w", err)
	}
	defer backend.Close()

	repo := badgerstore.NewChunkRepository(backend)

	stored, err := repo.SourceKind(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to read corpus source kind: %w", err)
	}
	if stored != core.SourceKindUnknown {
		kind = stored
	}

	var chunks []*core.Chunk
	err = repo.ForEachChunk(ctx, func(chunk *core.Chunk) error {
		chunks = append(chunks, chunk)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to iterate corpus store: %w", err)
	}

	dimensions, chunks := enforceDimensions(l.logger, name, chunks)

	l.logger.Info("corpus loaded from store",
		"corpus", name,
		"kind", kind.String(),
		"chunks", len(chunks),
		"dimensions", dimensions)

	return newCorpus(name, kind, dimensions, chunks), nil
}

// enforceDimensions establishes the corpus dimensionality from the first
// embedded chunk and drops chunks that cannot take part in similarity
// ranking: chunks still missing their vector file and chunks whose vector
// disagrees with the corpus dimensionality. Dropping is logged, never
// fatal; the vectorize pipeline fills the gaps for the next load.
func enforceDimensions(logger *slog.Logger, name string, chunks []*core.Chunk) (int, []*core.Chunk) {
	dimensions := 0
	kept := chunks[:0]
	for _, chunk := range chunks {
		if len(chunk.Vector) == 0 {
			logger.Warn("skipping chunk without vector",
				"corpus", name,
				"chunk", chunk.Id)
			continue
		}
		if dimensions == 0 {
			dimensions = len(chunk.Vector)
		}
		if len(chunk.Vector) != dimensions {
			logger.Warn("dropping chunk with mismatched dimensions",
				"corpus", name,
				"chunk", chunk.Id,
				"expected", dimensions,
				"got", len(chunk.Vector))
			continue
		}
		kept = append(kept, chunk)
	}
	return dimensions, kept
}

// chunkFile is the on-disk JSON shape of a corpus chunk.
type chunkFile struct {
	Id            string `json:"id"`
	Text          string `json:"text"`
	SourceLabel   string `json:"source_label"`
	ArticleNumber string `json:"article_number,omitempty"`
	Source        string `json:"source,omitempty"`
	Hierarchy     struct {
		Book    string `json:"book,omitempty"`
		Title   string `json:"title,omitempty"`
		Chapter string `json:"chapter,omitempty"`
		Section string `json:"section,omitempty"`
	} `json:"hierarchy,omitempty"`
}

// parseChunkFile reads one chunk JSON file and its sibling vector file.
// A chunk without a vector file is returned unembedded rather than
// rejected; the vectorize pipeline fills the gap later.
func parseChunkFile(chunkPath, vectorsDir string, corpusKind core.SourceKind) (*core.Chunk, error) {
	data, err := os.ReadFile(chunkPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read chunk file: %w", err)
	}

	var file chunkFile
	if err := json.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("failed to parse chunk file: %w", err)
	}

	kind := corpusKind
	if file.Source != "" {
		kind = core.SourceKindFromString(file.Source)
	}

	chunk := &core.Chunk{
		Id:            file.Id,
		Text:          file.Text,
		SourceLabel:   file.SourceLabel,
		ArticleNumber: file.ArticleNumber,
		Source:        kind,
		Hierarchy: core.Hierarchy{
			Book:    file.Hierarchy.Book,
			Title:   file.Hierarchy.Title,
			Chapter: file.Hierarchy.Chapter,
			Section: file.Hierarchy.Section,
		},
	}
	if chunk.Id == "" {
		chunk.Id = core.IDFromContent(chunk.Text)
	}
	if err := core.ValidateChunk(chunk); err != nil {
		return nil, err
	}

	vectorPath := filepath.Join(vectorsDir, chunk.Id+".vec")
	vectorData, err := os.ReadFile(vectorPath)
	if err != nil {
		if !os.IsNotExist(err) {
			return nil, fmt.Errorf("failed to read vector file: %w", err)
		}
		return chunk, nil
	}

	vector, err := storage.UnmarshalVector(vectorData)
	if err != nil {
		return nil, fmt.Errorf("failed to decode vector for %s: %w", chunk.Id, err)
	}
	chunk.Vector = vector

	return chunk, nil
}

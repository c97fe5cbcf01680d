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

package vectorize

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/panjf2000/ants/v2"

	"github.com/francisfiscal/retrieval/ai"
	"github.com/francisfiscal/retrieval/core"
	"github.com/francisfiscal/retrieval/storage"
)

// Config holds configuration for an embedding run.
type Config struct {
	// BatchSize is the number of chunks sent to the provider per request.
	BatchSize int

	// ReportInterval is how often to report progress (number of chunks).
	ReportInterval int

	// Workers is the number of batches embedded concurrently.
	Workers int

	// RetryPolicy governs retries of failed provider calls.
	RetryPolicy ai.RetryPolicy

	// RequestTimeout bounds a single provider call. Zero means no
	// per-call bound beyond the run's context.
	RequestTimeout time.Duration
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		BatchSize:      64,
		ReportInterval: 100,
		Workers:        2,
		RetryPolicy:    ai.DefaultRetryPolicy(),
	}
}

// Stats summarizes one embedding run.
type Stats struct {
	// Total is the number of chunk files found.
	Total int

	// Embedded is the number of chunks embedded during this run.
	Embedded int

	// Skipped is the number of chunks that already had a vector file.
	Skipped int
}

// Vectorizer embeds the chunks of one corpus directory.
type Vectorizer struct {
	root      string
	embedder  ai.Embedder
	config    *Config
	progress  io.Writer
	processor *BatchProcessor
}

// NewVectorizer creates a vectorizer over the corpus root.
// progress: where to write progress output (typically os.Stderr)
func NewVectorizer(root string, embedder ai.Embedder, config *Config, progress io.Writer) *Vectorizer {
	if config == nil {
		config = DefaultConfig()
	}

	return &Vectorizer{
		root:      root,
		embedder:  embedder,
		config:    config,
		progress:  progress,
		processor: NewBatchProcessor(embedder, config.RetryPolicy, config.RequestTimeout),
	}
}

// pendingChunk is a chunk awaiting its vector file.
type pendingChunk struct {
	id   string
	text string
}

// Run embeds every chunk of the named corpus that does not yet have a
// vector file. Returns core.ErrCorpusNotFound when the corpus directory
// does not exist.
func (v *Vectorizer) Run(ctx context.Context, corpusName string) (Stats, error) {
	var stats Stats

	dir := filepath.Join(v.root, corpusName)
	if info, err := os.Stat(dir); err != nil || !info.IsDir() {
		return stats, fmt.Errorf("%w: %s", core.ErrCorpusNotFound, corpusName)
	}

	chunksDir := filepath.Join(dir, "chunks")
	vectorsDir := filepath.Join(dir, "vectors")
	if err := os.MkdirAll(vectorsDir, 0o755); err != nil {
		return stats, fmt.Errorf("failed to create vectors directory: %w", err)
	}

	pending, total, skipped, err := v.collectPending(chunksDir, vectorsDir)
	if err != nil {
		return stats, err
	}
	stats.Total = total
	stats.Skipped = skipped

	if len(pending) == 0 {
		fmt.Fprintf(v.progress, "Nothing to embed: %d chunks, %d already vectorized\n", total, skipped)
		return stats, nil
	}

	fmt.Fprintf(v.progress, "Embedding %d of %d chunks (batch size: %d)\n",
		len(pending), total, v.config.BatchSize)

	tracker := NewProgressTracker(v.progress, len(pending), v.config.ReportInterval)
	tracker.Start()

	embedded, err := v.embedPending(ctx, pending, vectorsDir, tracker)
	stats.Embedded = embedded
	if err != nil {
		return stats, err
	}

	tracker.Finish()
	fmt.Fprintf(v.progress, "Embedded %d chunks in %s\n", embedded, tracker.Elapsed().Round(10*time.Millisecond))
	return stats, nil
}

// collectPending lists chunk files and partitions them into already
// vectorized and pending.
func (v *Vectorizer) collectPending(chunksDir, vectorsDir string) ([]pendingChunk, int, int, error) {
	entries, err := os.ReadDir(chunksDir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, 0, 0, nil
		}
		return nil, 0, 0, fmt.Errorf("failed to read chunks directory: %w", err)
	}

	var pending []pendingChunk
	total := 0
	skipped := 0
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".json") {
			continue
		}
		total++

		data, err := os.ReadFile(filepath.Join(chunksDir, entry.Name()))
		if err != nil {
			return nil, 0, 0, fmt.Errorf("failed to read chunk file %s: %w", entry.Name(), err)
		}

		var file struct {
			Id   string `json:"id"`
			Text string `json:"text"`
		}
		if err := json.Unmarshal(data, &file); err != nil {
			return nil, 0, 0, fmt.Errorf("failed to parse chunk file %s: %w", entry.Name(), err)
		}
		if file.Id == "" {
			file.Id = core.IDFromContent(file.Text)
		}

		if _, err := os.Stat(filepath.Join(vectorsDir, file.Id+".vec")); err == nil {
			skipped++
			continue
		}

		pending = append(pending, pendingChunk{id: file.Id, text: file.Text})
	}
	return pending, total, skipped, nil
}

// embedPending processes pending chunks in batches, several batches in
// flight at once. The first batch error aborts the run; vectors written
// before the failure stay on disk so the next run resumes past them.
func (v *Vectorizer) embedPending(ctx context.Context, pending []pendingChunk, vectorsDir string, tracker *ProgressTracker) (int, error) {
	pool, err := ants.NewPool(v.config.Workers)
	if err != nil {
		return 0, fmt.Errorf("failed to create worker pool: %w", err)
	}
	defer pool.Release()

	var (
		wg       sync.WaitGroup
		mu       sync.Mutex
		firstErr error
		embedded int
	)

	for start := 0; start < len(pending); start += v.config.BatchSize {
		end := start + v.config.BatchSize
		if end > len(pending) {
			end = len(pending)
		}
		batch := pending[start:end]

		mu.Lock()
		aborted := firstErr != nil
		mu.Unlock()
		if aborted || ctx.Err() != nil {
			break
		}

		wg.Add(1)
		submitErr := pool.Submit(func() {
			defer wg.Done()

			count, err := v.embedBatch(ctx, batch, vectorsDir)

			mu.Lock()
			defer mu.Unlock()
			embedded += count
			if err != nil && firstErr == nil {
				firstErr = err
			}
			tracker.Increment(count)
		})
		if submitErr != nil {
			wg.Done()
			mu.Lock()
			if firstErr == nil {
				firstErr = fmt.Errorf("failed to submit batch: %w", submitErr)
			}
			mu.Unlock()
			break
		}
	}
	wg.Wait()

	if firstErr != nil {
		return embedded, firstErr
	}
	return embedded, ctx.Err()
}

// embedBatch embeds one batch and writes its vector files. Returns how
// many vectors were written.
func (v *Vectorizer) embedBatch(ctx context.Context, batch []pendingChunk, vectorsDir string) (int, error) {
	texts := make([]string, len(batch))
	for i, chunk := range batch {
		texts[i] = chunk.text
	}

	vectors, err := v.processor.Process(ctx, texts)
	if err != nil {
		return 0, err
	}

	written := 0
	for i, chunk := range batch {
		data := storage.MarshalVector(vectors[i])
		if err := os.WriteFile(filepath.Join(vectorsDir, chunk.id+".vec"), data, 0o644); err != nil {
			return written, fmt.Errorf("failed to write vector for %s: %w", chunk.id, err)
		}
		written++
	}
	return written, nil
}

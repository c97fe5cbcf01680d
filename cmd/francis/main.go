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

package main

import (
	"context"
	"fmt"
	"log"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/urfave/cli/v2"

	retrieval "github.com/francisfiscal/retrieval"
	"github.com/francisfiscal/retrieval/ai"
	"github.com/francisfiscal/retrieval/ai/openai"
	"github.com/francisfiscal/retrieval/corpus"
	"github.com/francisfiscal/retrieval/prompt"
	"github.com/francisfiscal/retrieval/search"
	"github.com/francisfiscal/retrieval/vectorize"
)

func main() {
	app := &cli.App{
		Name:  "francis",
		Usage: "Retrieval over official tax corpora (CGI, BOFiP, Andorra, Switzerland, Luxembourg)",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "log-level",
				Aliases: []string{"l"},
				Usage:   "Set logging level (debug, info, warn, error)",
				Value:   "info",
			},
		},
		Before: setupLogger,
		Commands: []*cli.Command{
			{
				Name:   "vectorize",
				Usage:  "Embed every chunk of a corpus that has no vector yet",
				Action: vectorizeCommand,
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:     "root",
						Aliases:  []string{"r"},
						Usage:    "Path to the corpus root directory",
						Required: true,
					},
					&cli.StringFlag{
						Name:     "corpus",
						Aliases:  []string{"c"},
						Usage:    "Corpus name (CGI, BOFiP, andorra, switzerland, luxembourg)",
						Required: true,
					},
					&cli.StringFlag{
						Name:  "embedding-host",
						Usage: "Embedding service host URL",
						Value: "http://localhost:11434/v1",
					},
					&cli.StringFlag{
						Name:     "embedding-model",
						Usage:    "Embedding model name",
						Required: true,
					},
					&cli.IntFlag{
						Name:  "batch-size",
						Usage: "Number of chunks to embed in each provider call",
						Value: 64,
					},
					&cli.IntFlag{
						Name:  "report-interval",
						Usage: "Report progress every N chunks",
						Value: 100,
					},
					&cli.IntFlag{
						Name:  "workers",
						Usage: "Number of batches embedded concurrently",
						Value: 2,
					},
					&cli.IntFlag{
						Name:  "max-retries",
						Usage: "Maximum retry attempts for failed provider calls",
						Value: 3,
					},
					&cli.DurationFlag{
						Name:  "retry-delay",
						Usage: "Base delay for exponential backoff",
						Value: 1 * time.Second,
					},
				},
			},
			{
				Name:   "compile",
				Usage:  "Pack a corpus's loose files into its compiled store",
				Action: compileCommand,
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:     "root",
						Aliases:  []string{"r"},
						Usage:    "Path to the corpus root directory",
						Required: true,
					},
					&cli.StringFlag{
						Name:     "corpus",
						Aliases:  []string{"c"},
						Usage:    "Corpus name to compile",
						Required: true,
					},
				},
			},
			{
				Name:   "search",
				Usage:  "Run a query against a corpus and print the sourced extracts",
				Action: searchCommand,
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:     "root",
						Aliases:  []string{"r"},
						Usage:    "Path to the corpus root directory",
						Required: true,
					},
					&cli.StringFlag{
						Name:     "corpus",
						Aliases:  []string{"c"},
						Usage:    "Corpus name to search",
						Required: true,
					},
					&cli.StringFlag{
						Name:     "query",
						Aliases:  []string{"q"},
						Usage:    "Natural-language question",
						Required: true,
					},
					&cli.IntFlag{
						Name:    "top-k",
						Aliases: []string{"k"},
						Usage:   "Number of results to return",
						Value:   search.DefaultTopK,
					},
					&cli.StringFlag{
						Name:  "embedding-host",
						Usage: "Embedding service host URL",
						Value: "http://localhost:11434/v1",
					},
					&cli.StringFlag{
						Name:     "embedding-model",
						Usage:    "Embedding model name",
						Required: true,
					},
					&cli.BoolFlag{
						Name:  "prompt",
						Usage: "Print the results as a model prompt context block",
					},
				},
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}

func vectorizeCommand(c *cli.Context) error {
	ctx := context.Background()

	aiConfig := ai.NewConfig(
		ai.WithHost(c.String("embedding-host")),
		ai.WithModel(c.String("embedding-model")),
	)
	if err := aiConfig.Validate(); err != nil {
		return fmt.Errorf("invalid AI configuration: %w", err)
	}

	embedder, err := openai.NewEmbedder(aiConfig)
	if err != nil {
		return fmt.Errorf("failed to create embedder: %w", err)
	}

	config := &vectorize.Config{
		BatchSize:      c.Int("batch-size"),
		ReportInterval: c.Int("report-interval"),
		Workers:        c.Int("workers"),
		RetryPolicy: ai.RetryPolicy{
			MaxAttempts: c.Int("max-retries"),
			BaseDelay:   c.Duration("retry-delay"),
		},
		RequestTimeout: aiConfig.RequestTimeout,
	}
	if config.BatchSize <= 0 {
		return fmt.Errorf("batch-size must be greater than 0")
	}
	if config.ReportInterval <= 0 {
		return fmt.Errorf("report-interval must be greater than 0")
	}
	if config.Workers <= 0 {
		return fmt.Errorf("workers must be greater than 0")
	}
	if config.RetryPolicy.MaxAttempts <= 0 {
		return fmt.Errorf("max-retries must be greater than 0")
	}

	fmt.Fprintf(os.Stderr, "Corpus root: %s\n", c.String("root"))
	fmt.Fprintf(os.Stderr, "Embedding host: %s\n", c.String("embedding-host"))
	fmt.Fprintf(os.Stderr, "Embedding model: %s\n", c.String("embedding-model"))
	fmt.Fprintln(os.Stderr)

	vectorizer := vectorize.NewVectorizer(c.String("root"), embedder, config, os.Stderr)
	stats, err := vectorizer.Run(ctx, c.String("corpus"))
	if err != nil {
		return fmt.Errorf("vectorization failed: %w", err)
	}

	fmt.Fprintf(os.Stderr, "Done: %d embedded, %d skipped, %d total\n",
		stats.Embedded, stats.Skipped, stats.Total)
	return nil
}

func compileCommand(c *cli.Context) error {
	count, err := corpus.Compile(context.Background(), c.String("root"), c.String("corpus"), slog.Default())
	if err != nil {
		return fmt.Errorf("compilation failed: %w", err)
	}

	fmt.Fprintf(os.Stderr, "Compiled %d chunks\n", count)
	return nil
}

func searchCommand(c *cli.Context) error {
	ctx := context.Background()

	aiConfig := ai.NewConfig(
		ai.WithHost(c.String("embedding-host")),
		ai.WithModel(c.String("embedding-model")),
	)
	if err := aiConfig.Validate(); err != nil {
		return fmt.Errorf("invalid AI configuration: %w", err)
	}

	engine, err := retrieval.NewEngine(c.String("root"), retrieval.WithAIConfig(aiConfig))
	if err != nil {
		return fmt.Errorf("failed to create engine: %w", err)
	}
	defer engine.Close()

	results, err := engine.Search(ctx, c.String("query"), c.String("corpus"), c.Int("top-k"))
	if err != nil {
		return fmt.Errorf("search failed: %w", err)
	}

	if c.Bool("prompt") {
		fmt.Print(prompt.FormatContext(c.String("corpus"), results))
		return nil
	}

	if len(results) == 0 {
		fmt.Println("No results.")
		return nil
	}
	for i, result := range results {
		fmt.Printf("%d. %s (score %.3f, similarity %.3f)\n",
			i+1, result.Chunk.SourceLabel, result.FinalScore, result.Similarity)
		fmt.Println(indent(result.Text))
		fmt.Println()
	}
	return nil
}

func indent(text string) string {
	lines := strings.Split(strings.TrimSpace(text), "\n")
	for i, line := range lines {
		lines[i] = "   " + line
	}
	return strings.Join(lines, "\n")
}

func setupLogger(c *cli.Context) error {
	levelStr := strings.ToLower(c.String("log-level"))

	var level slog.Level
	switch levelStr {
	case "debug":
		level = slog.LevelDebug
	case "info":
		level = slog.LevelInfo
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		return fmt.Errorf("invalid log level %q: must be one of debug, info, warn, error", levelStr)
	}

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	}))
	slog.SetDefault(logger)

	return nil
}

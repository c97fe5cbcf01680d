package search

import (
	"log/slog"
	"time"
)

// Monitor observes pipeline stages. Implementations must be safe for
// concurrent use; a Searcher may serve queries from multiple goroutines.
type Monitor interface {
	// QueryEnhanced fires after topic routing, with the query actually
	// sent to the embedder and the keywords used for re-ranking.
	QueryEnhanced(corpus, rawQuery, enhancedQuery string, keywords []string)

	// CandidatesRanked fires after the similarity cut, with the number of
	// candidates entering the gate and re-ranking stages.
	CandidatesRanked(corpus string, candidates int)

	// CandidateFiltered fires for each candidate removed by the source
	// authenticity gate.
	CandidateFiltered(corpus, chunkID string)

	// SearchCompleted fires once per successful search.
	SearchCompleted(corpus string, results int, elapsed time.Duration)
}

type noopMonitor struct{}

func (noopMonitor) QueryEnhanced(string, string, string, []string) {}
func (noopMonitor) CandidatesRanked(string, int)                   {}
func (noopMonitor) CandidateFiltered(string, string)               {}
func (noopMonitor) SearchCompleted(string, int, time.Duration)     {}

// LogMonitor writes pipeline events to a slog logger.
type LogMonitor struct {
	logger *slog.Logger
}

// NewLogMonitor creates a monitor logging at debug level, with completions
// at info level.
func NewLogMonitor(logger *slog.Logger) *LogMonitor {
	return &LogMonitor{logger: logger}
}

func (m *LogMonitor) QueryEnhanced(corpus, rawQuery, enhancedQuery string, keywords []string) {
	m.logger.Debug("query enhanced",
		"corpus", corpus,
		"raw", rawQuery,
		"enhanced", enhancedQuery,
		"keywords", keywords)
}

func (m *LogMonitor) CandidatesRanked(corpus string, candidates int) {
	m.logger.Debug("candidates ranked",
		"corpus", corpus,
		"candidates", candidates)
}

func (m *LogMonitor) CandidateFiltered(corpus, chunkID string) {
	m.logger.Debug("candidate rejected by authenticity gate",
		"corpus", corpus,
		"chunk", chunkID)
}

func (m *LogMonitor) SearchCompleted(corpus string, results int, elapsed time.Duration) {
	m.logger.Info("search completed",
		"corpus", corpus,
		"results", results,
		"elapsed", elapsed)
}

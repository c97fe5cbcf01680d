package search

import (
	"sync"
	"time"
)

// recordingMonitor captures pipeline events for assertions.
type recordingMonitor struct {
	mu            sync.Mutex
	enhancedQuery string
	keywords      []string
	ranked        int
	filtered      []string
	completions   int
}

func (m *recordingMonitor) QueryEnhanced(_, _, enhancedQuery string, keywords []string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.enhancedQuery = enhancedQuery
	m.keywords = keywords
}

func (m *recordingMonitor) CandidatesRanked(_ string, candidates int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.ranked = candidates
}

func (m *recordingMonitor) CandidateFiltered(_, chunkID string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.filtered = append(m.filtered, chunkID)
}

func (m *recordingMonitor) SearchCompleted(string, int, time.Duration) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.completions++
}

package pipeline

import "sync"

// StatsSnapshot is a point-in-time copy of processing counters.
type StatsSnapshot struct {
	Documents int `json:"documents"`
	Failures  int `json:"failures"`
}

// Stats counts processed documents.
type Stats struct {
	mu        sync.Mutex
	documents int
	failures  int
}

func NewStats() *Stats {
	return &Stats{}
}

// RecordDocument counts one successfully processed document.
func (s *Stats) RecordDocument() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.documents++
}

// RecordFailure counts one failed document.
func (s *Stats) RecordFailure() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.failures++
}

// Snapshot returns a copy of the current counters.
func (s *Stats) Snapshot() StatsSnapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return StatsSnapshot{Documents: s.documents, Failures: s.failures}
}

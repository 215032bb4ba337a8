package store

import (
	"context"
	"sync"

	"github.com/aashish-bhongade98/IntelliDataOps-GovDataBridge/internal/bridge/entity"
)

// InMemoryStore keeps aggregate comparison counters. Individual match
// results are never retained; only totals survive the request that produced
// them.
type InMemoryStore struct {
	mu            sync.RWMutex
	comparisons   int64
	matched       int64
	unmatched     int64
	filesByFormat map[entity.FileFormat]int64
}

func NewInMemoryStore() *InMemoryStore {
	return &InMemoryStore{
		filesByFormat: make(map[entity.FileFormat]int64),
	}
}

// RecordComparison folds one completed comparison into the counters.
func (s *InMemoryStore) RecordComparison(ctx context.Context, event entity.ComparisonEvent) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.comparisons++
	s.matched += int64(event.Matched)
	s.unmatched += int64(event.UnmatchedA) + int64(event.UnmatchedB)
	if event.FormatA != "" {
		s.filesByFormat[event.FormatA]++
	}
	if event.FormatB != "" {
		s.filesByFormat[event.FormatB]++
	}

	return nil
}

// Stats returns a snapshot of the counters.
func (s *InMemoryStore) Stats(ctx context.Context) (entity.ComparisonStats, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	byFormat := make(map[entity.FileFormat]int64, len(s.filesByFormat))
	for format, count := range s.filesByFormat {
		byFormat[format] = count
	}

	return entity.ComparisonStats{
		Comparisons:     s.comparisons,
		MatchedFields:   s.matched,
		UnmatchedFields: s.unmatched,
		FilesByFormat:   byFormat,
	}, nil
}

package analytics

import (
	"context"
	"sort"
	"sync"

	"github.com/lexfile/lexfile/internal/domain"
)

// MemoryStore is the in-process search log. Same promote-to-front and cap
// behavior as the Redis store; state does not survive a restart.
type MemoryStore struct {
	mu     sync.Mutex
	recent []string
	counts map[string]int64
}

// NewMemoryStore creates an empty in-process analytics store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{counts: make(map[string]int64)}
}

// Touch records one search of query.
func (s *MemoryStore) Touch(_ context.Context, query string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, q := range s.recent {
		if q == query {
			s.recent = append(s.recent[:i], s.recent[i+1:]...)
			break
		}
	}
	s.recent = append([]string{query}, s.recent...)
	if len(s.recent) > recentCap {
		s.recent = s.recent[:recentCap]
	}
	s.counts[query]++
	return nil
}

// Recent returns up to limit queries, newest first.
func (s *MemoryStore) Recent(_ context.Context, limit int) ([]string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if limit > len(s.recent) {
		limit = len(s.recent)
	}
	out := make([]string, limit)
	copy(out, s.recent[:limit])
	return out, nil
}

// Popular returns up to limit queries by count descending, ties broken
// lexically so the ordering is stable across calls.
func (s *MemoryStore) Popular(_ context.Context, limit int) ([]domain.PopularSearch, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]domain.PopularSearch, 0, len(s.counts))
	for q, n := range s.counts {
		out = append(out, domain.PopularSearch{Query: q, Count: n})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Count != out[j].Count {
			return out[i].Count > out[j].Count
		}
		return out[i].Query < out[j].Query
	})
	if limit < len(out) {
		out = out[:limit]
	}
	return out, nil
}

// Ping always succeeds; the in-process store has no connection to lose.
func (s *MemoryStore) Ping(context.Context) error { return nil }

// Package analytics persists the search log: a bounded recency list and a
// popularity counter per query. Two stores implement the same behavior, a
// Redis-backed one for deployments and an in-process one for single-node and
// test use.
package analytics

import (
	"context"
	"fmt"

	"github.com/lexfile/lexfile/internal/db"
	"github.com/lexfile/lexfile/internal/domain"
)

// recentCap bounds the recency list. Older entries fall off the tail.
const recentCap = 50

type listStore interface {
	db.Lists
	db.SortedSets
}

// Store keeps the search log in Redis. The recency list holds at most
// recentCap distinct queries, newest first; re-searching an existing query
// promotes it to the front. Popularity is a sorted set incremented per search.
type Store struct {
	db        listStore
	keyPrefix string
}

// NewStore creates a Redis-backed analytics store. keyPrefix namespaces the
// recency and popularity keys so several deployments can share an instance.
func NewStore(store listStore, keyPrefix string) *Store {
	return &Store{db: store, keyPrefix: keyPrefix}
}

func (s *Store) recentKey() string  { return s.keyPrefix + "searches:recent" }
func (s *Store) popularKey() string { return s.keyPrefix + "searches:popular" }

// Touch records one search of query: promote-to-front on the recency list,
// trim to the cap, and bump the popularity counter.
func (s *Store) Touch(ctx context.Context, query string) error {
	if err := s.db.LRem(ctx, s.recentKey(), query); err != nil {
		return fmt.Errorf("promote %q: %w", query, err)
	}
	if err := s.db.LPush(ctx, s.recentKey(), query); err != nil {
		return fmt.Errorf("push %q: %w", query, err)
	}
	if err := s.db.LTrim(ctx, s.recentKey(), 0, recentCap-1); err != nil {
		return fmt.Errorf("trim recent: %w", err)
	}
	if err := s.db.ZIncrBy(ctx, s.popularKey(), 1, query); err != nil {
		return fmt.Errorf("count %q: %w", query, err)
	}
	return nil
}

// Recent returns up to limit queries, newest first.
func (s *Store) Recent(ctx context.Context, limit int) ([]string, error) {
	vals, err := s.db.LRange(ctx, s.recentKey(), 0, int64(limit)-1)
	if err != nil {
		return nil, fmt.Errorf("recent searches: %w", err)
	}
	return vals, nil
}

// Popular returns up to limit queries ordered by search count descending.
func (s *Store) Popular(ctx context.Context, limit int) ([]domain.PopularSearch, error) {
	members, err := s.db.ZRevRangeWithScores(ctx, s.popularKey(), 0, int64(limit)-1)
	if err != nil {
		return nil, fmt.Errorf("popular searches: %w", err)
	}
	out := make([]domain.PopularSearch, 0, len(members))
	for _, m := range members {
		out = append(out, domain.PopularSearch{Query: m.Member, Count: int64(m.Score)})
	}
	return out, nil
}

// Package analytics is the search query log: it normalizes submitted
// queries and keeps the recency and popularity aggregates the suggestion
// engine reads.
package analytics

import (
	"context"
	"strings"

	"go.uber.org/zap"

	"github.com/lexfile/lexfile/internal/domain"
)

// minLoggedLen is the shortest trimmed query worth logging.
const minLoggedLen = 2

// Store persists the recency list and the frequency counter.
type Store interface {
	Touch(ctx context.Context, query string) error
	Recent(ctx context.Context, limit int) ([]string, error)
	Popular(ctx context.Context, limit int) ([]domain.PopularSearch, error)
}

// Service wraps the store with query normalization.
type Service struct {
	store Store
	log   *zap.Logger
}

// New creates the analytics service.
func New(store Store, log *zap.Logger) *Service {
	return &Service{store: store, log: log}
}

// LogSearch records a submitted query. Queries shorter than two characters
// after trimming are dropped; the rest are lowercased and trimmed before
// touching the store.
func (s *Service) LogSearch(ctx context.Context, query string) error {
	query = strings.TrimSpace(query)
	if len([]rune(query)) < minLoggedLen {
		return nil
	}
	return s.store.Touch(ctx, strings.ToLower(query))
}

// Recent returns the newest distinct queries, most recent first.
func (s *Service) Recent(ctx context.Context, limit int) ([]string, error) {
	return s.store.Recent(ctx, limit)
}

// Popular returns queries by descending search count.
func (s *Service) Popular(ctx context.Context, limit int) ([]domain.PopularSearch, error) {
	return s.store.Popular(ctx, limit)
}

// Package health aggregates readiness checks for the service's backing
// stores.
package health

import (
	"context"
	"fmt"
)

// Pinger checks one dependency's connectivity.
type Pinger interface {
	Ping(ctx context.Context) error
}

// Service checks the catalog database and the analytics store.
type Service struct {
	db        Pinger
	analytics Pinger
}

// New creates a health service. Either pinger may be nil to skip the check.
func New(db, analytics Pinger) *Service {
	return &Service{db: db, analytics: analytics}
}

// Ready reports nil when every configured dependency answers a ping.
func (s *Service) Ready(ctx context.Context) error {
	if s.db != nil {
		if err := s.db.Ping(ctx); err != nil {
			return fmt.Errorf("database: %w", err)
		}
	}
	if s.analytics != nil {
		if err := s.analytics.Ping(ctx); err != nil {
			return fmt.Errorf("analytics: %w", err)
		}
	}
	return nil
}

// Package search implements the unified search core: per-field relevance
// scoring over facade-narrowed candidates, category assembly, and the
// multi-word file fallback.
package search

import (
	"context"
	"strings"

	"go.uber.org/zap"

	"github.com/lexfile/lexfile/internal/domain"
	"github.com/lexfile/lexfile/internal/metrics"
)

// Config tunes the orchestrator.
type Config struct {
	// PerEntityLimit caps candidates fetched per facade query.
	PerEntityLimit int
	// AccessWindow is the recency window scanned for access history matches.
	AccessWindow int
}

// Service is the unified search orchestrator. Stateless per call; every
// search is a pure function of the query, the filters, and the facade's
// answers.
type Service struct {
	catalog        Catalog
	log            *zap.Logger
	perEntityLimit int
	accessWindow   int
}

// New creates the orchestrator. Zero config fields fall back to the
// production defaults (20 candidates per entity, 100-record access window).
func New(catalog Catalog, cfg Config, log *zap.Logger) *Service {
	if cfg.PerEntityLimit <= 0 {
		cfg.PerEntityLimit = 20
	}
	if cfg.AccessWindow <= 0 {
		cfg.AccessWindow = 100
	}
	return &Service{
		catalog:        catalog,
		log:            log,
		perEntityLimit: cfg.PerEntityLimit,
		accessWindow:   cfg.AccessWindow,
	}
}

// Unified searches all six categories and returns the categorized envelope.
// A facade failure in any category aborts the whole call; the envelope comes
// back all-empty with Error set, never with partial results. Filters narrow
// the files category only. includePrivateComments is accepted for contract
// compatibility; comment search is not implemented and the category is
// always empty.
func (s *Service) Unified(
	ctx context.Context, query string, filters domain.FileFilters, includePrivateComments bool,
) domain.Envelope {
	_ = includePrivateComments

	env := domain.NewEnvelope(query)
	if query == "" && filters.IsZero() {
		metrics.SearchesTotal.WithLabelValues("empty").Inc()
		return env
	}

	lowered := strings.ToLower(query)

	if query != "" {
		files, err := s.searchFilesWithFallback(ctx, query, filters)
		if err != nil {
			return s.degraded(query, "files", err)
		}
		env.Files = processRows(files, lowered, scoreFile, wrapFile)

		clients, err := s.catalog.SearchClients(ctx, query, s.perEntityLimit)
		if err != nil {
			return s.degraded(query, "clients", err)
		}
		env.Clients = processRows(clients, lowered, scoreClient, wrapClient)

		cases, err := s.catalog.SearchCases(ctx, query, s.perEntityLimit)
		if err != nil {
			return s.degraded(query, "cases", err)
		}
		env.Cases = processRows(cases, lowered, scoreCase, wrapCase)

		payments, err := s.catalog.SearchPayments(ctx, query, s.perEntityLimit)
		if err != nil {
			return s.degraded(query, "payments", err)
		}
		env.Payments = processRows(payments, lowered, scorePayment, wrapPayment)

		accesses, err := s.catalog.RecentFileAccesses(ctx, s.accessWindow)
		if err != nil {
			return s.degraded(query, "access_history", err)
		}
		env.AccessHistory = processRows(accesses, lowered, scoreAccess, wrapAccess)
	}

	env.TotalResults = env.Total()
	metrics.SearchesTotal.WithLabelValues("ok").Inc()
	metrics.SearchResults.Observe(float64(env.TotalResults))
	return env
}

// searchFilesWithFallback queries files for the full query and, when that
// yields nothing for a multi-word query, re-queries per token longer than
// two characters and merges the candidates, deduplicated by file id with the
// first occurrence kept. The fallback is a deliberate recall boost.
func (s *Service) searchFilesWithFallback(
	ctx context.Context, query string, filters domain.FileFilters,
) ([]domain.FileRow, error) {
	files, err := s.catalog.SearchFiles(ctx, query, filters, s.perEntityLimit)
	if err != nil {
		return nil, err
	}
	if len(files) > 0 || !strings.Contains(query, " ") {
		return files, nil
	}

	seen := make(map[string]struct{})
	var merged []domain.FileRow
	for _, word := range strings.Fields(query) {
		if len(word) <= 2 {
			continue
		}
		wordFiles, err := s.catalog.SearchFiles(ctx, word, filters, s.perEntityLimit)
		if err != nil {
			return nil, err
		}
		for _, f := range wordFiles {
			if _, ok := seen[f.FileID]; ok {
				continue
			}
			seen[f.FileID] = struct{}{}
			merged = append(merged, f)
		}
	}
	return merged, nil
}

func (s *Service) degraded(query, category string, err error) domain.Envelope {
	s.log.Error("unified search failed",
		zap.String("query", query),
		zap.String("category", category),
		zap.Error(err))
	metrics.SearchesTotal.WithLabelValues("error").Inc()

	env := domain.NewEnvelope(query)
	env.Error = err.Error()
	return env
}

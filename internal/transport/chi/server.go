// Package chi is the HTTP transport: route wiring, query parsing, response
// truncation and the auth middleware.
package chi

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/lexfile/lexfile/internal/domain"
)

// maxQueryLen bounds accepted query strings.
const maxQueryLen = 500

// Searcher runs the unified search.
type Searcher interface {
	Unified(ctx context.Context, query string, filters domain.FileFilters, includePrivateComments bool) domain.Envelope
}

// Suggester builds suggestion responses and typo corrections.
type Suggester interface {
	Intelligent(ctx context.Context, query string, limit int) domain.Suggestions
	Corrections(ctx context.Context, query string) []domain.Suggestion
}

// SearchLog records submitted queries.
type SearchLog interface {
	LogSearch(ctx context.Context, query string) error
}

// Files exposes the file access log and filter metadata.
type Files interface {
	LogFileAccess(ctx context.Context, in domain.FileAccessInput) (string, error)
	RecentFileAccesses(ctx context.Context, limit int) ([]domain.AccessRow, error)
	FilterOptions(ctx context.Context) (domain.FilterOptions, error)
}

// Health reports readiness of the backing stores.
type Health interface {
	Ready(ctx context.Context) error
}

// Limits are the transport-level response caps.
type Limits struct {
	// DefaultCategory is the per-category result cap when the caller does
	// not pass one.
	DefaultCategory int
	// MaxCategory is the hard per-category result cap.
	MaxCategory int
	// MaxSuggestions is the hard suggestion list cap.
	MaxSuggestions int
}

// Server is the HTTP API server.
type Server struct {
	search    Searcher
	suggest   Suggester
	searchLog SearchLog
	files     Files
	health    Health
	limits    Limits
	logger    *zap.Logger
}

// NewServer creates an HTTP API server.
func NewServer(
	search Searcher,
	suggest Suggester,
	searchLog SearchLog,
	files Files,
	health Health,
	limits Limits,
	logger *zap.Logger,
) *Server {
	if limits.DefaultCategory <= 0 {
		limits.DefaultCategory = 10
	}
	if limits.MaxCategory <= 0 {
		limits.MaxCategory = 100
	}
	if limits.MaxSuggestions <= 0 {
		limits.MaxSuggestions = 50
	}
	return &Server{
		search:    search,
		suggest:   suggest,
		searchLog: searchLog,
		files:     files,
		health:    health,
		limits:    limits,
		logger:    logger,
	}
}

// Routes mounts every endpoint on a fresh router. Middlewares are applied by
// the composition root around this router.
func (s *Server) Routes() chi.Router {
	r := chi.NewRouter()

	r.Route("/api", func(r chi.Router) {
		r.Get("/search", s.handleUnifiedSearch)
		r.Get("/search/suggestions", s.handleSuggestions)
		r.Get("/search/corrections", s.handleCorrections)
		r.Get("/search/filter-options", s.handleFilterOptions)

		r.Get("/files/recent-access", s.handleRecentAccess)
		r.Post("/files/{fileID}/access", s.handleLogAccess)
	})

	r.Get("/healthz", s.handleHealthz)
	r.Get("/metrics", promhttp.Handler().ServeHTTP)

	return r
}

func (s *Server) handleHealthz(w http.ResponseWriter, r *http.Request) {
	if err := s.health.Ready(r.Context()); err != nil {
		s.logger.Warn("readiness check failed", zap.Error(err))
		writeJSON(w, http.StatusServiceUnavailable, map[string]string{
			"status": "unavailable",
			"reason": err.Error(),
		})
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

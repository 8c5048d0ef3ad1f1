package chi

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/lexfile/lexfile/internal/domain"
)

// searchResponse is the unified search envelope plus the transport-level
// truncation flags and per-category counts. Counts reflect the envelope
// before truncation.
type searchResponse struct {
	domain.Envelope
	CategoryCounts         map[string]int `json:"category_counts"`
	FilesTruncated         bool           `json:"files_truncated"`
	ClientsTruncated       bool           `json:"clients_truncated"`
	CasesTruncated         bool           `json:"cases_truncated"`
	PaymentsTruncated      bool           `json:"payments_truncated"`
	AccessHistoryTruncated bool           `json:"access_history_truncated"`
	CommentsTruncated      bool           `json:"comments_truncated"`
}

// handleUnifiedSearch handles GET /api/search.
func (s *Server) handleUnifiedSearch(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	query := q.Get("q")
	if len(query) > maxQueryLen {
		writeError(w, http.StatusBadRequest, codeBadRequest, "query too long")
		return
	}

	filters := domain.FileFilters{
		CaseType:             q.Get("case_type"),
		FileType:             q.Get("file_type"),
		ConfidentialityLevel: q.Get("confidentiality_level"),
		StorageStatus:        q.Get("storage_status"),
		WarehouseLocation:    q.Get("warehouse_location"),
	}
	includePrivate := q.Get("include_private_comments") == "true"
	limit := s.intParam(q.Get("limit"), s.limits.DefaultCategory, s.limits.MaxCategory)

	if err := s.searchLog.LogSearch(r.Context(), query); err != nil {
		s.logger.Warn("search log write failed", zap.Error(err))
	}

	env := s.search.Unified(r.Context(), query, filters, includePrivate)

	resp := searchResponse{
		Envelope:       env,
		CategoryCounts: env.CategorySizes(),
	}
	resp.FilesTruncated = len(env.Files) > limit
	resp.ClientsTruncated = len(env.Clients) > limit
	resp.CasesTruncated = len(env.Cases) > limit
	resp.PaymentsTruncated = len(env.Payments) > limit
	resp.AccessHistoryTruncated = len(env.AccessHistory) > limit
	resp.CommentsTruncated = len(env.Comments) > limit
	if resp.FilesTruncated {
		resp.Files = env.Files[:limit]
	}
	if resp.ClientsTruncated {
		resp.Clients = env.Clients[:limit]
	}
	if resp.CasesTruncated {
		resp.Cases = env.Cases[:limit]
	}
	if resp.PaymentsTruncated {
		resp.Payments = env.Payments[:limit]
	}
	if resp.AccessHistoryTruncated {
		resp.AccessHistory = env.AccessHistory[:limit]
	}
	if resp.CommentsTruncated {
		resp.Comments = env.Comments[:limit]
	}

	writeJSON(w, http.StatusOK, resp)
}

// handleSuggestions handles GET /api/search/suggestions.
func (s *Server) handleSuggestions(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	query := q.Get("q")
	if len(query) > maxQueryLen {
		writeError(w, http.StatusBadRequest, codeBadRequest, "query too long")
		return
	}
	limit := s.intParam(q.Get("limit"), 10, s.limits.MaxSuggestions)

	writeJSON(w, http.StatusOK, s.suggest.Intelligent(r.Context(), query, limit))
}

// handleCorrections handles GET /api/search/corrections.
func (s *Server) handleCorrections(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query().Get("q")
	if len(query) > maxQueryLen {
		writeError(w, http.StatusBadRequest, codeBadRequest, "query too long")
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"corrections": s.suggest.Corrections(r.Context(), query),
	})
}

// handleFilterOptions handles GET /api/search/filter-options.
func (s *Server) handleFilterOptions(w http.ResponseWriter, r *http.Request) {
	opts, err := s.files.FilterOptions(r.Context())
	if err != nil {
		s.internalError(w, "load filter options", err)
		return
	}
	writeJSON(w, http.StatusOK, opts)
}

// handleRecentAccess handles GET /api/files/recent-access.
func (s *Server) handleRecentAccess(w http.ResponseWriter, r *http.Request) {
	limit := s.intParam(r.URL.Query().Get("limit"), 10, s.limits.MaxCategory)

	rows, err := s.files.RecentFileAccesses(r.Context(), limit)
	if err != nil {
		s.internalError(w, "load recent accesses", err)
		return
	}
	if rows == nil {
		rows = []domain.AccessRow{}
	}
	writeJSON(w, http.StatusOK, map[string]any{"accesses": rows})
}

// accessRequest is the POST body for recording a file access.
type accessRequest struct {
	UserName   string `json:"user_name"`
	UserRole   string `json:"user_role"`
	AccessType string `json:"access_type"`
}

// handleLogAccess handles POST /api/files/{fileID}/access.
func (s *Server) handleLogAccess(w http.ResponseWriter, r *http.Request) {
	fileID := chi.URLParam(r, "fileID")
	if fileID == "" {
		writeError(w, http.StatusBadRequest, codeBadRequest, "file id is required")
		return
	}

	var req accessRequest
	if r.Body != nil && r.ContentLength != 0 {
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, codeBadRequest, "invalid request body: "+err.Error())
			return
		}
	}

	accessID, err := s.files.LogFileAccess(r.Context(), domain.FileAccessInput{
		FileID:     fileID,
		UserName:   req.UserName,
		UserRole:   req.UserRole,
		AccessType: req.AccessType,
		IPAddress:  r.RemoteAddr,
		UserAgent:  r.UserAgent(),
	})
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			writeError(w, http.StatusNotFound, codeNotFound, "file not found")
			return
		}
		s.internalError(w, "log file access", err)
		return
	}

	writeJSON(w, http.StatusCreated, map[string]string{"access_id": accessID})
}

// intParam parses a positive integer query parameter with a default and a cap.
func (s *Server) intParam(raw string, def, ceiling int) int {
	if raw == "" {
		return def
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n <= 0 {
		return def
	}
	if n > ceiling {
		return ceiling
	}
	return n
}

func (s *Server) internalError(w http.ResponseWriter, msg string, err error) {
	s.logger.Error(msg, zap.Error(err))
	writeError(w, http.StatusInternalServerError, codeInternalError, "internal error")
}

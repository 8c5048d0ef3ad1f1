// Package suggest builds ranked, deduplicated search suggestions from
// contextual rules, catalog matches, analytics feeds, completions and typo
// corrections.
package suggest

import (
	"context"
	"sort"
	"strings"

	"go.uber.org/zap"

	"github.com/lexfile/lexfile/internal/domain"
	"github.com/lexfile/lexfile/internal/metrics"
)

const (
	// perSourceCap limits how many items each source contributes to the
	// merged list.
	perSourceCap = 3
	// feedLimit bounds the raw recent and popular feeds.
	feedLimit = 5
	// candidateLimit caps catalog candidates fetched per source.
	candidateLimit = 20
	// correctionThreshold triggers typo corrections when the other sources
	// produced fewer items combined.
	correctionThreshold = 3
	// minCompletionLen is the shortest query completions apply to.
	minCompletionLen = 2
)

// mergeOrder is the fixed source priority for the combined list. Payment
// suggestions appear in the per-source breakdown only.
var mergeOrder = []string{
	"contextual", "clients", "recent", "completions", "corrections", "cases", "files", "popular",
}

// Service is the suggestion engine. Sources are best-effort: a failing
// source is logged and skipped, it never fails the whole call.
type Service struct {
	catalog   Catalog
	analytics Analytics
	log       *zap.Logger
}

// New creates a suggestion engine.
func New(catalog Catalog, analytics Analytics, log *zap.Logger) *Service {
	return &Service{catalog: catalog, analytics: analytics, log: log}
}

// Intelligent builds the ranked suggestion response for a query. The merged
// list takes up to three items per source in fixed priority order, then
// deduplicates case-insensitively by text with the first occurrence winning,
// then truncates to limit.
func (s *Service) Intelligent(ctx context.Context, query string, limit int) domain.Suggestions {
	out := domain.NewSuggestions()

	recent, err := s.analytics.Recent(ctx, feedLimit)
	if err != nil {
		s.log.Warn("recent searches unavailable", zap.Error(err))
	}
	popular, err := s.analytics.Popular(ctx, feedLimit)
	if err != nil {
		s.log.Warn("popular searches unavailable", zap.Error(err))
	}
	if recent != nil {
		out.RecentSearches = recent
	}
	if popular != nil {
		out.PopularSearches = popular
	}

	if query == "" {
		return out
	}
	lowered := strings.ToLower(query)

	sources := map[string][]domain.Suggestion{
		"contextual":  contextualSuggestions(lowered),
		"clients":     s.clientSuggestions(ctx, query, lowered),
		"cases":       s.caseSuggestions(ctx, query, lowered),
		"files":       s.fileSuggestions(ctx, query, lowered),
		"payments":    s.paymentSuggestions(ctx, query, lowered),
		"recent":      filterFeed(recent, lowered),
		"popular":     filterPopular(popular, lowered),
		"completions": s.completions(ctx, lowered),
	}

	total := 0
	for _, items := range sources {
		total += len(items)
	}
	if total < correctionThreshold {
		sources["corrections"] = s.correctionsFrom(ctx, popular, query)
	}

	topSource := "none"
	seen := make(map[string]struct{})
	for _, name := range mergeOrder {
		items := sources[name]
		if len(items) > perSourceCap {
			items = items[:perSourceCap]
		}
		for _, item := range items {
			key := strings.ToLower(item.Text)
			if _, ok := seen[key]; ok {
				continue
			}
			seen[key] = struct{}{}
			if len(out.Suggestions) == 0 {
				topSource = name
			}
			out.Suggestions = append(out.Suggestions, item)
		}
	}
	if len(out.Suggestions) > limit {
		out.Suggestions = out.Suggestions[:limit]
	}

	for name, items := range sources {
		if len(items) > 0 {
			out.Categories[name] = items
		}
	}

	metrics.SuggestionsTotal.WithLabelValues(topSource).Inc()
	return out
}

// Corrections returns up to three typo corrections for the query, each
// carrying the original query text.
func (s *Service) Corrections(ctx context.Context, query string) []domain.Suggestion {
	if len([]rune(query)) < minCorrectionLen {
		return []domain.Suggestion{}
	}
	popular, err := s.analytics.Popular(ctx, feedLimit)
	if err != nil {
		s.log.Warn("popular searches unavailable", zap.Error(err))
	}
	out := s.correctionsFrom(ctx, popular, query)
	if out == nil {
		out = []domain.Suggestion{}
	}
	return out
}

func (s *Service) correctionsFrom(
	ctx context.Context, popular []domain.PopularSearch, query string,
) []domain.Suggestion {
	if len([]rune(query)) < minCorrectionLen {
		return nil
	}
	vocab, err := s.catalog.Vocabulary(ctx)
	if err != nil {
		s.log.Warn("vocabulary unavailable", zap.Error(err))
		return nil
	}
	terms := make([]string, 0, len(popular))
	for _, p := range popular {
		terms = append(terms, p.Query)
	}
	candidates := correctionCandidates(
		vocab.ClientNames, vocab.FirstNames, vocab.LastNames,
		vocab.CaseTypes, vocab.FileTypes, vocab.DocumentCategories,
		vocab.Keywords, terms,
	)

	similar := findSimilar(query, candidates, 2)
	if len(similar) > perSourceCap {
		similar = similar[:perSourceCap]
	}
	var out []domain.Suggestion
	for _, term := range similar {
		out = append(out, domain.Suggestion{
			Text:     term,
			Type:     domain.SuggestionTypoCorrection,
			Original: query,
		})
	}
	return out
}

func (s *Service) clientSuggestions(ctx context.Context, query, lowered string) []domain.Suggestion {
	rows, err := s.catalog.SearchClients(ctx, query, candidateLimit)
	if err != nil {
		s.log.Warn("client suggestions unavailable", zap.Error(err))
		return nil
	}
	var out []domain.Suggestion
	for _, c := range rows {
		name := c.FullName()
		if !strings.Contains(strings.ToLower(name), lowered) &&
			!strings.Contains(strings.ToLower(c.Email), lowered) {
			continue
		}
		out = append(out, domain.Suggestion{
			Text:   name,
			Type:   domain.SuggestionClient,
			Email:  c.Email,
			Status: c.Status,
		})
	}
	return out
}

func (s *Service) caseSuggestions(ctx context.Context, query, lowered string) []domain.Suggestion {
	rows, err := s.catalog.SearchCases(ctx, query, candidateLimit)
	if err != nil {
		s.log.Warn("case suggestions unavailable", zap.Error(err))
		return nil
	}
	var out []domain.Suggestion
	types := make(map[string]struct{})
	for _, c := range rows {
		if strings.Contains(strings.ToLower(c.CaseType), lowered) {
			types[c.CaseType] = struct{}{}
		}
		if strings.Contains(strings.ToLower(c.ReferenceNumber), lowered) {
			out = append(out, domain.Suggestion{
				Text:     c.ReferenceNumber,
				Type:     domain.SuggestionCaseReference,
				CaseType: c.CaseType,
				Status:   c.CaseStatus,
			})
		}
	}
	for _, ct := range sortedKeys(types) {
		out = append(out, domain.Suggestion{
			Text:     ct,
			Type:     domain.SuggestionCaseType,
			CaseType: ct,
		})
	}
	return out
}

func (s *Service) fileSuggestions(ctx context.Context, query, lowered string) []domain.Suggestion {
	rows, err := s.catalog.SearchFiles(ctx, query, domain.FileFilters{}, candidateLimit)
	if err != nil {
		s.log.Warn("file suggestions unavailable", zap.Error(err))
		return nil
	}
	var out []domain.Suggestion
	var refs []domain.Suggestion
	types := make(map[string]struct{})
	categories := make(map[string]struct{})
	for _, f := range rows {
		if strings.Contains(strings.ToLower(f.FileType), lowered) {
			types[f.FileType] = struct{}{}
		}
		if strings.Contains(strings.ToLower(f.DocumentCategory), lowered) {
			categories[f.DocumentCategory] = struct{}{}
		}
		if strings.Contains(strings.ToLower(f.ReferenceNumber), lowered) {
			refs = append(refs, domain.Suggestion{
				Text:     f.ReferenceNumber,
				Type:     domain.SuggestionFileReference,
				FileType: f.FileType,
				Client:   f.ClientName(),
			})
		}
		for _, kw := range f.Keywords {
			if strings.Contains(strings.ToLower(kw), lowered) {
				out = append(out, domain.Suggestion{
					Text:    kw,
					Type:    domain.SuggestionKeyword,
					Keyword: kw,
				})
			}
		}
	}
	for _, ft := range sortedKeys(types) {
		out = append(out, domain.Suggestion{
			Text:     ft,
			Type:     domain.SuggestionFileType,
			FileType: ft,
		})
	}
	for _, cat := range sortedKeys(categories) {
		out = append(out, domain.Suggestion{
			Text:     cat,
			Type:     domain.SuggestionDocumentCategory,
			Category: cat,
		})
	}
	if len(refs) > perSourceCap {
		refs = refs[:perSourceCap]
	}
	return append(out, refs...)
}

func (s *Service) paymentSuggestions(ctx context.Context, query, lowered string) []domain.Suggestion {
	rows, err := s.catalog.SearchPayments(ctx, query, candidateLimit)
	if err != nil {
		s.log.Warn("payment suggestions unavailable", zap.Error(err))
		return nil
	}
	var out []domain.Suggestion
	methods := make(map[string]struct{})
	for _, p := range rows {
		if strings.Contains(strings.ToLower(p.PaymentMethod), lowered) {
			methods[p.PaymentMethod] = struct{}{}
		}
		if strings.Contains(p.Amount, lowered) {
			out = append(out, domain.Suggestion{
				Text:   "$" + p.Amount,
				Type:   domain.SuggestionPaymentAmount,
				Amount: p.Amount,
			})
		}
	}
	for _, m := range sortedKeys(methods) {
		out = append(out, domain.Suggestion{
			Text:   m,
			Type:   domain.SuggestionPaymentMethod,
			Method: m,
		})
	}
	return out
}

// completions are prefix matches over the vocabulary, only for queries of at
// least two characters.
func (s *Service) completions(ctx context.Context, lowered string) []domain.Suggestion {
	if len([]rune(lowered)) < minCompletionLen {
		return nil
	}
	vocab, err := s.catalog.Vocabulary(ctx)
	if err != nil {
		s.log.Warn("vocabulary unavailable", zap.Error(err))
		return nil
	}

	var out []domain.Suggestion
	for _, name := range vocab.ClientNames {
		if strings.HasPrefix(strings.ToLower(name), lowered) {
			out = append(out, domain.Suggestion{Text: name, Type: domain.SuggestionNameCompletion})
		}
	}
	for _, ct := range vocab.CaseTypes {
		if strings.HasPrefix(strings.ToLower(ct), lowered) {
			out = append(out, domain.Suggestion{Text: ct, Type: domain.SuggestionCaseCompletion, CaseType: ct})
		}
	}
	for _, ft := range vocab.FileTypes {
		if strings.HasPrefix(strings.ToLower(ft), lowered) {
			out = append(out, domain.Suggestion{Text: ft, Type: domain.SuggestionFileCompletion, FileType: ft})
		}
	}
	if len(out) > 5 {
		out = out[:5]
	}
	return out
}

func filterFeed(recent []string, lowered string) []domain.Suggestion {
	var out []domain.Suggestion
	for _, r := range recent {
		if strings.Contains(r, lowered) && r != lowered {
			out = append(out, domain.Suggestion{Text: r, Type: domain.SuggestionRecentSearch})
		}
	}
	return out
}

func filterPopular(popular []domain.PopularSearch, lowered string) []domain.Suggestion {
	var out []domain.Suggestion
	for _, p := range popular {
		if strings.Contains(p.Query, lowered) && p.Query != lowered {
			out = append(out, domain.Suggestion{
				Text:  p.Query,
				Type:  domain.SuggestionPopularSearch,
				Count: p.Count,
			})
		}
	}
	return out
}

func sortedKeys(set map[string]struct{}) []string {
	keys := make([]string, 0, len(set))
	for k := range set {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

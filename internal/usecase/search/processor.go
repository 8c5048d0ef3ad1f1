package search

import (
	"sort"

	"github.com/lexfile/lexfile/internal/domain"
)

// processRows scores each candidate, drops zero scores, and returns the kept
// rows wrapped as results in descending score order. The sort is stable so
// equal scores keep facade arrival order.
func processRows[R, T any](
	rows []R, lowered string,
	score func(R, string) (int, []string),
	wrap func(R, int, []string) T,
) []T {
	type scored struct {
		row     R
		score   int
		matches []string
	}
	kept := make([]scored, 0, len(rows))
	for _, r := range rows {
		s, m := score(r, lowered)
		if s <= 0 {
			continue
		}
		kept = append(kept, scored{row: r, score: s, matches: m})
	}
	sort.SliceStable(kept, func(i, j int) bool { return kept[i].score > kept[j].score })

	out := make([]T, 0, len(kept))
	for _, k := range kept {
		out = append(out, wrap(k.row, k.score, k.matches))
	}
	return out
}

func wrapFile(f domain.FileRow, score int, matches []string) domain.FileResult {
	return domain.FileResult{
		FileRow:        f,
		ClientName:     f.ClientName(),
		RelevanceScore: score,
		MatchDetails:   matches,
	}
}

func wrapClient(c domain.ClientRow, score int, matches []string) domain.ClientResult {
	return domain.ClientResult{ClientRow: c, RelevanceScore: score, MatchDetails: matches}
}

func wrapCase(c domain.CaseRow, score int, matches []string) domain.CaseResult {
	return domain.CaseResult{CaseRow: c, RelevanceScore: score, MatchDetails: matches}
}

func wrapPayment(p domain.PaymentRow, score int, matches []string) domain.PaymentResult {
	return domain.PaymentResult{PaymentRow: p, RelevanceScore: score, MatchDetails: matches}
}

func wrapAccess(a domain.AccessRow, score int, matches []string) domain.AccessResult {
	return domain.AccessResult{AccessRow: a, RelevanceScore: score, MatchDetails: matches}
}

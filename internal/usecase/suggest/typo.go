package suggest

import (
	"sort"
	"strings"
)

// minCorrectionLen is the shortest query typo correction applies to.
const minCorrectionLen = 3

// editDistance is the standard dynamic-programming Levenshtein distance
// over runes: insertion, deletion and substitution at unit cost.
func editDistance(a, b string) int {
	ra, rb := []rune(a), []rune(b)
	if len(ra) < len(rb) {
		ra, rb = rb, ra
	}
	if len(rb) == 0 {
		return len(ra)
	}

	prev := make([]int, len(rb)+1)
	for j := range prev {
		prev[j] = j
	}
	cur := make([]int, len(rb)+1)
	for i, ca := range ra {
		cur[0] = i + 1
		for j, cb := range rb {
			sub := prev[j]
			if ca != cb {
				sub++
			}
			cur[j+1] = min(prev[j+1]+1, cur[j]+1, sub)
		}
		prev, cur = cur, prev
	}
	return prev[len(rb)]
}

// findSimilar ranks candidates by distance to the query. A candidate that
// contains the query as a literal substring gets distance 0; otherwise, for
// queries of at least three runes, the query is compared against the
// candidate prefix of the same length and accepted within maxDistance.
// Returns at most five terms, ascending by distance.
func findSimilar(query string, candidates []string, maxDistance int) []string {
	lowered := strings.ToLower(query)
	qlen := len([]rune(lowered))

	type scoredTerm struct {
		term string
		dist int
	}
	var similar []scoredTerm
	for _, cand := range candidates {
		cl := strings.ToLower(cand)
		if strings.Contains(cl, lowered) {
			similar = append(similar, scoredTerm{term: cand, dist: 0})
			continue
		}
		if qlen < minCorrectionLen {
			continue
		}
		prefix := []rune(cl)
		if len(prefix) > qlen {
			prefix = prefix[:qlen]
		}
		if d := editDistance(lowered, string(prefix)); d <= maxDistance {
			similar = append(similar, scoredTerm{term: cand, dist: d})
		}
	}

	sort.SliceStable(similar, func(i, j int) bool { return similar[i].dist < similar[j].dist })
	if len(similar) > 5 {
		similar = similar[:5]
	}
	out := make([]string, 0, len(similar))
	for _, s := range similar {
		out = append(out, s.term)
	}
	return out
}

// correctionCandidates assembles the deduplicated correction vocabulary,
// first occurrence kept so the ranking is deterministic.
func correctionCandidates(groups ...[]string) []string {
	seen := make(map[string]struct{})
	var out []string
	for _, g := range groups {
		for _, t := range g {
			if t == "" {
				continue
			}
			if _, ok := seen[t]; ok {
				continue
			}
			seen[t] = struct{}{}
			out = append(out, t)
		}
	}
	return out
}

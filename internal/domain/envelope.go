package domain

// FileResult is a scored file hit.
type FileResult struct {
	FileRow
	ClientName     string   `json:"client_name"`
	RelevanceScore int      `json:"relevance_score"`
	MatchDetails   []string `json:"match_details"`
}

// ClientResult is a scored client hit.
type ClientResult struct {
	ClientRow
	RelevanceScore int      `json:"relevance_score"`
	MatchDetails   []string `json:"match_details"`
}

// CaseResult is a scored case hit.
type CaseResult struct {
	CaseRow
	RelevanceScore int      `json:"relevance_score"`
	MatchDetails   []string `json:"match_details"`
}

// PaymentResult is a scored payment hit.
type PaymentResult struct {
	PaymentRow
	RelevanceScore int      `json:"relevance_score"`
	MatchDetails   []string `json:"match_details"`
}

// AccessResult is a scored access history hit.
type AccessResult struct {
	AccessRow
	RelevanceScore int      `json:"relevance_score"`
	MatchDetails   []string `json:"match_details"`
}

// CommentResult is reserved for comment search hits. Comment search is not
// implemented yet; the category is always empty but must stay present in the
// envelope for response compatibility.
type CommentResult struct {
	CommentID      string   `json:"comment_id"`
	EntityType     string   `json:"entity_type"`
	EntityID       string   `json:"entity_id"`
	UserName       string   `json:"user_name"`
	CommentText    string   `json:"comment_text"`
	RelevanceScore int      `json:"relevance_score"`
	MatchDetails   []string `json:"match_details"`
}

// Envelope is the categorized unified search response. All six category keys
// are always present, even when empty. TotalResults is computed before any
// per-category truncation by the transport layer.
type Envelope struct {
	Files         []FileResult    `json:"files"`
	Clients       []ClientResult  `json:"clients"`
	Cases         []CaseResult    `json:"cases"`
	Payments      []PaymentResult `json:"payments"`
	AccessHistory []AccessResult  `json:"access_history"`
	Comments      []CommentResult `json:"comments"`
	TotalResults  int             `json:"total_results"`
	Query         string          `json:"query"`
	Error         string          `json:"error,omitempty"`
}

// NewEnvelope returns the canonical empty envelope for a query: every
// category is an empty, non-nil list so it serializes as [].
func NewEnvelope(query string) Envelope {
	return Envelope{
		Files:         []FileResult{},
		Clients:       []ClientResult{},
		Cases:         []CaseResult{},
		Payments:      []PaymentResult{},
		AccessHistory: []AccessResult{},
		Comments:      []CommentResult{},
		Query:         query,
	}
}

// CategorySizes returns the per-category result counts in fixed key order.
func (e *Envelope) CategorySizes() map[string]int {
	return map[string]int{
		"files":          len(e.Files),
		"clients":        len(e.Clients),
		"cases":          len(e.Cases),
		"payments":       len(e.Payments),
		"access_history": len(e.AccessHistory),
		"comments":       len(e.Comments),
	}
}

// Total sums the category lengths.
func (e *Envelope) Total() int {
	return len(e.Files) + len(e.Clients) + len(e.Cases) +
		len(e.Payments) + len(e.AccessHistory) + len(e.Comments)
}

package domain

// Suggestion is a single typed suggestion. Text and Type are always set;
// the remaining fields are type-specific metadata and serialize only when
// populated.
type Suggestion struct {
	Text     string `json:"text"`
	Type     string `json:"type"`
	Context  string `json:"context,omitempty"`
	Email    string `json:"email,omitempty"`
	Status   string `json:"status,omitempty"`
	CaseType string `json:"case_type,omitempty"`
	FileType string `json:"file_type,omitempty"`
	Category string `json:"category,omitempty"`
	Keyword  string `json:"keyword,omitempty"`
	Client   string `json:"client,omitempty"`
	Method   string `json:"method,omitempty"`
	Amount   string `json:"amount,omitempty"`
	Count    int64  `json:"count,omitempty"`
	Original string `json:"original,omitempty"`
}

// Suggestion type tags.
const (
	SuggestionContextual       = "contextual"
	SuggestionClient           = "client"
	SuggestionCaseReference    = "case_reference"
	SuggestionCaseType         = "case_type"
	SuggestionFileReference    = "file_reference"
	SuggestionFileType         = "file_type"
	SuggestionDocumentCategory = "document_category"
	SuggestionKeyword          = "keyword"
	SuggestionPaymentAmount    = "payment_amount"
	SuggestionPaymentMethod    = "payment_method"
	SuggestionRecentSearch     = "recent_search"
	SuggestionPopularSearch    = "popular_search"
	SuggestionNameCompletion   = "name_completion"
	SuggestionCaseCompletion   = "case_type_completion"
	SuggestionFileCompletion   = "file_type_completion"
	SuggestionTypoCorrection   = "typo_correction"
)

// Suggestions is the intelligent-suggestion response: the merged ranked list,
// the per-source breakdown (non-empty sources only), and the raw recent and
// popular search feeds.
type Suggestions struct {
	Suggestions     []Suggestion            `json:"suggestions"`
	Categories      map[string][]Suggestion `json:"categories"`
	RecentSearches  []string                `json:"recent_searches"`
	PopularSearches []PopularSearch         `json:"popular_searches"`
}

// NewSuggestions returns an empty, non-nil suggestions response.
func NewSuggestions() Suggestions {
	return Suggestions{
		Suggestions:     []Suggestion{},
		Categories:      map[string][]Suggestion{},
		RecentSearches:  []string{},
		PopularSearches: []PopularSearch{},
	}
}

package suggest

import (
	"strings"

	"github.com/lexfile/lexfile/internal/domain"
)

// contextualRules maps fixed keyword families to canned suggestion sets.
// A static rule table, checked in order; matched families accumulate until
// the three-item cap.
var contextualRules = []struct {
	triggers    []string
	suggestions []domain.Suggestion
}{
	{
		triggers: []string{"contract", "agreement", "legal"},
		suggestions: []domain.Suggestion{
			{Text: "contract documents", Type: domain.SuggestionContextual, Context: "legal_docs"},
			{Text: "legal agreements", Type: domain.SuggestionContextual, Context: "legal_docs"},
			{Text: "confidential contracts", Type: domain.SuggestionContextual, Context: "legal_docs"},
		},
	},
	{
		triggers: []string{"injury", "accident", "personal"},
		suggestions: []domain.Suggestion{
			{Text: "Personal Injury cases", Type: domain.SuggestionContextual, Context: "case_type"},
			{Text: "accident reports", Type: domain.SuggestionContextual, Context: "documents"},
		},
	},
	{
		triggers: []string{"payment", "money", "billing", "invoice"},
		suggestions: []domain.Suggestion{
			{Text: "overdue payments", Type: domain.SuggestionContextual, Context: "payments"},
			{Text: "pending invoices", Type: domain.SuggestionContextual, Context: "payments"},
			{Text: "payment history", Type: domain.SuggestionContextual, Context: "payments"},
		},
	},
	{
		triggers: []string{"warehouse", "location", "storage"},
		suggestions: []domain.Suggestion{
			{Text: "Warehouse A files", Type: domain.SuggestionContextual, Context: "location"},
			{Text: "Warehouse B files", Type: domain.SuggestionContextual, Context: "location"},
			{Text: "archived documents", Type: domain.SuggestionContextual, Context: "storage"},
		},
	},
	{
		triggers: []string{"active", "closed", "pending"},
		suggestions: []domain.Suggestion{
			{Text: "active cases", Type: domain.SuggestionContextual, Context: "status"},
			{Text: "closed files", Type: domain.SuggestionContextual, Context: "status"},
			{Text: "pending reviews", Type: domain.SuggestionContextual, Context: "status"},
		},
	},
}

// contextualSuggestions returns up to three canned suggestions for the
// keyword families present in the lowered query.
func contextualSuggestions(lowered string) []domain.Suggestion {
	var out []domain.Suggestion
	for _, rule := range contextualRules {
		for _, w := range rule.triggers {
			if strings.Contains(lowered, w) {
				out = append(out, rule.suggestions...)
				break
			}
		}
	}
	if len(out) > 3 {
		out = out[:3]
	}
	return out
}

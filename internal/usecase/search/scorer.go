package search

import (
	"strings"

	"github.com/lexfile/lexfile/internal/domain"
)

// detailClip bounds long text fields inside match details.
const detailClip = 100

// Per-field weights are fixed per entity and additive across matching fields
// within one record. Joined fields (client name, case type resolved through a
// join) take the max of the accumulated score and the facade-supplied
// pre-ranking score, so indexed-search work is not double counted.

// contains reports whether the lowered query occurs in the field value.
// The query must already be lowercased.
func contains(field, lowered string) bool {
	return strings.Contains(strings.ToLower(field), lowered)
}

// ellipsize clips a long text value for match details. The ellipsis is
// appended unconditionally, matching the surfaced detail format.
func ellipsize(s string) string {
	if r := []rune(s); len(r) > detailClip {
		s = string(r[:detailClip])
	}
	return s + "..."
}

func scoreFile(f domain.FileRow, lowered string) (int, []string) {
	score := 0
	var matches []string

	if contains(f.ReferenceNumber, lowered) {
		score += 10
		matches = append(matches, "Reference: "+f.ReferenceNumber)
	}
	if contains(f.FileDescription, lowered) {
		score += 8
		matches = append(matches, "Description: "+ellipsize(f.FileDescription))
	}
	if contains(f.DocumentCategory, lowered) {
		score += 6
		matches = append(matches, "Category: "+f.DocumentCategory)
	}
	if contains(f.FileType, lowered) {
		score += 6
		matches = append(matches, "Type: "+f.FileType)
	}
	var matching []string
	for _, kw := range f.Keywords {
		if contains(kw, lowered) {
			matching = append(matching, kw)
		}
	}
	if len(matching) > 0 {
		score += 7
		matches = append(matches, "Keywords: "+strings.Join(matching, ", "))
	}
	if name := f.ClientName(); name != "" && contains(name, lowered) {
		score = max(score+9, f.Relevance)
		matches = append(matches, "Client: "+name)
	}
	if f.CaseType != "" && contains(f.CaseType, lowered) {
		score = max(score+7, f.Relevance)
		matches = append(matches, "Case Type: "+f.CaseType)
	}
	return score, matches
}

func scoreClient(c domain.ClientRow, lowered string) (int, []string) {
	score := 0
	var matches []string

	if name := c.FullName(); contains(name, lowered) {
		score += 10
		matches = append(matches, "Name: "+name)
	}
	if contains(c.Email, lowered) {
		score += 9
		matches = append(matches, "Email: "+c.Email)
	}
	if contains(c.Phone, lowered) {
		score += 8
		matches = append(matches, "Phone: "+c.Phone)
	}
	if contains(c.Address, lowered) {
		score += 6
		matches = append(matches, "Address: "+ellipsize(c.Address))
	}
	if contains(c.ClientType, lowered) {
		score += 5
		matches = append(matches, "Type: "+c.ClientType)
	}
	if contains(c.Status, lowered) {
		score += 4
		matches = append(matches, "Status: "+c.Status)
	}
	return score, matches
}

func scoreCase(c domain.CaseRow, lowered string) (int, []string) {
	score := 0
	var matches []string

	if contains(c.ReferenceNumber, lowered) {
		score += 10
		matches = append(matches, "Reference: "+c.ReferenceNumber)
	}
	if contains(c.CaseType, lowered) {
		score += 8
		matches = append(matches, "Type: "+c.CaseType)
	}
	if contains(c.Description, lowered) {
		score += 7
		matches = append(matches, "Description: "+ellipsize(c.Description))
	}
	if contains(c.AssignedLawyer, lowered) {
		score += 6
		matches = append(matches, "Lawyer: "+c.AssignedLawyer)
	}
	if contains(c.CaseStatus, lowered) {
		score += 5
		matches = append(matches, "Status: "+c.CaseStatus)
	}
	if c.ClientName != "" && contains(c.ClientName, lowered) {
		score = max(score+8, c.Relevance)
		matches = append(matches, "Client: "+c.ClientName)
	}
	return score, matches
}

func scorePayment(p domain.PaymentRow, lowered string) (int, []string) {
	score := 0
	var matches []string

	if contains(p.Description, lowered) {
		score += 8
		matches = append(matches, "Description: "+p.Description)
	}
	if contains(p.PaymentMethod, lowered) {
		score += 6
		matches = append(matches, "Method: "+p.PaymentMethod)
	}
	if contains(p.Status, lowered) {
		score += 5
		matches = append(matches, "Status: "+p.Status)
	}
	if strings.Contains(p.Amount, lowered) {
		score += 7
		matches = append(matches, "Amount: $"+p.Amount)
	}
	if p.ClientName != "" && contains(p.ClientName, lowered) {
		score = max(score+8, p.Relevance)
		matches = append(matches, "Client: "+p.ClientName)
	}
	return score, matches
}

func scoreAccess(a domain.AccessRow, lowered string) (int, []string) {
	score := 0
	var matches []string

	if contains(a.UserName, lowered) {
		score += 8
		matches = append(matches, "User: "+a.UserName)
	}
	if contains(a.AccessType, lowered) {
		score += 6
		matches = append(matches, "Access Type: "+a.AccessType)
	}
	if contains(a.UserRole, lowered) {
		score += 5
		matches = append(matches, "Role: "+a.UserRole)
	}
	if a.ReferenceNumber != "" && contains(a.ReferenceNumber, lowered) {
		score += 9
		matches = append(matches, "File: "+a.ReferenceNumber)
	}
	return score, matches
}

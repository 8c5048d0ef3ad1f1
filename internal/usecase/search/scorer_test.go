package search

import (
	"strings"
	"testing"

	"github.com/lexfile/lexfile/internal/domain"
)

func TestScoreClient_AdditiveWeights(t *testing.T) {
	c := domain.ClientRow{
		FirstName:  "Maria",
		LastName:   "Santos",
		Email:      "maria.santos@example.com",
		Phone:      "555-0100",
		ClientType: "Individual",
		Status:     "Active",
	}

	score, matches := scoreClient(c, "maria")
	// Name (10) and email (9) both contain the query.
	if score != 19 {
		t.Errorf("score = %d, want 19", score)
	}
	if len(matches) != 2 {
		t.Fatalf("matches = %v, want 2 entries", matches)
	}
	if matches[0] != "Name: Maria Santos" {
		t.Errorf("matches[0] = %q", matches[0])
	}
	if matches[1] != "Email: maria.santos@example.com" {
		t.Errorf("matches[1] = %q", matches[1])
	}
}

func TestScoreClient_MoreMatchesNeverLower(t *testing.T) {
	base := domain.ClientRow{FirstName: "Ann", LastName: "Lee", Email: "a@b.c"}
	wider := base
	wider.Status = "annual review"

	baseScore, _ := scoreClient(base, "ann")
	widerScore, _ := scoreClient(wider, "ann")
	if widerScore < baseScore {
		t.Errorf("extra matching field lowered score: %d < %d", widerScore, baseScore)
	}
}

func TestScoreFile_KeywordsAndJoinedMax(t *testing.T) {
	f := domain.FileRow{
		ReferenceNumber: "PF-2024-001",
		FileDescription: "Signed retainer agreement",
		Keywords:        []string{"retainer", "contract", "signed"},
		FirstName:       "Ann",
		LastName:        "Retainer",
		Relevance:       40,
	}

	score, matches := scoreFile(f, "retainer")
	// description 8 + keywords 7 + client joined, max(15+9, 40) = 40.
	if score != 40 {
		t.Errorf("score = %d, want 40 (facade floor)", score)
	}
	found := false
	for _, m := range matches {
		if m == "Keywords: retainer" {
			found = true
		}
	}
	if !found {
		t.Errorf("keyword detail missing from %v", matches)
	}
}

func TestScoreCase_JoinedClientAboveFacade(t *testing.T) {
	c := domain.CaseRow{
		ReferenceNumber: "CASE-2024-100",
		CaseType:        "Contract Dispute",
		ClientName:      "Contract Holdings LLC",
		Relevance:       9,
	}

	score, _ := scoreCase(c, "contract")
	// type 8 then client joined, max(8+8, 9) = 16.
	if score != 16 {
		t.Errorf("score = %d, want 16", score)
	}
}

func TestScorePayment_AmountSubstring(t *testing.T) {
	p := domain.PaymentRow{
		Amount:        "1500.00",
		PaymentMethod: "Wire Transfer",
		Status:        "Paid",
	}

	score, matches := scorePayment(p, "1500")
	if score != 7 {
		t.Errorf("score = %d, want 7", score)
	}
	if len(matches) != 1 || matches[0] != "Amount: $1500.00" {
		t.Errorf("matches = %v", matches)
	}
}

func TestScoreAccess(t *testing.T) {
	a := domain.AccessRow{
		UserName:        "Paula Reyes",
		UserRole:        "Paralegal",
		AccessType:      "view",
		ReferenceNumber: "PF-2024-007",
	}

	score, matches := scoreAccess(a, "pa")
	// user 8 + role 5; reference and access type do not contain "pa".
	if score != 13 {
		t.Errorf("score = %d, want 13", score)
	}
	if len(matches) != 2 {
		t.Errorf("matches = %v, want 2 entries", matches)
	}
}

func TestEllipsize(t *testing.T) {
	long := strings.Repeat("x", 150)
	got := ellipsize(long)
	if len(got) != detailClip+3 {
		t.Errorf("clipped length = %d, want %d", len(got), detailClip+3)
	}
	if !strings.HasSuffix(got, "...") {
		t.Errorf("missing ellipsis: %q", got)
	}
	if short := ellipsize("short"); short != "short..." {
		t.Errorf("ellipsize(short) = %q", short)
	}
}

package suggest

import (
	"context"
	"strings"
	"testing"

	"go.uber.org/zap"

	"github.com/lexfile/lexfile/internal/domain"
)

type fakeCatalog struct {
	clients  []domain.ClientRow
	cases    []domain.CaseRow
	files    []domain.FileRow
	payments []domain.PaymentRow
	vocab    domain.Vocabulary
}

func (f *fakeCatalog) SearchClients(context.Context, string, int) ([]domain.ClientRow, error) {
	return f.clients, nil
}

func (f *fakeCatalog) SearchCases(context.Context, string, int) ([]domain.CaseRow, error) {
	return f.cases, nil
}

func (f *fakeCatalog) SearchFiles(context.Context, string, domain.FileFilters, int) ([]domain.FileRow, error) {
	return f.files, nil
}

func (f *fakeCatalog) SearchPayments(context.Context, string, int) ([]domain.PaymentRow, error) {
	return f.payments, nil
}

func (f *fakeCatalog) Vocabulary(context.Context) (domain.Vocabulary, error) {
	return f.vocab, nil
}

type fakeAnalytics struct {
	recent  []string
	popular []domain.PopularSearch
}

func (f *fakeAnalytics) Recent(context.Context, int) ([]string, error) {
	return f.recent, nil
}

func (f *fakeAnalytics) Popular(context.Context, int) ([]domain.PopularSearch, error) {
	return f.popular, nil
}

func newTestService(cat *fakeCatalog, an *fakeAnalytics) *Service {
	return New(cat, an, zap.NewNop())
}

func TestIntelligent_DedupKeepsPrioritySource(t *testing.T) {
	// Both the contextual rules and the recent feed propose
	// "contract documents"; contextual has priority.
	svc := newTestService(&fakeCatalog{}, &fakeAnalytics{
		recent: []string{"contract documents"},
	})

	got := svc.Intelligent(context.Background(), "contract", 10)

	count := 0
	for _, sg := range got.Suggestions {
		if strings.EqualFold(sg.Text, "contract documents") {
			count++
			if sg.Type != domain.SuggestionContextual {
				t.Errorf("kept type = %q, want contextual", sg.Type)
			}
		}
	}
	if count != 1 {
		t.Errorf("found %d instances of the duplicated text, want 1", count)
	}
}

func TestIntelligent_ContextualTriggers(t *testing.T) {
	svc := newTestService(&fakeCatalog{}, &fakeAnalytics{})

	got := svc.Intelligent(context.Background(), "overdue invoice", 10)

	want := []string{"overdue payments", "pending invoices", "payment history"}
	if len(got.Suggestions) < len(want) {
		t.Fatalf("suggestions = %v, want at least the payment set", got.Suggestions)
	}
	for i, text := range want {
		if got.Suggestions[i].Text != text {
			t.Errorf("suggestions[%d] = %q, want %q", i, got.Suggestions[i].Text, text)
		}
	}
}

func TestIntelligent_CompletionsArePrefixMatches(t *testing.T) {
	cat := &fakeCatalog{vocab: domain.Vocabulary{
		ClientNames: []string{"Famke Janssen"},
		CaseTypes:   []string{"Family Law", "Criminal Defense"},
	}}
	svc := newTestService(cat, &fakeAnalytics{})

	got := svc.Intelligent(context.Background(), "fam", 10)

	var texts []string
	for _, sg := range got.Categories["completions"] {
		texts = append(texts, sg.Text)
	}
	if len(texts) != 2 {
		t.Fatalf("completions = %v, want prefix matches only", texts)
	}
	if texts[0] != "Famke Janssen" || texts[1] != "Family Law" {
		t.Errorf("completions = %v", texts)
	}
}

func TestIntelligent_CorrectionsOnlyWhenSparse(t *testing.T) {
	cat := &fakeCatalog{vocab: domain.Vocabulary{
		ClientNames: []string{"Jennifer Smith"},
	}}
	svc := newTestService(cat, &fakeAnalytics{})

	got := svc.Intelligent(context.Background(), "Jenifer", 10)

	corr := got.Categories["corrections"]
	if len(corr) == 0 {
		t.Fatal("expected typo corrections for a sparse result set")
	}
	if corr[0].Text != "Jennifer Smith" {
		t.Errorf("correction = %q, want Jennifer Smith", corr[0].Text)
	}
	if corr[0].Type != domain.SuggestionTypoCorrection || corr[0].Original != "Jenifer" {
		t.Errorf("correction metadata = %+v", corr[0])
	}
}

func TestIntelligent_NoCorrectionsWhenEnoughResults(t *testing.T) {
	svc := newTestService(&fakeCatalog{}, &fakeAnalytics{})

	// "contract" triggers three contextual suggestions, so the correction
	// threshold is met.
	got := svc.Intelligent(context.Background(), "contract", 10)

	if _, ok := got.Categories["corrections"]; ok {
		t.Error("corrections present despite enough results")
	}
}

func TestIntelligent_PaymentsStayOutOfMergedList(t *testing.T) {
	cat := &fakeCatalog{payments: []domain.PaymentRow{
		{Amount: "1500.00", PaymentMethod: "Wire Transfer"},
	}}
	svc := newTestService(cat, &fakeAnalytics{})

	got := svc.Intelligent(context.Background(), "1500", 10)

	for _, sg := range got.Suggestions {
		if sg.Type == domain.SuggestionPaymentAmount || sg.Type == domain.SuggestionPaymentMethod {
			t.Errorf("payment suggestion leaked into merged list: %+v", sg)
		}
	}
	if len(got.Categories["payments"]) == 0 {
		t.Error("payments missing from the per-source breakdown")
	}
}

func TestIntelligent_LimitTruncates(t *testing.T) {
	svc := newTestService(&fakeCatalog{}, &fakeAnalytics{})

	got := svc.Intelligent(context.Background(), "contract", 2)

	if len(got.Suggestions) != 2 {
		t.Errorf("suggestions = %d, want 2", len(got.Suggestions))
	}
}

func TestIntelligent_EmptyQueryReturnsFeedsOnly(t *testing.T) {
	svc := newTestService(&fakeCatalog{}, &fakeAnalytics{
		recent:  []string{"contract law"},
		popular: []domain.PopularSearch{{Query: "contract law", Count: 4}},
	})

	got := svc.Intelligent(context.Background(), "", 10)

	if len(got.Suggestions) != 0 {
		t.Errorf("suggestions = %v, want empty", got.Suggestions)
	}
	if len(got.RecentSearches) != 1 || len(got.PopularSearches) != 1 {
		t.Errorf("feeds missing: recent = %v popular = %v", got.RecentSearches, got.PopularSearches)
	}
}

func TestCorrections_ShortQuery(t *testing.T) {
	svc := newTestService(&fakeCatalog{}, &fakeAnalytics{})

	if got := svc.Corrections(context.Background(), "ab"); len(got) != 0 {
		t.Errorf("corrections = %v, want empty for short query", got)
	}
}

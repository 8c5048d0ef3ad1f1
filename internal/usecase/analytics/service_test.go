package analytics

import (
	"context"
	"testing"

	"go.uber.org/zap"

	"github.com/lexfile/lexfile/internal/domain"
)

type fakeStore struct {
	touched []string
}

func (f *fakeStore) Touch(_ context.Context, query string) error {
	f.touched = append(f.touched, query)
	return nil
}

func (f *fakeStore) Recent(context.Context, int) ([]string, error) { return nil, nil }

func (f *fakeStore) Popular(context.Context, int) ([]domain.PopularSearch, error) {
	return nil, nil
}

func TestLogSearch_Normalizes(t *testing.T) {
	store := &fakeStore{}
	svc := New(store, zap.NewNop())

	if err := svc.LogSearch(context.Background(), "  Contract LAW  "); err != nil {
		t.Fatalf("log search: %v", err)
	}
	if len(store.touched) != 1 || store.touched[0] != "contract law" {
		t.Errorf("touched = %v, want [contract law]", store.touched)
	}
}

func TestLogSearch_DropsShortQueries(t *testing.T) {
	store := &fakeStore{}
	svc := New(store, zap.NewNop())

	for _, q := range []string{"", " ", "a", " a "} {
		if err := svc.LogSearch(context.Background(), q); err != nil {
			t.Fatalf("log search %q: %v", q, err)
		}
	}
	if len(store.touched) != 0 {
		t.Errorf("touched = %v, want none", store.touched)
	}
}

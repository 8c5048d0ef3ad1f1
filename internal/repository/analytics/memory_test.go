package analytics

import (
	"context"
	"fmt"
	"testing"
)

func TestMemoryStore_RecentCap(t *testing.T) {
	s := NewMemoryStore()
	ctx := context.Background()

	for i := 0; i < 60; i++ {
		if err := s.Touch(ctx, fmt.Sprintf("query-%02d", i)); err != nil {
			t.Fatalf("touch: %v", err)
		}
	}

	got, err := s.Recent(ctx, 100)
	if err != nil {
		t.Fatalf("recent: %v", err)
	}
	if len(got) != recentCap {
		t.Fatalf("recent length = %d, want %d", len(got), recentCap)
	}
	if got[0] != "query-59" {
		t.Errorf("newest = %q, want query-59", got[0])
	}
	if got[len(got)-1] != "query-10" {
		t.Errorf("oldest kept = %q, want query-10", got[len(got)-1])
	}
}

func TestMemoryStore_PromoteToFront(t *testing.T) {
	s := NewMemoryStore()
	ctx := context.Background()

	for _, q := range []string{"alpha", "beta", "gamma", "alpha"} {
		if err := s.Touch(ctx, q); err != nil {
			t.Fatalf("touch: %v", err)
		}
	}

	got, err := s.Recent(ctx, 10)
	if err != nil {
		t.Fatalf("recent: %v", err)
	}
	want := []string{"alpha", "gamma", "beta"}
	if len(got) != len(want) {
		t.Fatalf("recent = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("recent[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestMemoryStore_PopularOrdering(t *testing.T) {
	s := NewMemoryStore()
	ctx := context.Background()

	for _, q := range []string{"b", "a", "b", "c", "a", "b"} {
		if err := s.Touch(ctx, q); err != nil {
			t.Fatalf("touch: %v", err)
		}
	}

	got, err := s.Popular(ctx, 2)
	if err != nil {
		t.Fatalf("popular: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("popular length = %d, want 2", len(got))
	}
	if got[0].Query != "b" || got[0].Count != 3 {
		t.Errorf("top = %+v, want {b 3}", got[0])
	}
	if got[1].Query != "a" || got[1].Count != 2 {
		t.Errorf("second = %+v, want {a 2}", got[1])
	}
}

package analytics

import (
	"context"
	"reflect"
	"testing"

	"github.com/lexfile/lexfile/internal/db"
)

type fakeListStore struct {
	ops    []string
	keys   []string
	ranged []string
	scores []db.MemberScore
}

func (f *fakeListStore) LPush(_ context.Context, key, value string) error {
	f.ops = append(f.ops, "LPUSH "+value)
	f.keys = append(f.keys, key)
	return nil
}

func (f *fakeListStore) LRem(_ context.Context, key, value string) error {
	f.ops = append(f.ops, "LREM "+value)
	f.keys = append(f.keys, key)
	return nil
}

func (f *fakeListStore) LTrim(_ context.Context, key string, start, stop int64) error {
	f.ops = append(f.ops, "LTRIM")
	f.keys = append(f.keys, key)
	if start != 0 || stop != recentCap-1 {
		f.ops = append(f.ops, "BAD-TRIM")
	}
	return nil
}

func (f *fakeListStore) LRange(context.Context, string, int64, int64) ([]string, error) {
	return f.ranged, nil
}

func (f *fakeListStore) ZIncrBy(_ context.Context, key string, _ float64, member string) error {
	f.ops = append(f.ops, "ZINCRBY "+member)
	f.keys = append(f.keys, key)
	return nil
}

func (f *fakeListStore) ZRevRangeWithScores(context.Context, string, int64, int64) ([]db.MemberScore, error) {
	return f.scores, nil
}

func TestStore_TouchOrderAndTrim(t *testing.T) {
	fake := &fakeListStore{}
	store := NewStore(fake, "lexfile:")

	if err := store.Touch(context.Background(), "contract law"); err != nil {
		t.Fatalf("Touch: %v", err)
	}

	want := []string{"LREM contract law", "LPUSH contract law", "LTRIM", "ZINCRBY contract law"}
	if !reflect.DeepEqual(fake.ops, want) {
		t.Errorf("ops = %v, want %v", fake.ops, want)
	}
}

func TestStore_KeyPrefix(t *testing.T) {
	fake := &fakeListStore{}
	store := NewStore(fake, "lexfile:")

	if err := store.Touch(context.Background(), "smith"); err != nil {
		t.Fatalf("Touch: %v", err)
	}

	for _, key := range fake.keys[:3] {
		if key != "lexfile:searches:recent" {
			t.Errorf("recency key = %q, want lexfile:searches:recent", key)
		}
	}
	if fake.keys[3] != "lexfile:searches:popular" {
		t.Errorf("popularity key = %q, want lexfile:searches:popular", fake.keys[3])
	}
}

func TestStore_PopularMapsScores(t *testing.T) {
	fake := &fakeListStore{scores: []db.MemberScore{
		{Member: "contract", Score: 7},
		{Member: "smith", Score: 3},
	}}
	store := NewStore(fake, "lexfile:")

	popular, err := store.Popular(context.Background(), 5)
	if err != nil {
		t.Fatalf("Popular: %v", err)
	}
	if len(popular) != 2 || popular[0].Query != "contract" || popular[0].Count != 7 {
		t.Errorf("popular = %+v", popular)
	}
}

// Package db defines the narrow store abstraction the analytics repositories
// are written against, with a Redis driver in the redis subpackage.
package db

import (
	"context"
	"time"
)

// Store is the analytics store facade. Consumers depend on the narrow
// sub-interfaces, not on Store itself.
type Store interface {
	Pinger
	Lists
	SortedSets
	Close()
	WaitForReady(ctx context.Context, timeout time.Duration) error
}

// Pinger checks store connectivity.
type Pinger interface {
	Ping(ctx context.Context) error
}

// Lists provides bounded-list operations (recency lists).
type Lists interface {
	LPush(ctx context.Context, key, value string) error
	LRem(ctx context.Context, key, value string) error
	LTrim(ctx context.Context, key string, start, stop int64) error
	LRange(ctx context.Context, key string, start, stop int64) ([]string, error)
}

// MemberScore is a sorted-set member with its score.
type MemberScore struct {
	Member string
	Score  float64
}

// SortedSets provides counter operations (popularity rankings).
type SortedSets interface {
	ZIncrBy(ctx context.Context, key string, increment float64, member string) error
	ZRevRangeWithScores(ctx context.Context, key string, start, stop int64) ([]MemberScore, error)
}

package db

import "fmt"

// Op identifies the store operation that failed.
type Op string

// Store operations.
const (
	OpPing      Op = "PING"
	OpLPush     Op = "LPUSH"
	OpLRem      Op = "LREM"
	OpLTrim     Op = "LTRIM"
	OpLRange    Op = "LRANGE"
	OpZIncrBy   Op = "ZINCRBY"
	OpZRevRange Op = "ZREVRANGE"
)

// Error wraps a driver error with the failed operation.
type Error struct {
	Op  Op
	Err error
}

func (e *Error) Error() string {
	return fmt.Sprintf("db %s: %v", e.Op, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Package catalog is the data access facade over the legal case database.
// All queries are hand-built SQL through pgx, no ORM. Each search query
// computes a relevance_score pre-ranking in SQL so callers receive
// already-narrowed, already-ordered candidates; the in-memory scorer then
// recomputes the surfaced score field by field.
package catalog

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// DBTX is the query execution interface. Satisfied by *pgxpool.Pool and
// pgx.Tx, which keeps the repository usable inside and outside transactions.
type DBTX interface {
	Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// Repo provides read access to clients, cases, physical files, payments and
// the file access log, plus the access-log append path.
type Repo struct {
	db DBTX
}

// New creates a catalog repository.
func New(db DBTX) *Repo {
	return &Repo{db: db}
}

// likeParam wraps a query for ILIKE substring matching.
func likeParam(query string) string {
	return "%" + query + "%"
}

// distinctValues runs a single-column query and collects the values.
func (r *Repo) distinctValues(ctx context.Context, sql string) ([]string, error) {
	rows, err := r.db.Query(ctx, sql)
	if err != nil {
		return nil, fmt.Errorf("distinct query: %w", err)
	}
	defer rows.Close()

	var out []string
	for rows.Next() {
		var v string
		if err := rows.Scan(&v); err != nil {
			return nil, fmt.Errorf("scan distinct value: %w", err)
		}
		out = append(out, v)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate distinct values: %w", err)
	}
	return out, nil
}

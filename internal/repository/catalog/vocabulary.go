package catalog

import (
	"context"
	"fmt"

	"github.com/lexfile/lexfile/internal/domain"
)

// Vocabulary collects the distinct-term inventory the suggestion engine draws
// completions and typo-correction candidates from.
func (r *Repo) Vocabulary(ctx context.Context) (domain.Vocabulary, error) {
	var v domain.Vocabulary

	rows, err := r.db.Query(ctx,
		`SELECT first_name, last_name FROM clients ORDER BY last_name, first_name`)
	if err != nil {
		return domain.Vocabulary{}, fmt.Errorf("client names: %w", err)
	}
	defer rows.Close()
	for rows.Next() {
		var first, last string
		if err := rows.Scan(&first, &last); err != nil {
			return domain.Vocabulary{}, fmt.Errorf("scan client name: %w", err)
		}
		v.FirstNames = append(v.FirstNames, first)
		v.LastNames = append(v.LastNames, last)
		v.ClientNames = append(v.ClientNames, first+" "+last)
	}
	if err := rows.Err(); err != nil {
		return domain.Vocabulary{}, fmt.Errorf("iterate client names: %w", err)
	}

	terms := []struct {
		name string
		sql  string
		dst  *[]string
	}{
		{"case types", `SELECT DISTINCT case_type FROM cases WHERE case_type IS NOT NULL ORDER BY case_type`, &v.CaseTypes},
		{"file types", `SELECT DISTINCT file_type FROM physical_files WHERE file_type IS NOT NULL ORDER BY file_type`, &v.FileTypes},
		{"document categories", `SELECT DISTINCT document_category FROM physical_files WHERE document_category IS NOT NULL ORDER BY document_category`, &v.DocumentCategories},
		{"keywords", `SELECT DISTINCT unnest(keywords) AS kw FROM physical_files ORDER BY kw`, &v.Keywords},
	}
	for _, t := range terms {
		vals, err := r.distinctValues(ctx, t.sql)
		if err != nil {
			return domain.Vocabulary{}, fmt.Errorf("%s: %w", t.name, err)
		}
		*t.dst = vals
	}
	return v, nil
}

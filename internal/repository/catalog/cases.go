package catalog

import (
	"context"
	"fmt"

	"github.com/lexfile/lexfile/internal/domain"
)

// SearchCases returns cases matching the query with the client name joined
// in. The client-name weight (9) is deliberately one above the direct
// case-type weight; the scorer treats it via the joined-field max rule.
func (r *Repo) SearchCases(ctx context.Context, query string, limit int) ([]domain.CaseRow, error) {
	if query == "" {
		return nil, nil
	}

	const sql = `
SELECT c.case_id, c.reference_number, c.client_id, c.case_type,
       COALESCE(c.description, ''), COALESCE(c.assigned_lawyer, ''),
       c.case_status, COALESCE(c.priority, ''), c.created_date,
       (cl.first_name || ' ' || cl.last_name) AS client_name,
       CASE WHEN c.reference_number ILIKE $1 THEN 10 ELSE 0 END +
       CASE WHEN c.case_type ILIKE $1 THEN 8 ELSE 0 END +
       CASE WHEN COALESCE(c.description, '') ILIKE $1 THEN 7 ELSE 0 END +
       CASE WHEN COALESCE(c.assigned_lawyer, '') ILIKE $1 THEN 6 ELSE 0 END +
       CASE WHEN c.case_status ILIKE $1 THEN 5 ELSE 0 END +
       CASE WHEN (cl.first_name || ' ' || cl.last_name) ILIKE $1 THEN 9 ELSE 0 END AS relevance_score
FROM cases c
JOIN clients cl ON c.client_id = cl.client_id
WHERE c.reference_number ILIKE $1
   OR c.case_type ILIKE $1
   OR COALESCE(c.description, '') ILIKE $1
   OR COALESCE(c.assigned_lawyer, '') ILIKE $1
   OR c.case_status ILIKE $1
   OR (cl.first_name || ' ' || cl.last_name) ILIKE $1
ORDER BY relevance_score DESC, c.created_date DESC
LIMIT $2`

	rows, err := r.db.Query(ctx, sql, likeParam(query), limit)
	if err != nil {
		return nil, fmt.Errorf("search cases: %w", err)
	}
	defer rows.Close()

	var out []domain.CaseRow
	for rows.Next() {
		var c domain.CaseRow
		if err := rows.Scan(
			&c.CaseID, &c.ReferenceNumber, &c.ClientID, &c.CaseType,
			&c.Description, &c.AssignedLawyer, &c.CaseStatus, &c.Priority,
			&c.CreatedDate, &c.ClientName, &c.Relevance,
		); err != nil {
			return nil, fmt.Errorf("scan case: %w", err)
		}
		out = append(out, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate cases: %w", err)
	}
	return out, nil
}

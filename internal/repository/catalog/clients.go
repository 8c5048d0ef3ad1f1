package catalog

import (
	"context"
	"fmt"

	"github.com/lexfile/lexfile/internal/domain"
)

// SearchClients returns clients whose name or contact fields contain the
// query, pre-ranked by the same per-field weights the scorer applies.
func (r *Repo) SearchClients(ctx context.Context, query string, limit int) ([]domain.ClientRow, error) {
	if query == "" {
		return nil, nil
	}

	const sql = `
SELECT client_id, first_name, last_name, email,
       COALESCE(phone, ''), COALESCE(address, ''), client_type, status, created_date,
       CASE WHEN (first_name || ' ' || last_name) ILIKE $1 THEN 10 ELSE 0 END +
       CASE WHEN email ILIKE $1 THEN 9 ELSE 0 END +
       CASE WHEN COALESCE(phone, '') ILIKE $1 THEN 8 ELSE 0 END +
       CASE WHEN COALESCE(address, '') ILIKE $1 THEN 6 ELSE 0 END +
       CASE WHEN client_type ILIKE $1 THEN 5 ELSE 0 END +
       CASE WHEN status ILIKE $1 THEN 4 ELSE 0 END AS relevance_score
FROM clients
WHERE (first_name || ' ' || last_name) ILIKE $1
   OR email ILIKE $1
   OR COALESCE(phone, '') ILIKE $1
   OR COALESCE(address, '') ILIKE $1
   OR client_type ILIKE $1
   OR status ILIKE $1
ORDER BY relevance_score DESC, last_name, first_name
LIMIT $2`

	rows, err := r.db.Query(ctx, sql, likeParam(query), limit)
	if err != nil {
		return nil, fmt.Errorf("search clients: %w", err)
	}
	defer rows.Close()

	var out []domain.ClientRow
	for rows.Next() {
		var c domain.ClientRow
		if err := rows.Scan(
			&c.ClientID, &c.FirstName, &c.LastName, &c.Email,
			&c.Phone, &c.Address, &c.ClientType, &c.Status, &c.CreatedDate,
			&c.Relevance,
		); err != nil {
			return nil, fmt.Errorf("scan client: %w", err)
		}
		out = append(out, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate clients: %w", err)
	}
	return out, nil
}

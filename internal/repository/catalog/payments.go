package catalog

import (
	"context"
	"fmt"

	"github.com/lexfile/lexfile/internal/domain"
)

// SearchPayments returns payments matching the query with the client name
// joined in. The amount is matched on its decimal text form so that partial
// amounts ("150", "99.") surface candidates for the in-memory amount rule.
func (r *Repo) SearchPayments(ctx context.Context, query string, limit int) ([]domain.PaymentRow, error) {
	if query == "" {
		return nil, nil
	}

	const sql = `
SELECT p.payment_id, p.client_id, p.case_id, p.amount::text,
       p.payment_method, p.status, COALESCE(p.description, ''), p.payment_date,
       (cl.first_name || ' ' || cl.last_name) AS client_name,
       CASE WHEN p.payment_id ILIKE $1 THEN 10 ELSE 0 END +
       CASE WHEN COALESCE(p.description, '') ILIKE $1 THEN 8 ELSE 0 END +
       CASE WHEN p.amount::text ILIKE $1 THEN 7 ELSE 0 END +
       CASE WHEN p.payment_method ILIKE $1 THEN 6 ELSE 0 END +
       CASE WHEN p.status ILIKE $1 THEN 5 ELSE 0 END +
       CASE WHEN (cl.first_name || ' ' || cl.last_name) ILIKE $1 THEN 9 ELSE 0 END AS relevance_score
FROM payments p
JOIN clients cl ON p.client_id = cl.client_id
WHERE p.payment_id ILIKE $1
   OR COALESCE(p.description, '') ILIKE $1
   OR p.amount::text ILIKE $1
   OR p.payment_method ILIKE $1
   OR p.status ILIKE $1
   OR (cl.first_name || ' ' || cl.last_name) ILIKE $1
ORDER BY relevance_score DESC, p.payment_date DESC
LIMIT $2`

	rows, err := r.db.Query(ctx, sql, likeParam(query), limit)
	if err != nil {
		return nil, fmt.Errorf("search payments: %w", err)
	}
	defer rows.Close()

	var out []domain.PaymentRow
	for rows.Next() {
		var p domain.PaymentRow
		if err := rows.Scan(
			&p.PaymentID, &p.ClientID, &p.CaseID, &p.Amount,
			&p.PaymentMethod, &p.Status, &p.Description, &p.PaymentDate,
			&p.ClientName, &p.Relevance,
		); err != nil {
			return nil, fmt.Errorf("scan payment: %w", err)
		}
		out = append(out, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate payments: %w", err)
	}
	return out, nil
}

package catalog

import (
	"context"
	"fmt"
	"strings"

	"github.com/lexfile/lexfile/internal/domain"
)

// fileColumns is the SELECT list for physical file rows with client and case
// fields joined in. One place for every file query.
const fileColumns = `f.file_id, f.reference_number, f.client_id, f.case_id,
	f.file_type, f.document_category, COALESCE(f.file_description, ''), f.keywords,
	COALESCE(f.warehouse_location, ''), COALESCE(f.shelf_number, ''), COALESCE(f.box_number, ''),
	f.confidentiality_level, f.storage_status, f.created_date, f.last_accessed,
	COALESCE(cl.first_name, ''), COALESCE(cl.last_name, ''), COALESCE(c.case_type, '')`

// SearchFiles returns file candidates matching the query and filters,
// pre-ranked by the indexed-field weights. Filters apply regardless of the
// query; an empty query with filters set returns the filtered listing.
func (r *Repo) SearchFiles(
	ctx context.Context, query string, filters domain.FileFilters, limit int,
) ([]domain.FileRow, error) {
	if query == "" && filters.IsZero() {
		return nil, nil
	}

	var args []any
	arg := func(v any) string {
		args = append(args, v)
		return fmt.Sprintf("$%d", len(args))
	}

	relevance := "0"
	var conds []string

	if query != "" {
		like := arg(likeParam(query))
		relevance = fmt.Sprintf(`
       CASE WHEN f.reference_number ILIKE %[1]s THEN 10 ELSE 0 END +
       CASE WHEN COALESCE(f.file_description, '') ILIKE %[1]s THEN 8 ELSE 0 END +
       CASE WHEN COALESCE(cl.first_name, '') ILIKE %[1]s THEN 7 ELSE 0 END +
       CASE WHEN COALESCE(cl.last_name, '') ILIKE %[1]s THEN 7 ELSE 0 END +
       CASE WHEN array_to_string(f.keywords, ' ') ILIKE %[1]s THEN 6 ELSE 0 END +
       CASE WHEN COALESCE(c.case_type, '') ILIKE %[1]s THEN 5 ELSE 0 END`, like)
		conds = append(conds, fmt.Sprintf(`(f.reference_number ILIKE %[1]s
   OR COALESCE(f.file_description, '') ILIKE %[1]s
   OR f.document_category ILIKE %[1]s
   OR f.file_type ILIKE %[1]s
   OR COALESCE(cl.first_name, '') ILIKE %[1]s
   OR COALESCE(cl.last_name, '') ILIKE %[1]s
   OR array_to_string(f.keywords, ' ') ILIKE %[1]s
   OR COALESCE(c.case_type, '') ILIKE %[1]s)`, like))
	}

	if filters.CaseType != "" {
		conds = append(conds, "c.case_type = "+arg(filters.CaseType))
	}
	if filters.FileType != "" {
		conds = append(conds, "f.file_type = "+arg(filters.FileType))
	}
	if filters.ConfidentialityLevel != "" {
		conds = append(conds, "f.confidentiality_level = "+arg(filters.ConfidentialityLevel))
	}
	if filters.StorageStatus != "" {
		conds = append(conds, "f.storage_status = "+arg(filters.StorageStatus))
	}
	if filters.WarehouseLocation != "" {
		conds = append(conds, "f.warehouse_location = "+arg(filters.WarehouseLocation))
	}

	sql := fmt.Sprintf(`
SELECT %s,
       %s AS relevance_score
FROM physical_files f
LEFT JOIN cases c ON f.case_id = c.case_id
LEFT JOIN clients cl ON f.client_id = cl.client_id
WHERE %s
ORDER BY relevance_score DESC, f.last_accessed DESC NULLS LAST, f.created_date DESC
LIMIT %s`, fileColumns, relevance, strings.Join(conds, "\n  AND "), arg(limit))

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("search files: %w", err)
	}
	defer rows.Close()

	var out []domain.FileRow
	for rows.Next() {
		var f domain.FileRow
		if err := rows.Scan(
			&f.FileID, &f.ReferenceNumber, &f.ClientID, &f.CaseID,
			&f.FileType, &f.DocumentCategory, &f.FileDescription, &f.Keywords,
			&f.WarehouseLocation, &f.ShelfNumber, &f.BoxNumber,
			&f.ConfidentialityLevel, &f.StorageStatus, &f.CreatedDate, &f.LastAccessed,
			&f.FirstName, &f.LastName, &f.CaseType, &f.Relevance,
		); err != nil {
			return nil, fmt.Errorf("scan file: %w", err)
		}
		out = append(out, f)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate files: %w", err)
	}
	return out, nil
}

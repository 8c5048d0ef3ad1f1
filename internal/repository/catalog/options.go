package catalog

import (
	"context"
	"fmt"

	"github.com/lexfile/lexfile/internal/domain"
)

// FilterOptions returns the distinct values usable as file search filters.
func (r *Repo) FilterOptions(ctx context.Context) (domain.FilterOptions, error) {
	var opts domain.FilterOptions

	queries := []struct {
		name string
		sql  string
		dst  *[]string
	}{
		{"case types", `SELECT DISTINCT case_type FROM cases WHERE case_type IS NOT NULL ORDER BY case_type`, &opts.CaseTypes},
		{"file types", `SELECT DISTINCT file_type FROM physical_files WHERE file_type IS NOT NULL ORDER BY file_type`, &opts.FileTypes},
		{"confidentiality levels", `SELECT DISTINCT confidentiality_level FROM physical_files WHERE confidentiality_level IS NOT NULL ORDER BY confidentiality_level`, &opts.ConfidentialityLevels},
		{"warehouse locations", `SELECT DISTINCT warehouse_location FROM physical_files WHERE warehouse_location IS NOT NULL ORDER BY warehouse_location`, &opts.WarehouseLocations},
		{"storage statuses", `SELECT DISTINCT storage_status FROM physical_files WHERE storage_status IS NOT NULL ORDER BY storage_status`, &opts.StorageStatuses},
	}
	for _, q := range queries {
		vals, err := r.distinctValues(ctx, q.sql)
		if err != nil {
			return domain.FilterOptions{}, fmt.Errorf("%s: %w", q.name, err)
		}
		*q.dst = vals
	}
	return opts, nil
}

package search

import (
	"context"

	"github.com/lexfile/lexfile/internal/domain"
)

// Catalog is the data access facade the orchestrator queries. Each search
// method returns pre-narrowed, pre-ranked candidates; final scoring and
// ordering happen in memory here.
type Catalog interface {
	SearchClients(ctx context.Context, query string, limit int) ([]domain.ClientRow, error)
	SearchCases(ctx context.Context, query string, limit int) ([]domain.CaseRow, error)
	SearchFiles(ctx context.Context, query string, filters domain.FileFilters, limit int) ([]domain.FileRow, error)
	SearchPayments(ctx context.Context, query string, limit int) ([]domain.PaymentRow, error)
	RecentFileAccesses(ctx context.Context, limit int) ([]domain.AccessRow, error)
}

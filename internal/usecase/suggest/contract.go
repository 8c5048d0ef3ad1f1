package suggest

import (
	"context"

	"github.com/lexfile/lexfile/internal/domain"
)

// Catalog is the slice of the data access facade the suggestion engine
// draws candidates from.
type Catalog interface {
	SearchClients(ctx context.Context, query string, limit int) ([]domain.ClientRow, error)
	SearchCases(ctx context.Context, query string, limit int) ([]domain.CaseRow, error)
	SearchFiles(ctx context.Context, query string, filters domain.FileFilters, limit int) ([]domain.FileRow, error)
	SearchPayments(ctx context.Context, query string, limit int) ([]domain.PaymentRow, error)
	Vocabulary(ctx context.Context) (domain.Vocabulary, error)
}

// Analytics feeds the recent and popular suggestion sources.
type Analytics interface {
	Recent(ctx context.Context, limit int) ([]string, error)
	Popular(ctx context.Context, limit int) ([]domain.PopularSearch, error)
}

package port

import (
	"context"

	"ads-dashboard/internal/core/domain"
)

// DatasetSource is the outbound port that produces the campaign dataset.
// It is called once at startup; a returned error aborts the process.
type DatasetSource interface {
	Load(ctx context.Context) (*domain.Dataset, error)
}

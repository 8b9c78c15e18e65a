package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"math"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"ads-dashboard/internal/core/domain"
)

// CampaignRepository implements port.DatasetSource over the
// campaign_daily_metrics table.
type CampaignRepository struct {
	pool *pgxpool.Pool
}

// NewCampaignRepository returns a new repository instance.
func NewCampaignRepository(pool *pgxpool.Pool) *CampaignRepository {
	return &CampaignRepository{pool: pool}
}

// Load reads every row in insertion order. NULL spend, CTR and CPC load
// as NaN, NULL clicks as zero, matching blank spreadsheet cells.
func (r *CampaignRepository) Load(ctx context.Context) (*domain.Dataset, error) {
	query := `
        SELECT
            campaign,
            day,
            clicks,
            spend,
            ctr,
            cpc
        FROM campaign_daily_metrics
        ORDER BY id`
	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	records, err := pgx.CollectRows(rows, scanRecord)
	if err != nil {
		return nil, fmt.Errorf("scan campaign_daily_metrics: %w", err)
	}
	return domain.NewDataset(records)
}

func scanRecord(row pgx.CollectableRow) (domain.Record, error) {
	var (
		rec             domain.Record
		clicks          sql.NullInt64
		spend, ctr, cpc sql.NullFloat64
	)
	if err := row.Scan(&rec.Campaign, &rec.Date, &clicks, &spend, &ctr, &cpc); err != nil {
		return rec, err
	}
	rec.Date = domain.DateOf(rec.Date)
	rec.Clicks = clicks.Int64
	rec.Spend = orNaN(spend)
	rec.CTR = orNaN(ctr)
	rec.CPC = orNaN(cpc)
	return rec, nil
}

func orNaN(v sql.NullFloat64) float64 {
	if !v.Valid {
		return math.NaN()
	}
	return v.Float64
}

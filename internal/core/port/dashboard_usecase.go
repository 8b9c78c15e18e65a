package port

import (
	"context"
	"time"

	"ads-dashboard/internal/core/domain"
	"ads-dashboard/internal/core/present"
)

// DashboardUseCase defines the operations behind the dashboard page. It is
// the primary port into the application; the HTTP adapter depends on it
// and tests substitute a generated mock.
type DashboardUseCase interface {
	// Options returns the selector domain derived from the loaded dataset
	// together with the default selection.
	Options(ctx context.Context) Options

	// Refresh recomputes every dashboard artifact for sel. It fails only
	// when sel names an unknown metric; empty periods produce empty charts
	// and N/A means.
	Refresh(ctx context.Context, sel domain.Selection) (*DashboardView, error)

	// Records returns the records of sel's campaign within sel's period,
	// in dataset order.
	Records(ctx context.Context, sel domain.Selection) []domain.Record
}

// Options describes what the user may choose from.
type Options struct {
	Campaigns []string
	MinDate   time.Time
	MaxDate   time.Time
	Metrics   []domain.Metric
	Default   domain.Selection
}

// DashboardView is everything the page redraws after an input change.
type DashboardView struct {
	Selection  domain.Selection
	Summary    domain.KPISummary
	KPIs       []present.KPI
	Clicks     present.Chart
	Spend      present.Chart
	Comparison present.Chart
}

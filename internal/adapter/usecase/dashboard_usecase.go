package usecase

import (
	"context"
	"slices"

	"ads-dashboard/internal/core/analytics"
	"ads-dashboard/internal/core/domain"
	"ads-dashboard/internal/core/port"
	"ads-dashboard/internal/core/present"
)

// DashboardUseCase recomputes the dashboard for each selection. It holds
// the dataset read-only and keeps no other state, so one instance serves
// all requests concurrently.
type DashboardUseCase struct {
	ds *domain.Dataset
}

// NewDashboardUseCase creates a use case over a loaded dataset.
func NewDashboardUseCase(ds *domain.Dataset) *DashboardUseCase {
	return &DashboardUseCase{ds: ds}
}

// Options returns the campaigns in dataset order, the dataset date bounds
// and the comparison metrics. The default selection is the first campaign
// over the full range compared by clicks.
func (u *DashboardUseCase) Options(_ context.Context) port.Options {
	campaigns := u.ds.Campaigns()
	return port.Options{
		Campaigns: campaigns,
		MinDate:   u.ds.MinDate(),
		MaxDate:   u.ds.MaxDate(),
		Metrics:   slices.Clone(domain.Metrics),
		Default: domain.Selection{
			Campaign: campaigns[0],
			Start:    u.ds.MinDate(),
			End:      u.ds.MaxDate(),
			Metric:   domain.MetricClicks,
		},
	}
}

// Refresh filters the dataset by sel, aggregates both views and builds the
// charts and KPI fragments.
func (u *DashboardUseCase) Refresh(_ context.Context, sel domain.Selection) (*port.DashboardView, error) {
	metric, err := domain.ParseMetric(string(sel.Metric))
	if err != nil {
		return nil, err
	}

	views := analytics.Filter(u.ds, sel.Campaign, sel.Start, sel.End)
	summary := analytics.Summarize(views.Campaign)
	comparison := analytics.Compare(views.All, metric)

	return &port.DashboardView{
		Selection:  sel,
		Summary:    summary,
		KPIs:       present.KPIs(summary),
		Clicks:     present.ClicksChart(sel.Campaign, views.Campaign),
		Spend:      present.SpendChart(sel.Campaign, views.Campaign),
		Comparison: present.ComparisonChart(comparison),
	}, nil
}

// Records returns the campaign view of sel.
func (u *DashboardUseCase) Records(_ context.Context, sel domain.Selection) []domain.Record {
	return analytics.Filter(u.ds, sel.Campaign, sel.Start, sel.End).Campaign
}

package analytics

import (
	"math"
	"sort"

	"ads-dashboard/internal/core/domain"
)

// Summarize computes the KPI summary of a campaign view. Sums over an
// empty view are zero; means are NaN.
func Summarize(view []domain.Record) domain.KPISummary {
	s := domain.KPISummary{
		TotalSpend: sum(view, domain.MetricSpend),
		MeanCTR:    mean(view, domain.MetricCTR),
		MeanCPC:    mean(view, domain.MetricCPC),
	}
	for _, r := range view {
		s.TotalClicks += r.Clicks
	}
	return s
}

// Compare groups view by campaign and reduces metric within each group
// using the metric's aggregation rule. Rows are ordered by campaign
// identifier; campaigns absent from view get no row.
func Compare(view []domain.Record, metric domain.Metric) domain.Comparison {
	grouped := make(map[string][]domain.Record)
	order := make([]string, 0)
	for _, r := range view {
		if _, ok := grouped[r.Campaign]; !ok {
			order = append(order, r.Campaign)
		}
		grouped[r.Campaign] = append(grouped[r.Campaign], r)
	}
	sort.Strings(order)

	agg := metric.Aggregation()
	reduce := sum
	if agg == domain.AggregationMean {
		reduce = mean
	}

	rows := make([]domain.ComparisonRow, 0, len(order))
	for _, campaign := range order {
		rows = append(rows, domain.ComparisonRow{
			Campaign: campaign,
			Value:    reduce(grouped[campaign], metric),
		})
	}
	return domain.Comparison{Metric: metric, Aggregation: agg, Rows: rows}
}

// sum adds metric over view, skipping blank (NaN) values.
func sum(view []domain.Record, metric domain.Metric) float64 {
	var total float64
	for _, r := range view {
		if v := metric.Value(r); !math.IsNaN(v) {
			total += v
		}
	}
	return total
}

// mean averages metric over the non-blank values of view. It is NaN when
// there are none.
func mean(view []domain.Record, metric domain.Metric) float64 {
	var (
		total float64
		n     int
	)
	for _, r := range view {
		if v := metric.Value(r); !math.IsNaN(v) {
			total += v
			n++
		}
	}
	if n == 0 {
		return math.NaN()
	}
	return total / float64(n)
}

package domain

import (
	"fmt"
	"math"
	"strings"
)

// Metric names a numeric column that can be compared across campaigns.
// The value is the column header.
type Metric string

const (
	MetricClicks Metric = ColumnClicks
	MetricSpend  Metric = ColumnSpend
	MetricCTR    Metric = ColumnCTR
	MetricCPC    Metric = ColumnCPC
)

// Metrics lists the comparison metrics in display order.
var Metrics = []Metric{MetricClicks, MetricSpend, MetricCTR, MetricCPC}

// Aggregation is the reduction applied when grouping a metric.
type Aggregation string

const (
	AggregationSum  Aggregation = "sum"
	AggregationMean Aggregation = "mean"
)

// ParseMetric maps a column header to a Metric.
func ParseMetric(s string) (Metric, error) {
	for _, m := range Metrics {
		if string(m) == s {
			return m, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownMetric, s)
}

// Aggregation returns mean for rate-like metrics (CTR, CPC) and sum for
// count-like ones.
func (m Metric) Aggregation() Aggregation {
	name := string(m)
	if strings.Contains(name, "CTR") || strings.Contains(name, "CPC") {
		return AggregationMean
	}
	return AggregationSum
}

// Label is the human-facing option label.
func (m Metric) Label() string {
	switch m {
	case MetricClicks:
		return "🖱️ Cliques"
	case MetricSpend:
		return "💰 Gasto (R$)"
	case MetricCTR:
		return "📈 CTR (%)"
	case MetricCPC:
		return "🎯 CPC (R$)"
	default:
		return string(m)
	}
}

// Value extracts the metric from r. Unknown metrics yield NaN.
func (m Metric) Value(r Record) float64 {
	switch m {
	case MetricClicks:
		return float64(r.Clicks)
	case MetricSpend:
		return r.Spend
	case MetricCTR:
		return r.CTR
	case MetricCPC:
		return r.CPC
	default:
		return math.NaN()
	}
}

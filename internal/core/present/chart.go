// Package present turns filtered and aggregated campaign data into chart
// specifications and KPI fragments. It has no side effects; the HTTP layer
// serialises its output and the browser draws it.
package present

import (
	"fmt"
	"math"
	"sort"

	"ads-dashboard/internal/core/domain"
)

// ChartKind selects how a series is drawn.
type ChartKind string

const (
	ChartLine ChartKind = "line"
	ChartBar  ChartKind = "bar"
)

// TextOutside places a point's value label outside its bar.
const TextOutside = "outside"

// Chart is a renderer-agnostic single-series chart.
type Chart struct {
	Kind         ChartKind `json:"kind"`
	Title        string    `json:"title"`
	XLabel       string    `json:"xLabel"`
	YLabel       string    `json:"yLabel"`
	Markers      bool      `json:"markers,omitempty"`
	TextPosition string    `json:"textPosition,omitempty"`
	Points       []Point   `json:"points"`
}

// Point is one x/y pair. Y is nil when the value is undefined.
type Point struct {
	X    string   `json:"x"`
	Y    *float64 `json:"y"`
	Text string   `json:"text,omitempty"`
}

// ClicksChart plots daily clicks of a campaign as a line with markers.
func ClicksChart(campaign string, view []domain.Record) Chart {
	return Chart{
		Kind:    ChartLine,
		Title:   fmt.Sprintf("📈 Cliques por Dia - %s", campaign),
		XLabel:  domain.ColumnDate,
		YLabel:  domain.ColumnClicks,
		Markers: true,
		Points:  timeSeries(view, domain.MetricClicks),
	}
}

// SpendChart plots daily spend of a campaign as bars.
func SpendChart(campaign string, view []domain.Record) Chart {
	return Chart{
		Kind:   ChartBar,
		Title:  fmt.Sprintf("💰 Gasto por Dia - %s", campaign),
		XLabel: domain.ColumnDate,
		YLabel: domain.ColumnSpend,
		Points: timeSeries(view, domain.MetricSpend),
	}
}

// ComparisonChart draws one bar per campaign of c, labelled with its value.
func ComparisonChart(c domain.Comparison) Chart {
	points := make([]Point, 0, len(c.Rows))
	for _, row := range c.Rows {
		points = append(points, Point{
			X:    row.Campaign,
			Y:    Nullable(row.Value),
			Text: FormatMetric(c.Metric, row.Value),
		})
	}
	return Chart{
		Kind:         ChartBar,
		Title:        fmt.Sprintf("📊 Comparativo Entre Campanhas (%s)", c.Metric),
		XLabel:       "Campanha",
		YLabel:       string(c.Metric),
		TextPosition: TextOutside,
		Points:       points,
	}
}

// timeSeries emits one point per record in chronological order. Records on
// the same date keep their dataset order.
func timeSeries(view []domain.Record, metric domain.Metric) []Point {
	sorted := make([]domain.Record, len(view))
	copy(sorted, view)
	sort.SliceStable(sorted, func(i, j int) bool { return sorted[i].Date.Before(sorted[j].Date) })

	points := make([]Point, 0, len(sorted))
	for _, r := range sorted {
		points = append(points, Point{
			X: r.Date.Format(domain.DateLayout),
			Y: Nullable(metric.Value(r)),
		})
	}
	return points
}

// Nullable maps NaN and infinities to nil so the value survives JSON.
func Nullable(v float64) *float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return nil
	}
	return &v
}

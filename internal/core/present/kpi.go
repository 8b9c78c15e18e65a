package present

import (
	"fmt"
	"math"
	"strconv"

	"ads-dashboard/internal/core/domain"
)

// NotAvailable is shown in place of an undefined value, such as the mean
// of an empty period.
const NotAvailable = "N/A"

// KPI is one labelled scalar of the summary strip.
type KPI struct {
	Key   string `json:"key"`
	Label string `json:"label"`
	Value string `json:"value"`
}

// KPIs formats s into the four fragments shown above the charts.
func KPIs(s domain.KPISummary) []KPI {
	return []KPI{
		{Key: "total_spend", Label: "💰 Total Gasto", Value: FormatCurrency(s.TotalSpend)},
		{Key: "total_clicks", Label: "🖱️ Total Cliques", Value: strconv.FormatInt(s.TotalClicks, 10)},
		{Key: "mean_ctr", Label: "📈 CTR Médio", Value: FormatPercent(s.MeanCTR)},
		{Key: "mean_cpc", Label: "🎯 CPC Médio", Value: FormatCurrency(s.MeanCPC)},
	}
}

// FormatCurrency renders v in reais with two decimals.
func FormatCurrency(v float64) string {
	if !finite(v) {
		return NotAvailable
	}
	return fmt.Sprintf("R$ %.2f", v)
}

// FormatPercent renders v, already a percentage, with two decimals.
func FormatPercent(v float64) string {
	if !finite(v) {
		return NotAvailable
	}
	return fmt.Sprintf("%.2f%%", v)
}

// FormatMetric renders an aggregated metric value the way its column is
// expressed: plain count for clicks, currency for spend and CPC,
// percentage for CTR.
func FormatMetric(m domain.Metric, v float64) string {
	switch m {
	case domain.MetricSpend, domain.MetricCPC:
		return FormatCurrency(v)
	case domain.MetricCTR:
		return FormatPercent(v)
	default:
		if !finite(v) {
			return NotAvailable
		}
		return strconv.FormatFloat(v, 'f', -1, 64)
	}
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

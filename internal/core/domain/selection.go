package domain

import "time"

// Selection is the dashboard input for one interaction: which campaign to
// detail, which date interval (inclusive on both ends) to cover and which
// metric drives the cross-campaign comparison. Start after End is allowed
// and simply matches nothing.
type Selection struct {
	Campaign string
	Start    time.Time
	End      time.Time
	Metric   Metric
}

// Covers reports whether date falls within [Start, End].
func (s Selection) Covers(date time.Time) bool {
	return !date.Before(s.Start) && !date.After(s.End)
}

// KPISummary holds the scalar indicators of a campaign over a period.
// MeanCTR and MeanCPC are NaN when no record contributed.
type KPISummary struct {
	TotalSpend  float64
	TotalClicks int64
	MeanCTR     float64
	MeanCPC     float64
}

// ComparisonRow is the aggregated metric of one campaign.
type ComparisonRow struct {
	Campaign string
	Value    float64
}

// Comparison is a metric aggregated per campaign, one row per campaign
// present in the filtered period.
type Comparison struct {
	Metric      Metric
	Aggregation Aggregation
	Rows        []ComparisonRow
}

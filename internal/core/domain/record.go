package domain

import "time"

// Record is one row of the campaign report: the daily performance of a
// single campaign. Spend and CPC are in reais, CTR is a percentage.
// Spend, CTR and CPC hold NaN when the source cell was blank.
type Record struct {
	Campaign string
	Date     time.Time
	Clicks   int64
	Spend    float64
	CTR      float64
	CPC      float64
}

// DateLayout is the calendar date format used on the wire.
const DateLayout = "2006-01-02"

// DateOf truncates t to its calendar date at UTC midnight.
func DateOf(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// Package analytics filters the campaign dataset and reduces it to the
// indicators shown on the dashboard.
package analytics

import (
	"time"

	"ads-dashboard/internal/core/domain"
)

// Views are the two slices of the dataset a dashboard refresh works on.
// Both keep dataset order.
type Views struct {
	// Campaign holds the records of the selected campaign within the period.
	Campaign []domain.Record
	// All holds the records of every campaign within the period.
	All []domain.Record
}

// Filter restricts ds to [start, end], inclusive on both bounds, and
// additionally to campaign for the Campaign view. Bounds are compared as
// calendar dates. An inverted or out-of-range interval yields empty views.
func Filter(ds *domain.Dataset, campaign string, start, end time.Time) Views {
	sel := domain.Selection{
		Campaign: campaign,
		Start:    domain.DateOf(start),
		End:      domain.DateOf(end),
	}

	var v Views
	ds.Each(func(r domain.Record) {
		if !sel.Covers(r.Date) {
			return
		}
		v.All = append(v.All, r)
		if r.Campaign == sel.Campaign {
			v.Campaign = append(v.Campaign, r)
		}
	})
	return v
}

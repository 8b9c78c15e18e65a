package domain

import (
	"fmt"
	"slices"
	"time"
)

// Dataset is the campaign report held in memory for the process lifetime.
// It is built once by a loader and never mutated afterwards, so it may be
// shared by any number of concurrent readers. Accessors return copies.
type Dataset struct {
	records   []Record
	campaigns []string
	minDate   time.Time
	maxDate   time.Time
}

// NewDataset builds a Dataset from records, keeping their order. Dates are
// truncated to calendar days. An empty slice yields ErrEmptyDataset.
func NewDataset(records []Record) (*Dataset, error) {
	if len(records) == 0 {
		return nil, ErrEmptyDataset
	}
	ds := &Dataset{records: make([]Record, len(records))}
	seen := make(map[string]struct{})
	for i, r := range records {
		if r.Date.IsZero() {
			return nil, fmt.Errorf("record %d: missing date", i)
		}
		r.Date = DateOf(r.Date)
		ds.records[i] = r

		if _, ok := seen[r.Campaign]; !ok {
			seen[r.Campaign] = struct{}{}
			ds.campaigns = append(ds.campaigns, r.Campaign)
		}
		if ds.minDate.IsZero() || r.Date.Before(ds.minDate) {
			ds.minDate = r.Date
		}
		if r.Date.After(ds.maxDate) {
			ds.maxDate = r.Date
		}
	}
	return ds, nil
}

// Len returns the number of records.
func (d *Dataset) Len() int { return len(d.records) }

// Records returns a copy of all records in load order.
func (d *Dataset) Records() []Record { return slices.Clone(d.records) }

// Campaigns returns the distinct campaign identifiers in order of first
// appearance.
func (d *Dataset) Campaigns() []string { return slices.Clone(d.campaigns) }

// HasCampaign reports whether id appears in the dataset.
func (d *Dataset) HasCampaign(id string) bool { return slices.Contains(d.campaigns, id) }

// MinDate returns the earliest record date.
func (d *Dataset) MinDate() time.Time { return d.minDate }

// MaxDate returns the latest record date.
func (d *Dataset) MaxDate() time.Time { return d.maxDate }

// Each calls fn for every record in load order without copying the slice.
func (d *Dataset) Each(fn func(Record)) {
	for _, r := range d.records {
		fn(r)
	}
}

package domain

import "errors"

var (
	// ErrCampaignColumnNotFound is returned at load time when none of the
	// CampaignColumnAliases is present in the report header.
	ErrCampaignColumnNotFound = errors.New("campaign column not found")
	// ErrColumnNotFound is returned when a required metric or date column
	// is missing.
	ErrColumnNotFound = errors.New("required column not found")
	// ErrEmptyDataset is returned when the report has no data rows.
	ErrEmptyDataset = errors.New("dataset has no rows")
	// ErrUnknownMetric is returned for a comparison metric outside Metrics.
	ErrUnknownMetric = errors.New("unknown metric")
)

package xlsx

import (
	"fmt"
	"strings"

	"ads-dashboard/internal/core/domain"
)

// columns maps the logical fields of a record to header positions.
type columns struct {
	campaignName string
	campaign     int
	date         int
	clicks       int
	spend        int
	ctr          int
	cpc          int
}

func resolveColumns(header []string) (columns, error) {
	names := make([]string, len(header))
	index := make(map[string]int, len(header))
	for i, h := range header {
		names[i] = strings.TrimSpace(h)
		if _, dup := index[names[i]]; !dup {
			index[names[i]] = i
		}
	}

	campaign, ok := domain.ResolveCampaignColumn(names)
	if !ok {
		return columns{}, fmt.Errorf("%w: expected one of %s",
			domain.ErrCampaignColumnNotFound, strings.Join(domain.CampaignColumnAliases, ", "))
	}

	cols := columns{campaignName: campaign, campaign: index[campaign]}
	required := []struct {
		name string
		dst  *int
	}{
		{domain.ColumnDate, &cols.date},
		{domain.ColumnClicks, &cols.clicks},
		{domain.ColumnSpend, &cols.spend},
		{domain.ColumnCTR, &cols.ctr},
		{domain.ColumnCPC, &cols.cpc},
	}
	for _, col := range required {
		i, ok := index[col.name]
		if !ok {
			return columns{}, fmt.Errorf("%w: %q", domain.ErrColumnNotFound, col.name)
		}
		*col.dst = i
	}
	return cols, nil
}

func (c columns) record(row []string, rowNum int, date1904 bool) (domain.Record, error) {
	var (
		rec domain.Record
		err error
	)
	rec.Campaign = cell(row, c.campaign)

	if rec.Date, err = parseDate(cell(row, c.date), date1904); err != nil {
		return rec, parseError(rowNum, domain.ColumnDate, cell(row, c.date), err)
	}
	if rec.Clicks, err = parseCount(cell(row, c.clicks)); err != nil {
		return rec, parseError(rowNum, domain.ColumnClicks, cell(row, c.clicks), err)
	}
	if rec.Spend, err = parseNumber(cell(row, c.spend)); err != nil {
		return rec, parseError(rowNum, domain.ColumnSpend, cell(row, c.spend), err)
	}
	if rec.CTR, err = parseNumber(cell(row, c.ctr)); err != nil {
		return rec, parseError(rowNum, domain.ColumnCTR, cell(row, c.ctr), err)
	}
	if rec.CPC, err = parseNumber(cell(row, c.cpc)); err != nil {
		return rec, parseError(rowNum, domain.ColumnCPC, cell(row, c.cpc), err)
	}
	return rec, nil
}

// cell returns the trimmed value at i. GetRows drops trailing empty cells,
// so short rows read as blank.
func cell(row []string, i int) string {
	if i < len(row) {
		return strings.TrimSpace(row[i])
	}
	return ""
}

// Package xlsx reads the campaign report from an Excel workbook and writes
// filtered records back out in the same layout.
package xlsx

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/xuri/excelize/v2"

	"ads-dashboard/internal/core/domain"
)

// Loader implements port.DatasetSource over a workbook on disk.
type Loader struct {
	path   string
	sheet  string
	logger *slog.Logger
}

// NewLoader returns a loader for sheet in the workbook at path.
func NewLoader(path, sheet string, logger *slog.Logger) *Loader {
	return &Loader{path: path, sheet: sheet, logger: logger}
}

// Load reads the whole sheet into a Dataset. It fails when the campaign
// column cannot be resolved, a required column is absent, any date or
// number cannot be parsed, or the sheet has no data rows.
func (l *Loader) Load(ctx context.Context) (*domain.Dataset, error) {
	f, err := excelize.OpenFile(l.path)
	if err != nil {
		return nil, fmt.Errorf("open workbook %s: %w", l.path, err)
	}
	defer f.Close()

	ds, campaignCol, err := readSheet(ctx, f, l.sheet)
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", l.path, err)
	}
	l.logger.Info("dataset loaded",
		slog.String("path", l.path),
		slog.String("sheet", l.sheet),
		slog.String("campaign_column", campaignCol),
		slog.Int("records", ds.Len()),
		slog.Int("campaigns", len(ds.Campaigns())),
	)
	return ds, nil
}

// Read parses sheet from a workbook stream.
func Read(ctx context.Context, r io.Reader, sheet string) (*domain.Dataset, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("open workbook: %w", err)
	}
	defer f.Close()

	ds, _, err := readSheet(ctx, f, sheet)
	return ds, err
}

func readSheet(ctx context.Context, f *excelize.File, sheet string) (*domain.Dataset, string, error) {
	rows, err := f.GetRows(sheet, excelize.Options{RawCellValue: true})
	if err != nil {
		return nil, "", fmt.Errorf("read sheet %q: %w", sheet, err)
	}
	if len(rows) == 0 {
		return nil, "", domain.ErrEmptyDataset
	}

	cols, err := resolveColumns(rows[0])
	if err != nil {
		return nil, "", err
	}

	date1904 := false
	if props, err := f.GetWorkbookProps(); err == nil && props.Date1904 != nil {
		date1904 = *props.Date1904
	}

	records := make([]domain.Record, 0, len(rows)-1)
	for i, row := range rows[1:] {
		if err = ctx.Err(); err != nil {
			return nil, "", err
		}
		if isBlank(row) {
			continue
		}
		// Spreadsheet rows are 1-based and the header takes the first.
		rec, err := cols.record(row, i+2, date1904)
		if err != nil {
			return nil, "", err
		}
		records = append(records, rec)
	}

	ds, err := domain.NewDataset(records)
	if err != nil {
		return nil, "", err
	}
	return ds, cols.campaignName, nil
}

func isBlank(row []string) bool {
	for _, v := range row {
		if strings.TrimSpace(v) != "" {
			return false
		}
	}
	return true
}

package xlsx

import (
	"fmt"
	"io"
	"math"

	"github.com/xuri/excelize/v2"

	"ads-dashboard/internal/core/domain"
)

// exportHeader mirrors the report layout so an export loads back as-is.
var exportHeader = []interface{}{
	domain.ColumnDate,
	domain.CampaignColumnAliases[0],
	domain.ColumnClicks,
	domain.ColumnSpend,
	domain.ColumnCTR,
	domain.ColumnCPC,
}

// Write encodes records as a single-sheet workbook named sheet.
func Write(w io.Writer, sheet string, records []domain.Record) error {
	f := excelize.NewFile()
	defer f.Close()

	if def := f.GetSheetName(0); def != sheet {
		if err := f.SetSheetName(def, sheet); err != nil {
			return fmt.Errorf("rename sheet: %w", err)
		}
	}
	if err := f.SetSheetRow(sheet, "A1", &exportHeader); err != nil {
		return fmt.Errorf("write header: %w", err)
	}

	for i, r := range records {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		row := []interface{}{r.Date, r.Campaign, r.Clicks, blankNaN(r.Spend), blankNaN(r.CTR), blankNaN(r.CPC)}
		if err = f.SetSheetRow(sheet, cell, &row); err != nil {
			return fmt.Errorf("write row %d: %w", i+2, err)
		}
	}

	if len(records) > 0 {
		layout := "yyyy-mm-dd"
		style, err := f.NewStyle(&excelize.Style{CustomNumFmt: &layout})
		if err != nil {
			return err
		}
		last, err := excelize.CoordinatesToCellName(1, len(records)+1)
		if err != nil {
			return err
		}
		if err = f.SetCellStyle(sheet, "A2", last, style); err != nil {
			return err
		}
	}

	return f.Write(w)
}

// blankNaN leaves cells for missing values empty.
func blankNaN(v float64) interface{} {
	if math.IsNaN(v) {
		return nil
	}
	return v
}

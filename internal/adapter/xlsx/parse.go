package xlsx

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/xuri/excelize/v2"

	"ads-dashboard/internal/core/domain"
)

var (
	errBlank      = errors.New("value is blank")
	errNotInteger = errors.New("not a non-negative whole number")
	errNotFinite  = errors.New("not a finite number")
)

// missingMarkers are cell texts that mean "no value", read like a blank cell.
var missingMarkers = map[string]struct{}{
	"#N/A": {}, "#N/A N/A": {}, "#NA": {}, "-1.#IND": {}, "-1.#QNAN": {},
	"-NaN": {}, "-nan": {}, "1.#IND": {}, "1.#QNAN": {}, "<NA>": {},
	"N/A": {}, "NA": {}, "NULL": {}, "NaN": {}, "None": {}, "n/a": {},
	"nan": {}, "null": {},
}

func isMissing(s string) bool {
	if s == "" {
		return true
	}
	_, ok := missingMarkers[s]
	return ok
}

// ParseError reports a cell that could not be converted. Any ParseError
// aborts the load.
type ParseError struct {
	Row    int
	Column string
	Value  string
	Err    error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("row %d, column %q: cannot parse %q: %v", e.Row, e.Column, e.Value, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }

func parseError(row int, column, value string, err error) error {
	return &ParseError{Row: row, Column: column, Value: value, Err: err}
}

// dateLayouts are tried in order for dates stored as text. Slashed dates
// are read day first; month first only matches when the day is above 12.
var dateLayouts = []string{
	domain.DateLayout,
	"2006-01-02 15:04:05",
	time.RFC3339,
	"2006-01-02T15:04:05",
	"02/01/2006",
	"02/01/2006 15:04:05",
	"01/02/2006",
	"01/02/2006 15:04:05",
	"2006/01/02",
	"2006/01/02 15:04:05",
}

// parseDate accepts an Excel serial date or one of dateLayouts and returns
// the calendar date.
func parseDate(s string, date1904 bool) (time.Time, error) {
	if s == "" {
		return time.Time{}, errBlank
	}
	if serial, err := strconv.ParseFloat(s, 64); err == nil {
		t, err := excelize.ExcelDateToTime(serial, date1904)
		if err != nil {
			return time.Time{}, err
		}
		return domain.DateOf(t), nil
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return domain.DateOf(t), nil
		}
	}
	return time.Time{}, fmt.Errorf("unrecognised date format")
}

// parseNumber reads a decimal that may use either "." or "," as the
// decimal separator and may carry a "R$" prefix or "%" suffix. Blank cells
// and missing markers such as "N/A" are NaN; infinities are rejected.
func parseNumber(s string) (float64, error) {
	if isMissing(s) {
		return math.NaN(), nil
	}
	s = strings.TrimSpace(strings.TrimSuffix(strings.TrimPrefix(s, "R$"), "%"))
	if isMissing(s) {
		return math.NaN(), nil
	}
	v, err := strconv.ParseFloat(normalizeDecimal(s), 64)
	if err != nil {
		return 0, err
	}
	if math.IsInf(v, 0) {
		return 0, errNotFinite
	}
	return v, nil
}

// parseCount reads a click count. Blank cells and missing markers count as
// zero.
func parseCount(s string) (int64, error) {
	if isMissing(s) {
		return 0, nil
	}
	v, err := strconv.ParseFloat(normalizeDecimal(s), 64)
	if err != nil {
		return 0, err
	}
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, errNotFinite
	}
	if v < 0 || v != math.Trunc(v) {
		return 0, errNotInteger
	}
	return int64(v), nil
}

// normalizeDecimal rewrites s so the last of "." and "," is the decimal
// point and the other is dropped as a thousands separator.
func normalizeDecimal(s string) string {
	dot := strings.LastIndex(s, ".")
	comma := strings.LastIndex(s, ",")
	switch {
	case comma < 0:
		return s
	case dot < 0 && strings.Count(s, ",") == 1:
		return strings.Replace(s, ",", ".", 1)
	case dot < 0:
		return strings.ReplaceAll(s, ",", "")
	case comma > dot:
		return strings.Replace(strings.ReplaceAll(s, ".", ""), ",", ".", 1)
	default:
		return strings.ReplaceAll(s, ",", "")
	}
}

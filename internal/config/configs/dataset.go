package configs

import "fmt"

// Dataset source kinds.
const (
	SourceXLSX     = "xlsx"
	SourcePostgres = "postgres"
)

// Dataset selects where the campaign report is loaded from at startup.
type Dataset struct {
	// Source is "xlsx" (default) or "postgres".
	Source string `env:"SOURCE" envDefault:"xlsx"`
	// Path is the workbook to read for the xlsx source.
	Path string `env:"PATH" envDefault:"relatorio_facebook_ads_2025-09-17.xlsx"`
	// Sheet is the worksheet holding the report.
	Sheet string `env:"SHEET" envDefault:"Campanhas"`
}

// Validate checks the source kind and its required settings.
func (c Dataset) Validate() error {
	switch c.Source {
	case SourceXLSX:
		if c.Path == "" {
			return fmt.Errorf("dataset path is required for the %s source", SourceXLSX)
		}
		if c.Sheet == "" {
			return fmt.Errorf("dataset sheet is required for the %s source", SourceXLSX)
		}
		return nil
	case SourcePostgres:
		return nil
	default:
		return fmt.Errorf("unknown dataset source %q: must be %q or %q", c.Source, SourceXLSX, SourcePostgres)
	}
}

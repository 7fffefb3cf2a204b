// Package sheetmerge normalizes spreadsheet exports that share an offset
// tabular layout and merges them into one styled workbook.
package sheetmerge

import (
	"log/slog"

	"github.com/ukaji3/sheetmerge-go/pkg/sheetmerge/normalize"
	"github.com/ukaji3/sheetmerge-go/pkg/sheetmerge/parser"
	"github.com/ukaji3/sheetmerge-go/pkg/sheetmerge/styler"
)

// Source is one input spreadsheet, read from Path or from Data.
type Source = parser.Source

// Options configures a merge run.
type Options struct {
	// HeaderRow is the 0-based row holding column names in every input.
	HeaderRow int
	// SheetName selects the input sheet by name; empty means the first sheet.
	SheetName string
	// OutputSheet names the sheet of the merged workbook.
	OutputSheet string
	// MaxFileSize rejects larger inputs when positive.
	MaxFileSize int64
	// Workers bounds how many files are loaded concurrently.
	// Values below one load sequentially.
	Workers int
	// Normalize configures column detection.
	Normalize normalize.Options
	// Palette sets the highlight colors.
	Palette styler.Palette
	// Logger receives progress and diagnostics. Nil uses slog.Default.
	Logger *slog.Logger
}

// DefaultOptions returns the options matching the observed export layout.
func DefaultOptions() Options {
	return Options{
		HeaderRow:   parser.DefaultHeaderRow,
		OutputSheet: styler.DefaultSheetName,
		Workers:     1,
		Normalize:   normalize.DefaultOptions(),
		Palette:     styler.DefaultPalette(),
	}
}

func (o Options) loadOptions() parser.LoadOptions {
	return parser.LoadOptions{
		HeaderRow:   o.HeaderRow,
		SheetName:   o.SheetName,
		MaxFileSize: o.MaxFileSize,
	}
}

func (o Options) logger() *slog.Logger {
	if o.Logger != nil {
		return o.Logger
	}
	return slog.Default()
}

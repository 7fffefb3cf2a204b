// Package parser reads .xls and .xlsx exports into raw tables.
package parser

import (
	"bytes"
	"fmt"

	"github.com/ukaji3/sheetmerge-go/pkg/sheetmerge/models"
	"github.com/xuri/excelize/v2"
)

// DefaultHeaderRow is the 0-based row holding column names in the exports:
// the first two rows carry report titles.
const DefaultHeaderRow = 2

// LoadOptions configures how a single source is read.
type LoadOptions struct {
	// HeaderRow is the 0-based index of the header row.
	HeaderRow int
	// SheetName selects a sheet by name; empty means the first sheet.
	SheetName string
	// MaxFileSize rejects larger sources when positive.
	MaxFileSize int64
}

// DefaultLoadOptions returns the options matching the observed export layout.
func DefaultLoadOptions() LoadOptions {
	return LoadOptions{HeaderRow: DefaultHeaderRow}
}

// Load reads one spreadsheet source into a raw table. Cells keep the type
// stored in the file; no numeric or date coercion happens here.
func Load(src Source, opts LoadOptions) (*models.Table, error) {
	if opts.MaxFileSize > 0 {
		size, err := src.Size()
		if err != nil {
			return nil, err
		}
		if size > opts.MaxFileSize {
			return nil, fmt.Errorf("%w: %d bytes exceeds limit of %d", ErrFileTooLarge, size, opts.MaxFileSize)
		}
	}

	var (
		rows [][]models.Cell
		err  error
	)
	switch src.Format() {
	case "xlsx", "xlsm":
		rows, err = readXLSX(src, opts.SheetName)
	case "xls":
		rows, err = readXLS(src, opts.SheetName)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, src.Name)
	}
	if err != nil {
		return nil, err
	}

	return BuildTable(src.Name, rows, opts.HeaderRow)
}

func readXLSX(src Source, sheetName string) ([][]models.Cell, error) {
	var (
		f   *excelize.File
		err error
	)
	if src.Data != nil {
		f, err = excelize.OpenReader(bytes.NewReader(src.Data))
	} else {
		f, err = excelize.OpenFile(src.Path)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to open .xlsx file: %w", err)
	}
	defer f.Close()

	if sheetName == "" {
		sheets := f.GetSheetList()
		if len(sheets) == 0 {
			return nil, fmt.Errorf("workbook has no sheets")
		}
		sheetName = sheets[0]
	}

	return ExtractCells(f, sheetName)
}

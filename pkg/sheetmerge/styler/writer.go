package styler

import (
	"fmt"

	"github.com/ukaji3/sheetmerge-go/pkg/sheetmerge/models"
	"github.com/xuri/excelize/v2"
)

// DefaultSheetName is the sheet the merged table is written to.
const DefaultSheetName = "Sheet1"

// WriteTable writes the column names on row 1 and the data from row 2 on.
// Cells keep their type; null cells are left unset.
func WriteTable(f *excelize.File, sheet string, t *models.Table) error {
	header := make([]interface{}, t.Width())
	for i, name := range t.Columns {
		header[i] = name
	}
	if err := f.SetSheetRow(sheet, "A1", &header); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}

	for r, row := range t.Rows {
		for c, cell := range row {
			v := cell.Value()
			if v == nil {
				continue
			}
			cellName, err := excelize.CoordinatesToCellName(c+1, r+2)
			if err != nil {
				return err
			}
			if err := f.SetCellValue(sheet, cellName, v); err != nil {
				return fmt.Errorf("failed to write %s: %w", cellName, err)
			}
		}
	}

	return nil
}

// NewWorkbook creates a workbook holding the table on a single sheet.
func NewWorkbook(sheet string, t *models.Table) (*excelize.File, error) {
	f := excelize.NewFile()
	if sheet == "" {
		sheet = DefaultSheetName
	}
	if sheet != DefaultSheetName {
		if err := f.SetSheetName(DefaultSheetName, sheet); err != nil {
			f.Close()
			return nil, err
		}
	}
	if err := WriteTable(f, sheet, t); err != nil {
		f.Close()
		return nil, err
	}
	return f, nil
}

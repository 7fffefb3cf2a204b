package parser

import (
	"fmt"
	"os"
	"strings"

	"github.com/shakinm/xlsReader/xls"
	"github.com/ukaji3/sheetmerge-go/pkg/sheetmerge/models"
)

// readXLS reads the first sheet (or the named one) of a legacy BIFF workbook.
func readXLS(src Source, sheetName string) ([][]models.Cell, error) {
	path := src.Path
	if src.Data != nil {
		// xlsReader only opens files by path.
		tempFile, err := os.CreateTemp("", "sheetmerge-*.xls")
		if err != nil {
			return nil, fmt.Errorf("failed to create temp file: %w", err)
		}
		defer os.Remove(tempFile.Name())

		if _, err := tempFile.Write(src.Data); err != nil {
			tempFile.Close()
			return nil, fmt.Errorf("failed to write temp file: %w", err)
		}
		if err := tempFile.Close(); err != nil {
			return nil, fmt.Errorf("failed to write temp file: %w", err)
		}
		path = tempFile.Name()
	}

	workbook, err := xls.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open .xls file: %w", err)
	}

	sheetIndex := 0
	if sheetName != "" {
		sheetIndex = -1
		for i := 0; i < workbook.GetNumberSheets(); i++ {
			sheet, err := workbook.GetSheet(i)
			if err == nil && sheet != nil && sheet.GetName() == sheetName {
				sheetIndex = i
				break
			}
		}
		if sheetIndex < 0 {
			return nil, fmt.Errorf("sheet %q not found", sheetName)
		}
	}
	if workbook.GetNumberSheets() == 0 {
		return nil, fmt.Errorf("workbook has no sheets")
	}

	sheet, err := workbook.GetSheet(sheetIndex)
	if err != nil || sheet == nil {
		return nil, fmt.Errorf("failed to read sheet %d: %v", sheetIndex, err)
	}

	var rows [][]models.Cell
	for i := 0; i <= int(sheet.GetNumberRows()); i++ {
		row, err := sheet.GetRow(i)
		if err != nil || row == nil {
			// Keep positions: the header is located by row index.
			rows = append(rows, nil)
			continue
		}

		var cells []models.Cell
		for _, col := range row.GetCols() {
			if col == nil {
				cells = append(cells, models.Empty())
				continue
			}
			cells = append(cells, xlsCell(col, col.GetString()))
		}
		rows = append(rows, cells)
	}

	return rows, nil
}

// xlsCell types a BIFF cell. Only numeric records become numbers; labels
// stay text even when they look numeric.
func xlsCell(col interface{}, s string) models.Cell {
	if s == "" {
		return models.Empty()
	}
	typed, ok := col.(interface{ GetType() string })
	if !ok {
		return models.Text(s)
	}
	kind := typed.GetType()
	if strings.Contains(kind, "Number") || strings.Contains(kind, "Rk") {
		if fl, ok := col.(interface{ GetFloat64() float64 }); ok {
			return models.Number(fl.GetFloat64())
		}
		return parseValue(s)
	}
	return models.Text(s)
}

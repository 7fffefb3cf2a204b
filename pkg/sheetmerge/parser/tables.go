package parser

import (
	"fmt"

	"github.com/ukaji3/sheetmerge-go/pkg/sheetmerge/models"
)

// BuildTable turns positional sheet rows into a table whose header is the
// row at headerRow (0-based). Rows above the header are discarded.
func BuildTable(name string, rows [][]models.Cell, headerRow int) (*models.Table, error) {
	lastRow, lastCol := findDataBounds(rows)
	if lastRow < headerRow {
		return nil, fmt.Errorf("%w: sheet has %d rows, header expected on row %d",
			ErrMissingHeader, lastRow+1, headerRow+1)
	}

	width := lastCol + 1
	header := rows[headerRow]
	columns := make([]string, width)
	for colIdx := 0; colIdx < width; colIdx++ {
		if colIdx < len(header) && header[colIdx].Kind != models.KindEmpty {
			columns[colIdx] = header[colIdx].String()
		} else {
			columns[colIdx] = models.PlaceholderName(colIdx)
		}
	}

	table := &models.Table{
		Source:  name,
		Columns: models.UniqueNames(columns),
	}
	for rowIdx := headerRow + 1; rowIdx <= lastRow; rowIdx++ {
		row := make([]models.Cell, width)
		copy(row, rows[rowIdx])
		table.Rows = append(table.Rows, row)
	}

	return table, nil
}

// findDataBounds returns the last row and column holding a non-null cell,
// or -1 when the sheet is empty.
func findDataBounds(rows [][]models.Cell) (maxRow, maxCol int) {
	maxRow, maxCol = -1, -1

	for rowIdx, row := range rows {
		for colIdx, cell := range row {
			if cell.Kind != models.KindEmpty {
				if rowIdx > maxRow {
					maxRow = rowIdx
				}
				if colIdx > maxCol {
					maxCol = colIdx
				}
			}
		}
	}

	return
}

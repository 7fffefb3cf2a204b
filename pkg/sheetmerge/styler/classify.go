// Package styler writes merged tables to a workbook and applies the
// presentation pass that highlights header, section and subtotal rows.
package styler

import (
	"github.com/ukaji3/sheetmerge-go/pkg/sheetmerge/models"
	"github.com/ukaji3/sheetmerge-go/pkg/sheetmerge/normalize"
)

const (
	// subtotalMinWidth is the column count a row must exceed to be a subtotal.
	subtotalMinWidth = 5
	// subtotalLeadCells is how many leading cells are inspected for blanks.
	subtotalLeadCells = 4
	// subtotalMinBlank is how many of the leading cells must be blank.
	subtotalMinBlank = 3
)

// ClassifyRow assigns a presentation tag to a data row. The subtotal shape
// is checked before section markers, so a row matching both is a subtotal.
func ClassifyRow(row []models.Cell) models.RowTag {
	if isSubtotal(row) {
		return models.TagSubtotal
	}
	if normalize.RowContainsAny(row, normalize.SectionMarkers) {
		return models.TagSectionMarker
	}
	return models.TagPlain
}

// isSubtotal matches rows with mostly blank leading cells and a nonzero
// number somewhere after the fourth column.
func isSubtotal(row []models.Cell) bool {
	if len(row) <= subtotalMinWidth {
		return false
	}

	blank := 0
	for _, c := range row[:subtotalLeadCells] {
		if c.IsBlank() {
			blank++
		}
	}
	if blank < subtotalMinBlank {
		return false
	}

	for _, c := range row[subtotalLeadCells:] {
		if c.IsNonzeroNumber() {
			return true
		}
	}
	return false
}

package parser

import (
	"strconv"
	"strings"
	"time"

	"github.com/ukaji3/sheetmerge-go/pkg/sheetmerge/models"
	"github.com/xuri/excelize/v2"
)

// cellReader types the raw values of one xlsx sheet. Style lookups are cached
// per style id since most cells of a report share a handful of styles.
type cellReader struct {
	f          *excelize.File
	sheet      string
	date1904   bool
	dateStyles map[int]bool
}

// ExtractCells reads every row of a sheet as typed cells.
// Row and column positions are preserved: blank rows come back as empty
// slices and blank cells as models.KindEmpty.
func ExtractCells(f *excelize.File, sheetName string) ([][]models.Cell, error) {
	rows, err := f.GetRows(sheetName, excelize.Options{RawCellValue: true})
	if err != nil {
		return nil, err
	}

	r := &cellReader{
		f:          f,
		sheet:      sheetName,
		dateStyles: make(map[int]bool),
	}
	if props, err := f.GetWorkbookProps(); err == nil && props.Date1904 != nil {
		r.date1904 = *props.Date1904
	}

	result := make([][]models.Cell, len(rows))
	for rowIdx, row := range rows {
		cells := make([]models.Cell, len(row))
		for colIdx, raw := range row {
			if raw == "" {
				continue
			}
			cellName, err := excelize.CoordinatesToCellName(colIdx+1, rowIdx+1)
			if err != nil {
				return nil, err
			}
			cells[colIdx] = r.typed(cellName, raw)
		}
		result[rowIdx] = cells
	}

	return result, nil
}

// typed converts a raw cell value according to the type stored in the sheet.
// Strings are never coerced to numbers.
func (r *cellReader) typed(cellName, raw string) models.Cell {
	cellType, err := r.f.GetCellType(r.sheet, cellName)
	if err != nil {
		return models.Text(raw)
	}

	switch cellType {
	case excelize.CellTypeSharedString, excelize.CellTypeInlineString,
		excelize.CellTypeFormula, excelize.CellTypeError:
		return models.Text(raw)
	case excelize.CellTypeBool:
		return models.Bool(raw == "1" || strings.EqualFold(raw, "true"))
	case excelize.CellTypeDate:
		if t, ok := parseISODate(raw); ok {
			return models.Date(t)
		}
		return models.Text(raw)
	}

	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return models.Text(raw)
	}
	if r.isDateStyled(cellName) {
		if t, err := excelize.ExcelDateToTime(v, r.date1904); err == nil {
			return models.Date(t)
		}
	}
	return models.Number(v)
}

func (r *cellReader) isDateStyled(cellName string) bool {
	styleID, err := r.f.GetCellStyle(r.sheet, cellName)
	if err != nil || styleID == 0 {
		return false
	}
	if isDate, ok := r.dateStyles[styleID]; ok {
		return isDate
	}
	isDate := false
	if style, err := r.f.GetStyle(styleID); err == nil && style != nil {
		if style.CustomNumFmt != nil {
			isDate = isDateFormatCode(*style.CustomNumFmt)
		} else {
			isDate = isBuiltInDateFormat(style.NumFmt)
		}
	}
	r.dateStyles[styleID] = isDate
	return isDate
}

// isBuiltInDateFormat reports whether a built-in number format id renders dates or times.
func isBuiltInDateFormat(id int) bool {
	switch {
	case id >= 14 && id <= 22:
		return true
	case id >= 27 && id <= 36:
		return true
	case id >= 45 && id <= 47:
		return true
	case id >= 50 && id <= 58:
		return true
	case id >= 71 && id <= 81:
		return true
	}
	return false
}

// isDateFormatCode reports whether a custom number format code contains date
// or time tokens once quoted literals, bracketed sections and escapes are removed.
func isDateFormatCode(code string) bool {
	var b strings.Builder
	inQuote, inBracket := false, false
	for i := 0; i < len(code); i++ {
		ch := code[i]
		switch {
		case inQuote:
			if ch == '"' {
				inQuote = false
			}
			continue
		case inBracket:
			if ch == ']' {
				inBracket = false
			}
			continue
		case ch == '"':
			inQuote = true
			continue
		case ch == '[':
			inBracket = true
			continue
		case ch == '\\' || ch == '_' || ch == '*':
			i++
			continue
		}
		b.WriteByte(ch)
	}
	return strings.ContainsAny(strings.ToLower(b.String()), "dmyhs")
}

func parseISODate(raw string) (time.Time, bool) {
	for _, layout := range []string{time.RFC3339Nano, "2006-01-02T15:04:05.999999999", "2006-01-02T15:04:05", "2006-01-02"} {
		if t, err := time.Parse(layout, raw); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// parseValue interprets a cell string from a reader that exposes no type
// information. Returns a number for numeric strings, text otherwise.
func parseValue(s string) models.Cell {
	if s == "" {
		return models.Empty()
	}
	if f, err := strconv.ParseFloat(s, 64); err == nil {
		return models.Number(f)
	}
	return models.Text(s)
}

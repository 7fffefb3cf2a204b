package styler

import (
	"fmt"
	"strings"

	"github.com/ukaji3/sheetmerge-go/pkg/sheetmerge/models"
	"github.com/xuri/excelize/v2"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Palette holds the RGB fill colors of the presentation pass.
type Palette struct {
	Header        string `yaml:"header" validate:"len=6,hexadecimal"`
	SectionMarker string `yaml:"section_marker" split_words:"true" validate:"len=6,hexadecimal"`
	Subtotal      string `yaml:"subtotal" validate:"len=6,hexadecimal"`
}

// DefaultPalette returns green headers, yellow section rows and orange subtotals.
func DefaultPalette() Palette {
	return Palette{
		Header:        "00FF00",
		SectionMarker: "FFFF00",
		Subtotal:      "FFA500",
	}
}

// Summary counts the rows given each tag.
type Summary map[models.RowTag]int

// Styler applies the presentation pass to a written workbook.
type Styler struct {
	palette Palette
	upper   cases.Caser
}

// New creates a Styler for the given palette.
func New(p Palette) *Styler {
	return &Styler{
		palette: p,
		upper:   cases.Upper(language.Spanish),
	}
}

// Apply styles the sheet that t was written to: header cells are upper-cased,
// bold and filled; subtotal and section-marker rows are filled across the
// full table width.
func (s *Styler) Apply(f *excelize.File, sheet string, t *models.Table) (Summary, error) {
	summary := Summary{}
	if t.Width() == 0 {
		return summary, nil
	}

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
		Fill: solidFill(s.palette.Header),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create header style: %w", err)
	}
	fills := map[models.RowTag]excelize.Fill{
		models.TagSectionMarker: solidFill(s.palette.SectionMarker),
		models.TagSubtotal:      solidFill(s.palette.Subtotal),
	}
	rowStyles := map[fillKey]int{}

	for i, name := range t.Columns {
		if name == "" {
			continue
		}
		cellName, err := excelize.CoordinatesToCellName(i+1, 1)
		if err != nil {
			return nil, err
		}
		if err := f.SetCellValue(sheet, cellName, s.upper.String(name)); err != nil {
			return nil, err
		}
		if err := f.SetCellStyle(sheet, cellName, cellName, headerStyle); err != nil {
			return nil, err
		}
	}
	summary[models.TagHeader] = 1

	for r, row := range t.Rows {
		tag := ClassifyRow(row)
		summary[tag]++

		fill, ok := fills[tag]
		if !ok {
			continue
		}
		for c := 1; c <= t.Width(); c++ {
			cellName, err := excelize.CoordinatesToCellName(c, r+2)
			if err != nil {
				return nil, err
			}
			styleID, err := filledStyle(f, sheet, cellName, tag, fill, rowStyles)
			if err != nil {
				return nil, fmt.Errorf("failed to style row %d: %w", r+2, err)
			}
			if err := f.SetCellStyle(sheet, cellName, cellName, styleID); err != nil {
				return nil, fmt.Errorf("failed to style row %d: %w", r+2, err)
			}
		}
	}

	return summary, nil
}

// fillKey identifies a cell style with a row fill laid over it.
type fillKey struct {
	base int
	tag  models.RowTag
}

// filledStyle returns the style of cell with only its fill replaced. Derived
// styles are cached by base style and tag.
func filledStyle(f *excelize.File, sheet, cell string, tag models.RowTag, fill excelize.Fill, cache map[fillKey]int) (int, error) {
	base, err := f.GetCellStyle(sheet, cell)
	if err != nil {
		return 0, err
	}
	key := fillKey{base: base, tag: tag}
	if id, ok := cache[key]; ok {
		return id, nil
	}
	style, err := f.GetStyle(base)
	if err != nil {
		return 0, err
	}
	style.Fill = fill
	id, err := f.NewStyle(style)
	if err != nil {
		return 0, err
	}
	cache[key] = id
	return id, nil
}

func solidFill(color string) excelize.Fill {
	return excelize.Fill{
		Type:    "pattern",
		Color:   []string{strings.TrimPrefix(color, "#")},
		Pattern: 1,
	}
}

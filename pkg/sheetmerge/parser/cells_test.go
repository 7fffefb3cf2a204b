package parser

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/ukaji3/sheetmerge-go/pkg/sheetmerge/models"
	"github.com/xuri/excelize/v2"
)

func TestExtractCells(t *testing.T) {
	// Create a temporary Excel file for testing
	f := excelize.NewFile()
	defer f.Close()

	sheetName := "Sheet1"
	require.NoError(t, f.SetCellValue(sheetName, "A1", "Header1"))
	require.NoError(t, f.SetCellValue(sheetName, "B1", "Header2"))
	require.NoError(t, f.SetCellValue(sheetName, "A2", 100))
	require.NoError(t, f.SetCellValue(sheetName, "B2", 200.5))
	require.NoError(t, f.SetCellValue(sheetName, "A3", "Text"))
	require.NoError(t, f.SetCellValue(sheetName, "B3", "42"))
	require.NoError(t, f.SetCellValue(sheetName, "C3", true))
	require.NoError(t, f.SetCellValue(sheetName, "D3", time.Date(1990, 5, 15, 0, 0, 0, 0, time.UTC)))

	tmpFile := filepath.Join(t.TempDir(), "test.xlsx")
	require.NoError(t, f.SaveAs(tmpFile))

	f2, err := excelize.OpenFile(tmpFile)
	require.NoError(t, err)
	defer f2.Close()

	rows, err := ExtractCells(f2, sheetName)
	require.NoError(t, err)
	require.Len(t, rows, 3)

	assert.Equal(t, models.Text("Header1"), rows[0][0])
	assert.Equal(t, models.Number(100), rows[1][0])
	assert.Equal(t, models.Number(200.5), rows[1][1])
	assert.Equal(t, models.Text("Text"), rows[2][0])

	// Numeric-looking strings stay text.
	assert.Equal(t, models.Text("42"), rows[2][1])
	assert.Equal(t, models.Bool(true), rows[2][2])

	require.Equal(t, models.KindDate, rows[2][3].Kind)
	assert.Equal(t, "1990-05-15", rows[2][3].Time.Format("2006-01-02"))
}

func TestExtractCellsKeepsPositions(t *testing.T) {
	f := excelize.NewFile()
	defer f.Close()

	require.NoError(t, f.SetCellValue("Sheet1", "C3", "x"))

	rows, err := ExtractCells(f, "Sheet1")
	require.NoError(t, err)
	require.Len(t, rows, 3)
	assert.Empty(t, rows[0])
	assert.Empty(t, rows[1])
	require.Len(t, rows[2], 3)
	assert.Equal(t, models.KindEmpty, rows[2][0].Kind)
	assert.Equal(t, models.Text("x"), rows[2][2])
}

func TestIsBuiltInDateFormat(t *testing.T) {
	for _, id := range []int{14, 17, 22, 27, 45, 58} {
		assert.True(t, isBuiltInDateFormat(id), "format %d", id)
	}
	for _, id := range []int{0, 1, 2, 10, 49} {
		assert.False(t, isBuiltInDateFormat(id), "format %d", id)
	}
}

func TestIsDateFormatCode(t *testing.T) {
	tests := []struct {
		code string
		want bool
	}{
		{"dd/mm/yyyy", true},
		{"yyyy-mm-dd hh:mm", true},
		{"[$-409]d-mmm-yy", true},
		{"0.00", false},
		{"#,##0", false},
		{`0.0 "days"`, false},
		{"[Red]0.00", false},
	}

	for _, tt := range tests {
		t.Run(tt.code, func(t *testing.T) {
			assert.Equal(t, tt.want, isDateFormatCode(tt.code))
		})
	}
}

func TestParseValue(t *testing.T) {
	tests := []struct {
		input    string
		expected models.Cell
	}{
		{"123", models.Number(123)},
		{"123.45", models.Number(123.45)},
		{"-100", models.Number(-100)},
		{"hello", models.Text("hello")},
		{"", models.Empty()},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.expected, parseValue(tt.input))
		})
	}
}

func TestXLSCell(t *testing.T) {
	assert.Equal(t, models.Empty(), xlsCell(nil, ""))
	assert.Equal(t, models.Text("UE: 1"), xlsCell(fakeXLSCell{kind: "LabelSSt"}, "UE: 1"))
	assert.Equal(t, models.Text("15"), xlsCell(fakeXLSCell{kind: "LabelSSt"}, "15"))
	assert.Equal(t, models.Number(2.5), xlsCell(fakeXLSCell{kind: "*record.Number", value: 2.5}, "2.5"))
	assert.Equal(t, models.Number(7), xlsCell(fakeXLSCell{kind: "*record.Rk", value: 7}, "7"))
	assert.Equal(t, models.Text("raw"), xlsCell(struct{}{}, "raw"))
}

type fakeXLSCell struct {
	kind  string
	value float64
}

func (c fakeXLSCell) GetType() string     { return c.kind }
func (c fakeXLSCell) GetFloat64() float64 { return c.value }

package models

import (
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestCellIsBlank(t *testing.T) {
	tests := []struct {
		name string
		cell Cell
		want bool
	}{
		{"empty", Empty(), true},
		{"empty text", Text(""), true},
		{"whitespace", Text("  \t"), true},
		{"text", Text("UE: 1"), false},
		{"zero", Number(0), false},
		{"false", Bool(false), false},
		{"date", Date(time.Date(2024, 4, 3, 0, 0, 0, 0, time.UTC)), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.cell.IsBlank())
		})
	}
}

func TestCellIsNonzeroNumber(t *testing.T) {
	tests := []struct {
		name string
		cell Cell
		want bool
	}{
		{"positive", Number(10), true},
		{"negative", Number(-2.5), true},
		{"zero", Number(0), false},
		{"nan", Number(math.NaN()), false},
		{"true", Bool(true), true},
		{"false", Bool(false), false},
		{"numeric text", Text("5"), false},
		{"empty", Empty(), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.cell.IsNonzeroNumber())
		})
	}
}

func TestCellString(t *testing.T) {
	assert.Equal(t, "", Empty().String())
	assert.Equal(t, "Total Funcionarios : 4", Text("Total Funcionarios : 4").String())
	assert.Equal(t, "45000", Number(45000).String())
	assert.Equal(t, "1.5", Number(1.5).String())
	assert.Equal(t, "0.0001", Number(0.0001).String())
	assert.Equal(t, "1.5e-05", Number(1.5e-5).String())
	assert.Equal(t, "-2e-07", Number(-2e-7).String())
	assert.Equal(t, "1e+16", Number(1e16).String())
	assert.Equal(t, "0", Number(0).String())
	assert.Equal(t, "True", Bool(true).String())
	assert.Equal(t, "False", Bool(false).String())
	assert.Equal(t, "2024-04-03 00:00:00", Date(time.Date(2024, 4, 3, 0, 0, 0, 0, time.UTC)).String())
}

func TestCellValue(t *testing.T) {
	day := time.Date(1990, 5, 15, 0, 0, 0, 0, time.UTC)

	assert.Nil(t, Empty().Value())
	assert.Equal(t, "x", Text("x").Value())
	assert.Equal(t, int64(7), Number(7).Value())
	assert.Equal(t, 7.25, Number(7.25).Value())
	assert.Equal(t, true, Bool(true).Value())
	assert.Equal(t, day, Date(day).Value())
}

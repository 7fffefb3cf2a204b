// Package models defines the tabular data structures shared by the merge stages.
package models

import (
	"math"
	"strconv"
	"strings"
	"time"
)

// Kind identifies the scalar type a cell was loaded as.
type Kind int

const (
	// KindEmpty is a null cell.
	KindEmpty Kind = iota
	// KindText is a literal string, never coerced.
	KindText
	// KindNumber is a numeric cell stored as a number in the source.
	KindNumber
	// KindBool is a boolean cell.
	KindBool
	// KindDate is a numeric cell carrying a date number format.
	KindDate
)

// Cell is a loosely typed scalar value.
type Cell struct {
	// Kind is the scalar type.
	Kind Kind `json:"kind"`
	// Text holds the value for KindText.
	Text string `json:"text,omitempty"`
	// Number holds the value for KindNumber.
	Number float64 `json:"number,omitempty"`
	// Bool holds the value for KindBool.
	Bool bool `json:"bool,omitempty"`
	// Time holds the value for KindDate.
	Time time.Time `json:"time,omitempty"`
}

// Empty returns a null cell.
func Empty() Cell { return Cell{} }

// Text returns a text cell.
func Text(s string) Cell { return Cell{Kind: KindText, Text: s} }

// Number returns a numeric cell.
func Number(f float64) Cell { return Cell{Kind: KindNumber, Number: f} }

// Bool returns a boolean cell.
func Bool(b bool) Cell { return Cell{Kind: KindBool, Bool: b} }

// Date returns a date cell.
func Date(t time.Time) Cell { return Cell{Kind: KindDate, Time: t} }

// IsBlank reports whether the cell is null or whitespace-only text.
func (c Cell) IsBlank() bool {
	switch c.Kind {
	case KindEmpty:
		return true
	case KindText:
		return strings.TrimSpace(c.Text) == ""
	default:
		return false
	}
}

// IsNonzeroNumber reports whether the cell holds a numeric value other than zero.
// A true boolean counts as the number one.
func (c Cell) IsNonzeroNumber() bool {
	switch c.Kind {
	case KindNumber:
		return c.Number != 0 && !math.IsNaN(c.Number)
	case KindBool:
		return c.Bool
	default:
		return false
	}
}

// String returns the text form of the cell used for marker matching.
func (c Cell) String() string {
	switch c.Kind {
	case KindText:
		return c.Text
	case KindNumber:
		return formatNumber(c.Number)
	case KindBool:
		if c.Bool {
			return "True"
		}
		return "False"
	case KindDate:
		return c.Time.Format("2006-01-02 15:04:05")
	default:
		return ""
	}
}

// formatNumber renders n in plain decimal notation, switching to exponent
// notation below 1e-4 and from 1e16 on.
func formatNumber(n float64) string {
	if abs := math.Abs(n); abs != 0 && (abs < 1e-4 || abs >= 1e16) {
		return strconv.FormatFloat(n, 'e', -1, 64)
	}
	return strconv.FormatFloat(n, 'f', -1, 64)
}

// Value returns the cell as a plain Go value suitable for spreadsheet writers.
// Null cells return nil.
func (c Cell) Value() interface{} {
	switch c.Kind {
	case KindText:
		return c.Text
	case KindNumber:
		if c.Number == math.Trunc(c.Number) && math.Abs(c.Number) < 1e15 {
			return int64(c.Number)
		}
		return c.Number
	case KindBool:
		return c.Bool
	case KindDate:
		return c.Time
	default:
		return nil
	}
}

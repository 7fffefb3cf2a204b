package normalize

import (
	"strings"

	"github.com/ukaji3/sheetmerge-go/pkg/sheetmerge/models"
)

// Marker strings are matched by literal substring containment on the text
// form of each cell, exactly as they appear in the exports.
const (
	// FuncionarioTotalMarker starts the per-section headcount rows that are dropped.
	FuncionarioTotalMarker = "Total Funcionarios :"
	// StructureTotalMarker starts the program-structure total rows that are kept.
	StructureTotalMarker = "Totales por Estructura Programática:"
)

// SectionMarkers denote grouping boundary rows in the merged output.
var SectionMarkers = []string{
	"UE:",
	"Programa:",
	"Proyecto:",
	"Actividad:",
	"Fuente:",
	"Organismo:",
	StructureTotalMarker,
}

// RowContains reports whether any cell of the row contains marker.
func RowContains(row []models.Cell, marker string) bool {
	for _, c := range row {
		if strings.Contains(c.String(), marker) {
			return true
		}
	}
	return false
}

// RowContainsAny reports whether any cell of the row contains any of the markers.
func RowContainsAny(row []models.Cell, markers []string) bool {
	for _, c := range row {
		text := c.String()
		if text == "" {
			continue
		}
		for _, m := range markers {
			if strings.Contains(text, m) {
				return true
			}
		}
	}
	return false
}

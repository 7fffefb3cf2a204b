package models

// RowTag is the presentation class assigned to a row of the merged workbook.
type RowTag string

const (
	// TagHeader marks the column header row.
	TagHeader RowTag = "HEADER"
	// TagSectionMarker marks a grouping boundary row (unit, program, project, ...).
	TagSectionMarker RowTag = "SECTION_MARKER"
	// TagSubtotal marks an aggregate row detected structurally.
	TagSubtotal RowTag = "SUBTOTAL"
	// TagPlain marks an ordinary data row.
	TagPlain RowTag = "PLAIN"
)

package sheetmerge

import (
	"errors"
	"time"

	"github.com/ukaji3/sheetmerge-go/pkg/sheetmerge/models"
)

// FileReport describes one input that was loaded and normalized.
type FileReport struct {
	// File is the input file name.
	File string `json:"file" yaml:"file"`
	// Rows is the number of rows contributed to the merge.
	Rows int `json:"rows" yaml:"rows"`
	// Columns lists the normalized column names.
	Columns []string `json:"columns" yaml:"columns"`
	// Notes records column detection decisions.
	Notes []string `json:"notes,omitempty" yaml:"notes,omitempty"`
}

// LoadFailure describes one input that was skipped.
type LoadFailure struct {
	// File is the input file name.
	File string `json:"file" yaml:"file"`
	// Reason is the load error message.
	Reason string `json:"reason" yaml:"reason"`
	// Err is the *LoadError behind Reason.
	Err error `json:"-" yaml:"-"`
}

// Report collects the advisory diagnostics of a run.
type Report struct {
	// RunID identifies the run in logs.
	RunID string `json:"run_id" yaml:"run_id"`
	// StartedAt is when the run began.
	StartedAt time.Time `json:"started_at" yaml:"started_at"`
	// Duration is the wall time of the run.
	Duration time.Duration `json:"duration" yaml:"duration"`
	// Files lists the inputs that contributed, in merge order.
	Files []FileReport `json:"files" yaml:"files"`
	// Failures lists the inputs that were skipped.
	Failures []LoadFailure `json:"failures,omitempty" yaml:"failures,omitempty"`
	// Columns is the merged column order.
	Columns []string `json:"columns,omitempty" yaml:"columns,omitempty"`
	// MergedRows is the number of data rows in the output.
	MergedRows int `json:"merged_rows" yaml:"merged_rows"`
	// Tags counts rows per presentation tag.
	Tags map[models.RowTag]int `json:"tags,omitempty" yaml:"tags,omitempty"`
	// Output is the path the workbook was written to, when written.
	Output string `json:"output,omitempty" yaml:"output,omitempty"`
}

// HasOutput reports whether at least one input contributed to the merge.
func (r *Report) HasOutput() bool {
	return len(r.Files) > 0
}

// Err joins the load errors of the skipped inputs. It returns nil when every
// input was loaded.
func (r *Report) Err() error {
	errs := make([]error, 0, len(r.Failures))
	for _, f := range r.Failures {
		if f.Err != nil {
			errs = append(errs, f.Err)
		}
	}
	return errors.Join(errs...)
}

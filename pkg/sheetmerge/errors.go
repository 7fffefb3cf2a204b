package sheetmerge

import (
	"errors"
	"fmt"

	"github.com/ukaji3/sheetmerge-go/pkg/sheetmerge/parser"
)

// ErrNoOutput indicates no input file could be loaded, so no workbook was produced.
var ErrNoOutput = errors.New("no output: nothing to process")

// ErrUnsupportedFormat indicates a source that is neither .xls nor .xlsx.
var ErrUnsupportedFormat = parser.ErrUnsupportedFormat

// ErrFileTooLarge indicates a source above Options.MaxFileSize.
var ErrFileTooLarge = parser.ErrFileTooLarge

// ErrMissingHeader indicates a sheet that ends before its header row.
var ErrMissingHeader = parser.ErrMissingHeader

// LoadError represents one input file that could not be read. The file is
// skipped and the run continues with the remaining files.
type LoadError struct {
	File string
	Err  error
}

func (e *LoadError) Error() string {
	return fmt.Sprintf("load error in file %q: %v", e.File, e.Err)
}

func (e *LoadError) Unwrap() error {
	return e.Err
}

// NewLoadError creates a new LoadError.
func NewLoadError(file string, err error) *LoadError {
	return &LoadError{
		File: file,
		Err:  err,
	}
}

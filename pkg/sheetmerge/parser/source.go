package parser

import (
	"errors"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// ErrUnsupportedFormat indicates the source extension is neither .xls nor .xlsx.
var ErrUnsupportedFormat = errors.New("unsupported spreadsheet format")

// ErrFileTooLarge indicates the source exceeds the configured size limit.
var ErrFileTooLarge = errors.New("file too large")

// ErrMissingHeader indicates the sheet ends before the header row.
var ErrMissingHeader = errors.New("header row not found")

// Source is one spreadsheet input, either on disk or in memory.
type Source struct {
	// Name is the file name used for ordering and diagnostics.
	Name string
	// Path is the on-disk location; ignored when Data is set.
	Path string
	// Data holds the file contents for in-memory sources.
	Data []byte
}

// FileSource returns a Source for an on-disk file named after its base name.
func FileSource(path string) Source {
	return Source{Name: filepath.Base(path), Path: path}
}

// Format returns the lower-cased extension of the source name without the dot.
func (s Source) Format() string {
	name := s.Name
	if name == "" {
		name = s.Path
	}
	return strings.TrimPrefix(strings.ToLower(filepath.Ext(name)), ".")
}

// Size returns the size of the source in bytes.
func (s Source) Size() (int64, error) {
	if s.Data != nil {
		return int64(len(s.Data)), nil
	}
	info, err := os.Stat(s.Path)
	if err != nil {
		return 0, err
	}
	return info.Size(), nil
}

// IsSpreadsheet reports whether a file name has a supported extension.
// Office lock files (~$name.xlsx) are rejected.
func IsSpreadsheet(name string) bool {
	base := filepath.Base(name)
	if strings.HasPrefix(base, "~$") {
		return false
	}
	switch strings.ToLower(filepath.Ext(base)) {
	case ".xls", ".xlsx", ".xlsm":
		return true
	}
	return false
}

// SortSources orders sources lexicographically by name. The order decides
// the row order of the merged output.
func SortSources(sources []Source) {
	sort.SliceStable(sources, func(i, j int) bool {
		return sources[i].Name < sources[j].Name
	})
}

// ScanDir returns the spreadsheet files directly inside dir, sorted by name.
// Subdirectories are not descended into.
func ScanDir(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}
	var paths []string
	for _, e := range entries {
		if e.IsDir() || !IsSpreadsheet(e.Name()) {
			continue
		}
		paths = append(paths, filepath.Join(dir, e.Name()))
	}
	sort.Strings(paths)
	return paths, nil
}

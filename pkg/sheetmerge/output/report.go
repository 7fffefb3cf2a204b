// Package output serializes run reports.
package output

import (
	"encoding/json"
	"path/filepath"
	"strings"

	"github.com/ukaji3/sheetmerge-go/pkg/sheetmerge"
	"gopkg.in/yaml.v3"
)

// ReportToJSON serializes a report to JSON.
func ReportToJSON(r *sheetmerge.Report, pretty bool) ([]byte, error) {
	if pretty {
		return json.MarshalIndent(r, "", "  ")
	}
	return json.Marshal(r)
}

// ReportToYAML serializes a report to YAML.
func ReportToYAML(r *sheetmerge.Report) ([]byte, error) {
	return yaml.Marshal(r)
}

// ReportFor picks the serialization from the file extension of path:
// .yaml and .yml produce YAML, anything else JSON.
func ReportFor(path string, r *sheetmerge.Report, pretty bool) ([]byte, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return ReportToYAML(r)
	default:
		return ReportToJSON(r, pretty)
	}
}

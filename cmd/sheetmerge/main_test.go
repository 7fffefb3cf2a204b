package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/ukaji3/sheetmerge-go/internal/config"
	"github.com/xuri/excelize/v2"
)

func writeExport(t *testing.T, path string, rows [][]interface{}) {
	t.Helper()

	f := excelize.NewFile()
	defer f.Close()
	for r, row := range rows {
		for c, v := range row {
			if v == nil {
				continue
			}
			cell, err := excelize.CoordinatesToCellName(c+1, r+1)
			require.NoError(t, err)
			require.NoError(t, f.SetCellValue("Sheet1", cell, v))
		}
	}
	require.NoError(t, f.SaveAs(path))
}

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()

	outputPath = ""
	var stdout, stderr bytes.Buffer
	cmd := newRootCmd()
	cmd.SetArgs(args)
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	err := cmd.Execute()
	return stdout.String(), err
}

func TestResolveOutputPath(t *testing.T) {
	now := time.Date(2024, 4, 3, 9, 5, 7, 0, time.UTC)
	cfg := config.Defaults()
	cfg.Output.Dir = "out"

	assert.Equal(t, "explicit.xlsx", resolveOutputPath(cfg, "explicit.xlsx", now))
	assert.Equal(t, filepath.Join("out", "Planilla_Unificada_20240403_090507.xlsx"), resolveOutputPath(cfg, "", now))

	cfg.Output.Name = "planilla abril"
	assert.Equal(t, filepath.Join("out", "planilla abril.xlsx"), resolveOutputPath(cfg, "", now))

	cfg.Output.Name = "../Marzo.XLSX"
	assert.Equal(t, filepath.Join("out", "Marzo.XLSX"), resolveOutputPath(cfg, "", now))
}

func TestRunMergesInputDir(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)

	in := filepath.Join(dir, "in")
	require.NoError(t, os.Mkdir(in, 0755))
	header := []interface{}{nil, "Nombre", "Fecha de Nacimiento"}
	writeExport(t, filepath.Join(in, "a.xlsx"), [][]interface{}{{"t"}, {"t"}, header, {1, "Ana", "15/05/1990"}})
	writeExport(t, filepath.Join(in, "b.xlsx"), [][]interface{}{{"t"}, {"t"}, header, {1, "Luis", "1985-04-03"}})
	require.NoError(t, os.WriteFile(filepath.Join(in, "~$a.xlsx"), []byte("lock"), 0644))

	out := filepath.Join(dir, "merged.xlsx")
	report := filepath.Join(dir, "report.json")
	stdout, err := execute(t, "--input-dir", in, "-o", out, "--report", report, "--workers", "2", "--log-level", "error")
	require.NoError(t, err)
	assert.Equal(t, out, strings.TrimSpace(stdout))

	f, err := excelize.OpenFile(out)
	require.NoError(t, err)
	defer f.Close()
	rows, err := f.GetRows("Sheet1")
	require.NoError(t, err)
	require.Len(t, rows, 3)
	assert.Equal(t, []string{"NOMBRE", "FECHA DE NACIMIENTO", "ITEM"}, rows[0])
	assert.Equal(t, "Ana", rows[1][0])
	assert.Equal(t, "Luis", rows[2][0])

	data, err := os.ReadFile(report)
	require.NoError(t, err)
	var decoded map[string]interface{}
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, float64(2), decoded["merged_rows"])
	assert.Equal(t, out, decoded["output"])
}

func TestRunNoOutput(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)

	report := filepath.Join(dir, "report.yaml")
	stdout, err := execute(t, "--input-dir", filepath.Join(dir, "missing"), "--report", report)
	require.NoError(t, err)
	assert.Equal(t, "no output", strings.TrimSpace(stdout))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "report.yaml", entries[0].Name())
}

func TestRunInvalidFlags(t *testing.T) {
	t.Chdir(t.TempDir())

	_, err := execute(t, "--workers", "0")
	assert.Error(t, err)

	_, err = execute(t, "--log-format", "xml")
	assert.Error(t, err)
}

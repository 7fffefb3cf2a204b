package sheetmerge

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	"github.com/ukaji3/sheetmerge-go/pkg/sheetmerge/merger"
	"github.com/ukaji3/sheetmerge-go/pkg/sheetmerge/models"
	"github.com/ukaji3/sheetmerge-go/pkg/sheetmerge/normalize"
	"github.com/ukaji3/sheetmerge-go/pkg/sheetmerge/parser"
	"github.com/ukaji3/sheetmerge-go/pkg/sheetmerge/styler"
	"golang.org/x/sync/errgroup"
)

// Result is the outcome of a merge run.
type Result struct {
	// Workbook holds the styled .xlsx bytes; nil when there was no output.
	Workbook []byte
	// Table is the merged table that was written.
	Table *models.Table
	// Report holds the run diagnostics.
	Report Report
}

// WriteFile saves the workbook to path, creating parent directories.
func (r *Result) WriteFile(path string) error {
	if r.Workbook == nil {
		return ErrNoOutput
	}
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return err
		}
	}
	if err := os.WriteFile(path, r.Workbook, 0644); err != nil {
		return err
	}
	r.Report.Output = path
	return nil
}

// MergeFiles merges the spreadsheets at the given paths.
func MergeFiles(ctx context.Context, paths []string, opts Options) (*Result, error) {
	sources := make([]parser.Source, len(paths))
	for i, p := range paths {
		sources[i] = parser.FileSource(p)
	}
	return MergeSources(ctx, sources, opts)
}

// MergeSources loads, normalizes and merges the sources in lexicographic
// name order and returns the styled workbook. Unreadable sources are skipped
// and listed in the report. When no source could be loaded the result carries
// only the report and the error is ErrNoOutput.
func MergeSources(ctx context.Context, sources []Source, opts Options) (*Result, error) {
	start := time.Now()
	report := Report{
		RunID:     uuid.NewString(),
		StartedAt: start,
	}
	logger := opts.logger().With(slog.String("run_id", report.RunID))

	sorted := append([]Source(nil), sources...)
	parser.SortSources(sorted)
	logger.Info("Starting merge", slog.Int("files", len(sorted)))

	loaded, err := loadAll(ctx, sorted, opts, logger)
	if err != nil {
		return nil, err
	}

	norm := normalize.New(opts.Normalize, logger)
	var tables []*models.Table
	for i, src := range sorted {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		if loaded[i].err != nil {
			loadErr := NewLoadError(src.Name, loaded[i].err)
			logger.Warn("Skipping unreadable file",
				slog.String("file", src.Name),
				slog.Any("error", loadErr))
			report.Failures = append(report.Failures, LoadFailure{
				File:   src.Name,
				Reason: loadErr.Err.Error(),
				Err:    loadErr,
			})
			continue
		}

		table, notes := norm.Normalize(loaded[i].table)
		tables = append(tables, table)
		report.Files = append(report.Files, FileReport{
			File:    src.Name,
			Rows:    table.Len(),
			Columns: table.Columns,
			Notes:   notes,
		})
		logger.Info("File normalized",
			slog.String("file", src.Name),
			slog.Int("rows", table.Len()),
			slog.Int("columns", table.Width()))
	}

	if len(tables) == 0 {
		report.Duration = time.Since(start)
		logger.Warn("No files to merge", slog.Int("failures", len(report.Failures)))
		return &Result{Report: report}, ErrNoOutput
	}

	merged, err := merger.Merge(tables)
	if err != nil {
		return nil, err
	}

	workbook, summary, err := render(merged, opts)
	if err != nil {
		return nil, err
	}

	report.Columns = merged.Columns
	report.MergedRows = merged.Len()
	report.Tags = summary
	report.Duration = time.Since(start)
	logger.Info("Merge complete",
		slog.Int("merged_rows", report.MergedRows),
		slog.Int("columns", len(report.Columns)),
		slog.Int("section_rows", summary[models.TagSectionMarker]),
		slog.Int("subtotal_rows", summary[models.TagSubtotal]),
		slog.Duration("duration", report.Duration))

	return &Result{
		Workbook: workbook,
		Table:    merged,
		Report:   report,
	}, nil
}

// render writes the merged table and runs the presentation pass over it.
func render(merged *models.Table, opts Options) ([]byte, styler.Summary, error) {
	sheet := opts.OutputSheet
	if sheet == "" {
		sheet = styler.DefaultSheetName
	}

	f, err := styler.NewWorkbook(sheet, merged)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to write workbook: %w", err)
	}
	defer f.Close()

	summary, err := styler.New(opts.Palette).Apply(f, sheet, merged)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to style workbook: %w", err)
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, nil, fmt.Errorf("failed to serialize workbook: %w", err)
	}
	return buf.Bytes(), summary, nil
}

type loadResult struct {
	table *models.Table
	err   error
}

// loadAll reads every source, at most opts.Workers at a time. Results keep
// the index of their source so the merge order does not depend on timing.
func loadAll(ctx context.Context, sources []Source, opts Options, logger *slog.Logger) ([]loadResult, error) {
	results := make([]loadResult, len(sources))
	workers := opts.Workers
	if workers < 1 {
		workers = 1
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for i, src := range sources {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			logger.Info("Processing file",
				slog.Int("current", i+1),
				slog.Int("total", len(sources)),
				slog.String("file", src.Name))
			table, err := safeLoad(src, opts.loadOptions())
			results[i] = loadResult{table: table, err: err}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

// safeLoad turns a reader panic on a malformed container into a load error
// so one bad file cannot abort the batch.
func safeLoad(src Source, opts parser.LoadOptions) (table *models.Table, err error) {
	defer func() {
		if r := recover(); r != nil {
			table, err = nil, fmt.Errorf("malformed spreadsheet: %v", r)
		}
	}()
	return parser.Load(src, opts)
}

// Package main provides the CLI entry point for sheetmerge.
package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"github.com/ukaji3/sheetmerge-go/internal/config"
	"github.com/ukaji3/sheetmerge-go/internal/logging"
	"github.com/ukaji3/sheetmerge-go/pkg/sheetmerge"
	"github.com/ukaji3/sheetmerge-go/pkg/sheetmerge/output"
	"github.com/ukaji3/sheetmerge-go/pkg/sheetmerge/parser"
)

// defaultNamePrefix is the stem of timestamped output names.
const defaultNamePrefix = "Planilla_Unificada_"

var (
	configPath string
	inputDir   string
	outputPath string
	outputName string
	reportPath string
	pretty     bool
	workers    int
	logLevel   string
	logFormat  string
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "sheetmerge [files...]",
		Short: "Normalize and merge spreadsheet exports into one workbook",
		Long: `sheetmerge reads .xls and .xlsx exports that share an offset tabular
layout, reconciles their columns, merges them in file-name order and
writes one styled .xlsx workbook.`,
		RunE:         run,
		SilenceUsage: true,
	}

	rootCmd.Flags().StringVar(&configPath, "config", "", "YAML configuration file")
	rootCmd.Flags().StringVar(&inputDir, "input-dir", "", "Directory scanned for spreadsheets when no files are given")
	rootCmd.Flags().StringVarP(&outputPath, "output", "o", "", "Output workbook path")
	rootCmd.Flags().StringVar(&outputName, "name", "", "Output file name inside the output directory")
	rootCmd.Flags().StringVar(&reportPath, "report", "", "Write the run report to this path (.json, .yaml or .yml)")
	rootCmd.Flags().BoolVar(&pretty, "pretty", false, "Pretty-print JSON report")
	rootCmd.Flags().IntVar(&workers, "workers", 0, "Number of files loaded concurrently")
	rootCmd.Flags().StringVar(&logLevel, "log-level", "", "Log level: debug, info, warn, error")
	rootCmd.Flags().StringVar(&logFormat, "log-format", "", "Log format: text, json")

	return rootCmd
}

func run(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}
	applyFlags(cmd, cfg)
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid flags: %w", err)
	}

	logger := logging.Setup(cfg.Logging.Level, cfg.Logging.Format, cmd.ErrOrStderr())

	paths := args
	if len(paths) == 0 {
		paths, err = parser.ScanDir(cfg.Input.Dir)
		if err != nil && !os.IsNotExist(err) {
			return fmt.Errorf("failed to scan input directory: %w", err)
		}
	}

	opts := cfg.ToEngineOptions()
	opts.Logger = logger

	result, err := sheetmerge.MergeFiles(cmd.Context(), paths, opts)
	if errors.Is(err, sheetmerge.ErrNoOutput) {
		fmt.Fprintln(cmd.OutOrStdout(), "no output")
		return writeReport(cfg, &result.Report)
	}
	if err != nil {
		return fmt.Errorf("merge failed: %w", err)
	}

	target := resolveOutputPath(cfg, outputPath, time.Now())
	if err := result.WriteFile(target); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	logger.Info("Workbook written",
		slog.String("path", target),
		slog.Int("rows", result.Report.MergedRows),
		slog.Int("skipped", len(result.Report.Failures)))
	fmt.Fprintln(cmd.OutOrStdout(), target)

	return writeReport(cfg, &result.Report)
}

// applyFlags overrides configuration values with explicitly set flags.
func applyFlags(cmd *cobra.Command, cfg *config.Config) {
	flags := cmd.Flags()
	if flags.Changed("input-dir") {
		cfg.Input.Dir = inputDir
	}
	if flags.Changed("name") {
		cfg.Output.Name = outputName
	}
	if flags.Changed("report") {
		cfg.Output.Report = reportPath
	}
	if flags.Changed("pretty") {
		cfg.Output.Pretty = pretty
	}
	if flags.Changed("workers") {
		cfg.Engine.Workers = workers
	}
	if flags.Changed("log-level") {
		cfg.Logging.Level = logLevel
	}
	if flags.Changed("log-format") {
		cfg.Logging.Format = logFormat
	}
}

// resolveOutputPath returns explicit when set, otherwise the configured name
// or a timestamped default inside the output directory.
func resolveOutputPath(cfg *config.Config, explicit string, now time.Time) string {
	if explicit != "" {
		return explicit
	}
	name := strings.TrimSpace(cfg.Output.Name)
	if name == "" {
		name = defaultNamePrefix + now.Format("20060102_150405")
	}
	if !strings.HasSuffix(strings.ToLower(name), ".xlsx") {
		name += ".xlsx"
	}
	return filepath.Join(cfg.Output.Dir, filepath.Base(name))
}

func writeReport(cfg *config.Config, r *sheetmerge.Report) error {
	if cfg.Output.Report == "" {
		return nil
	}
	data, err := output.ReportFor(cfg.Output.Report, r, cfg.Output.Pretty)
	if err != nil {
		return fmt.Errorf("serialization failed: %w", err)
	}
	if err := os.WriteFile(cfg.Output.Report, data, 0644); err != nil {
		return fmt.Errorf("failed to write report: %w", err)
	}
	return nil
}

// Package config loads the sheetmerge CLI configuration.
package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v3"

	"github.com/ukaji3/sheetmerge-go/pkg/sheetmerge"
	"github.com/ukaji3/sheetmerge-go/pkg/sheetmerge/normalize"
	"github.com/ukaji3/sheetmerge-go/pkg/sheetmerge/parser"
	"github.com/ukaji3/sheetmerge-go/pkg/sheetmerge/styler"
)

// EnvPrefix is the prefix of every environment override.
const EnvPrefix = "SHEETMERGE"

// Config represents the CLI configuration. Environment overrides are named
// SHEETMERGE_<SECTION>_<FIELD>, for example SHEETMERGE_ENGINE_WORKERS.
type Config struct {
	Input     InputConfig       `yaml:"input"`
	Output    OutputConfig      `yaml:"output"`
	Engine    EngineConfig      `yaml:"engine"`
	Normalize normalize.Options `yaml:"normalize"`
	Palette   styler.Palette    `yaml:"palette"`
	Logging   LoggingConfig     `yaml:"logging"`
}

// InputConfig selects where input spreadsheets are found.
type InputConfig struct {
	// Dir is scanned for .xls and .xlsx files when no files are given.
	Dir string `yaml:"dir" validate:"required"`
}

// OutputConfig controls where the merged workbook and report go.
type OutputConfig struct {
	// Dir receives the merged workbook.
	Dir string `yaml:"dir" validate:"required"`
	// Name overrides the timestamped default file name.
	Name string `yaml:"name,omitempty"`
	// Report is an optional path for the run report (.json, .yaml or .yml).
	Report string `yaml:"report,omitempty"`
	// Pretty indents the JSON report.
	Pretty bool `yaml:"pretty,omitempty"`
}

// EngineConfig holds the loader and writer settings.
type EngineConfig struct {
	HeaderRow   int    `yaml:"header_row" split_words:"true" validate:"min=0"`
	SheetName   string `yaml:"sheet_name,omitempty" split_words:"true"`
	OutputSheet string `yaml:"output_sheet" split_words:"true" validate:"required,max=31"`
	Workers     int    `yaml:"workers" validate:"min=1,max=64"`
	MaxFileSize int64  `yaml:"max_file_size" split_words:"true" validate:"min=0"`
}

// LoggingConfig selects the log level and handler.
type LoggingConfig struct {
	Level  string `yaml:"level" validate:"oneof=debug info warn warning error"`
	Format string `yaml:"format" validate:"oneof=text json"`
}

// Defaults returns the configuration used when nothing overrides it.
func Defaults() *Config {
	return &Config{
		Input:  InputConfig{Dir: "input"},
		Output: OutputConfig{Dir: "output"},
		Engine: EngineConfig{
			HeaderRow:   parser.DefaultHeaderRow,
			OutputSheet: styler.DefaultSheetName,
			Workers:     1,
			MaxFileSize: 50 << 20,
		},
		Normalize: normalize.DefaultOptions(),
		Palette:   styler.DefaultPalette(),
		Logging:   LoggingConfig{Level: "info", Format: "text"},
	}
}

// Load builds the configuration from defaults, the YAML file at path (when
// path is non-empty), a .env file in the working directory and SHEETMERGE_*
// environment variables, in increasing order of precedence.
func Load(path string) (*Config, error) {
	cfg := Defaults()

	if path != "" {
		if err := cfg.loadFile(path); err != nil {
			return nil, err
		}
	}

	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("failed to load .env: %w", err)
	}

	if err := envconfig.Process(EnvPrefix, cfg); err != nil {
		return nil, fmt.Errorf("failed to load config from env: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}
	return cfg, nil
}

func (c *Config) loadFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read config file: %w", err)
	}
	if err := yaml.Unmarshal(data, c); err != nil {
		return fmt.Errorf("invalid config file: %w", err)
	}
	return nil
}

// Validate checks field constraints.
func (c *Config) Validate() error {
	return validator.New().Struct(c)
}

// ToEngineOptions maps the configuration onto merge options.
func (c *Config) ToEngineOptions() sheetmerge.Options {
	opts := sheetmerge.DefaultOptions()
	opts.HeaderRow = c.Engine.HeaderRow
	opts.SheetName = c.Engine.SheetName
	opts.OutputSheet = c.Engine.OutputSheet
	opts.Workers = c.Engine.Workers
	opts.MaxFileSize = c.Engine.MaxFileSize
	opts.Normalize = c.Normalize
	opts.Palette = c.Palette
	return opts
}

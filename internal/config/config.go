package config

import (
	"fmt"
	"os"

	"go.uber.org/zap/zapcore"
	"gopkg.in/yaml.v3"

	"arcqa/internal/diagnostic"
	"arcqa/internal/extract"
	"arcqa/internal/filter"
	"arcqa/internal/record"
	"arcqa/internal/sink"
)

// Output formats.
const (
	FormatYAML   = sink.FormatYAML
	FormatSQLite = sink.FormatSQLite
)

// Config is the arcqa run configuration.
type Config struct {
	Cells          []string            `yaml:"cells"`
	ArcTypes       []string            `yaml:"arc_types,omitempty"`
	MaxNumWhen     int                 `yaml:"max_num_when"`
	LoadIndex      int                 `yaml:"load_index"`
	Table3DPattern string              `yaml:"table_3d_pattern"`
	LoadChanges    []record.LoadChange `yaml:"load_changes,omitempty"`
	Output         Output              `yaml:"output"`
	Logging        Logging             `yaml:"logging"`
}

// Output names the record sink.
type Output struct {
	Format string `yaml:"format"`
	Path   string `yaml:"path"`
}

// Logging configures the logger.
type Logging struct {
	Level    string `yaml:"level"`
	Encoding string `yaml:"encoding"`
}

// Default returns the default configuration.
func Default() *Config {
	return &Config{
		Cells:          []string{"*"},
		MaxNumWhen:     1,
		LoadIndex:      record.DefaultLoadIndex,
		Table3DPattern: record.DefaultTable3DPattern,
		Output: Output{
			Format: FormatYAML,
			Path:   "arcs.yaml",
		},
		Logging: Logging{
			Level:    "info",
			Encoding: "json",
		},
	}
}

// LoadFile loads and parses a YAML configuration file from the given path.
func LoadFile(p string) (*Config, error) {
	data, err := os.ReadFile(p)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", p, err)
	}

	cfg, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", p, err)
	}

	return cfg, nil
}

// Parse parses YAML data over the default configuration.
func Parse(data []byte) (*Config, error) {
	cfg := Default()

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config YAML: %w", err)
	}

	applyDefaults(cfg)

	return cfg, nil
}

// applyDefaults restores defaults for keys present in the file but empty.
func applyDefaults(cfg *Config) {
	def := Default()

	if len(cfg.Cells) == 0 {
		cfg.Cells = def.Cells
	}

	if cfg.Output.Format == "" {
		cfg.Output.Format = def.Output.Format
	}

	if cfg.Output.Path == "" {
		switch cfg.Output.Format {
		case FormatSQLite:
			cfg.Output.Path = "arcs.db"
		default:
			cfg.Output.Path = def.Output.Path
		}
	}

	if cfg.Logging.Level == "" {
		cfg.Logging.Level = def.Logging.Level
	}

	if cfg.Logging.Encoding == "" {
		cfg.Logging.Encoding = def.Logging.Encoding
	}
}

// Validate checks the configuration.
func (c *Config) Validate() *diagnostic.Diagnostics {
	diags := &diagnostic.Diagnostics{}

	for _, p := range c.Cells {
		if err := filter.CheckGlob(p); err != nil {
			diags.AddError("bad_pattern", fmt.Sprintf("cell pattern %q: %v", p, err), "", "")
		}
	}

	for _, t := range c.ArcTypes {
		if !filter.IsArcTypeRequest(t) {
			diags.AddError("invalid_arc_type", fmt.Sprintf("unknown arc type %q", t), "", "")
		}
	}

	if c.MaxNumWhen < 1 {
		diags.AddError("invalid_max_num_when",
			fmt.Sprintf("max_num_when must be at least 1, got %d", c.MaxNumWhen), "", "")
	}

	if c.LoadIndex < 0 {
		diags.AddError("invalid_load_index",
			fmt.Sprintf("load_index must not be negative, got %d", c.LoadIndex), "", "")
	}

	for _, lc := range c.LoadChanges {
		if lc.Index < 0 {
			diags.AddError("invalid_load_index",
				fmt.Sprintf("load change for %q has negative index %d", lc.Cell, lc.Index), "", "")
		}
	}

	if c.Table3DPattern == "" {
		diags.AddWarning("no_3d_pattern", "5x5x5 tables will not be expanded", "", "")
	}

	switch c.Output.Format {
	case FormatYAML, FormatSQLite:
	default:
		diags.AddError("invalid_output_format",
			fmt.Sprintf("unknown output format %q (want %s or %s)", c.Output.Format, FormatYAML, FormatSQLite), "", "")
	}

	if _, err := zapcore.ParseLevel(c.Logging.Level); err != nil {
		diags.AddError("invalid_log_level", err.Error(), "", "")
	}

	switch c.Logging.Encoding {
	case "json", "console":
	default:
		diags.AddError("invalid_log_encoding",
			fmt.Sprintf("unknown log encoding %q", c.Logging.Encoding), "", "")
	}

	return diags
}

// ExtractConfig converts the file configuration into extractor settings.
func (c *Config) ExtractConfig() extract.Config {
	cfg := extract.DefaultConfig()
	cfg.CellPatterns = c.Cells
	cfg.ArcTypes = c.ArcTypes
	cfg.MaxNumWhen = c.MaxNumWhen
	cfg.Load = record.LoadOptions{
		Index:          c.LoadIndex,
		Table3DPattern: c.Table3DPattern,
		Changes:        c.LoadChanges,
	}

	return cfg
}

package sink

import (
	"context"
	"fmt"

	"arcqa/internal/record"
)

// Output formats accepted by New.
const (
	FormatYAML   = "yaml"
	FormatSQLite = "sqlite"
)

// Report is the extraction artifact handed to deck generation.
type Report struct {
	ArcsIdentified int             `yaml:"arcs_identified"`
	Records        []record.Record `yaml:"records"`
}

// Writer persists a report.
type Writer interface {
	Write(ctx context.Context, r Report) error
}

// New returns the writer for format at path.
func New(format, path string) (Writer, error) {
	switch format {
	case FormatYAML, "":
		return &YAMLWriter{Path: path}, nil
	case FormatSQLite:
		return &SQLiteWriter{Path: path}, nil
	default:
		return nil, fmt.Errorf("unknown output format %q", format)
	}
}

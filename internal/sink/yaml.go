package sink

import (
	"context"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// YAMLWriter writes the report as one YAML document.
type YAMLWriter struct {
	Path string
}

// Write implements Writer.
func (w *YAMLWriter) Write(_ context.Context, r Report) error {
	data, err := yaml.Marshal(r)
	if err != nil {
		return fmt.Errorf("failed to marshal report: %w", err)
	}

	if err := os.WriteFile(w.Path, data, 0644); err != nil {
		return fmt.Errorf("failed to write report file %s: %w", w.Path, err)
	}

	return nil
}

// ReadYAML loads a report written by YAMLWriter.
func ReadYAML(path string) (*Report, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read report file %s: %w", path, err)
	}

	var r Report
	if err := yaml.Unmarshal(data, &r); err != nil {
		return nil, fmt.Errorf("failed to parse report YAML: %w", err)
	}

	return &r, nil
}

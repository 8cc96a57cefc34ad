package model

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Library is a TemplateModel backed by a YAML library description.
type Library struct {
	Templates []Template `yaml:"templates,omitempty"`
	Cells     []CellSpec `yaml:"cells"`

	templateIndex map[string]int
}

// GetAllCells returns the cells in file order.
func (l *Library) GetAllCells() []CellSpec {
	return l.Cells
}

// GetDefineTemplate looks up a template by name.
func (l *Library) GetDefineTemplate(name string) (Template, bool) {
	if l.templateIndex == nil {
		l.reindex()
	}

	idx, ok := l.templateIndex[name]
	if !ok {
		return Template{}, false
	}

	return l.Templates[idx], true
}

// reindex rebuilds the template name index. The first definition of a name
// wins; Validate reports duplicates.
func (l *Library) reindex() {
	l.templateIndex = make(map[string]int, len(l.Templates))

	for i, t := range l.Templates {
		if _, dup := l.templateIndex[t.Name]; dup {
			continue
		}

		l.templateIndex[t.Name] = i
	}
}

// LoadFile loads and parses a YAML library file from the given path.
func LoadFile(path string) (*Library, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read library file %s: %w", path, err)
	}

	lib, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return lib, nil
}

// Parse parses YAML data into a Library.
func Parse(data []byte) (*Library, error) {
	var lib Library

	if err := yaml.Unmarshal(data, &lib); err != nil {
		return nil, fmt.Errorf("failed to parse library YAML: %w", err)
	}

	applyDefaults(&lib)
	lib.reindex()

	return &lib, nil
}

// applyDefaults fills in values the parsers leave implicit.
func applyDefaults(lib *Library) {
	for i := range lib.Cells {
		c := &lib.Cells[i]

		// Override blocks without a type apply to constraint tables, which is
		// what the parsers emit for a bare index override.
		for j := range c.Overrides {
			if c.Overrides[j].Type == "" {
				c.Overrides[j].Type = OverrideConstraint
			}
		}
	}
}

// Marshal serializes a Library to YAML.
func Marshal(lib *Library) ([]byte, error) {
	return yaml.Marshal(lib)
}

// WriteFile writes a Library to the given path.
func WriteFile(lib *Library, path string) error {
	data, err := Marshal(lib)
	if err != nil {
		return fmt.Errorf("failed to marshal library: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write library file %s: %w", path, err)
	}

	return nil
}

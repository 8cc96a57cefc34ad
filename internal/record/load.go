package record

import (
	"fmt"

	"arcqa/internal/filter"
	"arcqa/internal/model"
)

// tablePoints is the output-load count of a 5x5x5 constraint table.
const tablePoints = 5

// Defaults for LoadOptions.
const (
	DefaultLoadIndex      = 2
	DefaultTable3DPattern = "*5x5x5*"
)

// LoadChange overrides the load column for cells matching Cell.
type LoadChange struct {
	Cell  string `yaml:"cell"`
	Index int    `yaml:"index"`
}

// LoadOptions configures output-load resolution.
type LoadOptions struct {
	// Index is the load column used for 1D tables.
	Index int
	// Table3DPattern matches constraint template names of 5x5x5 tables.
	Table3DPattern string
	// Changes are per-cell index overrides; the first matching entry wins.
	Changes []LoadChange
}

// DefaultLoadOptions returns the default output-load configuration.
func DefaultLoadOptions() LoadOptions {
	return LoadOptions{
		Index:          DefaultLoadIndex,
		Table3DPattern: DefaultTable3DPattern,
	}
}

// IndexFor returns the load column for the named cell.
func (o LoadOptions) IndexFor(cell string) int {
	for _, c := range o.Changes {
		if filter.Match(c.Cell, cell) {
			return c.Index
		}
	}

	return o.Index
}

// Is3D reports whether the cell's constraint table is a 5x5x5 table.
func (o LoadOptions) Is3D(cell *model.CellSpec) bool {
	return cell.ConstraintTemplate != "" && o.Table3DPattern != "" &&
		filter.Match(o.Table3DPattern, cell.ConstraintTemplate)
}

// ResolveOutputLoad returns the output loads to characterize the cell at:
// all five points of a 5x5x5 table, or one value picked from the load axis.
func ResolveOutputLoad(m model.TemplateModel, cell *model.CellSpec, opts LoadOptions) ([]string, error) {
	if opts.Is3D(cell) {
		tmpl, ok := m.GetDefineTemplate(cell.ConstraintTemplate)
		if !ok {
			return nil, fmt.Errorf("%w: template %q of cell %s is not defined",
				model.ErrMissingTemplate, cell.ConstraintTemplate, cell.Name)
		}

		loads := model.SplitValues(tmpl.Index3)
		if len(loads) != tablePoints {
			return nil, fmt.Errorf("%w: template %q index_3 has %d entries, want %d",
				model.ErrMalformedLoad, tmpl.Name, len(loads), tablePoints)
		}

		return loads, nil
	}

	axis, err := loadAxis(m, cell)
	if err != nil {
		return nil, err
	}

	idx := opts.IndexFor(cell.Name)
	if idx < 0 || idx >= len(axis) {
		return nil, fmt.Errorf("%w: load index %d out of range for %d-entry axis of cell %s",
			model.ErrMalformedLoad, idx, len(axis), cell.Name)
	}

	return []string{axis[idx]}, nil
}

// loadAxis returns the output-load values of a 1D cell: the constraint
// template's index_3, else the delay template's index_2.
func loadAxis(m model.TemplateModel, cell *model.CellSpec) ([]string, error) {
	if cell.ConstraintTemplate != "" {
		if tmpl, ok := m.GetDefineTemplate(cell.ConstraintTemplate); ok {
			if axis := model.SplitValues(tmpl.Index3); len(axis) > 0 {
				return axis, nil
			}
		}
	}

	if cell.DelayTemplate != "" {
		if tmpl, ok := m.GetDefineTemplate(cell.DelayTemplate); ok {
			if axis := model.SplitValues(tmpl.Index2); len(axis) > 0 {
				return axis, nil
			}
		}
	}

	return nil, fmt.Errorf("%w: cell %s has no output-load axis", model.ErrMissingTemplate, cell.Name)
}

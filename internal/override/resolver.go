package override

import (
	"fmt"
	"slices"

	"arcqa/internal/filter"
	"arcqa/internal/model"
)

// Indices are the resolved index tables of one arc.
type Indices struct {
	Index1 []string
	Index2 []string
	Index3 []string
}

// SelectDefaultTemplate returns the default template name for an arc type and
// the cell's override blocks of the same category. MPW arcs fall back to the
// constraint template when the cell declares no mpw template.
func SelectDefaultTemplate(typ model.ArcType, cell *model.CellSpec) (string, []model.IndexOverrideBlock, error) {
	kind := typ.Category()

	name := cell.TemplateName(kind)
	if name == "" && kind == model.OverrideMPW {
		name = cell.ConstraintTemplate
	}

	if name == "" {
		return "", nil, fmt.Errorf("%w: cell %s declares no %s template", model.ErrMissingTemplate, cell.Name, kind)
	}

	return name, cell.OverridesOf(kind), nil
}

// FindMatchingOverrides returns the blocks that apply to the given pin,
// related pin and raw when string, in declaration order.
func FindMatchingOverrides(overrides []model.IndexOverrideBlock, pin, relatedPin, when string) []model.IndexOverrideBlock {
	var out []model.IndexOverrideBlock

	for _, o := range overrides {
		if !pinMatches(o.Pin, pin) {
			continue
		}

		if len(o.RelatedPin) > 0 && !anyGlob(o.RelatedPin, relatedPin) {
			continue
		}

		if o.When != "" && !filter.Glob(o.When, when) {
			continue
		}

		out = append(out, o)
	}

	return out
}

// PickBest chooses the override to apply: the first block listing pin
// literally, else the first wildcard block. ok is false when matches is empty.
func PickBest(matches []model.IndexOverrideBlock, pin string) (index1, index2 string, ok bool) {
	var exact, wildcard *model.IndexOverrideBlock

	for i := range matches {
		m := &matches[i]
		if slices.Contains(m.Pin, pin) {
			if exact == nil {
				exact = m
			}
		} else if wildcard == nil {
			wildcard = m
		}
	}

	best := exact
	if best == nil {
		best = wildcard
	}

	if best == nil {
		return "", "", false
	}

	index1 = best.Index1
	index2 = index1

	return index1, index2, true
}

// ResolveIndices fetches the arc's default template values and applies the
// best matching override on top of them. The template's own index_2 is never
// used: Index2 is always a copy of the resolved Index1.
func ResolveIndices(arc *model.ArcSpec, cell *model.CellSpec, m model.TemplateModel) (Indices, error) {
	name, overrides, err := SelectDefaultTemplate(arc.Type, cell)
	if err != nil {
		return Indices{}, err
	}

	tmpl, ok := m.GetDefineTemplate(name)
	if !ok {
		return Indices{}, fmt.Errorf("%w: template %q of cell %s is not defined", model.ErrMissingTemplate, name, cell.Name)
	}

	idx := Indices{
		Index1: model.SplitValues(tmpl.Index1),
		Index3: model.SplitValues(tmpl.Index3),
	}

	matches := FindMatchingOverrides(overrides, arc.Pin, arc.RelatedPin, arc.When)
	if i1, _, ok := PickBest(matches, arc.Pin); ok {
		if v := model.SplitValues(i1); len(v) > 0 {
			idx.Index1 = v
		}
	}

	// index_2 mirrors index_1 whether or not an override applied.
	idx.Index2 = slices.Clone(idx.Index1)

	return idx, nil
}

func pinMatches(patterns model.Words, pin string) bool {
	return slices.Contains(patterns, "*") || anyGlob(patterns, pin)
}

func anyGlob(patterns []string, s string) bool {
	for _, p := range patterns {
		if filter.Glob(p, s) {
			return true
		}
	}

	return false
}

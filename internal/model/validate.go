package model

import (
	"fmt"
	"slices"
	"strings"

	"arcqa/internal/diagnostic"
)

// vectorSymbols are the per-pin symbols an arc vector may carry.
const vectorSymbols = "RF10x"

// Validate checks the structural preconditions the extractor relies on.
// It reports every violation instead of stopping at the first one.
func Validate(m TemplateModel) *diagnostic.Diagnostics {
	res := &diagnostic.Diagnostics{}
	if m == nil {
		res.AddError("model_is_nil", "template model is nil", "", "")
		return res
	}

	if lib, ok := m.(*Library); ok {
		seen := map[string]struct{}{}

		for _, t := range lib.Templates {
			if _, dup := seen[t.Name]; dup {
				res.AddWarning("duplicate_template",
					fmt.Sprintf("template %q defined more than once, first definition wins", t.Name), "", "")
			}

			seen[t.Name] = struct{}{}
		}
	}

	for _, cell := range m.GetAllCells() {
		validateCell(res, m, &cell)
	}

	return res
}

func validateCell(res *diagnostic.Diagnostics, m TemplateModel, cell *CellSpec) {
	if len(cell.Pins) == 0 {
		res.AddError("no_pins", "cell declares no pins", cell.Name, "")
		return
	}

	for _, out := range cell.Outputs {
		if !slices.Contains(cell.Pins, out) {
			res.AddError("unknown_pin", fmt.Sprintf("output pin %q not in pin list", out), cell.Name, "")
		}
	}

	for _, kind := range []OverrideType{OverrideConstraint, OverrideMPW, OverrideSIImmunity, OverrideDelay} {
		name := cell.TemplateName(kind)
		if name == "" {
			continue
		}

		if _, ok := m.GetDefineTemplate(name); !ok {
			res.AddError("undefined_template",
				fmt.Sprintf("%s template %q is not defined", kind, name), cell.Name, "")
		}
	}

	for i, o := range cell.Overrides {
		where := fmt.Sprintf("override #%d", i+1)
		if !o.Type.IsValid() {
			res.AddError("invalid_override_type", fmt.Sprintf("unknown override type %q", o.Type), cell.Name, where)
		}

		if len(o.Pin) == 0 {
			res.AddError("override_without_pin", "override block has no pin pattern", cell.Name, where)
		}
	}

	for i := range cell.Arcs {
		validateArc(res, cell, &cell.Arcs[i])
	}
}

func validateArc(res *diagnostic.Diagnostics, cell *CellSpec, arc *ArcSpec) {
	id := arc.ID()

	if !arc.Type.IsValid() {
		res.AddError("invalid_arc_type", fmt.Sprintf("invalid arc type %d", int(arc.Type)), cell.Name, id)
		return
	}

	for _, pin := range []string{arc.Pin, arc.RelatedPin} {
		if _, err := cell.PinIndex(pin); err != nil {
			res.AddError("unknown_pin", err.Error(), cell.Name, id)
		}
	}

	if len(arc.Vector) != len(cell.Pins) {
		res.AddError("vector_length",
			fmt.Sprintf("vector %q has %d symbols, pin list has %d", arc.Vector, len(arc.Vector), len(cell.Pins)),
			cell.Name, id)
	}

	if strings.IndexFunc(arc.Vector, isNotVectorSymbol) >= 0 {
		res.AddError("vector_symbol",
			fmt.Sprintf("vector %q contains symbols outside %q", arc.Vector, vectorSymbols), cell.Name, id)
	}

	kind := arc.Type.Category()
	if cell.TemplateName(kind) == "" && !(kind == OverrideMPW && cell.ConstraintTemplate != "") {
		res.AddError("missing_template", fmt.Sprintf("no %s template declared", kind), cell.Name, id)
	}
}

func isNotVectorSymbol(r rune) bool {
	return !strings.ContainsRune(vectorSymbols, r)
}

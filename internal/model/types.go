package model

import (
	"fmt"
	"slices"
	"strings"
)

// TemplateModel is the read-only view of a parsed library that the extractor
// walks. GetAllCells must return cells in a stable order; dedup acceptance
// depends on it.
type TemplateModel interface {
	GetAllCells() []CellSpec
	GetDefineTemplate(name string) (Template, bool)
}

// Template is one define_template entry: index tables as space-delimited
// value strings.
type Template struct {
	Name   string `yaml:"name"`
	Index1 string `yaml:"index_1,omitempty"`
	Index2 string `yaml:"index_2,omitempty"`
	Index3 string `yaml:"index_3,omitempty"`
}

// CellSpec describes one standard cell.
type CellSpec struct {
	Name    string `yaml:"name"`
	Pins    Words  `yaml:"pins"`
	Outputs Words  `yaml:"outputs,omitempty"`

	ConstraintTemplate string `yaml:"constraint_template,omitempty"`
	MPWTemplate        string `yaml:"mpw_template,omitempty"`
	SIImmunityTemplate string `yaml:"si_immunity_template,omitempty"`
	DelayTemplate      string `yaml:"delay_template,omitempty"`

	Overrides []IndexOverrideBlock `yaml:"overrides,omitempty"`
	Arcs      []ArcSpec            `yaml:"arcs,omitempty"`
}

// PinIndex returns the position of pin in the cell's pin list.
func (c *CellSpec) PinIndex(pin string) (int, error) {
	idx := slices.Index(c.Pins, pin)
	if idx < 0 {
		return -1, fmt.Errorf("%w %q in cell %s", ErrUnknownPin, pin, c.Name)
	}

	return idx, nil
}

// TemplateName returns the template declared for the given category, or ""
// when the cell does not declare one.
func (c *CellSpec) TemplateName(kind OverrideType) string {
	switch kind {
	case OverrideConstraint:
		return c.ConstraintTemplate
	case OverrideMPW:
		return c.MPWTemplate
	case OverrideSIImmunity:
		return c.SIImmunityTemplate
	case OverrideDelay:
		return c.DelayTemplate
	default:
		return ""
	}
}

// OverridesOf returns the override blocks of the given category, in
// declaration order.
func (c *CellSpec) OverridesOf(kind OverrideType) []IndexOverrideBlock {
	var out []IndexOverrideBlock

	for _, o := range c.Overrides {
		if o.Type == kind {
			out = append(out, o)
		}
	}

	return out
}

// ArcSpec is one timing arc of a cell.
type ArcSpec struct {
	Type       ArcType `yaml:"type"`
	Pin        string  `yaml:"pin"`
	RelatedPin string  `yaml:"related_pin"`
	When       string  `yaml:"when,omitempty"`
	Vector     string  `yaml:"vector"`

	// Probe is nil when the arc carries no probe attribute.
	Probe Words `yaml:"probe,omitempty"`

	Metric          string `yaml:"metric,omitempty"`
	MetricThreshold string `yaml:"metric_threshold,omitempty"`
}

// ID returns a short identifier used in errors and logs.
func (a *ArcSpec) ID() string {
	id := fmt.Sprintf("%s %s->%s", a.Type, a.RelatedPin, a.Pin)
	if a.When != "" {
		id += " when " + a.When
	}

	return id
}

// IndexOverrideBlock narrows template index values for matching arcs.
type IndexOverrideBlock struct {
	Type OverrideType `yaml:"type"`

	// Pin is a list of pin names or patterns; "*" matches every pin.
	Pin Words `yaml:"pin"`
	// RelatedPin, when set, lists alternative fnmatch patterns.
	RelatedPin Words `yaml:"related_pin,omitempty"`
	// When, when set, is an fnmatch pattern applied to the raw when string.
	When string `yaml:"when,omitempty"`

	Index1 string `yaml:"index_1,omitempty"`
	Index2 string `yaml:"index_2,omitempty"`
}

// Words is a list of names that YAML may spell as a sequence or as one
// space-separated string.
type Words []string

// First returns the first word or "" when empty.
func (w Words) First() string {
	if len(w) == 0 {
		return ""
	}

	return w[0]
}

// String joins the words with single spaces.
func (w Words) String() string {
	return strings.Join(w, " ")
}

// SplitValues splits an index table string into its values. Liberty tables
// may be quoted and comma separated; both forms are accepted.
func SplitValues(s string) []string {
	s = strings.NewReplacer(`"`, " ", ",", " ", `\`, " ").Replace(s)
	return strings.Fields(s)
}

package classify

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"arcqa/internal/diagnostic"
	"arcqa/internal/filter"
)

// Rule maps matching arcs to a deck. Every non-empty field is a glob.
type Rule struct {
	Cell          string `yaml:"cell,omitempty"`
	ArcType       string `yaml:"arc_type,omitempty"`
	Pin           string `yaml:"pin,omitempty"`
	PinDir        string `yaml:"pin_dir,omitempty"`
	RelatedPin    string `yaml:"related_pin,omitempty"`
	RelatedPinDir string `yaml:"related_pin_dir,omitempty"`
	Probe         string `yaml:"probe,omitempty"`
	When          string `yaml:"when,omitempty"`
	TemplateType  string `yaml:"template_type,omitempty"`

	Deck    string `yaml:"deck,omitempty"`
	Exclude bool   `yaml:"exclude,omitempty"`
}

// Table is an ordered rule list. The first matching rule decides.
type Table struct {
	Rules []Rule `yaml:"rules"`
}

// SelectDeck implements Classifier.
func (t *Table) SelectDeck(c Criteria) (string, bool) {
	for i := range t.Rules {
		r := &t.Rules[i]
		if !r.matches(c) {
			continue
		}

		if r.Exclude || r.Deck == "" {
			return "", false
		}

		return expandDeck(r.Deck, c), true
	}

	return "", false
}

func (r *Rule) matches(c Criteria) bool {
	fields := [][2]string{
		{r.Cell, c.Cell},
		{r.ArcType, c.ArcType},
		{r.Pin, c.Pin},
		{r.PinDir, c.PinDir},
		{r.RelatedPin, c.RelatedPin},
		{r.RelatedPinDir, c.RelatedPinDir},
		{r.When, c.When},
		{r.TemplateType, c.TemplateType},
	}

	for _, f := range fields {
		if f[0] != "" && !filter.Glob(f[0], f[1]) {
			return false
		}
	}

	if r.Probe != "" {
		for _, p := range c.Probes {
			if filter.Glob(r.Probe, p) {
				return true
			}
		}

		return false
	}

	return true
}

// LoadFile loads and parses a YAML deck rule file from the given path.
func LoadFile(p string) (*Table, error) {
	data, err := os.ReadFile(p)
	if err != nil {
		return nil, fmt.Errorf("failed to read deck rules %s: %w", p, err)
	}

	t, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", p, err)
	}

	return t, nil
}

// Parse parses YAML data into a Table.
func Parse(data []byte) (*Table, error) {
	var t Table

	if err := yaml.Unmarshal(data, &t); err != nil {
		return nil, fmt.Errorf("failed to parse deck rules YAML: %w", err)
	}

	return &t, nil
}

// Validate reports malformed patterns and rules that can never name a deck.
func (t *Table) Validate() *diagnostic.Diagnostics {
	res := &diagnostic.Diagnostics{}

	for i := range t.Rules {
		r := &t.Rules[i]
		where := fmt.Sprintf("rule #%d", i+1)

		for _, p := range []string{r.Cell, r.ArcType, r.Pin, r.PinDir, r.RelatedPin,
			r.RelatedPinDir, r.Probe, r.When, r.TemplateType} {
			if err := filter.CheckGlob(p); err != nil {
				res.AddError("bad_pattern", fmt.Sprintf("pattern %q: %v", p, err), "", where)
			}
		}

		if r.Deck == "" && !r.Exclude {
			res.AddError("rule_without_deck", "rule names no deck and is not an exclusion", "", where)
		}

		if r.Deck != "" && r.Exclude {
			res.AddWarning("excluded_deck", fmt.Sprintf("deck %q is never used: rule is an exclusion", r.Deck), "", where)
		}
	}

	return res
}

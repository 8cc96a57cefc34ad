package record

import (
	"fmt"
	"slices"

	"arcqa/internal/model"
)

// SidePinState is the fixed level of a pin that is neither the constrained
// nor the related pin.
type SidePinState struct {
	Pin   string `yaml:"pin"`
	State string `yaml:"state"`
}

// Record is one arc characterization record.
type Record struct {
	Cell          string             `yaml:"cell"`
	ArcType       model.ArcType      `yaml:"arc_type"`
	TemplateType  model.OverrideType `yaml:"template_type"`
	Pin           string             `yaml:"pin"`
	PinDir        string             `yaml:"pin_dir,omitempty"`
	RelatedPin    string             `yaml:"related_pin"`
	RelatedPinDir string             `yaml:"related_pin_dir,omitempty"`

	// When is the literal id of the condition, e.g. "notSE_SI".
	When    string `yaml:"when"`
	RawWhen string `yaml:"raw_when,omitempty"`

	Probes  []string `yaml:"probes,omitempty"`
	Pinlist []string `yaml:"pinlist"`
	Outputs []string `yaml:"outputs,omitempty"`

	Index1     []string `yaml:"index_1,flow"`
	Index2     []string `yaml:"index_2,flow"`
	OutputLoad string   `yaml:"output_load"`
	// TablePoint is set only for records expanded from a 5x5x5 table.
	TablePoint *int `yaml:"table_point,omitempty"`

	SidePins []SidePinState `yaml:"side_pins,omitempty"`

	Deck            string `yaml:"deck"`
	Metric          string `yaml:"metric,omitempty"`
	MetricThreshold string `yaml:"metric_threshold,omitempty"`
	Vector          string `yaml:"vector"`
}

// ComputeSidePinStates records the fixed level of every side pin the vector
// holds at 0 or 1. R, F and x symbols are ignored.
func ComputeSidePinStates(pinlist []string, pin, relatedPin, vector string) []SidePinState {
	var out []SidePinState

	for i, p := range pinlist {
		if p == pin || p == relatedPin || i >= len(vector) {
			continue
		}

		switch vector[i] {
		case '1':
			out = append(out, SidePinState{Pin: p, State: "high"})
		case '0':
			out = append(out, SidePinState{Pin: p, State: "low"})
		}
	}

	return out
}

// BuildRecords expands base over the resolved loads. Five loads yield the
// interior points 1..3; a single load yields one untagged record.
func BuildRecords(base Record, loads []string) ([]Record, error) {
	switch len(loads) {
	case 1:
		r := base.clone()
		r.OutputLoad = loads[0]
		r.TablePoint = nil

		return []Record{r}, nil

	case tablePoints:
		out := make([]Record, 0, tablePoints-2)

		for i := 1; i < tablePoints-1; i++ {
			point := i
			r := base.clone()
			r.OutputLoad = loads[i]
			r.TablePoint = &point
			out = append(out, r)
		}

		return out, nil

	default:
		return nil, fmt.Errorf("%w: %d entries, want 1 or %d", model.ErrMalformedLoad, len(loads), tablePoints)
	}
}

// clone copies r with slices of its own, so records never share backing
// arrays with the model or with each other.
func (r Record) clone() Record {
	r.Probes = slices.Clone(r.Probes)
	r.Pinlist = slices.Clone(r.Pinlist)
	r.Outputs = slices.Clone(r.Outputs)
	r.Index1 = slices.Clone(r.Index1)
	r.Index2 = slices.Clone(r.Index2)
	r.SidePins = slices.Clone(r.SidePins)

	return r
}

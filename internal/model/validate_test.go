package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func codes(t *testing.T, lib *Library) []string {
	t.Helper()

	res := Validate(lib)

	var out []string
	for _, d := range res.All() {
		out = append(out, d.Code)
	}

	return out
}

func TestValidate_ValidLibrary(t *testing.T) {
	lib, err := Parse([]byte(testLibraryYAML))
	require.NoError(t, err)

	res := Validate(lib)
	assert.True(t, res.IsValid(), "expected valid library, got errors: %v", res.Errors)
	assert.Empty(t, res.Warnings)
}

func TestValidate_Violations(t *testing.T) {
	lib, err := Parse([]byte(`
templates:
  - name: ct
    index_1: "1 2"
  - name: ct
    index_1: "3 4"
cells:
  - name: DFQD1
    pins: [D, CP, Q]
    outputs: [QN]
    constraint_template: ct
    delay_template: missing_dt
    overrides:
      - type: bogus
        pin: D
    arcs:
      - type: setup_rising
        pin: D
        related_pin: CLK
        vector: RRx
      - type: hold_rising
        pin: D
        related_pin: CP
        vector: RRxx
      - type: si_immunity
        pin: D
        related_pin: CP
        vector: RZx
  - name: EMPTY
`))
	require.NoError(t, err)

	assert.ElementsMatch(t, []string{
		"unknown_pin",           // output QN
		"undefined_template",    // missing_dt
		"invalid_override_type", // bogus
		"unknown_pin",           // related pin CLK
		"vector_length",         // RRxx
		"vector_symbol",         // Z
		"missing_template",      // no si_immunity template
		"no_pins",               // EMPTY
		"duplicate_template",    // ct twice
	}, codes(t, lib))
}

func TestValidate_MPWFallsBackToConstraint(t *testing.T) {
	lib, err := Parse([]byte(`
templates:
  - name: ct
    index_1: "1 2"
cells:
  - name: DFQD1
    pins: [D, CP, Q]
    constraint_template: ct
    arcs:
      - type: min_pulse_width
        pin: CP
        related_pin: CP
        vector: xRx
`))
	require.NoError(t, err)

	assert.Empty(t, codes(t, lib))
}

func TestValidate_Nil(t *testing.T) {
	res := Validate(nil)
	require.True(t, res.HasErrors())
	assert.Equal(t, "model_is_nil", res.Errors[0].Code)
}

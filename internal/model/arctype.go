package model

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

//go:generate go tool stringer -type=ArcType -linecomment -output=arctype_string.go

// ArcType enumerates the timing-arc kinds the library parsers emit.
type ArcType int

const (
	_ ArcType = iota // zero value is an invalid arc type

	ArcSetupRising        // setup_rising
	ArcSetupFalling       // setup_falling
	ArcHoldRising         // hold_rising
	ArcHoldFalling        // hold_falling
	ArcRecoveryRising     // recovery_rising
	ArcRecoveryFalling    // recovery_falling
	ArcRemovalRising      // removal_rising
	ArcRemovalFalling     // removal_falling
	ArcNonSeqSetupRising  // non_seq_setup_rising
	ArcNonSeqSetupFalling // non_seq_setup_falling
	ArcNonSeqHoldRising   // non_seq_hold_rising
	ArcNonSeqHoldFalling  // non_seq_hold_falling
	ArcMinPulseWidth      // min_pulse_width
	ArcMinimumPeriod      // minimum_period
	ArcSIImmunity         // si_immunity
	ArcCombinational      // combinational
	ArcCombinationalRise  // combinational_rise
	ArcCombinationalFall  // combinational_fall
	ArcRisingEdge         // rising_edge
	ArcFallingEdge        // falling_edge
	ArcThreeStateEnable   // three_state_enable
	ArcThreeStateDisable  // three_state_disable
	ArcClear              // clear
	ArcPreset             // preset

	// arcTypeTotal is one past the last valid arc type.
	arcTypeTotal = int(iota)
)

// ParseArcType maps a liberty-style timing type name to its ArcType.
func ParseArcType(s string) (ArcType, error) {
	for t := ArcType(1); int(t) < arcTypeTotal; t++ {
		if t.String() == s {
			return t, nil
		}
	}

	return 0, fmt.Errorf("unknown arc type %q", s)
}

// IsValid reports whether t is one of the declared arc kinds.
func (t ArcType) IsValid() bool {
	return t > 0 && int(t) < arcTypeTotal
}

// Category returns the override category whose template and override blocks
// apply to arcs of this kind.
func (t ArcType) Category() OverrideType {
	switch t {
	default:
		return OverrideConstraint
	case ArcMinPulseWidth, ArcMinimumPeriod:
		return OverrideMPW
	case ArcSIImmunity:
		return OverrideSIImmunity
	case ArcCombinational, ArcCombinationalRise, ArcCombinationalFall,
		ArcRisingEdge, ArcFallingEdge,
		ArcThreeStateEnable, ArcThreeStateDisable,
		ArcClear, ArcPreset:
		return OverrideDelay
	}
}

// UnmarshalYAML decodes an arc type from its timing type name.
func (t *ArcType) UnmarshalYAML(node *yaml.Node) error {
	var s string
	if err := node.Decode(&s); err != nil {
		return err
	}

	parsed, err := ParseArcType(s)
	if err != nil {
		return fmt.Errorf("line %d: %w", node.Line, err)
	}

	*t = parsed

	return nil
}

// MarshalYAML encodes an arc type as its timing type name.
func (t ArcType) MarshalYAML() (any, error) {
	return t.String(), nil
}

// OverrideType names one of the four index-template categories.
type OverrideType string

const (
	OverrideConstraint OverrideType = "constraint"
	OverrideMPW        OverrideType = "mpw"
	OverrideSIImmunity OverrideType = "si_immunity"
	OverrideDelay      OverrideType = "delay"
)

// IsValid returns true if the override type is a recognized category.
func (o OverrideType) IsValid() bool {
	switch o {
	case OverrideConstraint, OverrideMPW, OverrideSIImmunity, OverrideDelay:
		return true
	default:
		return false
	}
}

package vector

import (
	"strings"
	"unicode"

	"arcqa/internal/filter"
	"arcqa/internal/model"
)

// Toggle reasons reported alongside variants.
const (
	ToggleNone      = ""
	ToggleSync      = "sync_output"
	ToggleClockGate = "clock_gate_output"
	ToggleMultiBit  = "multibit_data_bit"
)

// Direction names the level or edge a vector symbol drives.
func Direction(sym byte) string {
	switch sym {
	case 'R':
		return "rise"
	case 'F':
		return "fall"
	case '1':
		return "high"
	case '0':
		return "low"
	default:
		return ""
	}
}

// PinDirection returns the direction of the named pin in vec.
func PinDirection(pins []string, vec, pin string) string {
	for i, p := range pins {
		if p == pin && i < len(vec) {
			return Direction(vec[i])
		}
	}

	return ""
}

// Variants returns the vectors to emit for arc and why they were toggled.
// When no family rule applies the arc's own vector is the only variant.
func Variants(fam filter.FamilySet, pins []string, arc *model.ArcSpec) ([]string, string) {
	vec := arc.Vector
	if vec == "" {
		return []string{vec}, ToggleNone
	}

	last := len(vec) - 1

	switch {
	case fam.Has(filter.FamilySync) && isLevel(vec[last]):
		return toggle(vec, last), ToggleSync

	case clockGateEdge(fam, pins, arc) && isLevel(vec[last]):
		return toggle(vec, last), ToggleClockGate

	case fam.Has(filter.FamilyMultiBit) && strings.HasSuffix(vec, "x"):
		if idx := dataBitFor(pins, arc.Probe); idx >= 0 && idx < len(vec) && isLevel(vec[idx]) {
			return toggle(vec, idx), ToggleMultiBit
		}
	}

	return []string{vec}, ToggleNone
}

// clockGateEdge reports the related-pin edge that closes the clock-gate
// latch: CP rising for CKLN, CP falling for CKLH.
func clockGateEdge(fam filter.FamilySet, pins []string, arc *model.ArcSpec) bool {
	if arc.RelatedPin != "CP" {
		return false
	}

	dir := PinDirection(pins, arc.Vector, arc.RelatedPin)

	return (fam.Has(filter.FamilyClockGateLow) && dir == "rise") ||
		(fam.Has(filter.FamilyClockGateHigh) && dir == "fall")
}

// dataBitFor aligns the first probe's bit index with a D-prefixed pin.
func dataBitFor(pins []string, probes []string) int {
	if len(probes) == 0 {
		return -1
	}

	bit := firstNumber(probes[0])
	if bit == "" {
		return -1
	}

	for i, p := range pins {
		if strings.HasPrefix(p, "D") && firstNumber(p) == bit {
			return i
		}
	}

	return -1
}

// firstNumber returns the first run of digits in s.
func firstNumber(s string) string {
	start := strings.IndexFunc(s, unicode.IsDigit)
	if start < 0 {
		return ""
	}

	end := start
	for end < len(s) && unicode.IsDigit(rune(s[end])) {
		end++
	}

	return s[start:end]
}

func isLevel(sym byte) bool {
	return sym == 'x' || sym == '0' || sym == '1'
}

func toggle(vec string, idx int) []string {
	low := []byte(vec)
	low[idx] = '0'

	high := []byte(vec)
	high[idx] = '1'

	return []string{string(low), string(high)}
}

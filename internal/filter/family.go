package filter

import (
	"slices"
	"strings"
)

// Family is a cell-family tag.
type Family string

const (
	FamilySync          Family = "sync"
	FamilyClockGate     Family = "clock_gate"
	FamilyClockGateLow  Family = "clock_gate_low"
	FamilyClockGateHigh Family = "clock_gate_high"
	FamilyMultiBit      Family = "multibit"
	FamilyScan          Family = "scan"
	FamilyRetention     Family = "retention"
	FamilyLatch         Family = "latch"
)

// FamilyPattern tags every cell whose name matches Pattern.
type FamilyPattern struct {
	Pattern string `yaml:"pattern"`
	Family  Family `yaml:"family"`
}

// FamilyTable is an ordered list of family patterns. A cell collects the
// tags of every row it matches.
type FamilyTable []FamilyPattern

// DefaultFamilies is the family table for the standard-cell naming scheme.
var DefaultFamilies = FamilyTable{
	{"*SYNC1P5*", FamilySync},
	{"*SYNC2*", FamilySync},
	{"*SYNC3*", FamilySync},
	{"*SYNC4*", FamilySync},
	{"*SYNC5*", FamilySync},
	{"*SYNC6*", FamilySync},
	{"CKLN*", FamilyClockGate},
	{"CKLN*", FamilyClockGateLow},
	{"CKLH*", FamilyClockGate},
	{"CKLH*", FamilyClockGateHigh},
	{"MB*", FamilyMultiBit},
	{"*SDF*", FamilyScan},
	{"*SEDF*", FamilyScan},
	{"*RET*", FamilyRetention},
	{"*LPV*", FamilyRetention},
	{"LH*", FamilyLatch},
	{"LN*", FamilyLatch},
}

// Resolve returns the family tags of the named cell.
func (t FamilyTable) Resolve(cell string) FamilySet {
	var set FamilySet

	for _, row := range t {
		if Match(row.Pattern, cell) && !set.Has(row.Family) {
			set = append(set, row.Family)
		}
	}

	slices.Sort(set)

	return set
}

// FamilySet is the sorted set of tags resolved for one cell.
type FamilySet []Family

// Has reports whether f is in the set.
func (s FamilySet) Has(f Family) bool {
	return slices.Contains(s, f)
}

func (s FamilySet) String() string {
	parts := make([]string, len(s))
	for i, f := range s {
		parts[i] = string(f)
	}

	return strings.Join(parts, ",")
}

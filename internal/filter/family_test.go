package filter

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFamilyTable_Resolve(t *testing.T) {
	tests := []struct {
		cell string
		want FamilySet
	}{
		{"SYNC2SDFQD1", FamilySet{FamilyScan, FamilySync}},
		{"SDFSYNC1P5QD1", FamilySet{FamilyScan, FamilySync}},
		{"CKLNQD4", FamilySet{FamilyClockGate, FamilyClockGateLow}},
		{"CKLHRETQD1", FamilySet{FamilyClockGate, FamilyClockGateHigh, FamilyRetention}},
		{"MB2SDFQLPVD1", FamilySet{FamilyMultiBit, FamilyRetention, FamilyScan}},
		{"LHQD1", FamilySet{FamilyLatch}},
		{"INVD1", nil},
	}

	for _, tt := range tests {
		t.Run(tt.cell, func(t *testing.T) {
			assert.Equal(t, tt.want, DefaultFamilies.Resolve(tt.cell))
		})
	}
}

func TestFamilySet_String(t *testing.T) {
	assert.Equal(t, "clock_gate,clock_gate_low", DefaultFamilies.Resolve("CKLNQD1").String())
	assert.Equal(t, "", FamilySet(nil).String())
}

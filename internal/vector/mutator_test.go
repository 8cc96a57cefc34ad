package vector

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"arcqa/internal/filter"
	"arcqa/internal/model"
)

func TestDirection(t *testing.T) {
	assert.Equal(t, "rise", Direction('R'))
	assert.Equal(t, "fall", Direction('F'))
	assert.Equal(t, "high", Direction('1'))
	assert.Equal(t, "low", Direction('0'))
	assert.Equal(t, "", Direction('x'))

	pins := []string{"D", "CP", "Q"}
	assert.Equal(t, "fall", PinDirection(pins, "RFx", "CP"))
	assert.Equal(t, "", PinDirection(pins, "RFx", "SE"))
}

func TestVariants(t *testing.T) {
	tests := []struct {
		name       string
		cell       string
		pins       []string
		arc        model.ArcSpec
		want       []string
		wantReason string
	}{
		{
			name:       "sync toggles last symbol",
			cell:       "SDFSYNC2QD1",
			pins:       []string{"D", "CP", "SE", "SI", "Q"},
			arc:        model.ArcSpec{Pin: "D", RelatedPin: "CP", Vector: "RR00x"},
			want:       []string{"RR000", "RR001"},
			wantReason: ToggleSync,
		},
		{
			name:       "sync with switching last pin unchanged",
			cell:       "SYNC3QD1",
			pins:       []string{"D", "CP", "Q"},
			arc:        model.ArcSpec{Pin: "Q", RelatedPin: "CP", Vector: "xRF"},
			want:       []string{"xRF"},
			wantReason: ToggleNone,
		},
		{
			name:       "CKLN on CP rising",
			cell:       "CKLNQD1",
			pins:       []string{"E", "TE", "CP", "Q"},
			arc:        model.ArcSpec{Pin: "E", RelatedPin: "CP", Vector: "F0Rx"},
			want:       []string{"F0R0", "F0R1"},
			wantReason: ToggleClockGate,
		},
		{
			name:       "CKLN on CP falling unchanged",
			cell:       "CKLNQD1",
			pins:       []string{"E", "TE", "CP", "Q"},
			arc:        model.ArcSpec{Pin: "E", RelatedPin: "CP", Vector: "F0Fx"},
			want:       []string{"F0Fx"},
			wantReason: ToggleNone,
		},
		{
			name:       "CKLH on CP falling",
			cell:       "CKLHQD1",
			pins:       []string{"E", "TE", "CP", "Q"},
			arc:        model.ArcSpec{Pin: "TE", RelatedPin: "CP", Vector: "0RFx"},
			want:       []string{"0RF0", "0RF1"},
			wantReason: ToggleClockGate,
		},
		{
			name: "multibit aligns measured bit with data pin",
			cell: "MB2SRLSDFQD1",
			pins: []string{"D1", "D2", "CP", "SE", "SI", "Q1", "Q2"},
			arc: model.ArcSpec{
				Pin: "SI", RelatedPin: "CP", Vector: "xxR0Rxx",
				Probe: model.Words{"Q2"},
			},
			want:       []string{"x0R0Rxx", "x1R0Rxx"},
			wantReason: ToggleMultiBit,
		},
		{
			name: "multibit without measured pin unchanged",
			cell: "MB2SRLSDFQD1",
			pins: []string{"D1", "D2", "CP", "SE", "SI", "Q1", "Q2"},
			arc:  model.ArcSpec{Pin: "SI", RelatedPin: "CP", Vector: "xxR0Rxx"},
			want: []string{"xxR0Rxx"},
		},
		{
			name: "multibit without trailing x unchanged",
			cell: "MB2SRLSDFQD1",
			pins: []string{"D1", "D2", "CP", "SE", "SI", "Q1", "Q2"},
			arc: model.ArcSpec{
				Pin: "SI", RelatedPin: "CP", Vector: "xxR0R00",
				Probe: model.Words{"Q2"},
			},
			want: []string{"xxR0R00"},
		},
		{
			name: "plain cell unchanged",
			cell: "DFQD1",
			pins: []string{"D", "CP", "Q"},
			arc:  model.ArcSpec{Pin: "D", RelatedPin: "CP", Vector: "RRx"},
			want: []string{"RRx"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fam := filter.DefaultFamilies.Resolve(tt.cell)
			got, reason := Variants(fam, tt.pins, &tt.arc)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.wantReason, reason)
		})
	}
}

func TestFirstNumber(t *testing.T) {
	assert.Equal(t, "2", firstNumber("Q2"))
	assert.Equal(t, "12", firstNumber("MB_Q12_int3"))
	assert.Equal(t, "", firstNumber("QN"))
}

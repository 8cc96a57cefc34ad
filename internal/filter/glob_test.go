package filter

import (
	"path"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGlob(t *testing.T) {
	tests := []struct {
		pattern string
		name    string
		want    bool
	}{
		{"[!S]*", "DFQD1", true},
		{"[!S]*", "SDFQD1", false},
		{"[^S]*", "SDFQD1", false},
		{"MB[!0-1]*", "MB2SDFQD1", true},
		{"MB[!0-1]*", "MB1SDFQD1", false},
		{"*[!0-9]", "CKLNQD1", false},
		{"*[!0-9]", "CKLNQ", true},
		{"D?", "D1", true},
		{"[S", "S", false},
	}

	for _, tt := range tests {
		t.Run(tt.pattern+"/"+tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Glob(tt.pattern, tt.name))
		})
	}
}

func TestCheckGlob(t *testing.T) {
	assert.NoError(t, CheckGlob("[!S]*"))
	assert.NoError(t, CheckGlob("*SYNC*"))
	assert.ErrorIs(t, CheckGlob("[SYNC"), path.ErrBadPattern)
}

func TestMatch_FnmatchNegation(t *testing.T) {
	assert.True(t, Match("[!S]*D1", "DFQD1"))
	assert.False(t, Match("[!S]*D1", "SDFQD1"))
	assert.True(t, IsValidCell("CKLNQD1", []string{"[!D]*"}))
}

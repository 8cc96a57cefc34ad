package dedup

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"arcqa/internal/model"
)

func TestLimiter_MaxOne(t *testing.T) {
	reg := NewRegistry()
	lim := NewLimiter(reg, 1)
	key := Key{ArcType: model.ArcHoldRising, Pin: "D", RelatedPin: "CP", Vector: "RRx"}

	assert.True(t, lim.Accept(key, "!SE&SI", true))
	assert.Equal(t, 1, reg.Len(key))

	// The same when again does not grow the set.
	assert.True(t, lim.Accept(key, "!SE&SI", true))
	assert.Equal(t, 1, reg.Len(key))

	assert.False(t, lim.Accept(key, "!SE&!SI", true))
	assert.Equal(t, []string{"!SE&SI", "!SE&!SI"}, reg.Whens(key))
}

func TestLimiter_NoDeckNeverCounts(t *testing.T) {
	reg := NewRegistry()
	lim := NewLimiter(reg, 1)
	key := Key{ArcType: model.ArcSetupRising, Pin: "D", RelatedPin: "CP", Vector: "RRx"}

	assert.True(t, lim.Accept(key, "A", false))
	assert.True(t, lim.Accept(key, "B", false))
	assert.Equal(t, 0, reg.Len(key))
	assert.Equal(t, 0, reg.Keys())

	assert.True(t, lim.Accept(key, "C", true))
	assert.False(t, lim.Accept(key, "D", true))

	// Once the cap is exceeded, even deckless calls are rejected.
	assert.False(t, lim.Accept(key, "E", false))
	assert.Equal(t, []string{"C", "D"}, reg.Whens(key))
}

func TestLimiter_KeysAreIndependent(t *testing.T) {
	reg := NewRegistry()
	lim := NewLimiter(reg, 2)

	k0 := Key{ArcType: model.ArcHoldRising, Pin: "D", RelatedPin: "CP", Vector: "RR0"}
	k1 := k0
	k1.Vector = "RR1"

	assert.True(t, lim.Accept(k0, "A", true))
	assert.True(t, lim.Accept(k0, "B", true))
	assert.False(t, lim.Accept(k0, "C", true))
	assert.True(t, lim.Accept(k1, "C", true))
	assert.Equal(t, 2, reg.Keys())
}

func TestNewLimiter_ClampsCap(t *testing.T) {
	lim := NewLimiter(NewRegistry(), 0)
	key := Key{Pin: "A"}

	assert.True(t, lim.Accept(key, "x", true))
	assert.False(t, lim.Accept(key, "y", true))
}

func TestKey_String(t *testing.T) {
	key := Key{ArcType: model.ArcHoldRising, Pin: "D", RelatedPin: "CP", Vector: "RRx"}
	assert.Equal(t, "hold_rising CP->D RRx", key.String())
}

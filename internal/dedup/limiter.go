package dedup

import (
	"fmt"
	"slices"

	"arcqa/internal/model"
)

// Key identifies arcs that are near-duplicates of each other.
type Key struct {
	ArcType    model.ArcType
	Pin        string
	RelatedPin string
	Vector     string
}

func (k Key) String() string {
	return fmt.Sprintf("%s %s->%s %s", k.ArcType, k.RelatedPin, k.Pin, k.Vector)
}

// Registry maps each key to the ordered set of distinct when strings already
// recorded for it.
type Registry struct {
	whens map[Key][]string
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{whens: make(map[Key][]string)}
}

// Whens returns the when strings recorded for key, in arrival order.
func (r *Registry) Whens(key Key) []string {
	return slices.Clone(r.whens[key])
}

// Len returns the number of distinct when strings recorded for key.
func (r *Registry) Len(key Key) int {
	return len(r.whens[key])
}

// Keys returns the number of keys with at least one recorded when string.
func (r *Registry) Keys() int {
	return len(r.whens)
}

func (r *Registry) record(key Key, when string) {
	if slices.Contains(r.whens[key], when) {
		return
	}

	r.whens[key] = append(r.whens[key], when)
}

// Limiter caps the distinct when strings per key.
type Limiter struct {
	registry   *Registry
	maxNumWhen int
}

// NewLimiter creates a limiter over registry. maxNumWhen below 1 is treated
// as 1.
func NewLimiter(registry *Registry, maxNumWhen int) *Limiter {
	if maxNumWhen < 1 {
		maxNumWhen = 1
	}

	return &Limiter{registry: registry, maxNumWhen: maxNumWhen}
}

// Accept records when for key if hasDeck, then reports whether the key is
// still within the cap. The cap is checked on every call, so an arc without
// a deck is rejected when earlier emissions already filled the key.
func (l *Limiter) Accept(key Key, when string, hasDeck bool) bool {
	if hasDeck {
		l.registry.record(key, when)
	}

	return l.registry.Len(key) <= l.maxNumWhen
}

// Registry returns the registry the limiter records into.
func (l *Limiter) Registry() *Registry {
	return l.registry
}

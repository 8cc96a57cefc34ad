// Package dedup bounds how many when variants survive per arc key.
//
// The registry is scoped to one extraction run. Acceptance depends on the
// order in which when strings arrive, so callers must feed arcs in a stable
// order.
package dedup

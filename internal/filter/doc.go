// Package filter decides which cells and arcs are characterized.
//
// Three layers apply in order:
//   - Cell patterns: IsValidCell checks the cell name against the requested
//     patterns (exact, "prefix*", "*suffix", "*substring*").
//   - Arc types: IsValidArcType checks the arc kind against the requested
//     template vocabulary, expanding "delay" and "slew" to the delay family.
//   - Skip rules: an ordered table of named predicates over the cell family
//     tags, the normalized when tokens, the pin list, the vector and the
//     probes. Any matching rule excludes the arc.
//
// Cell families are resolved once per cell from a declarative glob table so
// rules and the vector mutator dispatch on tags instead of re-testing name
// substrings.
package filter

// Package vector derives pin directions from arc vectors and produces the
// companion vectors some cell families need.
//
// Synchronizers, clock-gate latches and multi-bit cells are characterized at
// both polarities of one toggle pin. Variants returns the vectors to emit, in
// emission order: the 0 polarity first, then the 1 polarity. Each variant is
// classified, deduplicated and built independently.
package vector

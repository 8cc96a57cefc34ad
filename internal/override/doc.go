// Package override resolves the index tables used to characterize an arc.
//
// Resolution starts from the cell's default template for the arc's category
// (constraint, mpw, si_immunity or delay) and applies the best matching
// override block on top of it.
//
// # Precedence
//
// A block matches when its pin pattern lists the pin (or "*" or a matching
// glob), its related-pin alternatives match the related pin, and its when
// pattern matches the raw when string. Among matches, the first block that
// lists the pin literally wins; otherwise the first wildcard match wins.
//
// The resolved index_2 always takes index_1's value. Callers cannot
// override index_2 independently.
package override

// Package extract drives arc characterization extraction across a library.
//
// Pipeline, per cell and per arc in model order:
//  1. Cell patterns and requested arc types gate the arc.
//  2. Pins and vector are checked against the cell's pin list; violations
//     abort the run with a *model.ArcError.
//  3. The skip rule table filters the when condition ("+"-joined clauses
//     are truncated to the first clause when any clause survives).
//  4. Index tables are resolved from the default template and overrides.
//  5. The vector mutator yields one or two vectors. Each vector is
//     classified, passed through the dedup limiter and, when a deck was
//     named, built into records.
//
// Skips are not errors. They are recorded as info diagnostics and logged at
// debug level. Every emission with a deck increments the identified count.
package extract

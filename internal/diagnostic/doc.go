// Package diagnostic provides structured findings for library validation and
// extraction runs.
//
// Key capabilities:
//   - Model validation errors (unknown pins, vector length, undefined templates)
//   - Skip explanations (which filter, rule or cap excluded an arc)
//   - Per-code tallies for the end-of-run summary
package diagnostic

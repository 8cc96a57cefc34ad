// Package record assembles arc characterization records, the contract handed
// to deck generation.
//
// A record is created once and never modified. Cells whose constraint table is
// a 5x5x5 table emit one record per interior output-load point (1, 2 and 3);
// every other cell emits a single record at its configured load column.
package record

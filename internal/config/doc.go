// Package config loads the arcqa run configuration.
//
// A configuration file selects cells and arc types, caps the number of when
// conditions per arc, picks output loads and names the record sink:
//
//	cells: ["*SYNC*", "DFQD*"]
//	arc_types: [hold_rising, setup_rising, delay]
//	max_num_when: 1
//	load_index: 2
//	table_3d_pattern: "*5x5x5*"
//	load_changes:
//	  - {cell: "*D4", index: 0}
//	output: {format: sqlite, path: arcs.db}
//	logging: {level: info, encoding: console}
//
// Keys omitted from the file keep the values of Default.
package config

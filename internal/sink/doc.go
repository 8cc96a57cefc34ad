// Package sink persists extraction results.
//
// YAMLWriter writes a single document holding the identified count and the
// records in emission order. SQLiteWriter appends a run to a database file
// with one row per record, using the pure-Go modernc.org/sqlite driver.
package sink

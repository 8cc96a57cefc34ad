// Package when parses and normalizes liberty "when" conditions.
//
// A when condition is a conjunction of pin literals, e.g. "!SE&SI". Several
// alternative conjunctions may be joined with "+". The codec only splits and
// tokenizes; it never evaluates a condition against pin states.
package when

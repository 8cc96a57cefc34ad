// Package model provides the read-only cell/arc/template data model consumed by
// the extraction engine, plus a YAML-backed TemplateModel implementation.
//
// The model mirrors what the upstream TCL/SPICE parsers produce for a
// standard-cell library: each cell declares its pins, its index templates and
// a list of timing arcs; index override blocks narrow template values for
// specific pin/related-pin/when combinations.
//
// # Library file
//
//	templates:
//	  - name: ct_5x5x5
//	    index_1: "0.01 0.02 0.04 0.08 0.16"
//	    index_2: "0.01 0.02 0.04 0.08 0.16"
//	    index_3: "0.001 0.002 0.004 0.008 0.016"
//	cells:
//	  - name: SDFQD1
//	    pins: [D, CP, SE, SI, Q]
//	    outputs: [Q]
//	    constraint_template: ct_5x5x5
//	    overrides:
//	      - type: constraint
//	        pin: "D SI"
//	        related_pin: CP
//	        when: "*SE*"
//	        index_1: "0.02 0.03"
//	    arcs:
//	      - type: hold_rising
//	        pin: D
//	        related_pin: CP
//	        when: "!SE&SI"
//	        vector: RRxxx
//	        probe: Q
//
// Pin lists, probes and pin patterns accept either a YAML sequence or a
// single space-separated string.
//
// # Invariants
//
// The engine assumes a well-formed model: every arc vector has one symbol per
// pin and every referenced pin exists in the cell's pin list. Validate reports
// violations up front; the extractor raises an *ArcError when it meets one.
package model

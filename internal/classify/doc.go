// Package classify defines the deck classifier interface the extractor calls
// and a rule-table implementation loaded from YAML.
//
// The deck-naming taxonomy is library data. A deck file lists ordered rules;
// the first rule whose patterns all match an arc names its deck:
//
//	rules:
//	  - cell: "MB*LPV*"
//	    when: "*RET*"
//	    exclude: true
//	  - cell: "*SYNC*"
//	    arc_type: "hold_*"
//	    deck: "sync_hold_{when}.sp"
//	  - arc_type: "setup_*"
//	    template_type: constraint
//	    deck: "setup.sp"
//
// Empty fields match anything. A matching rule with exclude set yields no
// deck. Deck names may reference {cell}, {arc_type}, {pin}, {related_pin}
// and {when}; {when} expands to the literal id of the condition.
package classify

package filter

import (
	"slices"
	"strings"
	"unicode"

	"arcqa/internal/when"
)

// SkipContext is everything a skip rule may look at.
type SkipContext struct {
	Cell     string
	Families FamilySet
	Tokens   when.Tokens
	Pinlist  []string
	Vector   string
	Probes   []string
}

// Rule is a named skip predicate.
type Rule struct {
	Name  string
	Match func(ctx *SkipContext) bool
}

// Rules is an ordered rule table. An arc is skipped when any rule matches.
type Rules []Rule

// ShouldSkip reports whether any rule matches ctx and names the first one.
func (r Rules) ShouldSkip(ctx *SkipContext) (bool, string) {
	for _, rule := range r {
		if rule.Match(ctx) {
			return true, rule.Name
		}
	}

	return false, ""
}

// Decision is the outcome of filtering one arc's when condition.
type Decision struct {
	// When is the condition processing continues with. For "+"-joined
	// conditions that survive, it is the first clause.
	When string
	Skip bool
	// Rule names the rule that excluded the arc (first clause's rule when
	// every clause was excluded).
	Rule string
}

// FilterWhen evaluates the rules against raw. A "+"-joined condition is
// skipped only when every clause is skipped on its own; otherwise it is
// truncated to its first clause.
func (r Rules) FilterWhen(base SkipContext, raw string) Decision {
	clauses := when.Clauses(raw)
	if len(clauses) == 1 {
		base.Tokens = when.Normalize(raw)
		skip, rule := r.ShouldSkip(&base)

		return Decision{When: raw, Skip: skip, Rule: rule}
	}

	firstRule := ""

	for i, c := range clauses {
		ctx := base
		ctx.Tokens = when.Normalize(c)

		skip, rule := r.ShouldSkip(&ctx)
		if !skip {
			return Decision{When: clauses[0]}
		}

		if i == 0 {
			firstRule = rule
		}
	}

	return Decision{When: clauses[0], Skip: true, Rule: firstRule}
}

// DefaultRules is the domain exclusion table.
var DefaultRules = Rules{
	// Scan shift mode is characterized separately.
	{"scan_enable_active", func(c *SkipContext) bool {
		return c.Tokens.HasPositive("SE")
	}},
	{"scan_input_low", func(c *SkipContext) bool {
		return c.Families.Has(FamilyScan) && c.Tokens.HasNegated("SI")
	}},
	{"multibit_scan_input_low", func(c *SkipContext) bool {
		return c.Families.Has(FamilyMultiBit) && c.Tokens.AnyFunc(func(name string, negated bool) bool {
			return negated && isIndexedPin(name, "SI")
		})
	}},
	{"clear_asserted", func(c *SkipContext) bool {
		return c.Tokens.HasPositive("CD") || c.Tokens.HasNegated("CDN")
	}},
	{"set_asserted", func(c *SkipContext) bool {
		return c.Tokens.HasPositive("SD") || c.Tokens.HasNegated("SDN")
	}},
	{"clock_gate_test_enable", func(c *SkipContext) bool {
		return c.Families.Has(FamilyClockGate) && c.Tokens.HasPositive("TE")
	}},
	// Skips unless both !E and !TE are present.
	{"clock_gate_retention_enable", func(c *SkipContext) bool {
		return c.Families.Has(FamilyClockGate) && c.Families.Has(FamilyRetention) &&
			(!c.Tokens.Has("!E") || !c.Tokens.Has("!TE"))
	}},
	{"retention_mode", func(c *SkipContext) bool {
		return c.Families.Has(FamilyRetention) &&
			(c.Tokens.HasPositive("RET") || c.Tokens.HasNegated("NRET"))
	}},
	{"retention_save_restore", func(c *SkipContext) bool {
		return c.Families.Has(FamilyRetention) &&
			(c.Tokens.HasPositive("SAVE") || c.Tokens.HasNegated("NRESTORE"))
	}},
	{"latch_opaque", func(c *SkipContext) bool {
		return c.Families.Has(FamilyLatch) && c.Tokens.HasNegated("E")
	}},
	{"sync_test_mode", func(c *SkipContext) bool {
		return c.Families.Has(FamilySync) && c.Tokens.HasPositive("TE")
	}},
	{"test_mode", func(c *SkipContext) bool {
		return c.Tokens.HasPositive("TM") || c.Tokens.HasPositive("TEST")
	}},
	{"no_transition", func(c *SkipContext) bool {
		return !strings.ContainsAny(c.Vector, "RF")
	}},
	{"when_vector_conflict", whenConflictsWithVector},
	{"probe_held_static", probeHeldStatic},
}

// whenConflictsWithVector reports a when literal that pins a side pin to the
// opposite of the level the vector drives it to.
func whenConflictsWithVector(c *SkipContext) bool {
	return c.Tokens.AnyFunc(func(name string, negated bool) bool {
		sym, ok := symbolOf(c, name)
		if !ok {
			return false
		}

		return (negated && sym == '1') || (!negated && sym == '0')
	})
}

// probeHeldStatic reports a probe on a pin the vector holds at a fixed level;
// such a node cannot switch during the simulation.
func probeHeldStatic(c *SkipContext) bool {
	for _, p := range c.Probes {
		if sym, ok := symbolOf(c, p); ok && (sym == '0' || sym == '1') {
			return true
		}
	}

	return false
}

func symbolOf(c *SkipContext, pin string) (byte, bool) {
	idx := slices.Index(c.Pinlist, pin)
	if idx < 0 || idx >= len(c.Vector) {
		return 0, false
	}

	return c.Vector[idx], true
}

// isIndexedPin reports whether name is base followed by a bit index, e.g.
// "SI3" for base "SI".
func isIndexedPin(name, base string) bool {
	rest, ok := strings.CutPrefix(name, base)
	if !ok || rest == "" {
		return false
	}

	for _, r := range rest {
		if !unicode.IsDigit(r) {
			return false
		}
	}

	return true
}

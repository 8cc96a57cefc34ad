package when

import (
	"slices"
	"strings"
)

// NoCondition is the literal id of an empty when condition.
const NoCondition = "no_condition"

// Tokens is a normalized conjunction: one entry per literal, negated literals
// keep their leading "!".
type Tokens []string

// Normalize strips quotes and whitespace from when, splits it on "&" and
// drops the parentheses around the whole condition or any single literal.
func Normalize(when string) Tokens {
	s := strings.TrimSpace(when)
	s = strings.Trim(s, `"'`)
	s = strings.TrimSpace(s)

	if strings.HasPrefix(s, "(") && strings.HasSuffix(s, ")") {
		s = strings.TrimSpace(s[1 : len(s)-1])
	}

	if s == "" {
		return nil
	}

	var tokens Tokens

	for _, part := range strings.Split(s, "&") {
		part = strings.Trim(strings.Join(strings.Fields(part), ""), "()")
		if part == "" {
			continue
		}

		tokens = append(tokens, part)
	}

	return tokens
}

// Clauses splits a "+"-joined condition into its alternative clauses.
// A condition without "+" yields a single clause.
func Clauses(when string) []string {
	if !strings.Contains(when, "+") {
		return []string{when}
	}

	var out []string

	for _, c := range strings.Split(when, "+") {
		out = append(out, strings.TrimSpace(c))
	}

	return out
}

// ToLiteralID maps "!SE&SI" to "notSE_SI". It is used only for deck names
// and log identifiers.
func ToLiteralID(when string) string {
	tokens := Normalize(when)
	if len(tokens) == 0 {
		return NoCondition
	}

	parts := make([]string, len(tokens))
	for i, t := range tokens {
		if name, neg := Literal(t); neg {
			parts[i] = "not" + name
		} else {
			parts[i] = name
		}
	}

	return strings.Join(parts, "_")
}

// Literal splits a token into its pin name and negation flag.
func Literal(token string) (name string, negated bool) {
	if strings.HasPrefix(token, "!") {
		return token[1:], true
	}

	return token, false
}

// String joins the tokens back into canonical "&" form.
func (t Tokens) String() string {
	return strings.Join(t, "&")
}

// Has reports whether the exact token (including any "!") is present.
func (t Tokens) Has(token string) bool {
	return slices.Contains(t, token)
}

// HasPositive reports whether name appears un-negated.
func (t Tokens) HasPositive(name string) bool {
	return t.Has(name)
}

// HasNegated reports whether name appears negated.
func (t Tokens) HasNegated(name string) bool {
	return t.Has("!" + name)
}

// Mentions reports whether name appears in either polarity.
func (t Tokens) Mentions(name string) bool {
	return t.HasPositive(name) || t.HasNegated(name)
}

// AnyFunc reports whether any literal name satisfies fn.
func (t Tokens) AnyFunc(fn func(name string, negated bool) bool) bool {
	for _, tok := range t {
		if fn(Literal(tok)) {
			return true
		}
	}

	return false
}

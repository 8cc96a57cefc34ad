package filter

import (
	"strings"
)

// PatternShape classifies a cell pattern.
type PatternShape int

const (
	ShapeExact PatternShape = iota
	ShapePrefix
	ShapeSuffix
	ShapeSubstring
	// ShapeGlob is any other glob, matched with fnmatch semantics.
	ShapeGlob
)

// ClassifyPattern returns the shape of pattern and its literal part (the
// pattern without the wildcards that define the shape).
func ClassifyPattern(pattern string) (PatternShape, string) {
	inner := strings.Trim(pattern, "*")
	if strings.ContainsAny(inner, "*?[") {
		return ShapeGlob, pattern
	}

	lead := strings.HasPrefix(pattern, "*")
	trail := strings.HasSuffix(pattern, "*") && len(pattern) > 1

	switch {
	case lead && trail:
		return ShapeSubstring, inner
	case lead:
		return ShapeSuffix, inner
	case trail:
		return ShapePrefix, inner
	default:
		return ShapeExact, pattern
	}
}

// Match reports whether name matches a single pattern.
func Match(pattern, name string) bool {
	shape, lit := ClassifyPattern(pattern)

	switch shape {
	case ShapeExact:
		return name == lit
	case ShapePrefix:
		return strings.HasPrefix(name, lit)
	case ShapeSuffix:
		return strings.HasSuffix(name, lit)
	case ShapeSubstring:
		return strings.Contains(name, lit)
	default:
		return Glob(pattern, name)
	}
}

// IsValidCell reports whether name matches any of patterns. The first
// matching pattern wins.
func IsValidCell(name string, patterns []string) bool {
	_, ok := MatchingPattern(name, patterns)
	return ok
}

// MatchingPattern returns the first pattern that matches name.
func MatchingPattern(name string, patterns []string) (string, bool) {
	for _, p := range patterns {
		if Match(p, name) {
			return p, true
		}
	}

	return "", false
}

package classify

import (
	"strings"

	"arcqa/internal/when"
)

// Criteria is the per-arc view handed to a classifier.
type Criteria struct {
	Cell          string
	ArcType       string
	Pin           string
	PinDir        string
	RelatedPin    string
	RelatedPinDir string
	Probes        []string
	// When is the normalized condition, "&"-joined.
	When         string
	TemplateType string
}

// Classifier names the template deck for an arc. ok is false when no deck
// applies.
type Classifier interface {
	SelectDeck(c Criteria) (deck string, ok bool)
}

// Func adapts a function to the Classifier interface.
type Func func(c Criteria) (string, bool)

// SelectDeck calls f.
func (f Func) SelectDeck(c Criteria) (string, bool) {
	return f(c)
}

// expandDeck substitutes criteria placeholders in a deck name.
func expandDeck(deck string, c Criteria) string {
	if !strings.Contains(deck, "{") {
		return deck
	}

	return strings.NewReplacer(
		"{cell}", c.Cell,
		"{arc_type}", c.ArcType,
		"{pin}", c.Pin,
		"{related_pin}", c.RelatedPin,
		"{when}", when.ToLiteralID(c.When),
	).Replace(deck)
}

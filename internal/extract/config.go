package extract

import (
	"arcqa/internal/filter"
	"arcqa/internal/record"
)

// Config holds configuration for an extraction run.
type Config struct {
	// CellPatterns selects cells by name. The first matching pattern wins.
	CellPatterns []string
	// ArcTypes lists the requested template vocabulary ("delay" and "slew"
	// expand to the delay family). Empty accepts every arc type.
	ArcTypes []string
	// MaxNumWhen caps the distinct when conditions emitted per arc key.
	MaxNumWhen int
	// Load configures output-load resolution.
	Load record.LoadOptions
	// Families tags cells by name pattern.
	Families filter.FamilyTable
	// Rules is the skip rule table.
	Rules filter.Rules
}

// DefaultConfig returns the default extraction configuration.
func DefaultConfig() Config {
	return Config{
		CellPatterns: []string{"*"},
		MaxNumWhen:   1,
		Load:         record.DefaultLoadOptions(),
		Families:     filter.DefaultFamilies,
		Rules:        filter.DefaultRules,
	}
}

// Package main provides the CLI entrypoint for arcqa.
//
// arcqa extracts Monte-Carlo characterization arcs from a standard-cell
// template library:
//   - Filters cells, arc types and when conditions by family rules
//   - Resolves index tables from templates and per-cell overrides
//   - Classifies each arc to a simulation deck through a rule table
//   - Writes the resulting records as YAML or into a SQLite database
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		stop()
		os.Exit(1)
	}
}

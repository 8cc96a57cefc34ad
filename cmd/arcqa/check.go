package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"arcqa/internal/classify"
	"arcqa/internal/diagnostic"
	"arcqa/internal/model"
)

func newCheckCmd(a *app) *cobra.Command {
	var (
		modelPath string
		decksPath string
	)

	cmd := &cobra.Command{
		Use:   "check",
		Short: "Validate a template library and optional deck rules",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			diags := a.cfg.Validate()

			lib, err := model.LoadFile(modelPath)
			if err != nil {
				return err
			}

			diags.Merge(*model.Validate(lib))

			if decksPath != "" {
				table, err := classify.LoadFile(decksPath)
				if err != nil {
					return err
				}

				diags.Merge(*table.Validate())
			}

			printDiagnostics(cmd, diags)

			if diags.HasErrors() {
				return errors.New("check failed")
			}

			return nil
		},
	}

	cmd.Flags().StringVar(&modelPath, "model", "", "Path to the template library YAML")
	cmd.Flags().StringVar(&decksPath, "decks", "", "Path to the deck rule table YAML")
	_ = cmd.MarkFlagRequired("model")

	return cmd
}

func printDiagnostics(cmd *cobra.Command, diags *diagnostic.Diagnostics) {
	out := cmd.OutOrStdout()

	for _, d := range diags.All() {
		fmt.Fprintf(out, "%s: %s\n", d.Severity, d)
	}

	fmt.Fprintf(out, "%d error(s), %d warning(s)\n", len(diags.Errors), len(diags.Warnings))
}

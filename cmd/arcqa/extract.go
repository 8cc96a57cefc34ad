package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"arcqa/internal/classify"
	"arcqa/internal/diagnostic"
	"arcqa/internal/extract"
	"arcqa/internal/model"
	"arcqa/internal/sink"
)

func newExtractCmd(a *app) *cobra.Command {
	var (
		modelPath string
		decksPath string
		outPath   string
		format    string
	)

	cmd := &cobra.Command{
		Use:   "extract",
		Short: "Extract characterization records from a template library",
		Example: `  arcqa extract --model lib.yaml --decks decks.yaml
  arcqa extract -c arcqa.yaml --model lib.yaml --decks decks.yaml --format sqlite --out arcs.db`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if cmd.Flags().Changed("out") {
				a.cfg.Output.Path = outPath
			}

			if cmd.Flags().Changed("format") {
				a.cfg.Output.Format = format
			}

			if err := a.cfg.Validate().Error(); err != nil {
				return fmt.Errorf("invalid config: %w", err)
			}

			lib, err := model.LoadFile(modelPath)
			if err != nil {
				return err
			}

			if err := a.report("model", model.Validate(lib)); err != nil {
				return err
			}

			table, err := classify.LoadFile(decksPath)
			if err != nil {
				return err
			}

			if err := a.report("decks", table.Validate()); err != nil {
				return err
			}

			ex := extract.New(lib, table, a.cfg.ExtractConfig(), extract.WithLogger(a.logger))

			res, err := ex.Run()
			if err != nil {
				return err
			}

			w, err := sink.New(a.cfg.Output.Format, a.cfg.Output.Path)
			if err != nil {
				return err
			}

			if err := w.Write(cmd.Context(), sink.Report{
				ArcsIdentified: res.ArcsIdentified,
				Records:        res.Records,
			}); err != nil {
				return err
			}

			a.logger.Info("records written",
				zap.String("format", a.cfg.Output.Format),
				zap.String("path", a.cfg.Output.Path),
				zap.Int("records", len(res.Records)))

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "arcs identified: %d\n", res.ArcsIdentified)
			fmt.Fprintf(out, "records: %d -> %s\n", len(res.Records), a.cfg.Output.Path)

			for _, c := range res.Diagnostics.Tally() {
				fmt.Fprintf(out, "skipped %s: %d\n", c.Code, c.Count)
			}

			return nil
		},
	}

	cmd.Flags().StringVar(&modelPath, "model", "", "Path to the template library YAML")
	cmd.Flags().StringVar(&decksPath, "decks", "", "Path to the deck rule table YAML")
	cmd.Flags().StringVarP(&outPath, "out", "o", "", "Output path (overrides config)")
	cmd.Flags().StringVarP(&format, "format", "f", "", "Output format: yaml or sqlite (overrides config)")
	_ = cmd.MarkFlagRequired("model")
	_ = cmd.MarkFlagRequired("decks")

	return cmd
}

// report logs warnings of an input check and fails on errors.
func (a *app) report(what string, diags *diagnostic.Diagnostics) error {
	for _, w := range diags.Warnings {
		a.logger.Warn("input warning", zap.String("input", what), zap.String("diagnostic", w.String()))
	}

	if err := diags.Error(); err != nil {
		return fmt.Errorf("invalid %s: %w", what, err)
	}

	return nil
}

package main

import (
	"fmt"
	"os"
	"strings"

	"echo-journal/internal/domain/events"
	"echo-journal/internal/export"

	"github.com/spf13/cobra"
)

func newExportCmd(a *app) *cobra.Command {
	var date, format, outPath string
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Dump one day (events + diaries) as JSON or YAML",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			date = strings.TrimSpace(date)
			if date != "" && !events.ValidDate(date) {
				return fmt.Errorf("date must be YYYY-MM-DD, got %q", date)
			}
			if _, err := export.ParseFormat(format); err != nil {
				return err
			}

			ctx, cancel := a.ctx(cmd)
			defer cancel()
			b, err := a.j.Export(ctx, date, format)
			if err != nil {
				return err
			}

			if outPath == "" || outPath == "-" {
				_, err = cmd.OutOrStdout().Write(b)
				return err
			}
			if err := os.WriteFile(outPath, b, 0o644); err != nil {
				return fmt.Errorf("write %s: %w", outPath, err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "exported to %s\n", outPath)
			return nil
		},
	}
	cmd.Flags().StringVar(&date, "date", "", "day YYYY-MM-DD (default today)")
	cmd.Flags().StringVarP(&format, "format", "f", "yaml", "json|yaml")
	cmd.Flags().StringVarP(&outPath, "output", "o", "", "file to write (default stdout)")
	return cmd
}

package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/admin-harmiana/Website/internal/export"
)

func newExportCmd(a *app) *cobra.Command {
	var out string
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Write the website as static files",
		RunE: func(cmd *cobra.Command, args []string) error {
			if out == "" {
				out = a.cfg.ExportDir
			}
			e, err := export.New(export.Options{Site: a.site, OutDir: out, Logger: a.logger})
			if err != nil {
				return err
			}
			report, err := e.Run(cmd.Context())
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "exported %d pages (%d files) to %s\n", len(report.Pages), report.Files, out)
			return nil
		},
	}
	cmd.Flags().StringVarP(&out, "out", "o", "", "output directory (overrides HARMIANA_EXPORT_DIR)")
	return cmd
}

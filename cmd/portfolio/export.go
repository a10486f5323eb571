package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"elenavasquez.com/internal/export"
)

func newExportCmd(a *app) *cobra.Command {
	var (
		out    string
		clean  bool
		public string
	)

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Render the site into a directory for static hosting",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if cmd.Flags().Changed("public") {
				a.cfg.PublicDir = public
			}
			site, err := a.site()
			if err != nil {
				return err
			}

			e := export.NewExporter(site, a.logger)
			e.PublicDir = a.cfg.PublicDir
			e.Clean = clean

			res, err := e.Export(cmd.Context(), out)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Exported %d pages (%d files, %d bytes) to %s\n", res.Pages, res.Files, res.Bytes, res.Dir)
			return nil
		},
	}

	cmd.Flags().StringVar(&out, "out", "dist", "output directory")
	cmd.Flags().BoolVar(&clean, "clean", false, "replace a non-empty output directory")
	cmd.Flags().StringVar(&public, "public", "public", "directory copied into the output")
	return cmd
}

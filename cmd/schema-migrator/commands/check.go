package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"schema-migrator/internal/manifest"
)

func newCheckCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "check",
		Short: "Validate the manifest",
		Long: `Validate the manifest and print every problem found.

Errors make the command fail; warnings are printed but do not.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			f, err := manifest.LoadFile(a.manifestPath)
			if err != nil {
				return err
			}

			diags := manifest.Validate(f)
			out := cmd.OutOrStdout()

			for _, d := range diags.All() {
				fmt.Fprintf(out, "%s: %s\n", d.Severity, d)
			}

			fmt.Fprintf(out, "%d error(s), %d warning(s)\n", len(diags.Errors), len(diags.Warnings))

			a.logger.Debug().
				Str("path", a.manifestPath).
				Int("errors", len(diags.Errors)).
				Int("warnings", len(diags.Warnings)).
				Msg("manifest checked")

			if diags.HasErrors() {
				return fmt.Errorf("%s is invalid", a.manifestPath)
			}

			return nil
		},
	}
}

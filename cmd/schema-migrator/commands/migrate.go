package commands

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"schema-migrator/internal/document"
)

func newMigrateCmd(a *app) *cobra.Command {
	var (
		from       string
		to         string
		inputFile  string
		outputFile string
		format     string
	)

	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Migrate a record to another schema version",
		Long: `Migrate a YAML or JSON record to the version given by --to.

The source version is read from the record's version field unless --from
is given. The record is validated against the source schema before and
against the target schema after the migration.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if to == "" {
				return fmt.Errorf("--to is required")
			}

			outFormat, err := document.ParseFormat(format)
			if err != nil {
				return err
			}

			_, reg, err := a.load()
			if err != nil {
				return err
			}

			in, err := openInput(cmd, inputFile)
			if err != nil {
				return err
			}
			defer in.Close()

			data, err := io.ReadAll(in)
			if err != nil {
				return fmt.Errorf("failed to read input: %w", err)
			}

			rec, err := document.Decode(data)
			if err != nil {
				return err
			}

			var out document.Record
			if from != "" {
				out, err = reg.MigrateFrom(rec, from, to)
			} else {
				out, err = reg.Migrate(rec, to)
			}

			if err != nil {
				return err
			}

			encoded, err := document.Encode(out, outFormat)
			if err != nil {
				return fmt.Errorf("failed to encode output: %w", err)
			}

			return writeOutput(cmd, outputFile, encoded)
		},
	}

	cmd.Flags().StringVar(&from, "from", "", "source version (default: read from the record)")
	cmd.Flags().StringVar(&to, "to", "", "target version")
	cmd.Flags().StringVarP(&inputFile, "file", "f", "", "input record (YAML or JSON, default: stdin)")
	cmd.Flags().StringVarP(&outputFile, "output", "o", "", "output file (default: stdout)")
	cmd.Flags().StringVar(&format, "format", "yaml", "output format (yaml or json)")

	return cmd
}

package commands

import (
	"fmt"
	"io"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"schema-migrator/internal/manifest"
)

const appName = "schema-migrator"

// defaultManifest is read when --manifest is not given.
const defaultManifest = "migrations.yaml"

// app holds the global flags shared by all commands.
type app struct {
	manifestPath string
	verbose      bool
	logFormat    string

	logger zerolog.Logger
}

// Execute runs the root command with the process arguments.
func Execute() error {
	return NewRootCmd().Execute()
}

// NewRootCmd builds the command tree.
func NewRootCmd() *cobra.Command {
	a := &app{logger: zerolog.Nop()}

	root := &cobra.Command{
		Use:   appName,
		Short: "Find and apply migrations between record schema versions",
		Long: `schema-migrator - migrate records between schema versions.

A manifest declares record schemas and the edges between them. Any record
can be moved from its version to any other version reachable through the
edges; the route with the fewest steps is used.

Examples:
  # Validate a manifest
  schema-migrator -m migrations.yaml check

  # Show how version base reaches version 4
  schema-migrator path base 4

  # Migrate a record to version 4
  schema-migrator migrate --to 4 -f record.yaml --format json
`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.initLogger(cmd.ErrOrStderr())
		},
	}

	root.PersistentFlags().StringVarP(&a.manifestPath, "manifest", "m", defaultManifest, "manifest file")
	root.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "verbose output")
	root.PersistentFlags().StringVar(&a.logFormat, "log-format", "console", "log format (console or json)")

	root.AddCommand(newCheckCmd(a))
	root.AddCommand(newPathCmd(a))
	root.AddCommand(newMigrateCmd(a))
	root.AddCommand(newGraphCmd(a))

	return root
}

func (a *app) initLogger(w io.Writer) error {
	level := zerolog.WarnLevel
	if a.verbose {
		level = zerolog.DebugLevel
	}

	switch a.logFormat {
	case "console":
		a.logger = zerolog.New(zerolog.ConsoleWriter{Out: w, NoColor: true}).
			Level(level).With().Timestamp().Logger()
	case "json":
		a.logger = zerolog.New(w).Level(level).With().Timestamp().Logger()
	default:
		return fmt.Errorf("unknown log format %q (want console or json)", a.logFormat)
	}

	return nil
}

// load reads and builds the manifest.
func (a *app) load() (*manifest.File, *manifest.Registry, error) {
	f, err := manifest.LoadFile(a.manifestPath)
	if err != nil {
		return nil, nil, err
	}

	a.logger.Debug().Str("path", a.manifestPath).Int("schemas", len(f.Schemas)).Msg("manifest loaded")

	reg, err := manifest.Build(f, manifest.WithLogger(a.logger))
	if err != nil {
		return nil, nil, err
	}

	return f, reg, nil
}

// openInput returns the named file, or stdin for "" and "-".
func openInput(cmd *cobra.Command, path string) (io.ReadCloser, error) {
	if path == "" || path == "-" {
		return io.NopCloser(cmd.InOrStdin()), nil
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open input %s: %w", path, err)
	}

	return f, nil
}

// writeOutput writes data to the named file, or stdout for "" and "-".
func writeOutput(cmd *cobra.Command, path string, data []byte) error {
	if path == "" || path == "-" {
		_, err := cmd.OutOrStdout().Write(data)
		return err
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write output %s: %w", path, err)
	}

	return nil
}

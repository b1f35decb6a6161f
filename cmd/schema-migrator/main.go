// Package main provides the CLI entrypoint for schema-migrator.
//
// schema-migrator loads a YAML manifest of record schemas and migration
// edges and:
//   - Validates the manifest and reports every problem (check)
//   - Prints the shortest migration path between two versions (path)
//   - Migrates a YAML or JSON record to another version (migrate)
//   - Lists the compiled graph (graph)
package main

import (
	"fmt"
	"os"

	"schema-migrator/cmd/schema-migrator/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

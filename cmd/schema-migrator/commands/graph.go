package commands

import (
	"fmt"
	"strings"

	"github.com/davecgh/go-spew/spew"
	"github.com/spf13/cobra"
)

// dumpConfig prints stable output: no addresses, sorted map keys.
var dumpConfig = spew.ConfigState{
	Indent:                  "  ",
	DisablePointerAddresses: true,
	DisableCapacities:       true,
	SortKeys:                true,
}

func newGraphCmd(a *app) *cobra.Command {
	var dump bool

	cmd := &cobra.Command{
		Use:   "graph",
		Short: "List schema versions and their edges",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			f, reg, err := a.load()
			if err != nil {
				return err
			}

			g := reg.Graph()
			out := cmd.OutOrStdout()

			if dump {
				adjacency := make(map[string][]string, len(f.Schemas))
				for _, s := range reg.Schemas() {
					adjacency[s.Version()] = g.Neighbors(s.Version())
				}

				dumpConfig.Fdump(out, adjacency, f)

				return nil
			}

			fmt.Fprintln(out, g)

			for _, s := range reg.Schemas() {
				id := s.Version()

				next := g.Neighbors(id)
				if len(next) == 0 {
					fmt.Fprintf(out, "  %s\n", id)
					continue
				}

				fmt.Fprintf(out, "  %s -> %s\n", id, strings.Join(next, ", "))
			}

			return nil
		},
	}

	cmd.Flags().BoolVar(&dump, "dump", false, "dump the compiled adjacency and manifest")

	return cmd
}

package commands

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"schema-migrator/migration"
)

type pathResult struct {
	From  string   `json:"from"`
	To    string   `json:"to"`
	Steps int      `json:"steps"`
	Hops  []string `json:"hops"`
	Edges []string `json:"edges"`
}

func newPathCmd(a *app) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "path <from> <to>",
		Short: "Print the shortest migration path between two versions",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			_, reg, err := a.load()
			if err != nil {
				return err
			}

			from, to := args[0], args[1]

			path, ok := reg.Graph().FindShortestPath(from, to)
			if !ok {
				return &migration.NoPathError{From: from, To: to}
			}

			res := pathResult{
				From:  from,
				To:    to,
				Steps: len(path),
				Hops:  path.Hops(),
				Edges: make([]string, 0, len(path)),
			}

			for _, e := range path {
				res.Edges = append(res.Edges, e.String())
			}

			out := cmd.OutOrStdout()

			if asJSON {
				enc := json.NewEncoder(out)
				enc.SetIndent("", "  ")

				return enc.Encode(res)
			}

			fmt.Fprintln(out, path)
			fmt.Fprintf(out, "%d step(s)\n", len(path))

			return nil
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "output as JSON")

	return cmd
}

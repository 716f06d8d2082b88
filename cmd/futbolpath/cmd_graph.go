package main

import (
	"strconv"
	"time"

	"github.com/spf13/cobra"
)

func newGraphCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "graph",
		Short: "Inspect the server's teammate graph",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "stats",
		Short: "Show graph size and build state",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := apiClient.Graph.Stats(cmd.Context())
			if err != nil {
				return err
			}

			return output(s, func() {
				builtAt := "-"
				if !s.BuiltAt.IsZero() {
					builtAt = s.BuiltAt.Format(time.RFC3339)
				}

				formatTable(
					[]string{"LOADED", "NODES", "EDGES", "SKIPPED", "BUILD_MS", "BUILT_AT", "BUILDS"},
					[][]string{{
						strconv.FormatBool(s.Loaded),
						strconv.Itoa(s.NodeCount),
						strconv.Itoa(s.EdgeCount),
						strconv.Itoa(s.SkippedEdges),
						strconv.FormatInt(s.BuildDurationMs, 10),
						builtAt,
						strconv.FormatInt(s.Builds, 10),
					}},
				)
			})
		},
	})

	return cmd
}

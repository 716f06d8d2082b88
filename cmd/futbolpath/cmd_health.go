package main

import (
	"fmt"
	"slices"
	"strings"

	"github.com/spf13/cobra"
)

func newHealthCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "health",
		Short: "Check that the server is alive",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			h, err := apiClient.Health(cmd.Context())
			if err != nil {
				return err
			}

			return output(h, func() {
				formatTable(
					[]string{"STATUS", "VERSION", "STORE", "GRAPH", "UPTIME"},
					[][]string{{h.Status, h.Version, h.Store, h.Graph, fmt.Sprintf("%.0fs", h.UptimeSeconds)}},
				)
			})
		},
	}
}

// newReadyCmd exits non-zero while the server is not ready, so it can gate
// deploy scripts.
func newReadyCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "ready",
		Short: "Check that the server can answer path queries",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			r, err := apiClient.Ready(cmd.Context())
			if r == nil {
				return err
			}

			if outErr := output(r, func() { printChecks(r.Status, r.Checks) }); outErr != nil {
				return outErr
			}

			return err
		},
	}
}

func printChecks(status string, checks map[string]string) {
	names := make([]string, 0, len(checks))
	for name := range checks {
		names = append(names, name)
	}

	slices.Sort(names)

	rows := make([][]string, 0, len(names))
	for _, name := range names {
		rows = append(rows, []string{name, checks[name]})
	}

	formatTable([]string{"CHECK", "STATE"}, rows)
	fmt.Println("\nstatus: " + strings.ToUpper(status))
}

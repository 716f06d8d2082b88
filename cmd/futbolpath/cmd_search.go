package main

import (
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/futbolpath/futbolpath/client"
)

func newSearchCmd() *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "search <query>",
		Short: "Search players by name",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			res, err := apiClient.Search.Players(cmd.Context(), strings.Join(args, " "), limit)
			if err != nil {
				return err
			}

			return output(res, func() { printPlayerTable(res.Players) })
		},
	}
	cmd.Flags().IntVar(&limit, "limit", 0, "Max results (server default when 0)")

	return cmd
}

func printPlayerTable(players []client.Player) {
	headers := []string{"ID", "NAME", "POSITION", "COUNTRY", "CLUB"}
	rows := make([][]string, 0, len(players))

	for _, p := range players {
		rows = append(rows, []string{strconv.FormatInt(p.ID, 10), p.Name, p.Position, p.Country, p.CurrentClub})
	}

	formatTable(headers, rows)
}

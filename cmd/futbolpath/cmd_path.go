package main

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/futbolpath/futbolpath/client"
)

var errNoPlayerMatch = errors.New("no player matches")

func newPathCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "path <from> <to>",
		Short: "Find the shortest teammate path between two players",
		Long: "Find the shortest teammate path between two players.\n\n" +
			"Each player is given by numeric ID or by name. A name resolves to the\n" +
			"best search match.",
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			from, err := resolvePlayer(ctx, apiClient.Search, args[0])
			if err != nil {
				return err
			}

			to, err := resolvePlayer(ctx, apiClient.Search, args[1])
			if err != nil {
				return err
			}

			res, err := apiClient.Paths.Find(ctx, from, to)
			if err != nil {
				return fmt.Errorf("finding path: %w", err)
			}

			return output(res, func() { printPathTable(res) })
		},
	}
}

type playerSearcher interface {
	Players(ctx context.Context, query string, limit int) (*client.PlayerSearchResult, error)
}

// resolvePlayer turns a CLI argument into a player ID. Non-negative integers
// are taken as IDs. Anything else is looked up by name.
func resolvePlayer(ctx context.Context, search playerSearcher, arg string) (int64, error) {
	arg = strings.TrimSpace(arg)

	if id, err := strconv.ParseInt(arg, 10, 64); err == nil {
		if id < 0 {
			return 0, fmt.Errorf("player id %d must be non-negative", id)
		}

		return id, nil
	}

	res, err := search.Players(ctx, arg, 1)
	if err != nil {
		return 0, fmt.Errorf("resolving %q: %w", arg, err)
	}

	if len(res.Players) == 0 {
		return 0, fmt.Errorf("%w %q", errNoPlayerMatch, arg)
	}

	return res.Players[0].ID, nil
}

func printPathTable(res *client.PathResult) {
	if !res.Found {
		fmt.Printf("No connection found (%d players explored", res.Stats.NodesExplored)
		if res.Stats.StopReason != "" {
			fmt.Printf(", stopped: %s", res.Stats.StopReason)
		}

		fmt.Println(")")

		return
	}

	headers := []string{"#", "PLAYER", "ID", "CLUB", "SEASON"}
	rows := make([][]string, 0, len(res.Path))

	for i, step := range res.Path {
		club, season := "", ""
		if step.Connection != nil {
			club, season = step.Connection.Club, step.Connection.Season
		}

		rows = append(rows, []string{
			strconv.Itoa(i),
			step.Player.Name,
			strconv.FormatInt(step.Player.ID, 10),
			club,
			season,
		})
	}

	formatTable(headers, rows)
	fmt.Printf("\n%d degrees, %d players explored in %dms\n", res.Degrees, res.Stats.NodesExplored, res.Stats.ExecutionTimeMs)

	if res.Stats.UnresolvedNodes > 0 {
		fmt.Printf("%d players on the path could not be resolved\n", res.Stats.UnresolvedNodes)
	}
}

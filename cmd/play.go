package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	app "github.com/rocketscienceinc/tictactoe-match/internal"
	"github.com/rocketscienceinc/tictactoe-match/internal/config"
)

// demoScript is the sample game in which Alice completes the top row.
const demoScript = "0,0 1,1 0,1 2,2 0,2"

var (
	playSize    int
	playPlayers []string
	playMoves   string
)

var playCmd = &cobra.Command{
	Use:     "play",
	Aliases: []string{"p"},
	Short:   "Play one match",
	Long: `Play one match. Without --moves, moves are read from stdin one per line.

Players are given as Name:Mark; available marks are X, O, $, # and @.`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		opts, err := matchOptions(cmd)
		if err != nil {
			return err
		}

		return app.RunMatch(logger, conf, opts)
	},
}

var demoCmd = &cobra.Command{
	Use:   "demo",
	Short: "Replay the sample match between Alice (X) and Bob (O)",
	RunE: func(cmd *cobra.Command, _ []string) error {
		return app.RunMatch(logger, conf, app.MatchOptions{
			BoardSize: 3,
			Players:   config.DefaultPlayers(),
			Script:    demoScript,
			Out:       cmd.OutOrStdout(),
		})
	},
}

func init() {
	playCmd.Flags().IntVarP(&playSize, "size", "s", 0, "board size (default from config)")
	playCmd.Flags().StringArrayVarP(&playPlayers, "player", "P", nil, "player as Name:Mark, repeat for each player")
	playCmd.Flags().StringVarP(&playMoves, "moves", "m", "", `moves as "row,col" pairs separated by spaces`)

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(demoCmd)
}

func matchOptions(cmd *cobra.Command) (app.MatchOptions, error) {
	opts := app.MatchOptions{
		BoardSize: conf.BoardSize,
		Players:   conf.Players,
		Script:    playMoves,
		In:        cmd.InOrStdin(),
		Out:       cmd.OutOrStdout(),
	}

	if cmd.Flags().Changed("size") {
		opts.BoardSize = playSize
	}

	if len(playPlayers) > 0 {
		players, err := parsePlayers(playPlayers)
		if err != nil {
			return app.MatchOptions{}, err
		}

		opts.Players = players
	}

	return opts, nil
}

func parsePlayers(values []string) ([]config.Player, error) {
	players := make([]config.Player, 0, len(values))

	for _, value := range values {
		idx := strings.LastIndex(value, ":")
		if idx <= 0 || idx == len(value)-1 {
			return nil, fmt.Errorf("invalid player %q, expected Name:Mark", value)
		}

		players = append(players, config.Player{Name: value[:idx], Mark: value[idx+1:]})
	}

	return players, nil
}

package cmd

import (
	"github.com/spf13/cobra"

	app "github.com/rocketscienceinc/tictactoe-match/internal"
)

var leaderboardLimit int64

var leaderboardCmd = &cobra.Command{
	Use:   "leaderboard",
	Short: "Show the players with the most recorded wins",
	Long:  "Show the players with the most recorded wins. Requires redis.enabled in the config.",
	RunE: func(cmd *cobra.Command, _ []string) error {
		return app.RunLeaderboard(logger, conf, cmd.OutOrStdout(), leaderboardLimit)
	},
}

func init() {
	leaderboardCmd.Flags().Int64VarP(&leaderboardLimit, "limit", "n", 10, "number of players to show")

	rootCmd.AddCommand(leaderboardCmd)
}

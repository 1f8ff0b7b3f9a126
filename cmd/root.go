// Package cmd provides the command-line interface for playing tic-tac-toe
// matches.
//
// Configuration is read from a YAML file (--config, default config.yml) and
// the environment (LOG_LEVEL, BOARD_SIZE, REDIS_ENABLED, REDIS_HOST,
// REDIS_PORT). Command-line flags override both.
package cmd

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/rocketscienceinc/tictactoe-match/internal/config"
)

var (
	cfgFile  string
	logLevel string

	conf   *config.Config
	logger *slog.Logger
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "tictactoe",
	Short: "Play tic-tac-toe on an N x N board in the terminal",
	Long: `Play tic-tac-toe for two or more players on a square board of any size.

Moves are given as "row col" (or "row,col") starting from 0, either one per
line on stdin or all at once with --moves.

Examples:
  tictactoe play
  tictactoe play --size 4 --player Alice:X --player Bob:O --player Carol:$
  tictactoe play --moves "0,0 1,1 0,1 2,2 0,2"
  tictactoe demo
  tictactoe leaderboard --limit 5`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
		loaded, err := config.Load(cfgFile)
		if err != nil {
			return err
		}

		if cmd.Flags().Changed("log-level") {
			loaded.LogLevel = logLevel
		}

		conf = loaded
		logger = initLogger(conf)

		return nil
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() error {
	if err := rootCmd.Execute(); err != nil {
		return fmt.Errorf("command failed: %w", err)
	}

	return nil
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "config.yml", "config file")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "info", "log level (debug, info, warn, error)")
}

// initLogger writes JSON logs to stderr so stdout stays the board.
func initLogger(conf *config.Config) *slog.Logger {
	var level slog.Level

	switch conf.LogLevel {
	case "debug":
		level = slog.LevelDebug
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		level = slog.LevelInfo
	}

	return slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
}

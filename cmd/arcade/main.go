// arcade plays Linkup, the connect-the-matching-tiles puzzle, in the
// terminal or over SSH.
//
// Usage:
//
//	arcade list              - List available games
//	arcade play [game]       - Play a game (default: linkup)
//	arcade menu              - Start menu to pick games interactively
//	arcade serve             - Start SSH server for remote play
//	arcade scores [game]     - Show high scores for a game
//	arcade resolve <layout>  - Find the path between two tiles of a layout
//
// Global flags:
//
//	--fps <rate>           - Set tick rate (default: 60)
//	--seed <value>         - Set RNG seed for reproducible boards
//	--db <path>            - Set database path (default: ~/.arcade/scores.db)
//	--config <path>        - Linkup config YAML
//	--difficulty <preset>  - Board preset: easy, normal, hard
//	--debug                - Write debug logs to ~/.arcade/arcade.log
package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/daichengyi/minigame/internal/config"
	"github.com/daichengyi/minigame/internal/games/linkup"
)

var (
	flagFPS        int
	flagSeed       int64
	flagDBPath     string
	flagConfig     string
	flagDifficulty string
	flagDebug      bool
)

// logger is set up by the root command before any subcommand runs.
var logger = log.New(io.Discard)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "arcade",
	Short: "Linkup - connect matching tiles in your terminal",
	Long: `Linkup is a tile-matching puzzle for the terminal. Pick two equal
tiles that can be joined by a path of at most a few straight segments
running through empty cells or around the board, and both disappear.
Clear the board to win.

Available commands:
  list     - Show all available games
  play     - Play a game directly
  menu     - Interactive game picker menu
  serve    - Start SSH server for remote play
  scores   - View high scores
  resolve  - Solve a single query on a layout file

Examples:
  arcade play
  arcade play --difficulty easy
  arcade menu
  arcade serve --ssh :2222
  arcade resolve layouts/demo.yaml --from 0,0 --to 2,3`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
		preset, err := config.ParsePreset(flagDifficulty)
		if err != nil {
			return err
		}
		if flagDebug {
			l, err := newFileLogger()
			if err != nil {
				return err
			}
			logger = l
		}
		linkup.SetConfigPath(flagConfig)
		linkup.SetDifficultyPreset(preset)
		linkup.SetLogger(logger)
		return nil
	},
}

// newFileLogger opens ~/.arcade/arcade.log for debug output. The terminal
// belongs to the game, so logs never go to stderr.
func newFileLogger() (*log.Logger, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return nil, fmt.Errorf("cannot get home directory: %w", err)
	}
	dir := filepath.Join(home, ".arcade")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("cannot create %s: %w", dir, err)
	}
	f, err := os.OpenFile(filepath.Join(dir, "arcade.log"), os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
	if err != nil {
		return nil, fmt.Errorf("cannot open debug log: %w", err)
	}
	return log.NewWithOptions(f, log.Options{
		Level:           log.DebugLevel,
		ReportTimestamp: true,
		Prefix:          "arcade",
	}), nil
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.arcade/scores.db", "Path to scores database")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom linkup config YAML")
	rootCmd.PersistentFlags().StringVar(&flagDifficulty, "difficulty", "", "Board preset: easy, normal, hard")
	rootCmd.PersistentFlags().BoolVar(&flagDebug, "debug", false, "Write debug logs to ~/.arcade/arcade.log")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(resolveCmd)
}

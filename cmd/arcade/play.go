package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/daichengyi/minigame/internal/core"
	"github.com/daichengyi/minigame/internal/games/linkup"
	"github.com/daichengyi/minigame/internal/platform/tui"
	"github.com/daichengyi/minigame/internal/registry"
	"github.com/daichengyi/minigame/internal/storage"
)

var flagLayout string

var playCmd = &cobra.Command{
	Use:   "play [game]",
	Short: "Play a game",
	Long: `Start playing the specified game (linkup when omitted).

Controls:
  Arrows/WASD/HJKL  - Move the cursor
  Space/Enter       - Select the tile under the cursor
  Mouse click       - Select a tile
  T                 - Show a hint (costs points)
  P                 - Pause
  Esc/B             - Back (while paused or after the game)
  R                 - New board (after the game)
  Q/Ctrl+C          - Quit
  Ctrl+S            - Save a text screenshot

Difficulty options:
  easy    - 6x8 board, 6 tile faces
  normal  - 12x10 board, 9 tile faces
  hard    - 12x16 board, 9 tile faces

Examples:
  arcade play
  arcade play --difficulty hard
  arcade play --layout ./layouts/cross.yaml
  arcade play --config ./my-linkup.yaml`,
	Args: cobra.MaximumNArgs(1),
	RunE: runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagLayout, "layout", "", "Start from a layout YAML instead of a generated board")
}

// terminalConfig builds the runtime config from the terminal size and the
// global flags.
func terminalConfig() core.RuntimeConfig {
	width, height := 80, 24
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width = w
		height = h
	}
	return core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}
}

// openStore opens the scores database. Play goes on without it.
func openStore() *storage.Store {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		logger.Warn("scores database unavailable", "path", flagDBPath, "err", err)
		return nil
	}
	return store
}

func runPlay(_ *cobra.Command, args []string) error {
	gameID := "linkup"
	if len(args) == 1 {
		gameID = args[0]
	}
	if !registry.Exists(gameID) {
		return fmt.Errorf("unknown game %q (run 'arcade list' to see available games)", gameID)
	}

	linkup.SetLayoutPath(flagLayout)

	game, err := registry.Create(gameID)
	if err != nil {
		return err
	}

	store := openStore()
	if store != nil {
		defer store.Close()
	}

	logger.Debug("starting game", "game", gameID, "layout", flagLayout, "preset", linkup.GetDifficultyPreset())
	if err := tui.Run(game, store, terminalConfig(), tui.GameOptions{Logger: logger}); err != nil {
		return fmt.Errorf("running game: %w", err)
	}
	return nil
}

package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/daichengyi/minigame/internal/registry"
	"github.com/daichengyi/minigame/internal/storage"
)

var (
	flagScoresLimit int
	flagScoresClear bool
	flagScoresRun   string
)

var scoresCmd = &cobra.Command{
	Use:   "scores [game]",
	Short: "Show high scores for a game",
	Long: `Display the best runs and overall statistics for a game
(linkup when omitted). Cleared boards are marked with *.

Examples:
  arcade scores
  arcade scores linkup --limit 20
  arcade scores --run 4b1c0d9e-...
  arcade scores linkup --clear`,
	Args: cobra.MaximumNArgs(1),
	RunE: runScores,
}

func init() {
	scoresCmd.Flags().IntVar(&flagScoresLimit, "limit", 10, "Number of runs to show")
	scoresCmd.Flags().BoolVar(&flagScoresClear, "clear", false, "Delete every recorded run for the game")
	scoresCmd.Flags().StringVar(&flagScoresRun, "run", "", "Show a single run by its ID")
	scoresCmd.MarkFlagsMutuallyExclusive("clear", "run")
}

func runScores(cmd *cobra.Command, args []string) error {
	gameID := "linkup"
	if len(args) == 1 {
		gameID = args[0]
	}

	info, ok := registry.Info(gameID)
	if !ok {
		return fmt.Errorf("unknown game %q (run 'arcade list' to see available games)", gameID)
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		return fmt.Errorf("opening scores database: %w", err)
	}
	defer store.Close()

	out := cmd.OutOrStdout()
	switch {
	case flagScoresClear:
		return clearScores(out, store, info)
	case flagScoresRun != "":
		return showRun(out, store, flagScoresRun)
	}
	return listScores(out, store, info, flagScoresLimit)
}

func listScores(w io.Writer, store *storage.Store, info registry.GameInfo, limit int) error {
	scores, err := store.TopScores(info.ID, limit)
	if err != nil {
		return fmt.Errorf("retrieving scores: %w", err)
	}

	fmt.Fprintf(w, "High Scores - %s\n", info.Title)
	fmt.Fprintln(w)

	if len(scores) == 0 {
		fmt.Fprintln(w, "No runs recorded yet.")
		fmt.Fprintln(w)
		fmt.Fprintf(w, "Play 'arcade play %s' to set the first high score!\n", info.ID)
		return nil
	}

	fmt.Fprintf(w, "  %-4s  %-7s  %-12s  %-5s  %-5s  %-6s  %s\n", "Rank", "Score", "Player", "Pairs", "Hints", "Time", "Date")
	fmt.Fprintf(w, "  %-4s  %-7s  %-12s  %-5s  %-5s  %-6s  %s\n", "----", "-----", "------", "-----", "-----", "----", "----")
	for i, e := range scores {
		printEntry(w, i+1, e)
	}

	stats, err := store.GetGameStats(info.ID)
	if err != nil {
		return fmt.Errorf("retrieving stats: %w", err)
	}
	fmt.Fprintln(w)
	fmt.Fprintf(w, "Played: %d  Cleared: %d  Best: %d  Average: %.1f\n",
		stats.GamesCount, stats.Wins, stats.HighScore, stats.AvgScore)
	if stats.FastestWin > 0 {
		fmt.Fprintf(w, "Fastest clear: %d:%02d\n", stats.FastestWin/60, stats.FastestWin%60)
	}
	return nil
}

func clearScores(w io.Writer, store *storage.Store, info registry.GameInfo) error {
	stats, err := store.GetGameStats(info.ID)
	if err != nil {
		return fmt.Errorf("retrieving stats: %w", err)
	}
	if err := store.ClearScores(info.ID); err != nil {
		return err
	}
	fmt.Fprintf(w, "Cleared %d runs for %s.\n", stats.GamesCount, info.Title)
	return nil
}

func showRun(w io.Writer, store *storage.Store, runID string) error {
	e, ok, err := store.RunByID(runID)
	if err != nil {
		return fmt.Errorf("retrieving run: %w", err)
	}
	if !ok {
		return fmt.Errorf("no run with ID %q", runID)
	}

	result := "not cleared"
	if e.Won {
		result = "cleared"
	}
	fmt.Fprintf(w, "Run:    %s\n", e.RunID)
	fmt.Fprintf(w, "Game:   %s\n", e.GameID)
	fmt.Fprintf(w, "Player: %s\n", playerName(e.Player))
	fmt.Fprintf(w, "Score:  %d (%s)\n", e.Score, result)
	fmt.Fprintf(w, "Pairs:  %d  Hints: %d  Time: %d:%02d\n", e.Pairs, e.HintsUsed, e.DurationSecs/60, e.DurationSecs%60)
	fmt.Fprintf(w, "Date:   %s\n", e.CreatedAt.Format("2006-01-02 15:04"))
	return nil
}

func printEntry(w io.Writer, rank int, e storage.ScoreEntry) {
	score := fmt.Sprintf("%d", e.Score)
	if e.Won {
		score += "*"
	}
	fmt.Fprintf(w, "  %-4d  %-7s  %-12s  %-5d  %-5d  %d:%02d    %s\n",
		rank, score, playerName(e.Player), e.Pairs, e.HintsUsed, e.DurationSecs/60, e.DurationSecs%60,
		e.CreatedAt.Format("2006-01-02 15:04"))
}

func playerName(player string) string {
	if player == "" {
		return "local"
	}
	return player
}

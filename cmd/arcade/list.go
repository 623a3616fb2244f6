package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/daichengyi/minigame/internal/registry"
	"github.com/daichengyi/minigame/internal/storage"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List all available games",
	Long: `Shows a list of all games registered in the arcade, with how often
each has been played and its best score when a scores database exists.`,
	Run: runList,
}

func runList(cmd *cobra.Command, _ []string) {
	var stats map[string]*storage.GameStats
	if store, err := storage.Open(flagDBPath); err == nil {
		stats, err = store.GetAllGamesStats()
		if err != nil {
			logger.Debug("game stats unavailable", "err", err)
		}
		store.Close()
	}
	printGames(cmd.OutOrStdout(), registry.List(), stats)
}

func printGames(w io.Writer, games []registry.GameInfo, stats map[string]*storage.GameStats) {
	if len(games) == 0 {
		fmt.Fprintln(w, "No games available.")
		return
	}

	fmt.Fprintln(w, "Available games:")
	fmt.Fprintln(w)

	idW, titleW := len("ID"), len("Title")
	for _, g := range games {
		idW = max(idW, len(g.ID))
		titleW = max(titleW, len(g.Title))
	}

	fmt.Fprintf(w, "  %-*s  %-*s  %-6s  %-5s  %s\n", idW, "ID", titleW, "Title", "Played", "Best", "Description")
	fmt.Fprintf(w, "  %-*s  %-*s  %-6s  %-5s  %s\n", idW, "--", titleW, "-----", "------", "----", "-----------")
	for _, g := range games {
		played, best := 0, 0
		if s, ok := stats[g.ID]; ok {
			played, best = s.GamesCount, s.HighScore
		}
		fmt.Fprintf(w, "  %-*s  %-*s  %-6d  %-5d  %s\n", idW, g.ID, titleW, g.Title, played, best, g.Description)
	}

	fmt.Fprintln(w)
	fmt.Fprintln(w, "Run 'arcade play <id>' to play a game.")
}

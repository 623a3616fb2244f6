package main

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"

	"github.com/daichengyi/minigame/internal/registry"
	"github.com/daichengyi/minigame/internal/storage"
)

func openTestStore(t *testing.T) *storage.Store {
	t.Helper()
	store, err := storage.Open(filepath.Join(t.TempDir(), "scores.db"))
	if err != nil {
		t.Fatalf("Open() error: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

var linkupInfo = registry.GameInfo{ID: "linkup", Title: "Link Up"}

func TestListScores(t *testing.T) {
	store := openTestStore(t)

	var buf bytes.Buffer
	if err := listScores(&buf, store, linkupInfo, 10); err != nil {
		t.Fatalf("listScores() error: %v", err)
	}
	if !strings.Contains(buf.String(), "No runs recorded yet.") {
		t.Errorf("empty listing = %q", buf.String())
	}

	for _, run := range []storage.Run{
		{GameID: "linkup", Player: "alice", Score: 120, Won: true, DurationSecs: 75},
		{GameID: "linkup", Score: 40},
	} {
		if _, err := store.SaveRun(run); err != nil {
			t.Fatalf("SaveRun() error: %v", err)
		}
	}

	buf.Reset()
	if err := listScores(&buf, store, linkupInfo, 10); err != nil {
		t.Fatalf("listScores() error: %v", err)
	}
	out := buf.String()
	for _, want := range []string{"120*", "alice", "local", "Played: 2  Cleared: 1  Best: 120", "Fastest clear: 1:15"} {
		if !strings.Contains(out, want) {
			t.Errorf("listing missing %q:\n%s", want, out)
		}
	}
}

func TestClearScores(t *testing.T) {
	store := openTestStore(t)
	for _, run := range []storage.Run{
		{GameID: "linkup", Score: 10},
		{GameID: "linkup", Score: 20},
		{GameID: "other", Score: 30},
	} {
		if _, err := store.SaveRun(run); err != nil {
			t.Fatalf("SaveRun() error: %v", err)
		}
	}

	var buf bytes.Buffer
	if err := clearScores(&buf, store, linkupInfo); err != nil {
		t.Fatalf("clearScores() error: %v", err)
	}
	if got := buf.String(); got != "Cleared 2 runs for Link Up.\n" {
		t.Errorf("clearScores() printed %q", got)
	}

	if high, _ := store.HighScore("linkup"); high != 0 {
		t.Errorf("linkup high score after clear = %d, want 0", high)
	}
	if high, _ := store.HighScore("other"); high != 30 {
		t.Errorf("other high score = %d, want 30", high)
	}
}

func TestShowRun(t *testing.T) {
	store := openTestStore(t)
	saved, err := store.SaveRun(storage.Run{GameID: "linkup", Player: "bob", Score: 64, Pairs: 8, HintsUsed: 2, DurationSecs: 61, Won: true})
	if err != nil {
		t.Fatalf("SaveRun() error: %v", err)
	}

	var buf bytes.Buffer
	if err := showRun(&buf, store, saved.RunID); err != nil {
		t.Fatalf("showRun() error: %v", err)
	}
	out := buf.String()
	for _, want := range []string{saved.RunID, "Player: bob", "Score:  64 (cleared)", "Pairs:  8  Hints: 2  Time: 1:01"} {
		if !strings.Contains(out, want) {
			t.Errorf("run details missing %q:\n%s", want, out)
		}
	}

	if err := showRun(&buf, store, "no-such-run"); err == nil {
		t.Error("showRun() with an unknown ID should fail")
	}
}

func TestPrintGames(t *testing.T) {
	games := []registry.GameInfo{
		{ID: "linkup", Title: "Link Up", Description: "Connect matching tiles"},
	}

	tests := []struct {
		name  string
		stats map[string]*storage.GameStats
		want  string
	}{
		{"no database", nil, "linkup  Link Up  0       0      Connect matching tiles"},
		{"played", map[string]*storage.GameStats{"linkup": {GamesCount: 3, HighScore: 250}}, "linkup  Link Up  3       250    Connect matching tiles"},
	}

	for _, tc := range tests {
		var buf bytes.Buffer
		printGames(&buf, games, tc.stats)
		if !strings.Contains(buf.String(), tc.want) {
			t.Errorf("%s: output missing %q:\n%s", tc.name, tc.want, buf.String())
		}
	}

	var buf bytes.Buffer
	printGames(&buf, nil, nil)
	if buf.String() != "No games available.\n" {
		t.Errorf("empty registry printed %q", buf.String())
	}
}

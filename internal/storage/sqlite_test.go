package storage

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/google/uuid"
)

// saveScore records a run that carries only a score.
func saveScore(t *testing.T, store *Store, gameID string, score int) {
	t.Helper()
	if _, err := store.SaveRun(Run{GameID: gameID, Score: score}); err != nil {
		t.Fatalf("SaveRun() failed: %v", err)
	}
}

func TestStoreOpenClose(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	// Check that the file was created
	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created")
	}
}

func TestStoreSaveAndRetrieve(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	// Save some scores
	saveScore(t, store, "linkup", 100)
	saveScore(t, store, "linkup", 50)
	saveScore(t, store, "linkup", 200)

	// Different game
	saveScore(t, store, "practice", 500)

	// Retrieve top scores for linkup
	scores, err := store.TopScores("linkup", 10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}

	if len(scores) != 3 {
		t.Errorf("Expected 3 scores, got %d", len(scores))
	}

	// Should be sorted descending
	if scores[0].Score != 200 {
		t.Errorf("Expected highest score to be 200, got %d", scores[0].Score)
	}
	if scores[1].Score != 100 {
		t.Errorf("Expected second score to be 100, got %d", scores[1].Score)
	}
	if scores[2].Score != 50 {
		t.Errorf("Expected third score to be 50, got %d", scores[2].Score)
	}

	// Retrieve top scores for dino
	practiceScores, err := store.TopScores("practice", 10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}

	if len(practiceScores) != 1 {
		t.Errorf("Expected 1 practice score, got %d", len(practiceScores))
	}
}

func TestStoreTopScoresLimit(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	// Save 5 scores
	for i := 0; i < 5; i++ {
		saveScore(t, store, "test", (i+1)*100)
	}

	// Request only top 3
	scores, err := store.TopScores("test", 3)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}

	if len(scores) != 3 {
		t.Errorf("Expected 3 scores with limit, got %d", len(scores))
	}

	// Should be 500, 400, 300 (top 3)
	if scores[0].Score != 500 || scores[1].Score != 400 || scores[2].Score != 300 {
		t.Errorf("Scores not in expected order: %v", scores)
	}
}

func TestStoreHighScore(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	// No scores yet
	high, err := store.HighScore("linkup")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 0 {
		t.Errorf("Expected high score of 0 for empty game, got %d", high)
	}

	// Add scores
	saveScore(t, store, "linkup", 100)
	saveScore(t, store, "linkup", 300)
	saveScore(t, store, "linkup", 200)

	high, err = store.HighScore("linkup")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 300 {
		t.Errorf("Expected high score of 300, got %d", high)
	}
}

func TestStoreClearScores(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	saveScore(t, store, "linkup", 100)
	saveScore(t, store, "linkup", 200)
	saveScore(t, store, "practice", 300)

	// Clear only linkup scores
	err = store.ClearScores("linkup")
	if err != nil {
		t.Fatalf("ClearScores() failed: %v", err)
	}

	// Linkup should be empty
	linkupScores, _ := store.TopScores("linkup", 10)
	if len(linkupScores) != 0 {
		t.Errorf("Expected 0 linkup scores after clear, got %d", len(linkupScores))
	}

	// Practice should still have scores
	practiceScores, _ := store.TopScores("practice", 10)
	if len(practiceScores) != 1 {
		t.Errorf("Practice scores should not be affected by clearing linkup")
	}
}

func TestStoreAllScores(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	// Add many scores
	for i := 0; i < 20; i++ {
		saveScore(t, store, "test", i*10)
	}

	scores, err := store.AllScores("test")
	if err != nil {
		t.Fatalf("AllScores() failed: %v", err)
	}

	if len(scores) != 20 {
		t.Errorf("Expected 20 scores, got %d", len(scores))
	}
}

func TestStoreExpandHomePath(t *testing.T) {
	// Test that ~ expansion works (we won't actually write to home)
	// Just verify the function doesn't crash
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "subdir", "deep", "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() with nested path failed: %v", err)
	}
	defer store.Close()

	// Verify nested directories were created
	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created in nested directory")
	}
}

func TestStoreSaveRun(t *testing.T) {
	store, err := Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	saved, err := store.SaveRun(Run{
		GameID:       "linkup",
		Player:       "alice",
		Score:        420,
		Pairs:        60,
		HintsUsed:    2,
		DurationSecs: 185,
		Won:          true,
	})
	if err != nil {
		t.Fatalf("SaveRun() failed: %v", err)
	}
	if _, err := uuid.Parse(saved.RunID); err != nil {
		t.Errorf("RunID %q is not a UUID: %v", saved.RunID, err)
	}

	got, ok, err := store.RunByID(saved.RunID)
	if err != nil || !ok {
		t.Fatalf("RunByID() = %v, %v", ok, err)
	}
	if got.Run != saved {
		t.Errorf("stored run = %+v, want %+v", got.Run, saved)
	}

	if _, ok, err := store.RunByID("no-such-run"); ok || err != nil {
		t.Errorf("RunByID(missing) = %v, %v", ok, err)
	}

	// A caller-supplied RunID is kept, and must be unique.
	if _, err := store.SaveRun(Run{RunID: saved.RunID, GameID: "linkup"}); err == nil {
		t.Error("duplicate RunID should fail")
	}
}

func TestStoreGameStats(t *testing.T) {
	store, err := Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	empty, err := store.GetGameStats("linkup")
	if err != nil {
		t.Fatalf("GetGameStats() failed: %v", err)
	}
	if empty.GamesCount != 0 || empty.HighScore != 0 || empty.FastestWin != 0 {
		t.Errorf("empty stats = %+v", empty)
	}

	runs := []Run{
		{GameID: "linkup", Score: 100, DurationSecs: 300, Won: true},
		{GameID: "linkup", Score: 300, DurationSecs: 120, Won: true},
		{GameID: "linkup", Score: 50, DurationSecs: 40},
		{GameID: "practice", Score: 7},
	}
	for _, r := range runs {
		if _, err := store.SaveRun(r); err != nil {
			t.Fatalf("SaveRun() failed: %v", err)
		}
	}

	stats, err := store.GetGameStats("linkup")
	if err != nil {
		t.Fatalf("GetGameStats() failed: %v", err)
	}
	if stats.GamesCount != 3 || stats.Wins != 2 || stats.HighScore != 300 || stats.TotalScore != 450 {
		t.Errorf("stats = %+v", stats)
	}
	if stats.AvgScore != 150 {
		t.Errorf("AvgScore = %v, want 150", stats.AvgScore)
	}
	if stats.FastestWin != 120 {
		t.Errorf("FastestWin = %d, want 120", stats.FastestWin)
	}
	if stats.LastPlayed.IsZero() {
		t.Error("LastPlayed not set")
	}

	all, err := store.GetAllGamesStats()
	if err != nil {
		t.Fatalf("GetAllGamesStats() failed: %v", err)
	}
	if len(all) != 2 || all["practice"].GamesCount != 1 {
		t.Errorf("all stats = %v", all)
	}
}

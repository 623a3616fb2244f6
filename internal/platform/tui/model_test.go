package tui

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/daichengyi/minigame/internal/config"
	"github.com/daichengyi/minigame/internal/core"
	"github.com/daichengyi/minigame/internal/registry"
	"github.com/daichengyi/minigame/internal/storage"
)

// plainGame implements only the required game interface.
type plainGame struct {
	resets int
	steps  []core.InputFrame
	state  core.GameState
}

func (g *plainGame) ID() string { return "fake" }
func (g *plainGame) Title() string { return "Fake" }
func (g *plainGame) Reset(core.RuntimeConfig) { g.resets++ }
func (g *plainGame) State() core.GameState { return g.state }
func (g *plainGame) Render(dst *core.Screen) { dst.Clear() }

func (g *plainGame) Step(in core.InputFrame) core.StepResult {
	g.steps = append(g.steps, in.Clone())
	return core.StepResult{State: g.state}
}

// fakeGame also implements every optional interface.
type fakeGame struct {
	plainGame
	resized [2]int
	clicks  [][2]int
	summary core.RunSummary
	preset  config.DifficultyPreset
}

func (g *fakeGame) Resize(w, h int) { g.resized = [2]int{w, h} }
func (g *fakeGame) Click(x, y int) { g.clicks = append(g.clicks, [2]int{x, y}) }
func (g *fakeGame) Summary() core.RunSummary { return g.summary }
func (g *fakeGame) UsePreset(p config.DifficultyPreset) { g.preset = p }

func keyMsg(s string) tea.KeyMsg {
	switch s {
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case " ":
		return tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}
	case "up":
		return tea.KeyMsg{Type: tea.KeyUp}
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "tab":
		return tea.KeyMsg{Type: tea.KeyTab}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestKeyMapperMapKey(t *testing.T) {
	km := NewKeyMapper()
	tests := []struct {
		key    string
		want   core.Action
		isQuit bool
	}{
		{"up", core.ActionUp, false},
		{"k", core.ActionUp, false},
		{"a", core.ActionLeft, false},
		{"l", core.ActionRight, false},
		{" ", core.ActionSelect, false},
		{"enter", core.ActionSelect, false},
		{"t", core.ActionHint, false},
		{"p", core.ActionPause, false},
		{"r", core.ActionRestart, false},
		{"esc", core.ActionBack, false},
		{"q", core.ActionQuit, true},
		{"x", core.ActionNone, false},
	}

	for _, tc := range tests {
		got, quit := km.MapKey(keyMsg(tc.key))
		if got != tc.want || quit != tc.isQuit {
			t.Errorf("MapKey(%q) = %v, %v; want %v, %v", tc.key, got, quit, tc.want, tc.isQuit)
		}
	}
}

func TestKeyMapperMenuActions(t *testing.T) {
	km := NewKeyMapper()
	tests := map[string]MenuAction{
		"j":     MenuActionDown,
		"up":    MenuActionUp,
		"enter": MenuActionSelect,
		"esc":   MenuActionBack,
		"tab":   MenuActionScoreboard,
		"q":     MenuActionQuit,
		"z":     MenuActionNone,
	}
	for key, want := range tests {
		if got := km.MapKeyToMenuAction(keyMsg(key)); got != want {
			t.Errorf("MapKeyToMenuAction(%q) = %v, want %v", key, got, want)
		}
	}
}

func newModel(g registry.Game, store *storage.Store) GameModel {
	cfg := core.DefaultConfig()
	cfg.Seed = 1
	m := NewGameModel(g, store, cfg, GameOptions{Player: "alice"})
	m.Init()
	return m
}

func update(m GameModel, msg tea.Msg) GameModel {
	next, _ := m.Update(msg)
	return next.(GameModel)
}

func TestGameModelForwardsInputOnTick(t *testing.T) {
	g := &fakeGame{}
	m := newModel(g, nil)

	m = update(m, keyMsg(" "))
	m = update(m, keyMsg("t"))
	m = update(m, TickMsg{})

	if len(g.steps) != 1 {
		t.Fatalf("steps = %d, want 1", len(g.steps))
	}
	if !g.steps[0].Has(core.ActionSelect) || !g.steps[0].Has(core.ActionHint) {
		t.Errorf("frame = %v, want select and hint", g.steps[0].Actions)
	}

	update(m, TickMsg{})
	if len(g.steps[1].Actions) != 0 {
		t.Errorf("input not cleared between ticks: %v", g.steps[1].Actions)
	}
}

func TestGameModelResizeKeepsResizableGames(t *testing.T) {
	g := &fakeGame{}
	m := newModel(g, nil)

	update(m, tea.WindowSizeMsg{Width: 100, Height: 40})
	if g.resized != [2]int{100, 40} || g.resets != 1 {
		t.Errorf("resized = %v resets = %d, want Resize without Reset", g.resized, g.resets)
	}

	p := &plainGame{}
	pm := NewGameModel(p, nil, core.DefaultConfig(), GameOptions{})
	pm.Init()
	update(pm, tea.WindowSizeMsg{Width: 100, Height: 40})
	if p.resets != 2 {
		t.Errorf("plain game resets = %d, want 2", p.resets)
	}
}

func TestGameModelMouseClick(t *testing.T) {
	g := &fakeGame{}
	m := newModel(g, nil)

	m = update(m, tea.MouseMsg{X: 5, Y: 7, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})
	update(m, tea.MouseMsg{X: 1, Y: 1, Action: tea.MouseActionRelease, Button: tea.MouseButtonLeft})

	if len(g.clicks) != 1 || g.clicks[0] != [2]int{5, 7} {
		t.Errorf("clicks = %v, want one at (5,7)", g.clicks)
	}
}

func TestGameModelBackNeedsPauseOrGameOver(t *testing.T) {
	g := &fakeGame{}
	m := newModel(g, nil)
	m = update(m, TickMsg{})

	m = update(m, keyMsg("esc"))
	if m.BackToMenu() {
		t.Fatal("back accepted while playing")
	}

	g.state.Paused = true
	m = update(m, TickMsg{})
	m = update(m, keyMsg("esc"))
	if !m.BackToMenu() {
		t.Error("back ignored while paused")
	}
}

func TestGameModelQuit(t *testing.T) {
	m := newModel(&fakeGame{}, nil)
	next, cmd := m.Update(keyMsg("q"))
	if !next.(GameModel).IsQuitting() || cmd == nil {
		t.Error("q should quit")
	}
	if next.(GameModel).View() != "" {
		t.Error("view should be empty after quitting")
	}
}

func TestGameModelSavesRunOnce(t *testing.T) {
	store, err := storage.Open(filepath.Join(t.TempDir(), "scores.db"))
	if err != nil {
		t.Fatalf("Open() error: %v", err)
	}
	defer store.Close()

	g := &fakeGame{summary: core.RunSummary{Pairs: 4, HintsUsed: 1, Seconds: 33, Won: true}}
	g.state = core.GameState{Score: 90, GameOver: true, Won: true}
	m := newModel(g, store)
	m = update(m, TickMsg{})
	m = update(m, TickMsg{})

	scores, err := store.AllScores("fake")
	if err != nil {
		t.Fatalf("AllScores() error: %v", err)
	}
	if len(scores) != 1 {
		t.Fatalf("saved %d runs, want 1", len(scores))
	}
	got := scores[0]
	if got.Player != "alice" || got.Score != 90 || got.Pairs != 4 || got.HintsUsed != 1 ||
		got.DurationSecs != 33 || !got.Won {
		t.Errorf("saved run = %+v", got.Run)
	}

	// Restart deals again and allows the next run to be saved.
	m = update(m, keyMsg("r"))
	update(m, TickMsg{})
	if g.resets != 2 {
		t.Errorf("resets = %d, want 2", g.resets)
	}
}

func TestRecordRunReportsNewBest(t *testing.T) {
	store, err := storage.Open(filepath.Join(t.TempDir(), "scores.db"))
	if err != nil {
		t.Fatalf("Open() error: %v", err)
	}
	defer store.Close()

	tests := []struct {
		score    int
		wantBest bool
	}{
		{40, true},
		{25, false},
		{40, false},
		{55, true},
	}
	for i, tc := range tests {
		run, best, err := recordRun(store, storage.Run{GameID: "fake", Score: tc.score})
		if err != nil {
			t.Fatalf("run %d: recordRun() error: %v", i, err)
		}
		if run.RunID == "" {
			t.Errorf("run %d: no RunID assigned", i)
		}
		if best != tc.wantBest {
			t.Errorf("run %d: score %d best = %v, want %v", i, tc.score, best, tc.wantBest)
		}
	}
}

func TestGameModelLogsNewHighScore(t *testing.T) {
	store, err := storage.Open(filepath.Join(t.TempDir(), "scores.db"))
	if err != nil {
		t.Fatalf("Open() error: %v", err)
	}
	defer store.Close()

	var buf bytes.Buffer
	g := &fakeGame{}
	g.state = core.GameState{Score: 70, GameOver: true}
	cfg := core.DefaultConfig()
	cfg.Seed = 1
	m := NewGameModel(g, store, cfg, GameOptions{Player: "alice", Logger: log.New(&buf)})
	m.Init()
	update(m, TickMsg{})

	if !strings.Contains(buf.String(), "new high score") {
		t.Errorf("log = %q, want a new high score entry", buf.String())
	}
}

func TestBuildRunWithoutSummary(t *testing.T) {
	run := buildRun(&plainGame{}, core.GameState{Score: 5, GameOver: true}, "")
	want := storage.Run{GameID: "fake", Score: 5}
	if run != want {
		t.Errorf("buildRun() = %+v, want %+v", run, want)
	}
}

func TestRenderScreen(t *testing.T) {
	s := core.NewScreen(6, 2)
	s.DrawText(0, 0, "plain")
	s.DrawTextColored(0, 1, "red", core.ColorRed)

	out := RenderScreen(s)
	lines := strings.Split(out, "\n")
	if len(lines) != 2 {
		t.Fatalf("lines = %d, want 2", len(lines))
	}
	if lines[0] != "plain " {
		t.Errorf("line 0 = %q, want unstyled text", lines[0])
	}
	if !strings.Contains(lines[1], "red") {
		t.Errorf("line 1 = %q, want it to contain the text", lines[1])
	}
}

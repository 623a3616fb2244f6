package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/daichengyi/minigame/internal/config"
	"github.com/daichengyi/minigame/internal/core"
	"github.com/daichengyi/minigame/internal/registry"
)

var lastFake *fakeGame

func init() {
	registry.Register(registry.GameInfo{ID: "fake", Title: "Fake", Description: "A stand-in game"}, func() registry.Game {
		lastFake = &fakeGame{}
		return lastFake
	})
}

func sessionUpdate(m SessionModel, msg tea.Msg) SessionModel {
	next, _ := m.Update(msg)
	return next.(SessionModel)
}

func TestSessionFlow(t *testing.T) {
	m := NewSessionModel(nil, core.DefaultConfig(), "bob", nil)
	if m.ID() == "" {
		t.Fatal("session has no ID")
	}
	if !strings.Contains(m.View(), "Fake") {
		t.Fatalf("menu does not list the game:\n%s", m.View())
	}

	m = sessionUpdate(m, keyMsg("enter"))
	if m.screen != screenBoard {
		t.Fatalf("screen = %v, want board choice", m.screen)
	}
	if !strings.Contains(m.View(), "Choose a board") {
		t.Error("board menu not shown")
	}

	m = sessionUpdate(m, keyMsg("up"))
	m = sessionUpdate(m, keyMsg("enter"))
	if m.screen != screenGame {
		t.Fatalf("screen = %v, want game", m.screen)
	}
	if lastFake.preset != config.DifficultyEasy || lastFake.resets != 1 {
		t.Errorf("game preset = %q resets = %d", lastFake.preset, lastFake.resets)
	}

	lastFake.state.Paused = true
	m = sessionUpdate(m, TickMsg{})
	m = sessionUpdate(m, keyMsg("esc"))
	if m.screen != screenMenu {
		t.Errorf("screen = %v, want menu after leaving the game", m.screen)
	}
}

func TestSessionBoardBack(t *testing.T) {
	m := NewSessionModel(nil, core.DefaultConfig(), "bob", nil)
	m = sessionUpdate(m, keyMsg("enter"))
	m = sessionUpdate(m, keyMsg("esc"))
	if m.screen != screenMenu {
		t.Errorf("screen = %v, want menu", m.screen)
	}
}

func TestSessionScoreboardWithoutStore(t *testing.T) {
	m := NewSessionModel(nil, core.DefaultConfig(), "bob", nil)
	m = sessionUpdate(m, keyMsg("tab"))
	if m.screen != screenScores {
		t.Fatalf("screen = %v, want scores", m.screen)
	}
	if !strings.Contains(m.View(), "No runs recorded") {
		t.Error("empty scoreboard message missing")
	}
	m = sessionUpdate(m, keyMsg("esc"))
	if m.screen != screenMenu {
		t.Errorf("screen = %v, want menu", m.screen)
	}
}

func TestSessionQuit(t *testing.T) {
	m := NewSessionModel(nil, core.DefaultConfig(), "bob", nil)
	next, cmd := m.Update(keyMsg("q"))
	if cmd == nil || next.(SessionModel).View() != "" {
		t.Error("q should end the session")
	}
}

func TestLinkupMenuStartsOnCurrentPreset(t *testing.T) {
	m := NewLinkupMenuModel(80, 24, config.DifficultyHard)
	next, _ := m.Update(keyMsg("enter"))
	sel := next.(LinkupMenuModel).Selected()
	if sel == nil || sel.Preset != config.DifficultyHard {
		t.Errorf("selection = %+v, want hard", sel)
	}

	m = NewLinkupMenuModel(80, 24, "")
	for i := 0; i < 5; i++ {
		next, _ = m.Update(keyMsg("j"))
		m = next.(LinkupMenuModel)
	}
	next, _ = m.Update(keyMsg("enter"))
	if sel := next.(LinkupMenuModel).Selected(); sel == nil || sel.Preset != "" {
		t.Errorf("last option = %+v, want the config file board", sel)
	}
}

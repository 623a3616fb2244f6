package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/daichengyi/minigame/internal/config"
	"github.com/daichengyi/minigame/internal/core"
)

// LinkupSelection holds the board chosen in the linkup menu.
type LinkupSelection struct {
	Preset config.DifficultyPreset // empty means the config file's board
}

type linkupOption struct {
	label  string
	preset config.DifficultyPreset
}

// linkupOptions lists every preset followed by the config file's board.
func linkupOptions() []linkupOption {
	opts := make([]linkupOption, 0, len(config.Presets)+1)
	for _, p := range config.Presets {
		b, _ := config.PresetBoard(p)
		opts = append(opts, linkupOption{
			label:  fmt.Sprintf("%-7s %s", strings.ToUpper(string(p[:1]))+string(p[1:]), b.Describe()),
			preset: p,
		})
	}
	return append(opts, linkupOption{label: "Custom  (from config file)"})
}

// LinkupMenuModel lets the player pick the board size before a game.
type LinkupMenuModel struct {
	options   []linkupOption
	cursor    int
	width     int
	height    int
	keyMapper *KeyMapper
	selection LinkupSelection
	choosing  bool
	quitting  bool
	back      bool
}

// NewLinkupMenuModel creates the board selector. The cursor starts on the
// current preset when there is one.
func NewLinkupMenuModel(width, height int, current config.DifficultyPreset) LinkupMenuModel {
	m := LinkupMenuModel{
		options:   linkupOptions(),
		width:     width,
		height:    height,
		keyMapper: NewKeyMapper(),
		choosing:  true,
	}
	for i, o := range m.options {
		if current != "" && o.preset == current {
			m.cursor = i
		}
	}
	if current == "" {
		m.cursor = 1 // normal
	}
	return m
}

// Init initializes the model.
func (m LinkupMenuModel) Init() tea.Cmd {
	return nil
}

// Update handles messages.
func (m LinkupMenuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
	}
	return m, nil
}

func (m LinkupMenuModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.keyMapper.MapKeyToMenuAction(msg) {
	case MenuActionQuit:
		m.quitting = true
		return m, tea.Quit
	case MenuActionUp:
		if m.cursor > 0 {
			m.cursor--
		}
	case MenuActionDown:
		if m.cursor < len(m.options)-1 {
			m.cursor++
		}
	case MenuActionSelect:
		m.choosing = false
		m.selection = LinkupSelection{Preset: m.options[m.cursor].preset}
		return m, tea.Quit
	case MenuActionBack:
		m.back = true
		return m, tea.Quit
	}
	return m, nil
}

// View renders the board selection.
func (m LinkupMenuModel) View() string {
	if m.quitting || m.back {
		return ""
	}

	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(centerText(menuTitleStyle.Render("L I N K U P"), m.width))
	b.WriteString("\n\n")
	b.WriteString(centerText("Choose a board:", m.width))
	b.WriteString("\n\n")

	for i, o := range m.options {
		cursor := "  "
		if i == m.cursor {
			cursor = "> "
		}
		b.WriteString(centerText(cursor+o.label, m.width))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(centerText("Enter: Select  |  Esc: Back  |  Q: Quit", m.width))
	return b.String()
}

// Selected returns the selection, or nil if still choosing.
func (m LinkupMenuModel) Selected() *LinkupSelection {
	if m.choosing {
		return nil
	}
	return &m.selection
}

// IsQuitting returns true if user wants to quit.
func (m LinkupMenuModel) IsQuitting() bool {
	return m.quitting
}

// WantsBack returns true if user pressed back.
func (m LinkupMenuModel) WantsBack() bool {
	return m.back
}

// RunLinkupMenu runs the board selector. A nil selection means the player
// went back or quit.
func RunLinkupMenu(cfg core.RuntimeConfig, current config.DifficultyPreset) (*LinkupSelection, error) {
	p := tea.NewProgram(NewLinkupMenuModel(cfg.ScreenW, cfg.ScreenH, current), tea.WithAltScreen())

	finalModel, err := p.Run()
	if err != nil {
		return nil, err
	}

	m, ok := finalModel.(LinkupMenuModel)
	if !ok || m.IsQuitting() || m.WantsBack() {
		return nil, nil
	}
	return m.Selected(), nil
}

package tui

import (
	"fmt"
	"sort"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/daichengyi/minigame/internal/registry"
	"github.com/daichengyi/minigame/internal/storage"
)

// Scoreboard layout constants
const (
	minWidthForPanel = 80  // Minimum width to show the stats panel
	panelWidth       = 22  // Width of the stats panel
	maxScores        = 100 // Max rows shown for one filter
)

var (
	filterStyle       = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	activeFilterStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229")).Background(lipgloss.Color("57")).Padding(0, 1)
	boxStyle          = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("240")).Padding(0, 1)
)

// ScoreboardKeyMap defines the key bindings for the scoreboard.
type ScoreboardKeyMap struct {
	Up         key.Binding
	Down       key.Binding
	NextPlayer key.Binding
	PrevPlayer key.Binding
	Back       key.Binding
	Quit       key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k ScoreboardKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.NextPlayer, k.PrevPlayer, k.Back}
}

// FullHelp returns key bindings for the full help view.
func (k ScoreboardKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.NextPlayer, k.PrevPlayer},
		{k.Back, k.Quit},
	}
}

// DefaultScoreboardKeyMap returns default key bindings.
func DefaultScoreboardKeyMap() ScoreboardKeyMap {
	return ScoreboardKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("up/k", "scroll up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("down/j", "scroll down"),
		),
		NextPlayer: key.NewBinding(
			key.WithKeys("right", "l", "tab"),
			key.WithHelp("right/tab", "next player"),
		),
		PrevPlayer: key.NewBinding(
			key.WithKeys("left", "h", "shift+tab"),
			key.WithHelp("left/S-tab", "prev player"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc", "b"),
			key.WithHelp("esc/b", "back"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// ScoreboardModel is the Bubble Tea model for the scoreboard screen. It
// lists one game's runs, best first, and can narrow them to a single
// player.
type ScoreboardModel struct {
	game         registry.GameInfo
	store        *storage.Store
	runs         []storage.ScoreEntry // every run, best first
	players      []string             // distinct players, sorted; "" is local play
	playerCursor int                  // 0 is everyone, i+1 is players[i]
	shown        []storage.ScoreEntry
	stats        storage.GameStats // summary of the filtered runs
	table        table.Model
	help         help.Model
	keys         ScoreboardKeyMap
	width        int
	height       int
	quitting     bool
	goingBack    bool // True if user pressed back (not quit)
	showPanel    bool
}

// NewScoreboardModel creates a scoreboard for the given game.
func NewScoreboardModel(store *storage.Store, game registry.GameInfo, width, height int) ScoreboardModel {
	h := help.New()
	h.ShowAll = false

	m := ScoreboardModel{
		game:      game,
		store:     store,
		keys:      DefaultScoreboardKeyMap(),
		help:      h,
		width:     width,
		height:    height,
		showPanel: width >= minWidthForPanel,
	}
	m.table = m.createTable()
	m.loadRuns()
	return m
}

// createTable creates a new table with appropriate columns.
func (m *ScoreboardModel) createTable() table.Model {
	columns := []table.Column{
		{Title: "Rank", Width: 5},
		{Title: "Score", Width: 7},
		{Title: "Player", Width: 10},
		{Title: "Pairs", Width: 5},
		{Title: "Hints", Width: 5},
		{Title: "Time", Width: 6},
		{Title: "Date", Width: 12},
	}

	tableWidth := m.width - 4 // Margins
	if m.showPanel {
		tableWidth -= panelWidth + 6 // Panel + borders + gap
	}

	// Give spare room to the player column.
	fixed := 0
	for _, c := range columns {
		fixed += c.Width + 2
	}
	if extra := tableWidth - fixed; extra > 0 {
		columns[2].Width += min(extra, 10)
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(max(m.height-10, 3)), // Leave room for header, filter, help, and margins
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Bold(false)
	t.SetStyles(s)

	return t
}

// loadRuns reads every run of the game and resets the player filter.
func (m *ScoreboardModel) loadRuns() {
	m.runs, m.players, m.playerCursor = nil, nil, 0
	if m.store != nil {
		if runs, err := m.store.AllScores(m.game.ID); err == nil {
			m.runs = runs
		}
	}

	seen := make(map[string]bool)
	for _, r := range m.runs {
		if !seen[r.Player] {
			seen[r.Player] = true
			m.players = append(m.players, r.Player)
		}
	}
	sort.Strings(m.players)
	m.applyFilter()
}

// applyFilter selects the runs of the current player and refreshes the
// table and stats.
func (m *ScoreboardModel) applyFilter() {
	m.shown = nil
	for _, r := range m.runs {
		if m.playerCursor == 0 || r.Player == m.players[m.playerCursor-1] {
			m.shown = append(m.shown, r)
		}
	}
	m.stats = summarizeRuns(m.game.ID, m.shown)
	if len(m.shown) > maxScores {
		m.shown = m.shown[:maxScores]
	}
	m.updateTableRows()
}

// cyclePlayer moves the filter by delta, wrapping around "All players".
func (m *ScoreboardModel) cyclePlayer(delta int) {
	n := len(m.players) + 1
	m.playerCursor = ((m.playerCursor+delta)%n + n) % n
	m.applyFilter()
}

// updateTableRows updates the table with the shown runs.
func (m *ScoreboardModel) updateTableRows() {
	rows := make([]table.Row, len(m.shown))
	for i, s := range m.shown {
		score := fmt.Sprintf("%d", s.Score)
		if s.Won {
			score += "*"
		}
		rows[i] = table.Row{
			fmt.Sprintf("#%d", i+1),
			score,
			displayPlayer(s.Player),
			fmt.Sprintf("%d", s.Pairs),
			fmt.Sprintf("%d", s.HintsUsed),
			formatDuration(s.DurationSecs),
			s.CreatedAt.Format("Jan 02 15:04"),
		}
	}
	m.table.SetRows(rows)
	m.table.GotoTop()
}

// summarizeRuns aggregates runs the way the store aggregates a whole game.
func summarizeRuns(gameID string, runs []storage.ScoreEntry) storage.GameStats {
	stats := storage.GameStats{GameID: gameID, GamesCount: len(runs)}
	for i, r := range runs {
		if i == 0 || r.Score > stats.HighScore {
			stats.HighScore = r.Score
		}
		stats.TotalScore += int64(r.Score)
		if r.Won {
			stats.Wins++
			if stats.FastestWin == 0 || r.DurationSecs < stats.FastestWin {
				stats.FastestWin = r.DurationSecs
			}
		}
		if r.CreatedAt.After(stats.LastPlayed) {
			stats.LastPlayed = r.CreatedAt
		}
	}
	if len(runs) > 0 {
		stats.AvgScore = float64(stats.TotalScore) / float64(len(runs))
	}
	return stats
}

// Init initializes the scoreboard model.
func (m ScoreboardModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the scoreboard.
func (m ScoreboardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit

		case key.Matches(msg, m.keys.Back):
			m.goingBack = true
			return m, tea.Quit

		case key.Matches(msg, m.keys.NextPlayer):
			m.cyclePlayer(1)
			return m, nil

		case key.Matches(msg, m.keys.PrevPlayer):
			m.cyclePlayer(-1)
			return m, nil

		case key.Matches(msg, m.keys.Up), key.Matches(msg, m.keys.Down):
			m.table, cmd = m.table.Update(msg)
			return m, cmd
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.showPanel = m.width >= minWidthForPanel
		m.table = m.createTable()
		m.updateTableRows()
		m.help.Width = msg.Width
		return m, nil
	}

	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// View renders the scoreboard.
func (m ScoreboardModel) View() string {
	if m.quitting || m.goingBack {
		return ""
	}

	var b strings.Builder

	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("229")).
		MarginBottom(1)

	title := "HIGH SCORES"
	if m.game.Title != "" {
		title = fmt.Sprintf("HIGH SCORES - %s", m.game.Title)
	}
	b.WriteString(titleStyle.Render(centerText(title, m.width)))
	b.WriteString("\n\n")

	if len(m.runs) > 0 {
		b.WriteString(centerText(m.renderFilter(), m.width))
		b.WriteString("\n\n")
	}

	runs := boxStyle.Render(m.renderTableContent())
	if m.showPanel {
		b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, runs, "  ", m.renderPanel()))
	} else {
		if line := m.statsLine(); line != "" {
			b.WriteString(centerText(line, m.width))
			b.WriteString("\n\n")
		}
		b.WriteString(centerText(runs, m.width))
	}

	b.WriteString("\n")
	helpStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("241"))
	b.WriteString(helpStyle.Render(m.help.View(m.keys)))

	return b.String()
}

// renderFilter shows the player choices, or just the current one with
// arrows when they do not fit.
func (m ScoreboardModel) renderFilter() string {
	labels := make([]string, 0, len(m.players)+1)
	labels = append(labels, "All players")
	for _, p := range m.players {
		labels = append(labels, displayPlayer(p))
	}

	tabs := make([]string, len(labels))
	for i, l := range labels {
		if i == m.playerCursor {
			tabs[i] = activeFilterStyle.Render(l)
		} else {
			tabs[i] = filterStyle.Render(" " + l + " ")
		}
	}

	line := strings.Join(tabs, " ")
	if lipgloss.Width(line) > m.width-4 {
		line = fmt.Sprintf("< %s >", labels[m.playerCursor])
	}
	return line
}

// renderPanel renders the stats of the filtered runs beside the table.
func (m ScoreboardModel) renderPanel() string {
	var p strings.Builder
	p.WriteString("Stats\n")
	p.WriteString(strings.Repeat("-", panelWidth-4))
	p.WriteString("\n")

	rows := [][2]string{
		{"Played", fmt.Sprintf("%d", m.stats.GamesCount)},
		{"Cleared", fmt.Sprintf("%d", m.stats.Wins)},
		{"Best", fmt.Sprintf("%d", m.stats.HighScore)},
		{"Average", fmt.Sprintf("%.0f", m.stats.AvgScore)},
	}
	if m.stats.FastestWin > 0 {
		rows = append(rows, [2]string{"Fastest", formatDuration(m.stats.FastestWin)})
	}
	if !m.stats.LastPlayed.IsZero() {
		rows = append(rows, [2]string{"Last", m.stats.LastPlayed.Format("Jan 02")})
	}
	for _, r := range rows {
		fmt.Fprintf(&p, "%-9s%*s\n", r[0], panelWidth-13, r[1])
	}

	return boxStyle.Width(panelWidth).Render(strings.TrimSuffix(p.String(), "\n"))
}

// renderTableContent renders the table or empty message.
func (m ScoreboardModel) renderTableContent() string {
	if len(m.shown) == 0 {
		emptyStyle := lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")).
			Italic(true).
			Padding(2, 4)
		return emptyStyle.Render("No runs recorded yet.\nClear a board to set a high score!")
	}

	return m.table.View()
}

// statsLine summarizes the filtered runs on one line for narrow terminals.
func (m ScoreboardModel) statsLine() string {
	if m.stats.GamesCount == 0 {
		return ""
	}
	line := fmt.Sprintf("Played %d  |  Cleared %d  |  Best %d  |  Avg %.0f",
		m.stats.GamesCount, m.stats.Wins, m.stats.HighScore, m.stats.AvgScore)
	if m.stats.FastestWin > 0 {
		line += "  |  Fastest " + formatDuration(m.stats.FastestWin)
	}
	return line
}

// displayPlayer names local runs, which carry no SSH user.
func displayPlayer(player string) string {
	if player == "" {
		return "local"
	}
	return player
}

// formatDuration renders seconds as m:ss.
func formatDuration(secs int) string {
	return fmt.Sprintf("%d:%02d", secs/60, secs%60)
}

// IsGoingBack returns true if user wants to go back to menu.
func (m ScoreboardModel) IsGoingBack() bool {
	return m.goingBack
}

// IsQuitting returns true if user wants to quit entirely.
func (m ScoreboardModel) IsQuitting() bool {
	return m.quitting
}

// RunScoreboard runs the scoreboard screen for one game.
// Returns true if user wants to go back to menu, false if quitting.
func RunScoreboard(store *storage.Store, game registry.GameInfo, width, height int) (goBack bool, err error) {
	model := NewScoreboardModel(store, game, width, height)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	finalModel, err := p.Run()
	if err != nil {
		return false, err
	}

	m, ok := finalModel.(ScoreboardModel)
	if !ok {
		return false, nil
	}

	return m.IsGoingBack(), nil
}

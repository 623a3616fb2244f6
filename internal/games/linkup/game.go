package linkup

import (
	"math/rand"

	"github.com/charmbracelet/log"

	"github.com/daichengyi/minigame/internal/config"
	"github.com/daichengyi/minigame/internal/core"
	"github.com/daichengyi/minigame/internal/registry"
)

// Ticks the "no path" notice stays in the status line.
const messageTicks = 90

// How many times Reset reshuffles a generated board that has no moves.
const maxDealAttempts = 10

// Game is the terminal version of the puzzle.
type Game struct {
	cfg      config.LinkupConfig
	preset   config.DifficultyPreset // overrides the package preset when set
	logger   *log.Logger
	rng      *rand.Rand
	tick     uint64
	tickRate int

	board    *Board
	resolver *Resolver
	selector *Selector
	total    int // tiles dealt

	cursorRow int
	cursorCol int

	score     int
	pairs     int
	hintsUsed int
	timeBonus int
	playTicks uint64 // ticks spent unpaused on an unfinished board

	link      Path
	linkTicks int
	hint      *Hint
	hintTicks int
	message   string
	msgTicks  int

	screenW int
	screenH int

	won      bool
	stuck    bool
	paused   bool
	tooSmall bool
}

// Package-level settings applied on the next Reset, the way the CLI and
// menus configure games created through the registry.
var (
	configPath       string
	difficultyPreset config.DifficultyPreset
	layoutPath       string
	logger           *log.Logger
)

// SetConfigPath sets a custom config file path.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the board-size preset.
func SetDifficultyPreset(preset config.DifficultyPreset) {
	difficultyPreset = preset
}

// GetDifficultyPreset returns the currently selected preset.
func GetDifficultyPreset() config.DifficultyPreset {
	return difficultyPreset
}

// SetLayoutPath makes the next games start from a YAML layout instead of a
// generated board. An empty path restores generation.
func SetLayoutPath(path string) {
	layoutPath = path
}

// SetLogger sets the logger new games report to. Nil silences them.
func SetLogger(l *log.Logger) {
	logger = l
}

// New creates a new game.
func New() *Game {
	return &Game{}
}

func init() {
	registry.Register(registry.GameInfo{
		ID:          "linkup",
		Title:       "Linkup",
		Description: "Connect matching tiles with paths of few turns",
	}, func() registry.Game {
		return New()
	})
}

// UsePreset picks the board preset for this game only, so concurrent
// sessions can play different sizes. Empty falls back to the package preset.
func (g *Game) UsePreset(preset config.DifficultyPreset) {
	g.preset = preset
}

// ID returns the game identifier.
func (g *Game) ID() string {
	return "linkup"
}

// Title returns the display name.
func (g *Game) Title() string {
	return "Linkup"
}

// Reset deals a new board.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	g.logger = logger
	g.cfg = g.loadConfig()
	g.rng = rand.New(rand.NewSource(cfg.Seed))
	g.tickRate = cfg.TickRate
	if g.tickRate <= 0 {
		g.tickRate = 60
	}
	g.tick = 0
	g.playTicks = 0
	g.score = 0
	g.pairs = 0
	g.hintsUsed = 0
	g.timeBonus = 0
	g.link = nil
	g.linkTicks = 0
	g.hint = nil
	g.hintTicks = 0
	g.message = ""
	g.msgTicks = 0
	g.won = false
	g.stuck = false
	g.paused = false
	g.cursorRow = 0
	g.cursorCol = 0

	g.resolver = NewResolver(g.deal())
	g.resolver.SetTurnPenalty(g.cfg.Search.TurnPenalty)
	g.resolver.SetMaxTurns(g.cfg.Search.MaxTurns)
	g.selector = NewSelector(g.resolver, ListenerFuncs{
		Eliminate: g.onEliminate,
		Deselect:  g.onDeselect,
		Win:       g.onWin,
	})
	g.board = g.resolver.Board()
	g.total = g.board.RemainingCount()

	if g.total > 0 && !HasMoves(g.resolver) {
		g.stuck = true
	}

	g.Resize(cfg.ScreenW, cfg.ScreenH)
}

// loadConfig reads the config file and applies the preset. Failures fall
// back to defaults.
func (g *Game) loadConfig() config.LinkupConfig {
	cfg, err := config.LoadLinkup(configPath)
	if err != nil {
		g.debug("config load failed, using defaults", "err", err)
		cfg = config.DefaultLinkupConfig()
	}
	preset := g.preset
	if preset == "" {
		preset = difficultyPreset
	}
	config.ApplyLinkupPreset(&cfg, preset)
	return cfg
}

// deal builds the starting board from the layout file or the generator.
func (g *Game) deal() *Board {
	if layoutPath != "" {
		layout, err := LoadLayout(layoutPath)
		if err == nil {
			g.debug("loaded layout", "name", layout.Name, "rows", layout.Board.Rows(), "cols", layout.Board.Cols())
			return layout.Board
		}
		g.debug("layout load failed, generating", "err", err)
	}

	b := g.cfg.Board
	var board *Board
	for attempt := 1; attempt <= maxDealAttempts; attempt++ {
		var err error
		board, err = Generate(b.Rows, b.Cols, b.TileTypes, g.rng)
		if err != nil {
			// Validated config cannot get here; keep the game alive anyway.
			g.debug("generate failed", "err", err)
			return NewBoard(0, 0)
		}
		if HasMoves(NewResolver(board)) {
			break
		}
		g.debug("dealt a dead board, reshuffling", "attempt", attempt)
	}
	return board
}

// Resize adapts to a new screen size without dealing a new board.
func (g *Game) Resize(w, h int) {
	g.screenW = w
	g.screenH = h
	minW, minH := g.minSize()
	g.tooSmall = w < minW || h < minH
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	g.tick++

	if g.tooSmall {
		return core.StepResult{State: g.State()}
	}

	if in.Has(core.ActionPause) && !g.finished() {
		g.paused = !g.paused
	}
	if g.paused {
		return core.StepResult{State: g.State()}
	}

	g.ageOverlays()

	// Restart is handled by the platform.
	if g.finished() {
		return core.StepResult{State: g.State()}
	}
	g.playTicks++

	switch {
	case in.Has(core.ActionUp):
		g.moveCursor(-1, 0)
	case in.Has(core.ActionDown):
		g.moveCursor(1, 0)
	case in.Has(core.ActionLeft):
		g.moveCursor(0, -1)
	case in.Has(core.ActionRight):
		g.moveCursor(0, 1)
	}

	if in.Has(core.ActionSelect) {
		g.tap()
	}
	if in.Has(core.ActionHint) {
		g.useHint()
	}

	return core.StepResult{State: g.State()}
}

func (g *Game) ageOverlays() {
	if g.linkTicks > 0 {
		g.linkTicks--
		if g.linkTicks == 0 {
			g.link = nil
		}
	}
	if g.hintTicks > 0 {
		g.hintTicks--
		if g.hintTicks == 0 {
			g.hint = nil
		}
	}
	if g.msgTicks > 0 {
		g.msgTicks--
		if g.msgTicks == 0 {
			g.message = ""
		}
	}
}

func (g *Game) moveCursor(dr, dc int) {
	g.cursorRow = core.Clamp(g.cursorRow+dr, 0, core.Max(g.board.Rows()-1, 0))
	g.cursorCol = core.Clamp(g.cursorCol+dc, 0, core.Max(g.board.Cols()-1, 0))
}

// Click moves the cursor to the tile under screen cell (x, y) and taps it.
// Clicks outside the board are ignored.
func (g *Game) Click(x, y int) {
	if g.tooSmall || g.paused || g.finished() {
		return
	}
	row, col, ok := g.cellAt(x, y)
	if !ok {
		return
	}
	g.cursorRow, g.cursorCol = row, col
	g.tap()
}

// tap feeds the cursor position to the selector.
func (g *Game) tap() {
	outcome, err := g.selector.Tap(g.cursorRow, g.cursorCol)
	if err != nil {
		g.debug("tap rejected", "row", g.cursorRow, "col", g.cursorCol, "err", err)
		return
	}
	g.debug("tap", "row", g.cursorRow, "col", g.cursorCol, "outcome", outcome, "state", g.selector.State())

	switch outcome {
	case OutcomeEliminated:
		g.hint = nil
		g.hintTicks = 0
		if g.selector.State() != StateWon && !HasMoves(g.resolver) {
			g.stuck = true
			g.debug("no moves left", "remaining", g.board.RemainingCount())
		}
	case OutcomeNoPath:
		g.message = "No path between those tiles"
		g.msgTicks = messageTicks
	}
}

// useHint highlights a connectable pair and charges the hint cost.
func (g *Game) useHint() {
	if g.hint != nil {
		return
	}
	h, ok := FindHint(g.resolver)
	if !ok {
		g.stuck = true
		return
	}
	g.hint = &h
	g.hintTicks = g.cfg.Display.HintTicks
	g.hintsUsed++
	g.score = core.Max(g.score-g.cfg.Scoring.HintCost, 0)
	g.debug("hint", "a", h.A.Point(), "b", h.B.Point(), "turns", h.Path.Turns())
}

func (g *Game) onEliminate(a, b Tile, path Path) {
	g.pairs++
	g.score += g.cfg.Scoring.PairPoints
	g.link = path
	g.linkTicks = g.cfg.Display.LinkTicks
	g.debug("eliminated", "a", a.Point(), "b", b.Point(), "path", path, "turns", path.Turns(),
		"expanded", g.resolver.Stats().Expanded)
}

func (g *Game) onDeselect(tiles []Tile) {
	g.debug("deselected", "count", len(tiles))
}

func (g *Game) onWin() {
	g.won = true
	elapsed := int(g.playTicks) / g.tickRate
	g.timeBonus = core.Max(g.cfg.Scoring.ParSeconds-elapsed, 0) * g.cfg.Scoring.TimeBonusPerSecond
	g.score += g.timeBonus
	g.debug("board cleared", "seconds", elapsed, "bonus", g.timeBonus, "score", g.score)
}

func (g *Game) finished() bool {
	return g.won || g.stuck
}

// elapsedSeconds returns the play time shown in the HUD.
func (g *Game) elapsedSeconds() int {
	return int(g.playTicks) / g.tickRate
}

func (g *Game) debug(msg string, keyvals ...any) {
	if g.logger != nil {
		g.logger.Debug(msg, keyvals...)
	}
}

// Summary reports the run for the scoreboard.
func (g *Game) Summary() core.RunSummary {
	return core.RunSummary{
		Pairs:     g.pairs,
		HintsUsed: g.hintsUsed,
		Seconds:   g.elapsedSeconds(),
		Won:       g.won,
	}
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.score,
		GameOver: g.finished(),
		Won:      g.won,
		Paused:   g.paused || g.tooSmall,
	}
}

package linkup

// GameStateType represents the current game state.
type GameStateType string

const (
	StatePlaying     GameStateType = "playing"
	StatePaused      GameStateType = "paused"
	StateCleared     GameStateType = "cleared"
	StateNoMoves     GameStateType = "no_moves"
	StatePausedSmall GameStateType = "paused_small_window"
)

// Snapshot captures the game state for determinism testing and replay.
type Snapshot struct {
	Tick      uint64
	Score     int
	Board     string // Board.String() layout
	Remaining int
	Total     int
	Pairs     int
	HintsUsed int
	TimeBonus int
	Cursor    PathPoint
	Selected  []PathPoint
	Selection SelectionState
	State     GameStateType
}

// Snapshot returns the current game snapshot.
func (g *Game) Snapshot() Snapshot {
	state := StatePlaying
	switch {
	case g.tooSmall:
		state = StatePausedSmall
	case g.won:
		state = StateCleared
	case g.stuck:
		state = StateNoMoves
	case g.paused:
		state = StatePaused
	}

	selected := make([]PathPoint, 0, 2)
	for _, t := range g.selector.Selected() {
		selected = append(selected, t.Point())
	}

	return Snapshot{
		Tick:      g.tick,
		Score:     g.score,
		Board:     g.board.String(),
		Remaining: g.board.RemainingCount(),
		Total:     g.total,
		Pairs:     g.pairs,
		HintsUsed: g.hintsUsed,
		TimeBonus: g.timeBonus,
		Cursor:    P(g.cursorRow, g.cursorCol),
		Selected:  selected,
		Selection: g.selector.State(),
		State:     state,
	}
}

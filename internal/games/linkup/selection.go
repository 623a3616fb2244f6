package linkup

import "fmt"

// SelectionState is the state of the tap-driven selection machine.
type SelectionState int

const (
	StateIdle SelectionState = iota
	StateOneSelected
	StateTwoSelected
	StateWon
)

// String returns a human-readable name for the state.
func (s SelectionState) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateOneSelected:
		return "one_selected"
	case StateTwoSelected:
		return "two_selected"
	case StateWon:
		return "won"
	default:
		return "unknown"
	}
}

// Outcome describes what a single tap did.
type Outcome int

const (
	OutcomeIgnored    Outcome = iota // empty cell, or board already cleared
	OutcomeSelected                  // first tile selected
	OutcomeDeselected                // selected tile tapped again
	OutcomeSwitched                  // different type tapped; selection moved
	OutcomeEliminated                // pair connected and removed
	OutcomeNoPath                    // pair could not be connected
)

// String returns a human-readable name for the outcome.
func (o Outcome) String() string {
	switch o {
	case OutcomeIgnored:
		return "ignored"
	case OutcomeSelected:
		return "selected"
	case OutcomeDeselected:
		return "deselected"
	case OutcomeSwitched:
		return "switched"
	case OutcomeEliminated:
		return "eliminated"
	case OutcomeNoPath:
		return "no_path"
	default:
		return "unknown"
	}
}

// Listener receives the side effects of selection changes. Implementations
// draw, animate or record; the selector never waits on them.
type Listener interface {
	OnEliminate(a, b Tile, path Path)
	OnDeselect(tiles []Tile)
	OnWin()
}

// NopListener ignores every event.
type NopListener struct{}

func (NopListener) OnEliminate(Tile, Tile, Path) {}
func (NopListener) OnDeselect([]Tile) {}
func (NopListener) OnWin() {}

// ListenerFuncs adapts plain functions to Listener. Nil fields are skipped.
type ListenerFuncs struct {
	Eliminate func(a, b Tile, path Path)
	Deselect  func(tiles []Tile)
	Win       func()
}

func (f ListenerFuncs) OnEliminate(a, b Tile, path Path) {
	if f.Eliminate != nil {
		f.Eliminate(a, b, path)
	}
}

func (f ListenerFuncs) OnDeselect(tiles []Tile) {
	if f.Deselect != nil {
		f.Deselect(tiles)
	}
}

func (f ListenerFuncs) OnWin() {
	if f.Win != nil {
		f.Win()
	}
}

// Selector turns taps into selections and eliminations on one board.
type Selector struct {
	board    *Board
	resolver *Resolver
	listener Listener
	selected []PathPoint
	state    SelectionState
}

// NewSelector creates a selector. A nil listener is replaced by NopListener.
func NewSelector(resolver *Resolver, listener Listener) *Selector {
	if listener == nil {
		listener = NopListener{}
	}
	return &Selector{
		board:    resolver.Board(),
		resolver: resolver,
		listener: listener,
		selected: make([]PathPoint, 0, 2),
		state:    StateIdle,
	}
}

// Reset starts over on a new board.
func (s *Selector) Reset(board *Board) {
	s.board = board
	s.resolver.SetBoard(board)
	s.selected = s.selected[:0]
	s.state = StateIdle
}

// State returns the current selection state.
func (s *Selector) State() SelectionState {
	return s.state
}

// Selected returns copies of the currently selected tiles.
func (s *Selector) Selected() []Tile {
	tiles := make([]Tile, 0, len(s.selected))
	for _, p := range s.selected {
		if t, ok := s.board.Get(p.Row, p.Col); ok {
			tiles = append(tiles, t)
		}
	}
	return tiles
}

// Tap handles a tap on (row, col). Coordinates outside the board return an
// error wrapping ErrOutOfRange.
func (s *Selector) Tap(row, col int) (Outcome, error) {
	if !s.board.InBounds(row, col) {
		return OutcomeIgnored, fmt.Errorf("tap (%d,%d): %w", row, col, ErrOutOfRange)
	}
	if s.state == StateWon {
		return OutcomeIgnored, nil
	}

	tapped, ok := s.board.Get(row, col)
	if !ok {
		return OutcomeIgnored, nil
	}

	if len(s.selected) == 0 {
		s.selectTile(tapped)
		s.state = StateOneSelected
		return OutcomeSelected, nil
	}

	first, _ := s.board.Get(s.selected[0].Row, s.selected[0].Col)

	if first.Point() == tapped.Point() {
		s.clearSelection()
		return OutcomeDeselected, nil
	}

	if first.Type != tapped.Type {
		s.clearSelection()
		s.selectTile(tapped)
		s.state = StateOneSelected
		return OutcomeSwitched, nil
	}

	s.selectTile(tapped)
	s.state = StateTwoSelected
	return s.resolvePair(), nil
}

// resolvePair runs the resolver on the two selected tiles and applies the
// result.
func (s *Selector) resolvePair() Outcome {
	a, _ := s.board.Get(s.selected[0].Row, s.selected[0].Col)
	b, _ := s.board.Get(s.selected[1].Row, s.selected[1].Col)

	path, ok := s.resolver.Resolve(a, b)
	if !ok {
		s.clearSelection()
		return OutcomeNoPath
	}

	s.listener.OnEliminate(a, b, path)

	// Both positions were validated by the resolver.
	_ = s.board.Remove(a.Row, a.Col)
	_ = s.board.Remove(b.Row, b.Col)
	s.selected = s.selected[:0]
	s.state = StateIdle

	if s.board.RemainingCount() == 0 {
		s.state = StateWon
		s.listener.OnWin()
	}
	return OutcomeEliminated
}

func (s *Selector) selectTile(t Tile) {
	_ = s.board.SetSelected(t.Row, t.Col, true)
	s.selected = append(s.selected, t.Point())
}

// clearSelection deselects every selected tile and notifies the listener.
func (s *Selector) clearSelection() {
	tiles := make([]Tile, 0, len(s.selected))
	for _, p := range s.selected {
		_ = s.board.SetSelected(p.Row, p.Col, false)
		if t, ok := s.board.Get(p.Row, p.Col); ok {
			tiles = append(tiles, t)
		}
	}
	s.selected = s.selected[:0]
	s.state = StateIdle
	if len(tiles) > 0 {
		s.listener.OnDeselect(tiles)
	}
}

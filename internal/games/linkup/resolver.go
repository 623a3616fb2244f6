package linkup

import (
	"errors"
	"fmt"
	"strings"
)

// DefaultTurnPenalty is the extra cost of changing direction during search.
const DefaultTurnPenalty = 5

// Path is an ordered list of waypoints. The first and last points are the
// two connected tiles.
type Path []PathPoint

// Turns returns the number of direction changes along the path.
func (p Path) Turns() int {
	return CountTurns(p)
}

// String returns the path as "(r,c) -> (r,c) -> ...".
func (p Path) String() string {
	parts := make([]string, len(p))
	for i, pt := range p {
		parts[i] = pt.String()
	}
	return strings.Join(parts, " -> ")
}

// Stats describes the work done by the most recent Resolve call.
type Stats struct {
	Adjacent    bool // answered by the adjacency shortcut
	LaunchPairs int  // launch point pairs searched
	Expanded    int  // search states expanded across all pairs
	Candidates  int  // pairs that produced a route
}

// Resolver finds connecting paths between two tiles of the same type.
type Resolver struct {
	board       *Board
	turnPenalty int
	maxTurns    int
	stats       Stats
}

// NewResolver creates a resolver over the board with the default turn
// penalty and no turn cap.
func NewResolver(board *Board) *Resolver {
	return &Resolver{
		board:       board,
		turnPenalty: DefaultTurnPenalty,
	}
}

// SetBoard points the resolver at a different board.
func (r *Resolver) SetBoard(board *Board) {
	r.board = board
}

// Board returns the board the resolver queries.
func (r *Resolver) Board() *Board {
	return r.board
}

// SetTurnPenalty sets the cost added for each direction change. Negative
// values are treated as zero.
func (r *Resolver) SetTurnPenalty(penalty int) {
	if penalty < 0 {
		penalty = 0
	}
	r.turnPenalty = penalty
}

// TurnPenalty returns the current turn penalty.
func (r *Resolver) TurnPenalty() int {
	return r.turnPenalty
}

// SetMaxTurns caps the turns a returned path may have. Zero disables the cap.
func (r *Resolver) SetMaxTurns(turns int) {
	if turns < 0 {
		turns = 0
	}
	r.maxTurns = turns
}

// Stats returns counters for the most recent Resolve call.
func (r *Resolver) Stats() Stats {
	return r.stats
}

// Resolve finds the best path connecting a and b. It reports false when the
// tiles cannot currently be connected.
//
// Resolve panics with an error wrapping ErrInvalidQuery if the tiles differ
// in type, share coordinates, or are not both on the board.
func (r *Resolver) Resolve(a, b Tile) (Path, bool) {
	r.stats = Stats{}

	if a.Type != b.Type {
		panic(fmt.Errorf("%w: tile types differ (%d at %s, %d at %s)", ErrInvalidQuery, a.Type, a.Point(), b.Type, b.Point()))
	}
	if a.Point() == b.Point() {
		panic(fmt.Errorf("%w: both tiles at %s", ErrInvalidQuery, a.Point()))
	}
	if r.board.Rows() == 0 || r.board.Cols() == 0 {
		return nil, false
	}
	r.mustBeOnBoard(a)
	r.mustBeOnBoard(b)

	if a.Point().Manhattan(b.Point()) == 1 {
		r.stats.Adjacent = true
		return Path{a.Point(), b.Point()}, true
	}

	grid := r.board.SearchGrid()
	starts := launchPoints(grid, a)
	ends := launchPoints(grid, b)

	var candidates []Path
	for _, start := range starts {
		for _, end := range ends {
			r.stats.LaunchPairs++
			route := findRoute(grid, start, end, r.turnPenalty, &r.stats)
			if route == nil {
				continue
			}

			path := make(Path, 0, len(route)+2)
			path = append(path, a.Point())
			for _, p := range route {
				path = append(path, fromPadded(p))
			}
			path = append(path, b.Point())
			candidates = append(candidates, path)
		}
	}
	r.stats.Candidates = len(candidates)

	best, ok := SimplifyAndSelect(r.board, candidates)
	if !ok {
		return nil, false
	}
	if r.maxTurns > 0 && CountTurns(best) > r.maxTurns {
		return nil, false
	}
	return best, true
}

// CanConnect reports whether two same-typed tiles on the board connect.
func (r *Resolver) CanConnect(a, b Tile) bool {
	_, ok := r.Resolve(a, b)
	return ok
}

func (r *Resolver) mustBeOnBoard(t Tile) {
	onBoard, ok := r.board.Get(t.Row, t.Col)
	if !ok || onBoard.Type != t.Type {
		panic(fmt.Errorf("%w: no tile of type %d at %s", ErrInvalidQuery, t.Type, t.Point()))
	}
}

// ResolveAt looks up the tiles at a and b and resolves them, returning
// invalid queries as errors instead of panicking.
func (r *Resolver) ResolveAt(a, b PathPoint) (path Path, ok bool, err error) {
	ta, found := r.board.Get(a.Row, a.Col)
	if !found {
		return nil, false, fmt.Errorf("%w: no tile at %s", ErrInvalidQuery, a)
	}
	tb, found := r.board.Get(b.Row, b.Col)
	if !found {
		return nil, false, fmt.Errorf("%w: no tile at %s", ErrInvalidQuery, b)
	}

	defer func() {
		if v := recover(); v != nil {
			e, isErr := v.(error)
			if !isErr || !errors.Is(e, ErrInvalidQuery) {
				panic(v)
			}
			path, ok, err = nil, false, e
		}
	}()
	path, ok = r.Resolve(ta, tb)
	return path, ok, nil
}

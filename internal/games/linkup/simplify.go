package linkup

// Smooth collapses straight runs of a path. A waypoint is dropped when its
// neighbours in the original path are orthogonally adjacent or share a row
// or column with no tile strictly between them. Endpoints are kept.
func Smooth(board *Board, path Path) Path {
	if len(path) <= 2 {
		return path
	}

	smoothed := make(Path, 0, len(path))
	smoothed = append(smoothed, path[0])
	for i := 1; i < len(path)-1; i++ {
		if canConnectDirectly(board, path[i-1], path[i+1]) {
			continue
		}
		smoothed = append(smoothed, path[i])
	}
	smoothed = append(smoothed, path[len(path)-1])
	return smoothed
}

// canConnectDirectly reports whether a straight, unobstructed line joins p
// and q. Border cells never obstruct.
func canConnectDirectly(board *Board, p, q PathPoint) bool {
	if p.Manhattan(q) == 1 {
		return true
	}

	switch {
	case p.Row == q.Row:
		lo, hi := p.Col, q.Col
		if lo > hi {
			lo, hi = hi, lo
		}
		for col := lo + 1; col < hi; col++ {
			if board.Occupied(p.Row, col) {
				return false
			}
		}
		return true

	case p.Col == q.Col:
		lo, hi := p.Row, q.Row
		if lo > hi {
			lo, hi = hi, lo
		}
		for row := lo + 1; row < hi; row++ {
			if board.Occupied(row, p.Col) {
				return false
			}
		}
		return true
	}

	return false
}

// CountTurns returns how many times the direction changes between
// consecutive segments. Paths of two points or fewer have no turns.
func CountTurns(path Path) int {
	if len(path) <= 2 {
		return 0
	}

	turns := 0
	prev := DirNone
	for i := 1; i < len(path); i++ {
		dir := directionBetween(path[i-1], path[i])
		if i > 1 && dir != prev {
			turns++
		}
		prev = dir
	}
	return turns
}

// SimplifyAndSelect smooths every candidate and returns the one with the
// fewest turns, then the fewest points, then the earliest. It reports false
// for an empty candidate list.
func SimplifyAndSelect(board *Board, paths []Path) (Path, bool) {
	if len(paths) == 0 {
		return nil, false
	}

	best := Smooth(board, paths[0])
	bestTurns := CountTurns(best)
	for _, p := range paths[1:] {
		s := Smooth(board, p)
		turns := CountTurns(s)
		if turns < bestTurns || (turns == bestTurns && len(s) < len(best)) {
			best, bestTurns = s, turns
		}
	}
	return best, true
}

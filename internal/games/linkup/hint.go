package linkup

// Hint is a pair of tiles that can currently be connected.
type Hint struct {
	A    Tile
	B    Tile
	Path Path
}

// FindHint scans same-typed pairs in row-major order and returns the first
// one the resolver can connect. It reports false when the board is dead or
// empty.
func FindHint(r *Resolver) (Hint, bool) {
	board := r.Board()
	grid := board.SearchGrid()

	byType := make(map[TileType][]Tile)
	var order []TileType
	for _, t := range board.Tiles() {
		if _, seen := byType[t.Type]; !seen {
			order = append(order, t.Type)
		}
		byType[t.Type] = append(byType[t.Type], t)
	}

	for _, tt := range order {
		tiles := byType[tt]
		for i := 0; i < len(tiles); i++ {
			for j := i + 1; j < len(tiles); j++ {
				a, b := tiles[i], tiles[j]
				adjacent := a.Point().Manhattan(b.Point()) == 1
				// Walled-in tiles can only pair with a neighbour.
				if !adjacent && (len(launchPoints(grid, a)) == 0 || len(launchPoints(grid, b)) == 0) {
					continue
				}
				if path, ok := r.Resolve(a, b); ok {
					return Hint{A: a, B: b, Path: path}, true
				}
			}
		}
	}
	return Hint{}, false
}

// HasMoves reports whether any pair on the board can be connected.
func HasMoves(r *Resolver) bool {
	_, ok := FindHint(r)
	return ok
}

package linkup

import (
	"fmt"
	"math/rand"
)

// Generate fills a new rows x cols board with shuffled pairs. Pair i gets
// type (i % tileTypes) + 1, so every type appears an even number of times.
// The board is not guaranteed to be solvable.
func Generate(rows, cols, tileTypes int, rng *rand.Rand) (*Board, error) {
	if rows <= 0 || cols <= 0 {
		return nil, fmt.Errorf("generate: board size %dx%d must be positive", rows, cols)
	}
	if (rows*cols)%2 != 0 {
		return nil, fmt.Errorf("generate: board size %dx%d has an odd cell count", rows, cols)
	}
	if tileTypes < 1 || tileTypes > MaxTileTypes {
		return nil, fmt.Errorf("generate: tile types %d not in 1..%d", tileTypes, MaxTileTypes)
	}

	pairs := rows * cols / 2
	types := make([]TileType, 0, rows*cols)
	for i := 0; i < pairs; i++ {
		t := TileType(i%tileTypes + 1)
		types = append(types, t, t)
	}
	rng.Shuffle(len(types), func(i, j int) {
		types[i], types[j] = types[j], types[i]
	})

	board := NewBoard(rows, cols)
	for i, t := range types {
		if err := board.Place(i/cols, i%cols, t); err != nil {
			return nil, fmt.Errorf("generate: %w", err)
		}
	}
	return board, nil
}

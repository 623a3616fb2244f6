// Package linkup implements the "connect identical tiles" puzzle: a board of
// paired tiles, a resolver that finds a low-turn connecting path through empty
// cells and the ring just outside the board, and the selection state machine
// that turns taps into eliminations.
package linkup

import (
	"errors"
	"fmt"
	"strings"
)

// MaxTileTypes is the largest tile type a board can hold.
const MaxTileTypes = 9

var (
	// ErrOutOfRange is returned when a coordinate lies outside the board.
	ErrOutOfRange = errors.New("linkup: coordinate out of range")

	// ErrInvalidQuery marks a resolver call with tiles that cannot be a pair.
	ErrInvalidQuery = errors.New("linkup: invalid query")
)

// TileType identifies a tile face. Zero means no tile.
type TileType uint8

// Tile is a single occupant of the board. Its identity is its slot.
type Tile struct {
	Type     TileType
	Row      int
	Col      int
	Selected bool
}

// Point returns the tile position as a path point.
func (t Tile) Point() PathPoint {
	return PathPoint{Row: t.Row, Col: t.Col}
}

// PathPoint is a position in board coordinates. Border ring points have a
// row of -1 or rows, or a column of -1 or cols.
type PathPoint struct {
	Row int
	Col int
}

// P is a convenience constructor for PathPoint.
func P(row, col int) PathPoint {
	return PathPoint{Row: row, Col: col}
}

// String returns the point as "(row,col)".
func (p PathPoint) String() string {
	return fmt.Sprintf("(%d,%d)", p.Row, p.Col)
}

// Manhattan returns the Manhattan distance to another point.
func (p PathPoint) Manhattan(other PathPoint) int {
	return abs(p.Row-other.Row) + abs(p.Col-other.Col)
}

// Board owns tile occupancy for one game.
type Board struct {
	rows  int
	cols  int
	cells [][]*Tile
}

// NewBoard creates an empty board. Negative sizes are treated as zero.
func NewBoard(rows, cols int) *Board {
	if rows < 0 {
		rows = 0
	}
	if cols < 0 {
		cols = 0
	}

	cells := make([][]*Tile, rows)
	for r := range cells {
		cells[r] = make([]*Tile, cols)
	}
	return &Board{rows: rows, cols: cols, cells: cells}
}

// Rows returns the number of rows.
func (b *Board) Rows() int {
	return b.rows
}

// Cols returns the number of columns.
func (b *Board) Cols() int {
	return b.cols
}

// Dimensions returns the board size.
func (b *Board) Dimensions() (rows, cols int) {
	return b.rows, b.cols
}

// InBounds reports whether (row, col) is an interior cell.
func (b *Board) InBounds(row, col int) bool {
	return row >= 0 && row < b.rows && col >= 0 && col < b.cols
}

// Place puts a tile of the given type at (row, col), replacing any occupant.
func (b *Board) Place(row, col int, t TileType) error {
	if !b.InBounds(row, col) {
		return fmt.Errorf("place (%d,%d) on %dx%d board: %w", row, col, b.rows, b.cols, ErrOutOfRange)
	}
	if t == 0 || t > MaxTileTypes {
		return fmt.Errorf("place (%d,%d): tile type %d not in 1..%d", row, col, t, MaxTileTypes)
	}
	b.cells[row][col] = &Tile{Type: t, Row: row, Col: col}
	return nil
}

// Get returns the tile at (row, col). Out-of-range and empty cells report
// false.
func (b *Board) Get(row, col int) (Tile, bool) {
	if !b.InBounds(row, col) {
		return Tile{}, false
	}
	t := b.cells[row][col]
	if t == nil {
		return Tile{}, false
	}
	return *t, true
}

// Occupied reports whether an interior cell holds a tile.
func (b *Board) Occupied(row, col int) bool {
	return b.InBounds(row, col) && b.cells[row][col] != nil
}

// Remove clears the cell at (row, col).
func (b *Board) Remove(row, col int) error {
	if !b.InBounds(row, col) {
		return fmt.Errorf("remove (%d,%d) on %dx%d board: %w", row, col, b.rows, b.cols, ErrOutOfRange)
	}
	b.cells[row][col] = nil
	return nil
}

// SetSelected updates the selection flag of the tile at (row, col).
func (b *Board) SetSelected(row, col int, selected bool) error {
	if !b.InBounds(row, col) {
		return fmt.Errorf("select (%d,%d) on %dx%d board: %w", row, col, b.rows, b.cols, ErrOutOfRange)
	}
	if t := b.cells[row][col]; t != nil {
		t.Selected = selected
	}
	return nil
}

// IsEmptyOrBorder reports whether a path may step on p: the border ring and
// empty interior cells qualify. Points beyond the ring do not.
func (b *Board) IsEmptyOrBorder(p PathPoint) bool {
	if p.Row < -1 || p.Row > b.rows || p.Col < -1 || p.Col > b.cols {
		return false
	}
	if !b.InBounds(p.Row, p.Col) {
		return true
	}
	return b.cells[p.Row][p.Col] == nil
}

// RemainingCount returns the number of tiles left on the board.
func (b *Board) RemainingCount() int {
	n := 0
	for _, row := range b.cells {
		for _, t := range row {
			if t != nil {
				n++
			}
		}
	}
	return n
}

// Tiles returns copies of all tiles in row-major order.
func (b *Board) Tiles() []Tile {
	var tiles []Tile
	for _, row := range b.cells {
		for _, t := range row {
			if t != nil {
				tiles = append(tiles, *t)
			}
		}
	}
	return tiles
}

// Clone returns a deep copy of the board.
func (b *Board) Clone() *Board {
	c := NewBoard(b.rows, b.cols)
	for r, row := range b.cells {
		for col, t := range row {
			if t != nil {
				cp := *t
				c.cells[r][col] = &cp
			}
		}
	}
	return c
}

// SearchGrid builds the padded occupancy grid used by the resolver.
func (b *Board) SearchGrid() *SearchGrid {
	g := &SearchGrid{
		rows: b.rows + 2,
		cols: b.cols + 2,
	}
	g.occupied = make([]bool, g.rows*g.cols)
	for r := 0; r < g.rows; r++ {
		for c := 0; c < g.cols; c++ {
			g.occupied[r*g.cols+c] = !b.IsEmptyOrBorder(fromPadded(PathPoint{Row: r, Col: c}))
		}
	}
	return g
}

// String renders the board as rows of tile digits with '.' for empty cells.
func (b *Board) String() string {
	var sb strings.Builder
	for r, row := range b.cells {
		if r > 0 {
			sb.WriteByte('\n')
		}
		for _, t := range row {
			if t == nil {
				sb.WriteByte('.')
				continue
			}
			sb.WriteByte('0' + byte(t.Type))
		}
	}
	return sb.String()
}

// SearchGrid is the board padded with a free one-cell border ring. Cells
// carry occupancy only. Coordinates are padded: board (r, c) is (r+1, c+1).
type SearchGrid struct {
	rows     int
	cols     int
	occupied []bool
}

// Rows returns the padded row count.
func (g *SearchGrid) Rows() int {
	return g.rows
}

// Cols returns the padded column count.
func (g *SearchGrid) Cols() int {
	return g.cols
}

// Free reports whether a padded cell exists and is not occupied.
func (g *SearchGrid) Free(row, col int) bool {
	if row < 0 || row >= g.rows || col < 0 || col >= g.cols {
		return false
	}
	return !g.occupied[row*g.cols+col]
}

// toPadded converts a board point to padded coordinates.
func toPadded(p PathPoint) PathPoint {
	return PathPoint{Row: p.Row + 1, Col: p.Col + 1}
}

// fromPadded converts a padded point back to board coordinates.
func fromPadded(p PathPoint) PathPoint {
	return PathPoint{Row: p.Row - 1, Col: p.Col - 1}
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

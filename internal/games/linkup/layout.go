package linkup

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// YAMLLayout is the file format for hand-built boards.
//
//	name: corner wrap
//	grid:
//	  - "1.2"
//	  - "343"
//	query:
//	  from: [0, 0]
//	  to: [0, 2]
//
// Digits 1-9 are tile types; '.' is an empty cell.
type YAMLLayout struct {
	Name  string     `yaml:"name"`
	Grid  []string   `yaml:"grid"`
	Query *YAMLQuery `yaml:"query,omitempty"`
}

// YAMLQuery names a pair of cells to resolve.
type YAMLQuery struct {
	From [2]int `yaml:"from"`
	To   [2]int `yaml:"to"`
}

// Layout is a parsed board layout.
type Layout struct {
	Name  string
	Board *Board
	// From and To are set when the file carries a query.
	From     PathPoint
	To       PathPoint
	HasQuery bool
}

// ParseLayout parses a YAML layout document.
func ParseLayout(data []byte) (Layout, error) {
	var yl YAMLLayout
	if err := yaml.Unmarshal(data, &yl); err != nil {
		return Layout{}, fmt.Errorf("yaml unmarshal: %w", err)
	}

	board, err := ParseGrid(yl.Grid)
	if err != nil {
		return Layout{}, err
	}

	layout := Layout{Name: yl.Name, Board: board}
	if yl.Query != nil {
		layout.From = P(yl.Query.From[0], yl.Query.From[1])
		layout.To = P(yl.Query.To[0], yl.Query.To[1])
		layout.HasQuery = true
	}
	return layout, nil
}

// LoadLayout reads and parses a layout file.
func LoadLayout(path string) (Layout, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Layout{}, fmt.Errorf("reading layout %s: %w", path, err)
	}
	layout, err := ParseLayout(data)
	if err != nil {
		return Layout{}, fmt.Errorf("parsing layout %s: %w", path, err)
	}
	return layout, nil
}

// ParseGrid builds a board from rows of digits and dots. All rows must have
// the same width.
func ParseGrid(rows []string) (*Board, error) {
	if len(rows) == 0 {
		return NewBoard(0, 0), nil
	}

	cols := len(rows[0])
	board := NewBoard(len(rows), cols)
	for r, line := range rows {
		if len(line) != cols {
			return nil, fmt.Errorf("grid row %d has width %d, want %d", r, len(line), cols)
		}
		for c := 0; c < cols; c++ {
			ch := line[c]
			switch {
			case ch == '.':
				continue
			case ch >= '1' && ch <= '9':
				if err := board.Place(r, c, TileType(ch-'0')); err != nil {
					return nil, err
				}
			default:
				return nil, fmt.Errorf("grid row %d col %d: unexpected %q", r, c, ch)
			}
		}
	}
	return board, nil
}

// MustParseGrid is ParseGrid for fixed layouts known to be valid.
func MustParseGrid(rows ...string) *Board {
	board, err := ParseGrid(rows)
	if err != nil {
		panic(err)
	}
	return board
}

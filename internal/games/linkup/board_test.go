package linkup

import (
	"errors"
	"testing"
)

func TestBoardPlaceGetRemove(t *testing.T) {
	b := NewBoard(2, 3)

	if err := b.Place(1, 2, 4); err != nil {
		t.Fatalf("Place: %v", err)
	}
	got, ok := b.Get(1, 2)
	if !ok || got.Type != 4 || got.Row != 1 || got.Col != 2 {
		t.Errorf("Get(1,2) = %+v, %v", got, ok)
	}
	if b.RemainingCount() != 1 {
		t.Errorf("RemainingCount = %d, want 1", b.RemainingCount())
	}

	if err := b.Remove(1, 2); err != nil {
		t.Fatalf("Remove: %v", err)
	}
	if _, ok := b.Get(1, 2); ok {
		t.Error("cell should be empty after Remove")
	}
}

func TestBoardOutOfRange(t *testing.T) {
	b := NewBoard(2, 2)

	tests := []struct {
		name string
		fn   func() error
	}{
		{"place", func() error { return b.Place(2, 0, 1) }},
		{"remove", func() error { return b.Remove(-1, 0) }},
		{"select", func() error { return b.SetSelected(0, 5, true) }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := tt.fn(); !errors.Is(err, ErrOutOfRange) {
				t.Errorf("err = %v, want ErrOutOfRange", err)
			}
		})
	}

	if err := b.Place(0, 0, 0); err == nil {
		t.Error("placing type 0 should fail")
	}
	if err := b.Place(0, 0, MaxTileTypes+1); err == nil {
		t.Error("placing an unknown type should fail")
	}
}

func TestIsEmptyOrBorder(t *testing.T) {
	b := MustParseGrid(
		"1.",
		".2",
	)

	tests := []struct {
		p    PathPoint
		want bool
	}{
		{P(0, 0), false},
		{P(0, 1), true},
		{P(1, 1), false},
		{P(-1, 0), true},
		{P(2, 2), true},
		{P(0, -1), true},
		{P(-1, -1), true},
		{P(-2, 0), false},
		{P(0, 3), false},
	}
	for _, tt := range tests {
		if got := b.IsEmptyOrBorder(tt.p); got != tt.want {
			t.Errorf("IsEmptyOrBorder(%s) = %v, want %v", tt.p, got, tt.want)
		}
	}
}

func TestSearchGridPadding(t *testing.T) {
	b := MustParseGrid(
		"1.",
		".2",
	)
	g := b.SearchGrid()

	if g.Rows() != 4 || g.Cols() != 4 {
		t.Fatalf("padded size = %dx%d, want 4x4", g.Rows(), g.Cols())
	}
	for r := 0; r < g.Rows(); r++ {
		for c := 0; c < g.Cols(); c++ {
			want := b.IsEmptyOrBorder(fromPadded(P(r, c)))
			if got := g.Free(r, c); got != want {
				t.Errorf("Free(%d,%d) = %v, want %v", r, c, got, want)
			}
		}
	}
	if g.Free(-1, 0) || g.Free(0, 4) {
		t.Error("cells outside the padded grid must not be free")
	}
}

func TestBoardCloneIsIndependent(t *testing.T) {
	b := MustParseGrid("11")
	c := b.Clone()

	if err := c.Remove(0, 0); err != nil {
		t.Fatal(err)
	}
	if err := c.SetSelected(0, 1, true); err != nil {
		t.Fatal(err)
	}

	if b.RemainingCount() != 2 {
		t.Error("removing from the clone changed the original")
	}
	if tile, _ := b.Get(0, 1); tile.Selected {
		t.Error("selecting in the clone changed the original")
	}
}

func TestBoardTilesAndString(t *testing.T) {
	b := MustParseGrid(
		"1.3",
		"..2",
	)

	tiles := b.Tiles()
	want := []PathPoint{P(0, 0), P(0, 2), P(1, 2)}
	if len(tiles) != len(want) {
		t.Fatalf("Tiles() returned %d tiles, want %d", len(tiles), len(want))
	}
	for i, tile := range tiles {
		if tile.Point() != want[i] {
			t.Errorf("tile %d at %s, want %s", i, tile.Point(), want[i])
		}
	}

	if got := b.String(); got != "1.3\n..2" {
		t.Errorf("String() = %q", got)
	}
}

func TestNegativeSizeBoard(t *testing.T) {
	b := NewBoard(-3, 2)
	if rows, cols := b.Dimensions(); rows != 0 || cols != 2 {
		t.Errorf("NewBoard(-3,2) size = %dx%d, want 0x2", rows, cols)
	}
}

package linkup

import (
	"reflect"
	"testing"
)

func TestCountTurns(t *testing.T) {
	tests := []struct {
		name string
		path Path
		want int
	}{
		{"empty", nil, 0},
		{"two points", Path{P(0, 0), P(0, 5)}, 0},
		{"straight waypoints", Path{P(0, 0), P(0, 1), P(0, 2)}, 0},
		{"one corner", Path{P(0, 0), P(0, 2), P(3, 2)}, 1},
		{"around a wall", Path{P(0, 0), P(-1, 0), P(-1, 3), P(2, 3), P(2, 2)}, 3},
		{"u shape", Path{P(0, 0), P(-1, 0), P(-1, 4), P(0, 4)}, 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CountTurns(tt.path); got != tt.want {
				t.Errorf("CountTurns(%s) = %d, want %d", tt.path, got, tt.want)
			}
		})
	}
}

func TestSmooth(t *testing.T) {
	b := MustParseGrid(
		"1...",
		".2..",
		"...1",
	)

	tests := []struct {
		name string
		path Path
		want Path
	}{
		{
			name: "straight run collapses",
			path: Path{P(0, 0), P(0, 1), P(0, 2), P(0, 3)},
			want: Path{P(0, 0), P(0, 3)},
		},
		{
			name: "corner kept",
			path: Path{P(0, 0), P(0, 1), P(0, 2), P(0, 3), P(1, 3), P(2, 3)},
			want: Path{P(0, 0), P(0, 3), P(2, 3)},
		},
		{
			name: "border cells never obstruct",
			path: Path{P(0, 0), P(-1, 0), P(-1, 1), P(-1, 2), P(-1, 3), P(0, 3)},
			want: Path{P(0, 0), P(-1, 0), P(-1, 3), P(0, 3)},
		},
		{
			name: "short paths untouched",
			path: Path{P(0, 0), P(0, 1)},
			want: Path{P(0, 0), P(0, 1)},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Smooth(b, tt.path); !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Smooth = %s, want %s", got, tt.want)
			}
		})
	}
}

func TestSmoothKeepsWaypointWhenTileBetween(t *testing.T) {
	b := MustParseGrid(
		"...",
		".2.",
		"...",
	)
	// (1,0) and (1,2) share a row but the 2 sits between them.
	path := Path{P(1, 0), P(0, 1), P(1, 2)}
	got := Smooth(b, path)
	if !reflect.DeepEqual(got, path) {
		t.Errorf("Smooth = %s, want %s", got, path)
	}
}

func TestSimplifyAndSelect(t *testing.T) {
	b := NewBoard(3, 4)

	twoTurns := Path{P(0, 0), P(-1, 0), P(-1, 1), P(-1, 2), P(0, 2)}
	oneTurnLong := Path{P(0, 0), P(0, 1), P(0, 2), P(1, 2), P(2, 2)}
	oneTurnOther := Path{P(0, 0), P(1, 0), P(2, 0), P(2, 1), P(2, 2)}

	tests := []struct {
		name  string
		board *Board
		paths []Path
		want  Path
		ok    bool
	}{
		{"empty", b, nil, nil, false},
		{"fewest turns wins", b, []Path{twoTurns, oneTurnLong}, Path{P(0, 0), P(0, 2), P(2, 2)}, true},
		{"ties keep the first", b, []Path{oneTurnOther, oneTurnLong}, Path{P(0, 0), P(2, 0), P(2, 2)}, true},
		{
			// The 2 pins the middle waypoint of the first candidate.
			"fewer points break turn ties",
			MustParseGrid("..2."),
			[]Path{
				{P(0, 0), P(0, 1), P(0, 3)},
				{P(0, 0), P(-1, 0), P(-1, 3), P(0, 3)},
				{P(0, 0), P(0, 3)},
			},
			Path{P(0, 0), P(0, 3)},
			true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := SimplifyAndSelect(tt.board, tt.paths)
			if ok != tt.ok {
				t.Fatalf("ok = %v, want %v", ok, tt.ok)
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("selected %s, want %s", got, tt.want)
			}
		})
	}
}

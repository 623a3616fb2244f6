package linkup

import (
	"strings"
	"testing"
)

func TestDrawPath(t *testing.T) {
	tests := []struct {
		name  string
		board *Board
		path  Path
		want  []string
	}{
		{
			name:  "straight through empty cells",
			board: MustParseGrid("1..1", "2..2"),
			path:  Path{P(0, 0), P(0, 3)},
			want: []string{
				"      ",
				" 1──1 ",
				" 2..2 ",
				"      ",
			},
		},
		{
			name:  "around the top border",
			board: MustParseGrid("121"),
			path:  Path{P(0, 0), P(-1, 0), P(-1, 2), P(0, 2)},
			want: []string{
				" ┌─┐ ",
				" 121 ",
				"     ",
			},
		},
		{
			name:  "no path",
			board: MustParseGrid("1.", ".1"),
			want: []string{
				"    ",
				" 1. ",
				" .1 ",
				"    ",
			},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := DrawPath(tc.board, tc.path)
			want := strings.Join(tc.want, "\n")
			if got != want {
				t.Errorf("DrawPath() =\n%s\nwant\n%s", got, want)
			}
		})
	}
}

package linkup

import "testing"

func TestFindHint(t *testing.T) {
	b := MustParseGrid("1221")
	r := NewResolver(b)

	h, ok := FindHint(r)
	if !ok {
		t.Fatal("expected a hint")
	}
	// Type 1 appears first in row-major order.
	if h.A.Point() != P(0, 0) || h.B.Point() != P(0, 3) {
		t.Errorf("hint = %s and %s, want (0,0) and (0,3)", h.A.Point(), h.B.Point())
	}
	checkPath(t, b, h.Path, h.A, h.B)
}

func TestHasMoves(t *testing.T) {
	tests := []struct {
		name     string
		rows     []string
		maxTurns int
		want     bool
	}{
		{"empty board", []string{"..", ".."}, 0, false},
		{"no pairs", []string{"12", "34"}, 0, false},
		{"adjacent pair", []string{"11"}, 0, true},
		{"corner pair", []string{"123", "454", "321"}, 0, true},
		{"corner pair over the cap", []string{"123", "454", "321"}, 2, false},
		{"corner pair within the cap", []string{"123", "454", "321"}, 3, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := NewResolver(MustParseGrid(tt.rows...))
			r.SetMaxTurns(tt.maxTurns)
			if got := HasMoves(r); got != tt.want {
				t.Errorf("HasMoves = %v, want %v", got, tt.want)
			}
		})
	}
}

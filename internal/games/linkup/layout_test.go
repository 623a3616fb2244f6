package linkup

import (
	"path/filepath"
	"testing"
)

func TestLoadLayoutWithQuery(t *testing.T) {
	layout, err := LoadLayout(filepath.Join("testdata", "corner.yaml"))
	if err != nil {
		t.Fatalf("LoadLayout: %v", err)
	}

	if layout.Name != "corner wrap" {
		t.Errorf("name = %q", layout.Name)
	}
	if got := layout.Board.String(); got != "123\n454\n321" {
		t.Errorf("board = %q", got)
	}
	if !layout.HasQuery || layout.From != P(0, 0) || layout.To != P(2, 2) {
		t.Errorf("query = %v %s -> %s", layout.HasQuery, layout.From, layout.To)
	}
}

func TestParseLayoutWithoutQuery(t *testing.T) {
	layout, err := ParseLayout([]byte("grid:\n  - \"1.\"\n  - \".1\"\n"))
	if err != nil {
		t.Fatalf("ParseLayout: %v", err)
	}
	if layout.HasQuery {
		t.Error("layout without a query reported one")
	}
	if layout.Board.RemainingCount() != 2 {
		t.Errorf("remaining = %d, want 2", layout.Board.RemainingCount())
	}
}

func TestParseGridErrors(t *testing.T) {
	tests := []struct {
		name string
		rows []string
	}{
		{"ragged", []string{"12", "1"}},
		{"zero digit", []string{"10"}},
		{"letter", []string{"1a"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := ParseGrid(tt.rows); err == nil {
				t.Error("expected error")
			}
		})
	}

	if _, err := ParseLayout([]byte("grid: [")); err == nil {
		t.Error("malformed YAML should fail")
	}
	if _, err := LoadLayout(filepath.Join("testdata", "missing.yaml")); err == nil {
		t.Error("missing file should fail")
	}
}

func TestParseGridEmpty(t *testing.T) {
	b, err := ParseGrid(nil)
	if err != nil {
		t.Fatalf("ParseGrid(nil): %v", err)
	}
	if b.Rows() != 0 || b.Cols() != 0 {
		t.Errorf("size = %dx%d, want 0x0", b.Rows(), b.Cols())
	}
}

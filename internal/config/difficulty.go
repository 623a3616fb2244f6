package config

import (
	"fmt"
	"strings"
)

// DifficultyPreset names a board shape. Presets only change the grid size
// and the number of tile types.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
)

// Presets lists the presets in menu order.
var Presets = []DifficultyPreset{DifficultyEasy, DifficultyNormal, DifficultyHard}

// presetBoards holds the board shape for each preset. Normal is the
// 12 x 10 default layout with all nine faces.
var presetBoards = map[DifficultyPreset]LinkupBoard{
	DifficultyEasy:   {Rows: 6, Cols: 8, TileTypes: 6},
	DifficultyNormal: {Rows: 12, Cols: 10, TileTypes: 9},
	DifficultyHard:   {Rows: 12, Cols: 16, TileTypes: 9},
}

// ParsePreset converts a flag value into a preset. The empty string means
// "no preset".
func ParsePreset(s string) (DifficultyPreset, error) {
	p := DifficultyPreset(strings.ToLower(strings.TrimSpace(s)))
	if p == "" {
		return "", nil
	}
	if _, ok := presetBoards[p]; !ok {
		return "", fmt.Errorf("unknown difficulty %q (want easy, normal or hard)", s)
	}
	return p, nil
}

// PresetBoard returns the board shape for a preset.
func PresetBoard(preset DifficultyPreset) (LinkupBoard, bool) {
	b, ok := presetBoards[preset]
	return b, ok
}

// ApplyLinkupPreset replaces the board shape with the preset's. Unknown or
// empty presets leave the config unchanged.
func ApplyLinkupPreset(cfg *LinkupConfig, preset DifficultyPreset) {
	if b, ok := presetBoards[preset]; ok {
		cfg.Board = b
	}
}

// Describe returns a short label such as "12x10, 9 tiles".
func (b LinkupBoard) Describe() string {
	return fmt.Sprintf("%dx%d, %d tiles", b.Rows, b.Cols, b.TileTypes)
}

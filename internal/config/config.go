// Package config provides YAML-based game configuration loading and
// board-size presets for the arcade platform.
package config

import (
	"errors"
	"fmt"
)

// MaxTileTypes mirrors the number of distinct tile faces the game can draw.
const MaxTileTypes = 9

// LinkupConfig contains all configuration for the Linkup game.
type LinkupConfig struct {
	Board   LinkupBoard   `yaml:"board"`
	Search  LinkupSearch  `yaml:"search"`
	Display LinkupDisplay `yaml:"display"`
	Scoring LinkupScoring `yaml:"scoring"`
}

// LinkupBoard defines the board shape.
type LinkupBoard struct {
	Rows      int `yaml:"rows"`
	Cols      int `yaml:"cols"`
	TileTypes int `yaml:"tile_types"`
}

// LinkupSearch tunes the path resolver.
type LinkupSearch struct {
	TurnPenalty int `yaml:"turn_penalty"`
	MaxTurns    int `yaml:"max_turns"` // 0 = no cap
}

// LinkupDisplay defines how long transient overlays stay on screen.
type LinkupDisplay struct {
	LinkTicks int `yaml:"link_ticks"`
	HintTicks int `yaml:"hint_ticks"`
}

// LinkupScoring defines how points are awarded.
type LinkupScoring struct {
	PairPoints         int `yaml:"pair_points"`
	HintCost           int `yaml:"hint_cost"`
	ParSeconds         int `yaml:"par_seconds"`
	TimeBonusPerSecond int `yaml:"time_bonus_per_second"`
}

// ErrInvalidConfig is wrapped by every Validate failure.
var ErrInvalidConfig = errors.New("config: invalid linkup config")

// Validate checks that the configuration describes a playable board.
func (c LinkupConfig) Validate() error {
	b := c.Board
	switch {
	case b.Rows <= 0 || b.Cols <= 0:
		return fmt.Errorf("%w: board %dx%d must be positive", ErrInvalidConfig, b.Rows, b.Cols)
	case (b.Rows*b.Cols)%2 != 0:
		return fmt.Errorf("%w: board %dx%d has an odd number of cells", ErrInvalidConfig, b.Rows, b.Cols)
	case b.TileTypes < 1 || b.TileTypes > MaxTileTypes:
		return fmt.Errorf("%w: tile_types %d not in 1..%d", ErrInvalidConfig, b.TileTypes, MaxTileTypes)
	case c.Search.TurnPenalty < 0:
		return fmt.Errorf("%w: turn_penalty %d is negative", ErrInvalidConfig, c.Search.TurnPenalty)
	case c.Search.MaxTurns < 0:
		return fmt.Errorf("%w: max_turns %d is negative", ErrInvalidConfig, c.Search.MaxTurns)
	}
	return nil
}

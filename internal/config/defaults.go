package config

import (
	_ "embed"
)

//go:embed defaults/linkup.yaml
var defaultLinkupYAML []byte

// DefaultLinkupConfig returns the built-in Linkup configuration.
func DefaultLinkupConfig() LinkupConfig {
	return LinkupConfig{
		Board: LinkupBoard{
			Rows:      12,
			Cols:      10,
			TileTypes: 9,
		},
		Search: LinkupSearch{
			TurnPenalty: 5,
			MaxTurns:    0,
		},
		Display: LinkupDisplay{
			LinkTicks: 30,  // half a second at 60fps
			HintTicks: 120, // two seconds at 60fps
		},
		Scoring: LinkupScoring{
			PairPoints:         10,
			HintCost:           5,
			ParSeconds:         300,
			TimeBonusPerSecond: 1,
		},
	}
}

// GetDefaultYAML returns the embedded default YAML for a game.
func GetDefaultYAML(gameID string) []byte {
	switch gameID {
	case "linkup":
		return defaultLinkupYAML
	default:
		return nil
	}
}

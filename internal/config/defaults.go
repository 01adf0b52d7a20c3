package config

import (
	_ "embed"
)

//go:embed defaults/isopuzzle.yaml
var defaultYAML []byte

// Default returns the hardcoded default configuration.
func Default() Config {
	return Config{
		Tile: TileConfig{
			Width:  64,
			Height: 32,
		},
		Motion: MotionConfig{
			Speed:      3.0,
			TickMillis: 16,
			Epsilon:    0.1,
		},
		Grid: GridConfig{
			DefaultWidth:  10,
			DefaultHeight: 10,
			Min:           5,
			Max:           20,
		},
		Storage: StorageConfig{
			Path: "~/.isopuzzle/levels.db",
		},
		Levels: LevelsConfig{
			Dir: "levels",
		},
	}
}

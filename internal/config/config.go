// Package config provides YAML-based configuration loading for isopuzzle.
package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/vovakirdan/isopuzzle/internal/iso"
	"github.com/vovakirdan/isopuzzle/internal/level"
	"github.com/vovakirdan/isopuzzle/internal/sim"
)

// Config contains all isopuzzle configuration.
type Config struct {
	Tile    TileConfig    `yaml:"tile"`
	Pick    PickConfig    `yaml:"pick"`
	Motion  MotionConfig  `yaml:"motion"`
	Grid    GridConfig    `yaml:"grid"`
	Storage StorageConfig `yaml:"storage"`
	Levels  LevelsConfig  `yaml:"levels"`
}

// TileConfig defines the isometric diamond size in world units.
type TileConfig struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// PickConfig defines pointer picking. A nil OffsetY means half a tile height.
type PickConfig struct {
	OffsetY *float64 `yaml:"offset_y"`
}

// MotionConfig defines player motion.
type MotionConfig struct {
	Speed      float64 `yaml:"speed"`       // tiles per second
	TickMillis int     `yaml:"tick_millis"` // fixed step
	Epsilon    float64 `yaml:"epsilon"`     // snap distance in tiles
}

// GridConfig defines editor grid sizing.
type GridConfig struct {
	DefaultWidth  int `yaml:"default_width"`
	DefaultHeight int `yaml:"default_height"`
	Min           int `yaml:"min"`
	Max           int `yaml:"max"`
}

// StorageConfig defines where the level store lives.
type StorageConfig struct {
	Path string `yaml:"path"`
}

// LevelsConfig defines where level files are read from.
type LevelsConfig struct {
	Dir string `yaml:"dir"`
}

// Mapper builds the coordinate mapper described by the tile and pick settings.
func (c Config) Mapper() iso.Mapper {
	m := iso.NewMapper(c.Tile.Width, c.Tile.Height)
	if c.Pick.OffsetY != nil {
		m = m.WithPickOffset(*c.Pick.OffsetY)
	}
	return m
}

// SimMotion converts the motion settings for the simulator.
func (c Config) SimMotion() sim.MotionConfig {
	return sim.MotionConfig{
		Speed:        c.Motion.Speed,
		TickInterval: time.Duration(c.Motion.TickMillis) * time.Millisecond,
		Epsilon:      c.Motion.Epsilon,
	}
}

// Validate checks that the configuration is usable.
func (c Config) Validate() error {
	var errs []error
	if c.Tile.Width <= 0 || c.Tile.Height <= 0 {
		errs = append(errs, fmt.Errorf("tile size must be positive, got %vx%v", c.Tile.Width, c.Tile.Height))
	}
	if c.Motion.Speed <= 0 {
		errs = append(errs, fmt.Errorf("motion.speed must be positive, got %v", c.Motion.Speed))
	}
	if c.Motion.TickMillis <= 0 {
		errs = append(errs, fmt.Errorf("motion.tick_millis must be positive, got %d", c.Motion.TickMillis))
	}
	if c.Motion.Epsilon <= 0 || c.Motion.Epsilon >= 0.5 {
		errs = append(errs, fmt.Errorf("motion.epsilon must be in (0, 0.5), got %v", c.Motion.Epsilon))
	}
	g := c.Grid
	if g.Min < 1 || g.Max > level.MaxSize || g.Min > g.Max {
		errs = append(errs, fmt.Errorf("grid bounds [%d,%d] must lie within [1,%d]", g.Min, g.Max, level.MaxSize))
	}
	if g.DefaultWidth < g.Min || g.DefaultWidth > g.Max || g.DefaultHeight < g.Min || g.DefaultHeight > g.Max {
		errs = append(errs, fmt.Errorf("default grid %dx%d outside [%d,%d]", g.DefaultWidth, g.DefaultHeight, g.Min, g.Max))
	}
	return errors.Join(errs...)
}

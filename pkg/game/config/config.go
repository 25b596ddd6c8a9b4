// Package config loads and validates the game configuration.
package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"mazerunner/pkg/engine/world"
	"mazerunner/pkg/game/generator"
)

// Config is the full game configuration
type Config struct {
	Board     BoardConfig   `yaml:"board"`
	Generator string        `yaml:"generator"` // "blocks" or "bsp"
	Seed      int64         `yaml:"seed"`      // 0 means time based
	Display   DisplayConfig `yaml:"display"`
	Log       LogConfig     `yaml:"log"`
}

// BoardConfig holds the board and room layout constants
type BoardConfig struct {
	Size          int `yaml:"size"`
	BlocksPerSide int `yaml:"blocksPerSide"`
	BlockSize     int `yaml:"blockSize"`
	BlockOffset   int `yaml:"blockOffset"`
	RoomMin       int `yaml:"roomMin"`
	RoomMax       int `yaml:"roomMax"`
}

// DisplayConfig holds renderer settings
type DisplayConfig struct {
	Renderer      string `yaml:"renderer"` // "ebiten" or "tui"
	ScreenWidth   int    `yaml:"screenWidth"`
	MenuHeight    int    `yaml:"menuHeight"`
	Viewports     []int  `yaml:"viewports"`     // selectable viewport sizes in tiles
	ViewportIndex int    `yaml:"viewportIndex"` // initial entry of Viewports
	Language      string `yaml:"language"`
}

// LogConfig holds logging settings
type LogConfig struct {
	Level string `yaml:"level"`
}

// Default returns the configuration of the classic 61x61 maze
func Default() *Config {
	p := generator.DefaultParams()
	return &Config{
		Board: BoardConfig{
			Size:          61,
			BlocksPerSide: p.BlocksPerSide,
			BlockSize:     p.BlockSize,
			BlockOffset:   p.BlockOffset,
			RoomMin:       p.RoomMin,
			RoomMax:       p.RoomMax,
		},
		Generator: generator.BlocksName,
		Display: DisplayConfig{
			Renderer:      "ebiten",
			ScreenWidth:   900,
			MenuHeight:    125,
			Viewports:     []int{5, 9, 15, 25, 45},
			ViewportIndex: 1,
			Language:      "en",
		},
		Log: LogConfig{Level: "info"},
	}
}

// Load reads a YAML file over the defaults. An empty path returns the defaults.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	return cfg, nil
}

// Params returns the generator parameters for the board
func (b BoardConfig) Params() generator.Params {
	return generator.Params{
		BlocksPerSide: b.BlocksPerSide,
		BlockSize:     b.BlockSize,
		BlockOffset:   b.BlockOffset,
		RoomMin:       b.RoomMin,
		RoomMax:       b.RoomMax,
	}
}

// Validate checks that the configuration can produce a playable level
func (c *Config) Validate() error {
	var errs []error
	invalid := func(format string, a ...any) {
		errs = append(errs, fmt.Errorf("%w: "+format, append([]any{world.ErrInvalidConfiguration}, a...)...))
	}

	b := c.Board
	if b.Size <= 0 {
		invalid("board size must be positive, got %d", b.Size)
	}
	if b.RoomMin <= 0 || b.RoomMax < b.RoomMin {
		invalid("room size range [%d, %d]", b.RoomMin, b.RoomMax)
	}

	switch c.Generator {
	case generator.BlocksName, "":
		if b.BlocksPerSide*b.BlocksPerSide < 3 {
			invalid("%d blocks per side gives fewer than 3 rooms", b.BlocksPerSide)
		}
		if b.BlockSize <= 0 || b.BlockOffset < 0 {
			invalid("block size %d, offset %d", b.BlockSize, b.BlockOffset)
		}
		if far := (b.BlocksPerSide-1)*b.BlockSize + b.BlockOffset + b.RoomMax; far > b.Size {
			invalid("largest room in the last block ends at %d, beyond board size %d", far, b.Size)
		}
	case generator.BSPName:
	default:
		invalid("unknown generator %q", c.Generator)
	}

	d := c.Display
	switch d.Renderer {
	case "ebiten", "tui":
	default:
		invalid("unknown renderer %q", d.Renderer)
	}
	if len(d.Viewports) == 0 {
		invalid("no viewport sizes")
	}
	for _, v := range d.Viewports {
		if v <= 0 || v%2 == 0 || v > b.Size {
			invalid("viewport size %d must be odd and within the board", v)
		}
	}
	if d.ViewportIndex < 0 || d.ViewportIndex >= len(d.Viewports) {
		invalid("viewport index %d out of range", d.ViewportIndex)
	}
	if d.ScreenWidth <= 0 || d.MenuHeight < 0 {
		invalid("screen %dx%d", d.ScreenWidth, d.MenuHeight)
	}

	return errors.Join(errs...)
}

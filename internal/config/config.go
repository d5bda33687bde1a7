// Package config provides YAML-based game configuration loading for the
// snake platform.
package config

import (
	"errors"
	"fmt"
)

// minBoardWidth matches the engine's smallest playable board.
const minBoardWidth = 3

// SnakeConfig contains all configuration for the Snake game.
type SnakeConfig struct {
	Board  SnakeBoard  `yaml:"board"`
	Timing SnakeTiming `yaml:"timing"`
}

// SnakeBoard defines the grid.
type SnakeBoard struct {
	Width      int `yaml:"width"`
	SpawnIndex int `yaml:"spawn_index"` // 0 = random
}

// SnakeTiming defines how often the snake moves.
type SnakeTiming struct {
	MoveEveryTicks int `yaml:"move_every_ticks"`
}

// ErrInvalidConfig is returned by Validate for out-of-range values.
var ErrInvalidConfig = errors.New("invalid snake config")

// Validate checks that the config describes a playable board.
func (c SnakeConfig) Validate() error {
	if c.Board.Width < minBoardWidth {
		return fmt.Errorf("%w: board.width %d below %d", ErrInvalidConfig, c.Board.Width, minBoardWidth)
	}
	size := c.Board.Width * c.Board.Width
	if c.Board.SpawnIndex != 0 && (c.Board.SpawnIndex < 2 || c.Board.SpawnIndex >= size) {
		return fmt.Errorf("%w: board.spawn_index %d outside [2, %d)", ErrInvalidConfig, c.Board.SpawnIndex, size)
	}
	if c.Timing.MoveEveryTicks < 1 {
		return fmt.Errorf("%w: timing.move_every_ticks must be positive, got %d", ErrInvalidConfig, c.Timing.MoveEveryTicks)
	}
	return nil
}

package game

import (
	"errors"
	"fmt"
	"strconv"
	"time"
)

const (
	GameTickDuration = 100 * time.Millisecond
	StepSize         = 10
	SegmentWidth     = 10
	StartSegments    = 3

	DefaultBoardWidth  = 390
	DefaultBoardHeight = 190
	DefaultStartX      = 50
	DefaultStartY      = 50
)

var ErrInvalidConfig = errors.New("invalid config")

type Config struct {
	Width          int
	Height         int
	TickInterval   time.Duration
	StartX         int
	StartY         int
	StartDirection Direction
}

func DefaultConfig() Config {
	return Config{
		Width:          DefaultBoardWidth,
		Height:         DefaultBoardHeight,
		TickInterval:   GameTickDuration,
		StartX:         DefaultStartX,
		StartY:         DefaultStartY,
		StartDirection: Right,
	}
}

// Validate rejects boards the engine cannot play on: too small for a fresh
// snake, off the movement grid, or a start cell outside the board.
func (c Config) Validate() error {
	minSide := StepSize * StartSegments
	if c.Width < minSide || c.Height < minSide {
		return fmt.Errorf("%w: board %dx%d is smaller than %d", ErrInvalidConfig, c.Width, c.Height, minSide)
	}
	if c.Width%StepSize != 0 || c.Height%StepSize != 0 {
		return fmt.Errorf("%w: board %dx%d is not a multiple of %d", ErrInvalidConfig, c.Width, c.Height, StepSize)
	}
	if c.StartX < 0 || c.StartX > c.Width || c.StartY < 0 || c.StartY > c.Height {
		return fmt.Errorf("%w: start (%d,%d) is outside the board", ErrInvalidConfig, c.StartX, c.StartY)
	}
	if c.TickInterval <= 0 {
		return fmt.Errorf("%w: tick interval %s", ErrInvalidConfig, c.TickInterval)
	}
	return nil
}

// ConfigFromEnv overlays SNAKE_WIDTH, SNAKE_HEIGHT and SNAKE_TICK_MS on the
// defaults. getenv is os.Getenv outside of tests.
func ConfigFromEnv(getenv func(string) string) (Config, error) {
	cfg := DefaultConfig()

	overrides := []struct {
		key    string
		target *int
	}{
		{"SNAKE_WIDTH", &cfg.Width},
		{"SNAKE_HEIGHT", &cfg.Height},
	}
	for _, override := range overrides {
		raw := getenv(override.key)
		if raw == "" {
			continue
		}
		value, err := strconv.Atoi(raw)
		if err != nil {
			return cfg, fmt.Errorf("%w: %s=%q: %v", ErrInvalidConfig, override.key, raw, err)
		}
		*override.target = value
	}

	if raw := getenv("SNAKE_TICK_MS"); raw != "" {
		ms, err := strconv.Atoi(raw)
		if err != nil {
			return cfg, fmt.Errorf("%w: SNAKE_TICK_MS=%q: %v", ErrInvalidConfig, raw, err)
		}
		cfg.TickInterval = time.Duration(ms) * time.Millisecond
	}

	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

package app

import (
	"errors"
	"fmt"
	"time"

	"sortviz/sorting"
)

const maxDimension = 4096

var (
	ErrInvalidWidth  = errors.New("invalid width value")
	ErrInvalidHeight = errors.New("invalid height value")
	ErrInvalidScale  = errors.New("invalid scale value")
	ErrInvalidDelay  = errors.New("invalid delay value")
	ErrInvalidHz     = errors.New("invalid hz value")
	ErrInvalidBatch  = errors.New("invalid batch value")
)

// Config is everything a run needs. Width is the sequence length; values
// are drawn from [1, Height-1] so every bar fits on screen.
type Config struct {
	Width     int               `yaml:"width"`
	Height    int               `yaml:"height"`
	Scale     float64           `yaml:"scale"`
	Delay     int               `yaml:"delay"` // milliseconds per step
	Algorithm sorting.Algorithm `yaml:"algorithm"`

	Headless bool   `yaml:"headless"`
	Hz       int    `yaml:"hz"`
	Batch    int    `yaml:"batch"` // steps per frame when Delay is 0
	HUD      bool   `yaml:"hud"`
	Seed     uint64 `yaml:"seed"` // 0 derives a seed from the clock
}

// DefaultConfig matches the classic sort-visualizer defaults.
func DefaultConfig() Config {
	return Config{
		Width:     200,
		Height:    150,
		Scale:     5,
		Delay:     0,
		Algorithm: sorting.ExchangeSort,
		Hz:        60,
		Batch:     16,
	}
}

// Validate reports the first invalid field. It runs before anything is
// allocated.
func (c Config) Validate() error {
	switch {
	case c.Width < 1 || c.Width > maxDimension:
		return fmt.Errorf("%w: %d (want 1..%d)", ErrInvalidWidth, c.Width, maxDimension)
	case c.Height < 2 || c.Height > maxDimension:
		return fmt.Errorf("%w: %d (want 2..%d)", ErrInvalidHeight, c.Height, maxDimension)
	case !(c.Scale > 0):
		return fmt.Errorf("%w: %g", ErrInvalidScale, c.Scale)
	case c.Delay < 0:
		return fmt.Errorf("%w: %d", ErrInvalidDelay, c.Delay)
	case c.Hz < 1:
		return fmt.Errorf("%w: %d", ErrInvalidHz, c.Hz)
	case c.Batch < 1:
		return fmt.Errorf("%w: %d", ErrInvalidBatch, c.Batch)
	}
	if _, err := c.Algorithm.MarshalText(); err != nil {
		return err
	}
	return nil
}

// Bound is the largest value placed in the sequence.
func (c Config) Bound() int { return c.Height - 1 }

func (c Config) DelayDuration() time.Duration {
	return time.Duration(c.Delay) * time.Millisecond
}

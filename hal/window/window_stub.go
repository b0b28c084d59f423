//go:build !cgo

package window

import (
	"errors"

	"sortviz/hal"
)

// Run always fails: ebiten needs cgo on desktop platforms.
func Run(_ hal.WindowConfig, _ func(hal.HAL) func() error) error {
	return errors.New("window mode requires cgo (build/run with CGO_ENABLED=1), or use --headless")
}

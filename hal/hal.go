package hal

import "errors"

// ErrQuit is returned by an app step to end the run loop cleanly.
var ErrQuit = errors.New("quit")

// PixelFormat defines the framebuffer pixel encoding.
type PixelFormat uint8

const (
	// PixelFormatRGB565 is 16bpp: rrrrrggggggbbbbb.
	PixelFormatRGB565 PixelFormat = iota + 1
)

// Framebuffer is a simple pixel buffer plus a "present" hook.
//
// Writers must hold the framebuffer between Lock and Unlock while touching
// Buffer(); the window backend snapshots it concurrently with Draw.
type Framebuffer interface {
	Width() int
	Height() int
	Format() PixelFormat
	StrideBytes() int
	Buffer() []byte
	ClearRGB(r, g, b uint8)
	Lock()
	Unlock()
	Present() error
}

// KeyCode is a minimal key identifier.
type KeyCode uint16

const (
	KeyUnknown KeyCode = iota
	KeyEnter
	KeyEscape
	KeySpace
	KeyTab
)

// KeyEvent is a keyboard event.
type KeyEvent struct {
	Code  KeyCode
	Press bool
	Rune  rune
}

// Keyboard provides key events (best-effort on each platform).
type Keyboard interface {
	Events() <-chan KeyEvent
}

// Display provides access to the framebuffer (if available).
type Display interface {
	Framebuffer() Framebuffer
}

// Input provides access to input devices (if available).
type Input interface {
	Keyboard() Keyboard
}

// WindowConfig controls a desktop window backend.
type WindowConfig struct {
	Title  string
	Width  int
	Height int
	Scale  float64
	TPS    int
}

// WindowRunner opens a window over a fresh Host and calls the app step once
// per frame until the window closes or the step returns ErrQuit.
type WindowRunner func(cfg WindowConfig, newApp func(HAL) func() error) error

// HAL provides the only contact point between the visualizer and the outside world.
type HAL interface {
	Display() Display
	Input() Input
}

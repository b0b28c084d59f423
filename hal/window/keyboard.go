//go:build cgo

package window

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"sortviz/hal"
)

var keys = []struct {
	key  ebiten.Key
	code hal.KeyCode
}{
	{ebiten.KeyEnter, hal.KeyEnter},
	{ebiten.KeyEscape, hal.KeyEscape},
	{ebiten.KeySpace, hal.KeySpace},
	{ebiten.KeyTab, hal.KeyTab},
}

func pollKeys(h *hal.Host) {
	for _, k := range keys {
		if inpututil.IsKeyJustPressed(k.key) {
			h.PushKey(hal.KeyEvent{Code: k.code, Press: true})
		}
		if inpututil.IsKeyJustReleased(k.key) {
			h.PushKey(hal.KeyEvent{Code: k.code, Press: false})
		}
	}

	for _, r := range ebiten.AppendInputChars(nil) {
		if r == ' ' {
			continue
		}
		h.PushKey(hal.KeyEvent{Press: true, Rune: r})
	}
}

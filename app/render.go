package app

import (
	"image/color"

	"sortviz/hal"

	"tinygo.org/x/drivers"
	"tinygo.org/x/tinyfont"
	"tinygo.org/x/tinyfont/proggy"
)

var (
	colorBG        = color.RGBA{R: 0x00, G: 0x00, B: 0x00, A: 0xff}
	colorBar       = color.RGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}
	colorPrimary   = color.RGBA{R: 0x00, G: 0xff, B: 0x00, A: 0xff}
	colorSecondary = color.RGBA{R: 0xff, G: 0x00, B: 0x00, A: 0xff}
	colorHUDBG     = color.RGBA{R: 0x18, G: 0x18, B: 0x18, A: 0xff}
	colorHUDFG     = color.RGBA{R: 0xff, G: 0xdd, B: 0x66, A: 0xff}
)

const hudHeight = 10

var hudFont tinyfont.Fonter = &proggy.TinySZ8pt7b

// fbDisplay exposes an RGB565 framebuffer as a tinygo display so tinyfont
// can draw on it.
type fbDisplay struct {
	fb hal.Framebuffer
}

var _ drivers.Displayer = (*fbDisplay)(nil)

func newFBDisplay(fb hal.Framebuffer) *fbDisplay {
	return &fbDisplay{fb: fb}
}

func (d *fbDisplay) Size() (x, y int16) {
	if d.fb == nil {
		return 0, 0
	}
	return int16(d.fb.Width()), int16(d.fb.Height())
}

func (d *fbDisplay) SetPixel(x, y int16, c color.RGBA) {
	if d.fb == nil || d.fb.Format() != hal.PixelFormatRGB565 {
		return
	}
	buf := d.fb.Buffer()
	ix := int(x)
	iy := int(y)
	if ix < 0 || ix >= d.fb.Width() || iy < 0 || iy >= d.fb.Height() {
		return
	}

	pixel := hal.RGB565(c.R, c.G, c.B)
	off := iy*d.fb.StrideBytes() + ix*2
	if off < 0 || off+1 >= len(buf) {
		return
	}
	buf[off] = byte(pixel)
	buf[off+1] = byte(pixel >> 8)
}

func (d *fbDisplay) Display() error {
	if d.fb == nil {
		return nil
	}
	return d.fb.Present()
}

func (d *fbDisplay) FillRectangle(x, y, width, height int, c color.RGBA) {
	if d.fb == nil || d.fb.Format() != hal.PixelFormatRGB565 {
		return
	}
	buf := d.fb.Buffer()
	w := d.fb.Width()
	h := d.fb.Height()

	x0 := clampInt(x, 0, w)
	y0 := clampInt(y, 0, h)
	x1 := clampInt(x+width, 0, w)
	y1 := clampInt(y+height, 0, h)
	if x0 >= x1 || y0 >= y1 {
		return
	}

	pixel := hal.RGB565(c.R, c.G, c.B)
	lo := byte(pixel)
	hi := byte(pixel >> 8)

	stride := d.fb.StrideBytes()
	for py := y0; py < y1; py++ {
		row := py * stride
		for px := x0; px < x1; px++ {
			off := row + px*2
			buf[off] = lo
			buf[off+1] = hi
		}
	}
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// drawFrame paints one bar per value: column i runs from the bottom row up
// to height-value. The caller holds the framebuffer lock.
func drawFrame(d *fbDisplay, f Frame) {
	d.fb.ClearRGB(colorBG.R, colorBG.G, colorBG.B)

	h := d.fb.Height()
	for i, v := range f.Values {
		c := colorBar
		switch i {
		case f.Primary:
			c = colorPrimary
		case f.Secondary:
			c = colorSecondary
		}
		d.FillRectangle(i, h-v, 1, v, c)
	}
}

func drawHUD(d *fbDisplay, text string) {
	w, _ := d.Size()
	d.FillRectangle(0, 0, int(w), hudHeight, colorHUDBG)
	tinyfont.WriteLine(d, hudFont, 1, hudHeight-2, text, colorHUDFG)
}

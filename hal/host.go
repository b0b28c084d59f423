package hal

// Host is the desktop HAL: an in-memory framebuffer and a key event queue.
// Backends (window, headless) own one and drive it.
type Host struct {
	fb  *hostFramebuffer
	kbd *hostKeyboard
}

// New returns a host HAL with a width x height framebuffer.
func New(width, height int) HAL {
	return NewHost(width, height)
}

func NewHost(width, height int) *Host {
	return &Host{
		fb:  newHostFramebuffer(width, height),
		kbd: &hostKeyboard{ch: make(chan KeyEvent, 64)},
	}
}

func (h *Host) Display() Display { return hostDisplay{fb: h.fb} }
func (h *Host) Input() Input     { return hostInput{kbd: h.kbd} }

// Size returns the framebuffer dimensions.
func (h *Host) Size() (width, height int) { return h.fb.width, h.fb.height }

// SnapshotRGBA copies the framebuffer into dst as 8-bit RGBA.
// scratch must be at least width*height*2 bytes.
func (h *Host) SnapshotRGBA(dst, scratch []byte) {
	h.fb.snapshotRGB565(scratch)
	toRGBA(dst, scratch)
}

// PushKey queues a key event, dropping it if the queue is full.
func (h *Host) PushKey(ev KeyEvent) {
	select {
	case h.kbd.ch <- ev:
	default:
	}
}

type hostDisplay struct {
	fb *hostFramebuffer
}

func (d hostDisplay) Framebuffer() Framebuffer { return d.fb }

type hostInput struct {
	kbd *hostKeyboard
}

func (in hostInput) Keyboard() Keyboard { return in.kbd }

type hostKeyboard struct {
	ch chan KeyEvent
}

func (k *hostKeyboard) Events() <-chan KeyEvent { return k.ch }

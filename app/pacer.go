package app

import "time"

// pacer turns wall-clock time into a per-frame step budget. With a delay it
// accumulates elapsed time and releases one step per delay; without one it
// releases a fixed batch every frame.
type pacer struct {
	delay time.Duration
	batch int

	last time.Time
	acc  time.Duration
}

func (p *pacer) budget(now time.Time) int {
	if p.delay <= 0 {
		return p.batch
	}
	if p.last.IsZero() {
		p.last = now
		p.acc = 0
		return 1
	}

	p.acc += now.Sub(p.last)
	p.last = now

	n := int(p.acc / p.delay)
	if n == 0 {
		return 0
	}
	p.acc = p.acc % p.delay
	return n
}

func (p *pacer) reset() {
	p.last = time.Time{}
	p.acc = 0
}

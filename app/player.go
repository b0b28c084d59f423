package app

import (
	"context"
	"time"

	"sortviz/sorting"
)

// Frame is what the renderer draws: a copy of the sequence as of the last
// consumed step and the two highlighted indices.
type Frame struct {
	Values    []int
	Primary   int
	Secondary int
}

// Result describes a finished sort.
type Result struct {
	Values  []int
	Steps   int
	Elapsed time.Duration
}

// PlayerOptions tune pacing.
type PlayerOptions struct {
	Delay time.Duration
	Batch int
	Now   func() time.Time
}

// Player runs a sort on its own goroutine and releases it one step at a
// time from the render loop. The sorting goroutine is parked inside Notify
// until Update has copied the frame, so the buffer is never read while it is
// being mutated.
type Player struct {
	alg sorting.Algorithm
	buf *sorting.Buffer
	now func() time.Time

	pace pacer

	handoff chan sorting.Step
	resume  chan struct{}
	done    chan error
	elapsed time.Duration

	frame    Frame
	steps    int
	paused   bool
	started  bool
	finished bool
	err      error
}

// NewPlayer prepares alg over buf. buf must not be touched by anyone else
// until the player is done.
func NewPlayer(alg sorting.Algorithm, buf *sorting.Buffer, opts PlayerOptions) *Player {
	if opts.Now == nil {
		opts.Now = time.Now
	}
	if opts.Batch <= 0 {
		opts.Batch = 1
	}
	return &Player{
		alg:     alg,
		buf:     buf,
		now:     opts.Now,
		pace:    pacer{delay: opts.Delay, batch: opts.Batch},
		handoff: make(chan sorting.Step),
		resume:  make(chan struct{}, 1),
		done:    make(chan error, 1),
		frame: Frame{
			Values:    buf.Values(),
			Primary:   sorting.NoIndex,
			Secondary: sorting.NoIndex,
		},
	}
}

// Start launches the sort. Cancelling ctx aborts it at the next step.
func (p *Player) Start(ctx context.Context) {
	if p.started {
		return
	}
	p.started = true

	go func() {
		start := p.now()
		err := sorting.Sort(p.alg, p.buf, sorting.SinkFunc(func(s sorting.Step) error {
			return p.notify(ctx, s)
		}))
		p.elapsed = p.now().Sub(start)
		p.done <- err
	}()
}

func (p *Player) notify(ctx context.Context, s sorting.Step) error {
	select {
	case p.handoff <- s:
	case <-ctx.Done():
		return ctx.Err()
	}
	select {
	case <-p.resume:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Update consumes as many steps as the pacer allows for this frame.
func (p *Player) Update() {
	if p.finished || p.paused {
		return
	}
	p.advance(p.pace.budget(p.now()))
}

// StepOnce consumes exactly one step, e.g. while paused.
func (p *Player) StepOnce() {
	if p.finished {
		return
	}
	p.advance(1)
}

func (p *Player) advance(n int) {
	for i := 0; i < n; i++ {
		select {
		case s := <-p.handoff:
			p.capture(s)
			p.resume <- struct{}{}
		case err := <-p.done:
			p.finish(err)
			return
		}
	}
}

func (p *Player) capture(s sorting.Step) {
	if len(p.frame.Values) != s.View.Len() {
		p.frame.Values = make([]int, s.View.Len())
	}
	for i := range p.frame.Values {
		p.frame.Values[i] = s.View.Get(i)
	}
	p.frame.Primary = s.Primary
	p.frame.Secondary = s.Secondary
	p.steps++
}

func (p *Player) finish(err error) {
	p.finished = true
	p.err = err
	p.frame.Values = p.buf.Values()
	p.frame.Primary = sorting.NoIndex
	p.frame.Secondary = sorting.NoIndex
}

// TogglePause stops or resumes paced updates.
func (p *Player) TogglePause() {
	p.paused = !p.paused
	if !p.paused {
		p.pace.reset()
	}
}

func (p *Player) Paused() bool { return p.paused }
func (p *Player) Done() bool   { return p.finished }
func (p *Player) Steps() int   { return p.steps }
func (p *Player) Frame() Frame { return p.frame }

// Result is valid once Done reports true. The error is non-nil only when the
// sort was aborted.
func (p *Player) Result() (Result, error) {
	return Result{Values: p.buf.Values(), Steps: p.steps, Elapsed: p.elapsed}, p.err
}

// Wait blocks until the sorting goroutine has exited. Call it after the
// context passed to Start is cancelled or the player is done.
func (p *Player) Wait() error {
	if !p.started || p.finished {
		return p.err
	}
	p.finish(<-p.done)
	return p.err
}

package sorting

// NoIndex marks a step position with nothing to highlight, e.g. the
// partition boundary before any element has been moved below the pivot.
const NoIndex = -1

// Step is one observable moment of a sort. View aliases the live buffer and
// is only valid for the duration of the Notify call.
type Step struct {
	View      View
	Primary   int
	Secondary int
}

// Snapshot copies the step so it can outlive the Notify call.
func (s Step) Snapshot() Snapshot {
	vals := make([]int, s.View.Len())
	for i := range vals {
		vals[i] = s.View.Get(i)
	}
	return Snapshot{Values: vals, Primary: s.Primary, Secondary: s.Secondary}
}

// Snapshot is an owned copy of a Step.
type Snapshot struct {
	Values    []int
	Primary   int
	Secondary int
}

func (s Snapshot) String() string {
	return format(s.Values)
}

// Sink receives steps synchronously, after the mutation they describe has
// been applied. A non-nil error stops the sort; the algorithm returns it
// as is and emits nothing further.
type Sink interface {
	Notify(Step) error
}

// SinkFunc adapts a function to Sink.
type SinkFunc func(Step) error

func (f SinkFunc) Notify(s Step) error { return f(s) }

// Nop discards every step.
type Nop struct{}

func (Nop) Notify(Step) error { return nil }

// Counter counts steps.
type Counter struct {
	N int
}

func (c *Counter) Notify(Step) error {
	c.N++
	return nil
}

// Recorder keeps a copy of every step in order.
type Recorder struct {
	Steps []Snapshot
}

func (r *Recorder) Notify(s Step) error {
	r.Steps = append(r.Steps, s.Snapshot())
	return nil
}

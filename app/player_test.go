package app

import (
	"context"
	"slices"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sortviz/sorting"
)

type fakeClock struct {
	mu  sync.Mutex
	now time.Time
}

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *fakeClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(d)
}

func recordFrames(t *testing.T, p *Player) []sorting.Snapshot {
	t.Helper()
	var got []sorting.Snapshot
	for i := 0; !p.Done(); i++ {
		require.Less(t, i, 10_000, "player did not finish")
		before := p.Steps()
		p.Update()
		if p.Steps() != before {
			f := p.Frame()
			got = append(got, sorting.Snapshot{
				Values:    slices.Clone(f.Values),
				Primary:   f.Primary,
				Secondary: f.Secondary,
			})
		}
	}
	return got
}

func TestPlayerDeliversEveryStep(t *testing.T) {
	for _, alg := range sorting.Algorithms {
		t.Run(alg.Short(), func(t *testing.T) {
			in := []int{5, 3, 4, 1, 2}

			var want sorting.Recorder
			require.NoError(t, sorting.Sort(alg, sorting.BufferOf(in...), &want))

			p := NewPlayer(alg, sorting.BufferOf(in...), PlayerOptions{Batch: 1})
			assert.Equal(t, in, p.Frame().Values)
			assert.Equal(t, sorting.NoIndex, p.Frame().Primary)

			p.Start(context.Background())
			got := recordFrames(t, p)
			assert.Equal(t, want.Steps, got)

			res, err := p.Result()
			require.NoError(t, err)
			assert.Equal(t, []int{1, 2, 3, 4, 5}, res.Values)
			assert.Equal(t, len(want.Steps), res.Steps)
			assert.Equal(t, sorting.NoIndex, p.Frame().Secondary)
			assert.NoError(t, p.Wait())
		})
	}
}

func TestPlayerBatch(t *testing.T) {
	p := NewPlayer(sorting.ExchangeSort, sorting.BufferOf(4, 3, 2, 1), PlayerOptions{Batch: 4})
	p.Start(context.Background())

	p.Update()
	assert.Equal(t, 4, p.Steps())
	p.Update()
	assert.Equal(t, 8, p.Steps())
	p.Update()
	assert.Equal(t, 10, p.Steps())
	assert.True(t, p.Done())
}

func TestPlayerDelay(t *testing.T) {
	clock := &fakeClock{now: time.Unix(100, 0)}
	p := NewPlayer(sorting.ExchangeSort, sorting.BufferOf(4, 3, 2, 1), PlayerOptions{
		Delay: 10 * time.Millisecond,
		Now:   clock.Now,
	})
	p.Start(context.Background())

	p.Update()
	assert.Equal(t, 1, p.Steps())

	clock.Advance(5 * time.Millisecond)
	p.Update()
	assert.Equal(t, 1, p.Steps())

	clock.Advance(25 * time.Millisecond)
	p.Update()
	assert.Equal(t, 4, p.Steps())
}

func TestPlayerPause(t *testing.T) {
	p := NewPlayer(sorting.PartitionSort, sorting.BufferOf(5, 3, 4, 1, 2), PlayerOptions{Batch: 1})
	p.Start(context.Background())

	p.TogglePause()
	require.True(t, p.Paused())
	p.Update()
	assert.Equal(t, 0, p.Steps())

	p.StepOnce()
	assert.Equal(t, 1, p.Steps())
	assert.Equal(t, sorting.NoIndex, p.Frame().Primary)
	assert.Equal(t, 0, p.Frame().Secondary)

	p.TogglePause()
	p.Update()
	assert.Equal(t, 2, p.Steps())
}

func TestPlayerCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	buf := sorting.BufferOf(9, 8, 7, 6, 5, 4, 3, 2, 1)
	p := NewPlayer(sorting.ExchangeSort, buf, PlayerOptions{Batch: 3})
	p.Start(ctx)

	p.Update()
	require.Equal(t, 3, p.Steps())

	cancel()
	assert.ErrorIs(t, p.Wait(), context.Canceled)
	assert.True(t, p.Done())

	res, err := p.Result()
	assert.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, 3, res.Steps)
	assert.False(t, sorting.BufferOf(res.Values...).IsSorted())
}

func TestPlayerElapsed(t *testing.T) {
	clock := &fakeClock{now: time.Unix(0, 0)}
	p := NewPlayer(sorting.ExchangeSort, sorting.BufferOf(2, 1), PlayerOptions{Batch: 1, Now: clock.Now})
	p.Start(context.Background())

	p.Update()
	clock.Advance(2 * time.Second)
	for !p.Done() {
		p.Update()
	}

	res, err := p.Result()
	require.NoError(t, err)
	assert.Equal(t, 2*time.Second, res.Elapsed)
}

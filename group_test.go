package tasked

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGroup_WaitJoinsAll(t *testing.T) {
	g := NewGroup(context.Background())

	var counter atomic.Int32
	for j := 0; j < 10; j++ {
		g.Go("inc", func(ctx context.Context) error {
			counter.Add(1)
			return nil
		})
	}

	require.NoError(t, g.Wait())
	assert.Equal(t, int32(10), counter.Load())
}

func TestGroup_FailFast(t *testing.T) {
	g := NewGroup(context.Background())

	boom := errors.New("boom")
	g.Go("failing", func(ctx context.Context) error {
		return boom
	})
	g.Go("sibling", func(ctx context.Context) error {
		<-ctx.Done()
		return nil
	})

	err := g.Wait()
	require.Error(t, err)
	assert.ErrorIs(t, err, boom)

	info, ok := TaskOf(err)
	require.True(t, ok)
	assert.Equal(t, "failing", info.Name)
}

func TestGroup_Collect(t *testing.T) {
	g := NewGroup(context.Background(), WithPolicy(Collect))

	for j := 0; j < 3; j++ {
		g.Go("failing", func(ctx context.Context) error {
			return errors.New("fail")
		})
	}
	g.Go("succeeding", func(ctx context.Context) error {
		return nil
	})

	err := g.Wait()
	require.Error(t, err)
	assert.Len(t, AllJoinErrors(err), 3)
}

func TestGroup_WithLimit(t *testing.T) {
	g := NewGroup(context.Background(), WithLimit(2))

	var active, peak atomic.Int32
	for j := 0; j < 20; j++ {
		g.Go("limited", func(ctx context.Context) error {
			n := active.Add(1)
			for {
				p := peak.Load()
				if n <= p || peak.CompareAndSwap(p, n) {
					break
				}
			}
			time.Sleep(time.Millisecond)
			active.Add(-1)
			return nil
		})
	}

	require.NoError(t, g.Wait())
	assert.LessOrEqual(t, peak.Load(), int32(2))
}

func TestGroup_PanicRepanicsInWait(t *testing.T) {
	g := NewGroup(context.Background())
	g.Go("panicky", func(ctx context.Context) error {
		panic("kaboom")
	})

	defer func() {
		r := recover()
		require.NotNil(t, r)
		pe, ok := r.(*PanicError)
		require.True(t, ok)
		assert.Equal(t, "kaboom", pe.Value)
	}()
	_ = g.Wait()
}

func TestGroup_PanicAsError(t *testing.T) {
	g := NewGroup(context.Background(), WithPanicAsError())
	g.Go("panicky", func(ctx context.Context) error {
		panic("kaboom")
	})

	err := g.Wait()
	require.Error(t, err)

	var pe *PanicError
	require.ErrorAs(t, err, &pe)
	assert.Equal(t, "kaboom", pe.Value)
}

func TestGroup_GoAfterWaitPanics(t *testing.T) {
	g := NewGroup(context.Background())
	require.NoError(t, g.Wait())

	assert.Panics(t, func() {
		g.Go("late", func(ctx context.Context) error { return nil })
	})
}

func TestGroup_Cancel(t *testing.T) {
	g := NewGroup(context.Background())

	cause := errors.New("shutting down")
	g.Go("waiter", func(ctx context.Context) error {
		<-ctx.Done()
		return nil
	})

	g.Cancel(cause)
	err := g.Wait()
	assert.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, cause, context.Cause(g.Context()))
}

func TestGroup_ParentCancellationSurfaces(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())

	g := NewGroup(ctx)
	g.Go("waiter", func(ctx context.Context) error {
		<-ctx.Done()
		return nil
	})

	cancel()
	err := g.Wait()
	assert.ErrorIs(t, err, context.Canceled)
}

func TestGroup_Hooks(t *testing.T) {
	var started, finished atomic.Int32

	g := NewGroup(context.Background(),
		WithOnStart(func(info TaskInfo) {
			assert.NotEmpty(t, info.Name)
			started.Add(1)
		}),
		WithOnDone(func(info TaskInfo, err error, d time.Duration) {
			assert.GreaterOrEqual(t, d, time.Duration(0))
			finished.Add(1)
		}),
	)

	for j := 0; j < 5; j++ {
		g.Go("hooked", func(ctx context.Context) error { return nil })
	}

	require.NoError(t, g.Wait())
	assert.Equal(t, int32(5), started.Load())
	assert.Equal(t, int32(5), finished.Load())
}

func TestGroup_Metrics(t *testing.T) {
	g := NewGroup(context.Background())

	g.Go("ok", func(ctx context.Context) error { return nil })
	g.Go("fail", func(ctx context.Context) error { return errors.New("fail") })

	_ = g.Wait()

	m := g.Metrics()
	assert.Equal(t, int64(2), m.Spawned)
	assert.Equal(t, int64(2), m.Completed)
	assert.Equal(t, int64(1), m.Errored)
	assert.Equal(t, int64(0), m.Active)
}

func TestGroup_WaitIdempotent(t *testing.T) {
	g := NewGroup(context.Background())
	g.Go("failing", func(ctx context.Context) error {
		return errors.New("fail")
	})

	first := g.Wait()
	second := g.Wait()
	require.Error(t, first)
	assert.Equal(t, first, second)
}

func TestGroup_InvalidOptionsPanic(t *testing.T) {
	assert.Panics(t, func() { NewGroup(context.Background(), WithPolicy(Policy(9))) })
	assert.Panics(t, func() { NewGroup(context.Background(), WithLimit(-1)) })
}

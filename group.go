package tasked

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"time"
)

// Group supervises a set of tasks as one unit. Tasks are spawned with
// [Group.Go] and joined collectively with [Group.Wait]; the group's
// context is cancelled when the group finishes or, under [FailFast],
// when the first task fails.
//
// A Group must be created via [NewGroup]. Calling Go after Wait has been
// called panics.
type Group struct {
	ctx    context.Context
	cancel context.CancelCauseFunc
	cfg    config

	wg   sync.WaitGroup
	sem  chan struct{} // nil unless WithLimit was given
	open atomic.Bool

	errMu    sync.Mutex
	errs     []error
	firstErr error
	errOnce  sync.Once

	panicMu sync.Mutex
	panics  []*PanicError

	waitOnce  sync.Once
	waitErr   error
	waitPanic *PanicError

	// Counters backing [Group.Metrics].
	spawned   atomic.Int64
	active    atomic.Int64
	completed atomic.Int64
	errored   atomic.Int64
}

// NewGroup creates a Group whose tasks receive a context derived from
// parent. The caller must finish the group with [Group.Wait].
func NewGroup(parent context.Context, opts ...Option) *Group {
	if parent == nil {
		parent = context.Background()
	}

	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	ctx, cancel := context.WithCancelCause(parent)
	g := &Group{
		ctx:    ctx,
		cancel: cancel,
		cfg:    cfg,
	}
	g.open.Store(true)

	if cfg.limit > 0 {
		g.sem = make(chan struct{}, cfg.limit)
	}

	return g
}

// Go spawns fn as a member of the group. It returns immediately; the
// body runs concurrently with the caller. Failures are recorded per the
// group's [Policy] and attributed via [*JoinError].
//
// Go panics if called after [Group.Wait] or if fn is nil.
func (g *Group) Go(name string, fn TaskFunc) {
	if fn == nil {
		panic("tasked: Group.Go requires non-nil fn")
	}
	// Check open before wg.Add to avoid racing Wait's wg.Wait.
	if !g.open.Load() {
		panic("tasked: Go called after Group.Wait")
	}

	g.wg.Add(1)
	g.spawned.Add(1)

	info := TaskInfo{ID: newTaskID(), Name: name}

	go func() {
		defer g.wg.Done()

		if g.sem != nil {
			select {
			case g.sem <- struct{}{}:
				defer func() { <-g.sem }()
			case <-g.ctx.Done():
				// Cancelled while waiting for a slot; the cause is
				// already recorded elsewhere.
				return
			}
		}

		if g.ctx.Err() != nil {
			return
		}

		g.active.Add(1)
		start := time.Now()

		err := protect(g.ctx, func(ctx context.Context) error {
			if g.cfg.onStart != nil {
				g.cfg.onStart(info)
			}
			return fn(ctx)
		})

		elapsed := time.Since(start)
		g.active.Add(-1)
		g.completed.Add(1)

		if g.cfg.onDone != nil {
			// Runs outside protect: an observability hook must not panic.
			g.cfg.onDone(info, err, elapsed)
		}

		if err != nil {
			g.errored.Add(1)
			g.record(info, err)
		}
	}()
}

// record files a task failure according to the group's policy.
func (g *Group) record(info TaskInfo, err error) {
	var pe *PanicError
	if errors.As(err, &pe) && !g.cfg.panicAsErr {
		g.panicMu.Lock()
		g.panics = append(g.panics, pe)
		g.panicMu.Unlock()
		g.cancel(pe)
		return
	}

	je := &JoinError{Task: info, Err: err}

	switch g.cfg.policy {
	case FailFast:
		g.errOnce.Do(func() {
			g.errMu.Lock()
			g.firstErr = je
			g.errMu.Unlock()
			g.cancel(err)
		})
	case Collect:
		g.errMu.Lock()
		g.errs = append(g.errs, je)
		g.errMu.Unlock()
	}
}

// Wait closes the group to new tasks, blocks until every spawned task
// completes, and returns the aggregated error per the group's [Policy].
// If a task panicked and [WithPanicAsError] was not set, Wait re-raises
// the captured [*PanicError].
//
// Wait is idempotent; subsequent calls return the same result.
func (g *Group) Wait() error {
	g.waitOnce.Do(func() {
		g.open.Store(false)
		g.wg.Wait()

		ctxWasCancelled := g.ctx.Err() != nil
		g.cancel(nil)

		if !g.cfg.panicAsErr {
			g.panicMu.Lock()
			if len(g.panics) > 0 {
				g.waitPanic = g.panics[0]
			}
			g.panicMu.Unlock()
		}

		switch g.cfg.policy {
		case FailFast:
			g.errMu.Lock()
			g.waitErr = g.firstErr
			g.errMu.Unlock()
		case Collect:
			g.errMu.Lock()
			g.waitErr = errors.Join(g.errs...)
			g.errMu.Unlock()
		}

		// No task failed but the parent context was cancelled before the
		// group finished: surface that.
		if g.waitErr == nil && ctxWasCancelled {
			g.waitErr = g.ctx.Err()
		}
	})

	if g.waitPanic != nil {
		panic(g.waitPanic)
	}
	return g.waitErr
}

// Cancel cancels the group's context with the given cause, signalling
// every task to stop.
func (g *Group) Cancel(err error) {
	g.cancel(err)
}

// Context returns the group's context, cancelled when the group finishes
// or is cancelled explicitly.
func (g *Group) Context() context.Context {
	return g.ctx
}

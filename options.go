package tasked

import "time"

// Policy determines how a [Group] reacts to task failures.
type Policy int

const (
	// FailFast cancels the group context on the first failure.
	// [Group.Wait] returns that first error.
	FailFast Policy = iota

	// Collect lets siblings keep running and gathers every failure.
	// [Group.Wait] returns them joined via [errors.Join].
	Collect
)

type config struct {
	policy     Policy
	limit      int
	panicAsErr bool
	onStart    func(TaskInfo)
	onDone     func(TaskInfo, error, time.Duration)
}

// Option configures a [Group].
type Option func(*config)

func defaultConfig() config {
	return config{
		policy: FailFast,
	}
}

// WithPolicy sets the group's error policy.
// It panics if p is not a known Policy value.
func WithPolicy(p Policy) Option {
	return func(c *config) {
		switch p {
		case FailFast, Collect:
			c.policy = p
		default:
			panic("tasked: invalid policy")
		}
	}
}

// WithLimit caps how many group tasks execute concurrently. Tasks beyond
// the limit wait for a slot, respecting group cancellation while waiting.
//
// A limit of zero (the default) means unlimited concurrency.
// WithLimit panics if n is negative.
func WithLimit(n int) Option {
	return func(c *config) {
		if n < 0 {
			panic("tasked: limit must be non-negative")
		}
		c.limit = n
	}
}

// WithPanicAsError makes [Group.Wait] return captured task panics as
// regular [*PanicError] values instead of re-raising them.
func WithPanicAsError() Option {
	return func(c *config) {
		c.panicAsErr = true
	}
}

// WithOnStart registers a hook invoked when each group task begins
// executing. The hook runs on the task's goroutine before the body.
func WithOnStart(fn func(TaskInfo)) Option {
	return func(c *config) {
		c.onStart = fn
	}
}

// WithOnDone registers a hook invoked when each group task finishes, with
// the task's error (nil on success) and wall-clock duration. The hook
// runs on the task's goroutine after the body returns.
func WithOnDone(fn func(TaskInfo, error, time.Duration)) Option {
	return func(c *config) {
		c.onDone = fn
	}
}

package tasked

import "context"

// Result holds the outcome of a spawned task that produces a typed value.
// Create one via [SpawnResult].
type Result[T any] struct {
	t   *Task
	val T
}

// SpawnResult spawns a named task whose body returns a typed value, and
// wraps the outcome in a [Result].
//
//	r := tasked.SpawnResult(ctx, "compute", func(ctx context.Context) (int, error) {
//	    return expensiveCalc(ctx)
//	})
//	val, err := r.Wait()
func SpawnResult[T any](
	ctx context.Context,
	name string,
	fn func(ctx context.Context) (T, error),
) *Result[T] {
	if fn == nil {
		panic("tasked: SpawnResult requires non-nil fn")
	}

	r := &Result[T]{}
	r.t = Spawn(ctx, name, func(ctx context.Context) error {
		v, err := fn(ctx)
		if err != nil {
			return err
		}
		// Published before the task's done channel closes, so Wait
		// observes it without further synchronization.
		r.val = v
		return nil
	})
	return r
}

// Wait blocks until the task completes and returns its value. On failure
// the value is the zero value and the error is a [*JoinError], exactly
// as [Task.Join] reports it.
func (r *Result[T]) Wait() (T, error) {
	if err := r.t.Join(); err != nil {
		var zero T
		return zero, err
	}
	return r.val, nil
}

// Task returns the underlying task handle, for status inspection or
// select integration via [Task.Done].
func (r *Result[T]) Task() *Task {
	return r.t
}

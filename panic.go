package tasked

import (
	"context"
	"fmt"
	"runtime"
)

// PanicError wraps a panic recovered from a task body together with the
// goroutine stack trace captured at the point of the panic. It reaches
// callers through [Task.Join] or [Group.Wait], wrapped in a [*JoinError].
type PanicError struct {
	// Value is the original value passed to panic().
	Value any

	// Stack is the goroutine stack trace at the point of panic.
	Stack string
}

func (e *PanicError) Error() string {
	return fmt.Sprintf("panic: %v\n\n%s", e.Value, e.Stack)
}

func newPanicError(v any) *PanicError {
	// 8 KiB covers most stack traces; runtime.Stack truncates gracefully
	// when the buffer is too small.
	buf := make([]byte, 8192)
	n := runtime.Stack(buf, false)
	return &PanicError{
		Value: v,
		Stack: string(buf[:n]),
	}
}

// protect runs a task body, converting a panic into a *PanicError.
func protect(ctx context.Context, fn TaskFunc) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = newPanicError(r)
		}
	}()
	return fn(ctx)
}

package tasked

import (
	"context"
	"sync/atomic"

	uuid "github.com/satori/go.uuid"
)

// TaskFunc is the signature of a task body. It receives the context the
// task was spawned with.
type TaskFunc func(ctx context.Context) error

// Status is the lifecycle state of a [Task].
type Status int32

const (
	// Pending means the task has been created but its body has not
	// started executing.
	Pending Status = iota

	// Running means the task's body is executing.
	Running

	// Completed means the task's body has returned (or panicked). A
	// completed task never changes again.
	Completed
)

func (s Status) String() string {
	switch s {
	case Pending:
		return "pending"
	case Running:
		return "running"
	case Completed:
		return "completed"
	default:
		return "unknown"
	}
}

// TaskInfo identifies a task. It is embedded in [*JoinError] and passed
// to group lifecycle hooks.
type TaskInfo struct {
	ID   uuid.UUID
	Name string
}

func newTaskID() uuid.UUID {
	return uuid.NewV4()
}

// Task is a handle to a spawned unit of work. The handle is detached:
// dropping it does not stop the task, and the task runs to completion
// whether or not anyone joins it.
type Task struct {
	info   TaskInfo
	status atomic.Int32
	err    error // written once, before done is closed
	done   chan struct{}
}

// Spawn launches fn on its own goroutine and returns immediately with a
// handle. No ordering is guaranteed between the caller's subsequent
// statements and fn's body beyond what shared channels enforce.
//
// fn's panics are captured as [*PanicError] and surface only through
// [Task.Join]; a detached task that fails is otherwise unobserved.
//
// Spawn panics if fn is nil. A nil ctx defaults to [context.Background].
func Spawn(ctx context.Context, name string, fn TaskFunc) *Task {
	if fn == nil {
		panic("tasked: Spawn requires non-nil fn")
	}
	if ctx == nil {
		ctx = context.Background()
	}

	t := &Task{
		info: TaskInfo{ID: newTaskID(), Name: name},
		done: make(chan struct{}),
	}

	go t.run(ctx, fn)
	return t
}

func (t *Task) run(ctx context.Context, fn TaskFunc) {
	t.status.Store(int32(Running))

	t.err = protect(ctx, fn)

	t.status.Store(int32(Completed))
	close(t.done)
}

// Join blocks until the task completes. It returns nil if the body
// returned nil, and a [*JoinError] wrapping the body's error or captured
// panic otherwise. Join is idempotent; every call returns the same result.
func (t *Task) Join() error {
	<-t.done
	return t.joinResult()
}

// JoinContext is [Task.Join] with cancellation: it returns the context
// error if ctx is done before the task completes. The task itself keeps
// running; only the wait is abandoned.
func (t *Task) JoinContext(ctx context.Context) error {
	select {
	case <-t.done:
		return t.joinResult()
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (t *Task) joinResult() error {
	if t.err != nil {
		return &JoinError{Task: t.info, Err: t.err}
	}
	return nil
}

// Status reports the task's current lifecycle state.
func (t *Task) Status() Status {
	return Status(t.status.Load())
}

// Done returns a channel closed when the task completes, for use in
// select statements.
func (t *Task) Done() <-chan struct{} {
	return t.done
}

// Info returns the task's identity.
func (t *Task) Info() TaskInfo {
	return t.info
}

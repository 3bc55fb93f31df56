package tasked

import (
	"errors"
	"fmt"
)

// JoinError attributes a task failure to the task that produced it. Both
// [Task.Join] and [Group.Wait] wrap every failure in a JoinError so
// callers can tell which task terminated abnormally.
type JoinError struct {
	Task TaskInfo
	Err  error
}

func (e *JoinError) Error() string {
	return fmt.Sprintf("task %q terminated: %v", e.Task.Name, e.Err)
}

func (e *JoinError) Unwrap() error {
	return e.Err
}

// IsJoinError reports whether err (or any error in its chain) is a [*JoinError].
func IsJoinError(err error) bool {
	if err == nil {
		return false
	}
	var je *JoinError
	return errors.As(err, &je)
}

// TaskOf extracts the [TaskInfo] from the first [*JoinError] in err's
// chain. The second return is false if none is found.
func TaskOf(err error) (TaskInfo, bool) {
	var je *JoinError
	if errors.As(err, &je) {
		return je.Task, true
	}
	return TaskInfo{}, false
}

// CauseOf unwraps the first [*JoinError] in err's chain and returns its
// underlying cause. Errors that are not JoinErrors pass through as-is.
func CauseOf(err error) error {
	var je *JoinError
	if errors.As(err, &je) {
		return je.Err
	}
	return err
}

// AllJoinErrors collects every [*JoinError] reachable from err, descending
// through both single and multi wrapping (including [errors.Join]).
// Returns nil if none are found.
func AllJoinErrors(err error) []*JoinError {
	if err == nil {
		return nil
	}

	var out []*JoinError
	collectJoinErrors(err, &out)
	return out
}

func collectJoinErrors(err error, out *[]*JoinError) {
	switch e := err.(type) {
	case *JoinError:
		*out = append(*out, e)

	case interface{ Unwrap() []error }:
		for _, sub := range e.Unwrap() {
			collectJoinErrors(sub, out)
		}

	case interface{ Unwrap() error }:
		collectJoinErrors(e.Unwrap(), out)
	}
}

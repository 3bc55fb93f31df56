package tasked

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSpawn_ReturnsImmediately(t *testing.T) {
	release := make(chan struct{})

	start := time.Now()
	task := Spawn(context.Background(), "slow", func(ctx context.Context) error {
		<-release
		return nil
	})
	assert.Less(t, time.Since(start), 100*time.Millisecond, "Spawn must not wait for the body")

	close(release)
	require.NoError(t, task.Join())
}

func TestTask_StatusTransitions(t *testing.T) {
	started := make(chan struct{})
	release := make(chan struct{})

	task := Spawn(context.Background(), "staged", func(ctx context.Context) error {
		close(started)
		<-release
		return nil
	})

	<-started
	assert.Equal(t, Running, task.Status())

	close(release)
	require.NoError(t, task.Join())
	assert.Equal(t, Completed, task.Status())

	// A completed task never changes again.
	require.NoError(t, task.Join())
	assert.Equal(t, Completed, task.Status())
}

func TestJoin_PropagatesError(t *testing.T) {
	boom := errors.New("boom")
	task := Spawn(context.Background(), "failing", func(ctx context.Context) error {
		return boom
	})

	err := task.Join()
	require.Error(t, err)

	var je *JoinError
	require.ErrorAs(t, err, &je)
	assert.Equal(t, "failing", je.Task.Name)
	assert.ErrorIs(t, err, boom)
}

func TestJoin_CapturesPanic(t *testing.T) {
	task := Spawn(context.Background(), "panicky", func(ctx context.Context) error {
		panic("kaboom")
	})

	err := task.Join()
	require.Error(t, err)

	var pe *PanicError
	require.ErrorAs(t, err, &pe)
	assert.Equal(t, "kaboom", pe.Value)
	assert.Contains(t, pe.Stack, "goroutine")
}

func TestJoin_Idempotent(t *testing.T) {
	task := Spawn(context.Background(), "once", func(ctx context.Context) error {
		return errors.New("fail")
	})

	first := task.Join()
	second := task.Join()
	assert.Equal(t, first.Error(), second.Error())
}

func TestJoinContext_Cancelled(t *testing.T) {
	release := make(chan struct{})
	defer close(release)

	task := Spawn(context.Background(), "stuck", func(ctx context.Context) error {
		<-release
		return nil
	})

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()

	err := task.JoinContext(ctx)
	assert.ErrorIs(t, err, context.DeadlineExceeded)

	// The task itself keeps running; only the wait was abandoned.
	assert.NotEqual(t, Completed, task.Status())
}

func TestSpawn_DetachedFailureIsUnobserved(t *testing.T) {
	// A fire-and-forget task that fails must not disturb the caller.
	task := Spawn(context.Background(), "detached", func(ctx context.Context) error {
		return errors.New("nobody is listening")
	})

	select {
	case <-task.Done():
	case <-time.After(time.Second):
		t.Fatal("detached task did not run to completion")
	}
	assert.Equal(t, Completed, task.Status())
}

func TestSpawn_NilFnPanics(t *testing.T) {
	assert.Panics(t, func() {
		Spawn(context.Background(), "nil", nil)
	})
}

func TestSpawn_NilContextDefaultsToBackground(t *testing.T) {
	task := Spawn(nil, "background", func(ctx context.Context) error { //nolint:staticcheck
		require.NotNil(t, ctx)
		return nil
	})
	require.NoError(t, task.Join())
}

func TestTaskInfo_UniqueIDs(t *testing.T) {
	a := Spawn(context.Background(), "a", func(ctx context.Context) error { return nil })
	b := Spawn(context.Background(), "b", func(ctx context.Context) error { return nil })

	require.NoError(t, a.Join())
	require.NoError(t, b.Join())
	assert.NotEqual(t, a.Info().ID, b.Info().ID)
}

func TestStatus_String(t *testing.T) {
	assert.Equal(t, "pending", Pending.String())
	assert.Equal(t, "running", Running.String())
	assert.Equal(t, "completed", Completed.String())
	assert.Equal(t, "unknown", Status(42).String())
}

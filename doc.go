// Package tasked provides lightweight task spawning with explicit join
// semantics, designed to pair with the FIFO channels in
// [github.com/baxromumarov/tasked/pipe].
//
// # Spawning Tasks
//
// [Spawn] launches a function on its own goroutine and returns a [Task]
// handle immediately; the caller does not wait for the body to run or
// finish. A spawned task and its spawner are ordered only by whatever
// channel protocol they share:
//
//	sender, receiver := pipe.NewUnbounded[int]()
//	tasked.Spawn(ctx, "producer", func(ctx context.Context) error {
//	    return sender.Send(42)
//	})
//	v, _ := receiver.Recv()
//
// A task moves through [Pending] → [Running] → [Completed]. Detached
// tasks that fail are unobserved by design; a failure (error return or
// panic) surfaces only to an explicit [Task.Join], wrapped in a
// [*JoinError] that attributes it to the task. Panics are captured with
// their stack trace as [*PanicError].
//
// [SpawnResult] spawns a task that produces a typed value, collected via
// [Result.Wait].
//
// # Groups
//
// [Group] supervises many tasks as one unit: spawn with [Group.Go], join
// them all with [Group.Wait]. Error policy is configurable:
//
//   - [FailFast] (default): the first failure cancels the group context;
//     Wait returns that first error.
//   - [Collect]: siblings keep running; Wait joins all errors.
//
// [WithLimit] bounds how many group tasks execute concurrently.
// [WithOnStart] and [WithOnDone] hook the task lifecycle, and
// [Group.Metrics] exposes spawned/active/completed/errored counters.
package tasked

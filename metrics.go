package tasked

// Metrics is a snapshot of a [Group]'s activity counters. Values are read
// atomically but independently; a snapshot taken while tasks are in
// flight may be transiently inconsistent between fields.
type Metrics struct {
	Spawned   int64 // tasks submitted via Group.Go
	Active    int64 // tasks currently executing
	Completed int64 // tasks whose body has returned
	Errored   int64 // tasks that failed (error or panic)
}

// Metrics returns the group's current counters.
func (g *Group) Metrics() Metrics {
	return Metrics{
		Spawned:   g.spawned.Load(),
		Active:    g.active.Load(),
		Completed: g.completed.Load(),
		Errored:   g.errored.Load(),
	}
}

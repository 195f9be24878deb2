package ucoro

import "errors"

// TaskRunner drives a set of coroutines to completion with round-robin
// cooperative scheduling: each sweep resumes every live task once, in
// insertion order, so tasks that yield at the same rate interleave fairly.
// There is no preemption; a task that never yields blocks the runner for as
// long as it runs.
//
// The runner owns the coroutines added to it and destroys each one as it
// reaches completion. The zero TaskRunner is ready to use.
type TaskRunner struct {
	tasks []*Coroutine
}

// Add appends a task. Nil, destroyed and completed coroutines are ignored.
func (r *TaskRunner) Add(co *Coroutine) *TaskRunner {
	if co != nil && !co.destroyed && !co.Done() {
		r.tasks = append(r.tasks, co)
	}
	return r
}

// Run sweeps the task list until it is empty. Any resume failure other than
// ErrNotSuspended aborts the run and is returned; the remaining tasks stay
// in place.
func (r *TaskRunner) Run() error {
	for len(r.tasks) > 0 {
		if _, err := r.Step(); err != nil {
			return err
		}
	}
	return nil
}

// Step performs exactly one sweep, resuming each live task once, and
// reports whether any task remains.
func (r *TaskRunner) Step() (bool, error) {
	i := 0
	for i < len(r.tasks) {
		co := r.tasks[i]
		if co.Done() {
			if err := r.removeAt(i); err != nil {
				return len(r.tasks) > 0, err
			}
			continue
		}
		if err := co.Resume(); err != nil && !errors.Is(err, ErrNotSuspended) {
			return len(r.tasks) > 0, err
		}
		if co.Done() {
			if err := r.removeAt(i); err != nil {
				return len(r.tasks) > 0, err
			}
			continue
		}
		i++
	}
	return len(r.tasks) > 0, nil
}

// Len returns the number of tasks still tracked.
func (r *TaskRunner) Len() int { return len(r.tasks) }

// Empty reports whether all tasks have completed.
func (r *TaskRunner) Empty() bool { return len(r.tasks) == 0 }

func (r *TaskRunner) removeAt(i int) error {
	co := r.tasks[i]
	r.tasks = append(r.tasks[:i], r.tasks[i+1:]...)
	if err := co.Destroy(); err != nil && !errors.Is(err, ErrInvalidCoroutine) {
		return err
	}
	return nil
}

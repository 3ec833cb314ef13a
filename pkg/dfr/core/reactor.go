package core

import (
	"context"

	"github.com/eapache/queue"

	"github.com/ib-77/dfr/pkg/dfr"
)

// Reactor is a single-goroutine cooperative task loop. Producers post
// callbacks; the owner drives them with Tick or Drain. All deferred results
// settled from posted tasks fire their handlers on the driving goroutine.
//
// Reactor itself is not safe for concurrent use; posting from another
// goroutine requires external coordination.
type Reactor struct {
	tasks *queue.Queue
}

func NewReactor() *Reactor {
	return &Reactor{
		tasks: queue.New(),
	}
}

// Post enqueues a task to run on a later Tick, in FIFO order.
func (r *Reactor) Post(task func()) {
	r.tasks.Add(task)
}

// Len returns the number of tasks waiting to run.
func (r *Reactor) Len() int {
	return r.tasks.Length()
}

// Tick runs the oldest pending task. It returns false if the queue was
// empty. A task may post further tasks; those run on later ticks.
func (r *Reactor) Tick() bool {
	if r.tasks.Length() == 0 {
		return false
	}
	task := r.tasks.Remove().(func())
	task()
	return true
}

// Drain runs tasks until the queue is empty, including tasks posted while
// draining, or until ctx is done. A tick budget set with WithDrainOptions
// bounds one Drain call; 0 means unbounded.
func (r *Reactor) Drain(ctx context.Context) {
	maxTicks := GetDrainMaxTicks(ctx, 0)

	for ticks := 0; r.tasks.Length() > 0; ticks++ {
		if maxTicks > 0 && ticks == maxTicks {
			return
		}
		select {
		case <-ctx.Done():
			return
		default:
		}
		r.Tick()
	}
}

// Schedule posts a producer function and returns a pending deferred result
// that settles from the function's return when the reactor runs it: a nil
// error resolves with the value, a non-nil error rejects.
func Schedule[T any](r *Reactor, ctx context.Context,
	produce func(ctx context.Context) (T, error)) dfr.Deferrable[T] {

	d := dfr.New[T]()

	r.Post(func() {
		v, err := produce(ctx)
		if err != nil {
			d.Reject(err)
			return
		}
		d.Resolve(v)
	})

	return d
}

// Resolved posts a settlement of v and returns the pending deferred result.
// Useful when a stage's value is known but its delivery must still go
// through the reactor rather than fire synchronously.
func Resolved[T any](r *Reactor, v T) dfr.Deferrable[T] {
	d := dfr.New[T]()
	r.Post(func() {
		d.Resolve(v)
	})
	return d
}

// Rejected posts a rejection with err and returns the pending deferred result.
func Rejected[T any](r *Reactor, err error) dfr.Deferrable[T] {
	d := dfr.New[T]()
	r.Post(func() {
		d.Reject(err)
	})
	return d
}

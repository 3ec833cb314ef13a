package core

import (
	"context"
	"errors"
	"testing"

	"github.com/ib-77/dfr/pkg/dfr"
)

func TestReactor_RunsTasksInPostOrder(t *testing.T) {
	t.Parallel()

	r := NewReactor()

	var order []int
	r.Post(func() { order = append(order, 1) })
	r.Post(func() { order = append(order, 2) })
	r.Post(func() { order = append(order, 3) })

	if r.Len() != 3 {
		t.Fatalf("expected 3 queued tasks, got %d", r.Len())
	}

	r.Drain(context.Background())

	if len(order) != 3 || order[0] != 1 || order[1] != 2 || order[2] != 3 {
		t.Fatalf("expected FIFO order [1 2 3], got %v", order)
	}
	if r.Len() != 0 {
		t.Fatalf("expected empty queue after drain, got %d", r.Len())
	}
}

func TestReactor_TickOnEmptyQueue(t *testing.T) {
	t.Parallel()

	r := NewReactor()
	if r.Tick() {
		t.Fatalf("Tick on an empty queue must report false")
	}
}

func TestReactor_TasksPostedWhileDrainingRun(t *testing.T) {
	t.Parallel()

	r := NewReactor()

	nested := false
	r.Post(func() {
		r.Post(func() { nested = true })
	})

	r.Drain(context.Background())

	if !nested {
		t.Fatalf("tasks posted during drain must still run")
	}
}

func TestReactor_DrainHonorsTickBudget(t *testing.T) {
	t.Parallel()

	r := NewReactor()
	ran := 0
	for i := 0; i < 3; i++ {
		r.Post(func() { ran++ })
	}

	ctx := WithDrainOptions(context.Background(), 2)
	r.Drain(ctx)

	if ran != 2 || r.Len() != 1 {
		t.Fatalf("expected 2 tasks run and 1 left, got ran=%d left=%d", ran, r.Len())
	}
}

func TestReactor_DrainStopsOnDoneContext(t *testing.T) {
	t.Parallel()

	r := NewReactor()
	ran := 0
	r.Post(func() { ran++ })

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	r.Drain(ctx)

	if ran != 0 || r.Len() != 1 {
		t.Fatalf("expected no task to run under a done context, got ran=%d left=%d", ran, r.Len())
	}
}

func TestSchedule_SettlesWhenTheLoopRuns(t *testing.T) {
	t.Parallel()

	r := NewReactor()
	ctx := context.Background()

	d := Schedule(r, ctx, func(context.Context) (int, error) {
		return 42, nil
	})

	state, ok := d.(dfr.Inspectable[int])
	if !ok {
		t.Fatalf("expected state probes on the scheduled result")
	}
	if !state.IsPending() {
		t.Fatalf("scheduled result must be pending before the loop runs")
	}

	got := 0
	d.OnSuccess(func(v int) { got = v })

	r.Drain(ctx)

	if got != 42 {
		t.Fatalf("expected 42 after drain, got %d", got)
	}
}

func TestSchedule_ErrorRejects(t *testing.T) {
	t.Parallel()

	r := NewReactor()
	ctx := context.Background()
	boom := errors.New("producer broke")

	d := Schedule(r, ctx, func(context.Context) (int, error) {
		return 0, boom
	})

	var got error
	d.OnFailure(func(err error) { got = err })

	r.Drain(ctx)

	if got != boom {
		t.Fatalf("expected producer error, got %v", got)
	}
}

func TestResolvedAndRejected_GoThroughTheLoop(t *testing.T) {
	t.Parallel()

	r := NewReactor()
	ctx := context.Background()

	ok := Resolved(r, "hello")
	bad := Rejected[string](r, errors.New("nope"))

	var okV string
	var badErr error
	ok.OnSuccess(func(v string) { okV = v })
	bad.OnFailure(func(err error) { badErr = err })

	if okV != "" || badErr != nil {
		t.Fatalf("settlement must wait for the loop")
	}

	r.Drain(ctx)

	if okV != "hello" || badErr == nil {
		t.Fatalf("expected settlement after drain, got v=%q err=%v", okV, badErr)
	}
}

func TestToChan_DeliversExactlyOneSettlement(t *testing.T) {
	t.Parallel()

	okCh := ToChan[int](dfr.Const(7))
	s, open := <-okCh
	if !open || s.Err != nil || s.Value != 7 {
		t.Fatalf("expected value settlement 7, got %+v open=%v", s, open)
	}
	if _, open = <-okCh; open {
		t.Fatalf("channel must close after the single settlement")
	}

	badCh := ToChan[int](dfr.Failed[int](errors.New("boom")))
	s = <-badCh
	if s.Err == nil {
		t.Fatalf("expected error settlement, got %+v", s)
	}
}

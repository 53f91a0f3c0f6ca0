package future

import (
	"context"
	"testing"
	"time"

	"github.com/ib-77/ropic/pkg/ropic"
)

func TestCompleteSettlesOnce(t *testing.T) {
	t.Parallel()

	f := New[int]()

	if f.Ready() {
		t.Fatalf("a fresh future must not be ready")
	}
	if !f.Complete(1) {
		t.Fatalf("first completion must win")
	}
	if f.Complete(2) {
		t.Fatalf("second completion must be rejected")
	}
	if !f.Ready() || f.Value() != 1 {
		t.Fatalf("expected the first value to stick")
	}
}

func TestOfIsReady(t *testing.T) {
	t.Parallel()

	f := Of("hello")
	if !f.Ready() || f.Value() != "hello" {
		t.Fatalf("expected a ready future")
	}
}

func TestSubscribeBeforeCompletion(t *testing.T) {
	t.Parallel()

	f := New[int]()
	fired := 0

	if !f.Subscribe(func() { fired++ }) {
		t.Fatalf("subscription on an incomplete future must register")
	}
	f.Complete(5)

	if fired != 1 {
		t.Fatalf("expected the callback to fire exactly once, got %d", fired)
	}
}

func TestSubscribeAfterCompletion(t *testing.T) {
	t.Parallel()

	f := Of(5)
	if f.Subscribe(func() { t.Fatal("must not fire") }) {
		t.Fatalf("subscription on a completed future must report false")
	}
}

func TestValueBeforeCompletionPanics(t *testing.T) {
	t.Parallel()

	defer func() {
		if recover() == nil {
			t.Fatalf("expected a panic")
		}
	}()
	New[int]().Value()
}

func TestWaitHonoursContext(t *testing.T) {
	t.Parallel()

	f := New[int]()
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()

	if _, err := f.Wait(ctx); err != context.DeadlineExceeded {
		t.Fatalf("expected deadline exceeded, got %v", err)
	}

	f.Complete(3)
	v, err := f.Wait(context.Background())
	if err != nil || v != 3 {
		t.Fatalf("expected 3, got %d (%v)", v, err)
	}
}

func TestDrivesParkedComputation(t *testing.T) {
	t.Parallel()

	f := New[int]()

	e := ropic.Run(func(p *ropic.Promise[int, string]) *ropic.Either[int, string] {
		v := ropic.AwaitForeign[int](p, f)
		return p.Succeed(v * 3)
	})

	if e.IsSettled() {
		t.Fatalf("expected pending until completion")
	}

	f.Complete(14)

	if !e.IsSuccess() || e.Result().Value() != 42 {
		t.Fatalf("expected 42 after completion, got %v", e.Result().Get())
	}
}

func TestCompletionFromAnotherGoroutine(t *testing.T) {
	t.Parallel()

	f := New[int]()

	e := ropic.Run(func(p *ropic.Promise[int, string]) *ropic.Either[int, string] {
		return p.Succeed(ropic.AwaitForeign[int](p, f))
	})

	completed := make(chan struct{})
	go func() {
		f.Complete(7)
		close(completed)
	}()
	<-completed

	// Complete drives the body to settlement before returning.
	if !e.IsSuccess() || e.Result().Value() != 7 {
		t.Fatalf("expected 7, got %v", e.Result().Get())
	}
}

package result

import (
	"context"
	"errors"
	"strconv"
	"testing"

	"github.com/ib-77/ropic/pkg/ropic"
	"github.com/ib-77/ropic/pkg/ropic/fault"
)

func TestSucceed(t *testing.T) {
	t.Parallel()

	r := Succeed(10)
	if !r.IsSuccess() || r.Result().Value() != 10 {
		t.Fatalf("expected success 10")
	}
}

func TestFailWith(t *testing.T) {
	t.Parallel()

	r := FailWith[int](fault.New(fault.Database, "down"))
	if !r.IsFailure() {
		t.Fatalf("expected failure")
	}
	if got := r.Err().Value(); got.Tag() != fault.Database || got.Message() != "down" {
		t.Fatalf("unexpected fault: %v", got)
	}
}

func TestFailf(t *testing.T) {
	t.Parallel()

	r := Failf[string](fault.Validation, "bad id %q", "x1")
	if got := r.Err().Value().Message(); got != `bad id "x1"` {
		t.Fatalf("unexpected message %q", got)
	}
}

func TestTry(t *testing.T) {
	t.Parallel()

	ctx := context.Background()

	ok := Try(ctx, fault.Database, func(ctx context.Context) (int, error) {
		return strconv.Atoi("21")
	})
	if !ok.IsSuccess() || ok.Result().Value() != 21 {
		t.Fatalf("expected success 21")
	}

	bad := Try(ctx, fault.Database, func(ctx context.Context) (int, error) {
		return 0, errors.New("no rows")
	})
	if !bad.IsFailure() || bad.Err().Value().Message() != "no rows" {
		t.Fatalf("expected the wrapped error")
	}
}

func TestValidate(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	positive := func(ctx context.Context, v int) (bool, string) {
		if v <= 0 {
			return false, "must be positive"
		}
		return true, ""
	}

	if r := Validate(ctx, 5, positive); !r.IsSuccess() || r.Result().Value() != 5 {
		t.Fatalf("expected validated value")
	}

	r := Validate(ctx, -5, positive)
	if !r.IsFailure() {
		t.Fatalf("expected validation failure")
	}
	if f := r.Err().Value(); f.Tag() != fault.Validation || f.Message() != "must be positive" {
		t.Fatalf("unexpected fault: %v", f)
	}
}

func TestRunComposesWithFaultChannel(t *testing.T) {
	t.Parallel()

	parse := func(s string) *Result[int] {
		return Run(func(p *ropic.Promise[int, fault.Fault]) *Result[int] {
			n, err := strconv.Atoi(s)
			if err != nil {
				return p.Fail(fault.From(fault.Validation, err))
			}
			return p.Succeed(n)
		})
	}

	double := func(s string) *Result[int] {
		return Run(func(p *ropic.Promise[int, fault.Fault]) *Result[int] {
			n := ropic.Await(p, parse(s))
			return p.Succeed(n * 2)
		})
	}

	if r := double("8"); !r.IsSuccess() || r.Result().Value() != 16 {
		t.Fatalf("expected 16")
	}
	if r := double("x"); !r.IsFailure() || r.Err().Value().Tag() != fault.Validation {
		t.Fatalf("expected the parse fault to propagate")
	}
}

func TestFinally(t *testing.T) {
	t.Parallel()

	ctx := context.Background()

	msg := Finally(ctx, Succeed(2),
		func(ctx context.Context, v int) string { return strconv.Itoa(v) },
		func(ctx context.Context, f fault.Fault) string { return f.Error() })
	if msg != "2" {
		t.Fatalf("expected %q, got %q", "2", msg)
	}

	msg = Finally(ctx, Failf[int](fault.Database, "gone"),
		func(ctx context.Context, v int) string { return strconv.Itoa(v) },
		func(ctx context.Context, f fault.Fault) string { return f.Error() })
	if msg != "DATABASE: gone" {
		t.Fatalf("expected the failure handler result, got %q", msg)
	}
}

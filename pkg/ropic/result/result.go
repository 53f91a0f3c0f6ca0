package result

import (
	"context"

	"github.com/ib-77/ropic/pkg/ropic"
	"github.com/ib-77/ropic/pkg/ropic/fault"
)

// Result is an Either whose failure payload is a fault.Fault.
type Result[S any] = ropic.Either[S, fault.Fault]

// Succeed lifts a value into a settled successful Result.
func Succeed[S any](v S) *Result[S] {
	return ropic.Success[S, fault.Fault](v)
}

// FailWith builds a settled failed Result.
func FailWith[S any](f fault.Fault) *Result[S] {
	return ropic.Failure[S](f)
}

// Failf builds a settled failed Result from a formatted message.
func Failf[S any](tag fault.Tag, format string, args ...any) *Result[S] {
	return FailWith[S](fault.Newf(tag, format, args...))
}

// Run starts a computation whose failure channel is fault.Fault.
func Run[S any](body func(p *ropic.Promise[S, fault.Fault]) *Result[S]) *Result[S] {
	return ropic.Run(body)
}

// Try calls f and converts its error, if any, into a failed Result.
func Try[S any](ctx context.Context, tag fault.Tag,
	f func(ctx context.Context) (S, error)) *Result[S] {

	v, err := f(ctx)
	if err != nil {
		return FailWith[S](fault.From(tag, err))
	}
	return Succeed(v)
}

// Validate lifts v into a Result, failing with a validation fault when
// the predicate rejects it.
func Validate[S any](ctx context.Context, v S,
	validate func(ctx context.Context, v S) (ok bool, errMsg string)) *Result[S] {

	if ok, errMsg := validate(ctx, v); !ok {
		return FailWith[S](fault.New(fault.Validation, errMsg))
	}
	return Succeed(v)
}

// Finally collapses a settled Result to a concrete value via the matching
// handler.
func Finally[S, Out any](ctx context.Context, r *Result[S],
	onSuccess func(ctx context.Context, v S) Out,
	onFailure func(ctx context.Context, f fault.Fault) Out) Out {

	if r.IsSuccess() {
		return onSuccess(ctx, r.Result().Value())
	}
	return onFailure(ctx, r.Err().Value())
}

package chain

import (
	"context"

	"github.com/ib-77/ropic/pkg/ropic"
)

type Chain[S, F any] struct {
	ctx context.Context
	res *ropic.Either[S, F]
}

func Start[S, F any](ctx context.Context, e *ropic.Either[S, F]) Chain[S, F] {
	return Chain[S, F]{ctx: ctx, res: e}
}

func FromValue[S, F any](ctx context.Context, v S) Chain[S, F] {
	return Start(ctx, ropic.Success[S, F](v))
}

func (c Chain[S, F]) Either() *ropic.Either[S, F] {
	return c.res
}

// Then composes a step that already returns a container.
func (c Chain[S, F]) Then(onSuccess func(ctx context.Context, v S) *ropic.Either[S, F]) Chain[S, F] {
	if !c.res.IsSuccess() {
		return c
	}
	return Chain[S, F]{ctx: c.ctx, res: onSuccess(c.ctx, c.res.Result().Value())}
}

// Map transforms the successful value.
func (c Chain[S, F]) Map(onSuccess func(ctx context.Context, v S) S) Chain[S, F] {
	if !c.res.IsSuccess() {
		return c
	}
	return Chain[S, F]{ctx: c.ctx, res: ropic.Success[S, F](onSuccess(c.ctx, c.res.Result().Value()))}
}

// Tee runs a side effect on success without changing the result.
func (c Chain[S, F]) Tee(onSuccess func(ctx context.Context, v S)) Chain[S, F] {
	if c.res.IsSuccess() {
		onSuccess(c.ctx, c.res.Result().Value())
	}
	return c
}

// Ensure triggers side effects for either outcome without changing the
// result. Nil handlers are skipped.
func (c Chain[S, F]) Ensure(onSuccess func(context.Context, S), onFailure func(context.Context, F)) Chain[S, F] {
	if c.res.IsFailure() {
		if onFailure != nil {
			onFailure(c.ctx, c.res.Err().Value())
		}
		return c
	}
	if c.res.IsSuccess() && onSuccess != nil {
		onSuccess(c.ctx, c.res.Result().Value())
	}
	return c
}

// While reapplies a step as long as the chain succeeds and the predicate
// holds.
func (c Chain[S, F]) While(onSuccess func(ctx context.Context, v S) *ropic.Either[S, F],
	while func(ctx context.Context, v S) bool) Chain[S, F] {

	for c.res.IsSuccess() && while(c.ctx, c.res.Result().Value()) {
		c = c.Then(onSuccess)
	}
	return c
}

// Switch moves the chain from one success type to another.
func Switch[In, Out, F any](c Chain[In, F],
	onSuccess func(ctx context.Context, v In) *ropic.Either[Out, F]) Chain[Out, F] {

	if c.res.IsFailure() {
		return Chain[Out, F]{ctx: c.ctx, res: ropic.Failure[Out](c.res.Err().Value())}
	}
	return Chain[Out, F]{ctx: c.ctx, res: onSuccess(c.ctx, c.res.Result().Value())}
}

// Finally collapses the chain to a concrete value via the matching
// handler.
func Finally[S, F, Out any](c Chain[S, F],
	onSuccess func(ctx context.Context, v S) Out,
	onFailure func(ctx context.Context, f F) Out) Out {

	if c.res.IsSuccess() {
		return onSuccess(c.ctx, c.res.Result().Value())
	}
	return onFailure(c.ctx, c.res.Err().Value())
}

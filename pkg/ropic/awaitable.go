package ropic

// Awaitable is the contract a foreign suspendable value must expose to be
// consumed with AwaitForeign. The container never looks inside such a
// value; whatever success/failure signaling it needs must travel through T
// itself.
//
// Implementations must invoke a registered resume callback exactly once,
// from the goroutine that resolves the value.
type Awaitable[T any] interface {
	// Ready reports whether the value has already been resolved.
	Ready() bool

	// Subscribe registers resume to be invoked once the value resolves
	// and reports whether the registration took effect. It returns false
	// when the value resolved before registration; resume is then never
	// invoked and the caller extracts the value directly.
	Subscribe(resume func()) bool

	// Value returns the resolved value. It must only be called once
	// Ready reports true or a registered resume has been invoked.
	Value() T
}

// A container is itself awaitable, in pass-through mode.
var _ Awaitable[*Either[int, string]] = (*Either[int, string])(nil)

package ropic

// variant tags the three-way state of a container.
type variant uint8

const (
	varEmpty variant = iota
	varSuccess
	varFailure
)

// noCopy triggers the go vet copylocks check on types that embed it.
type noCopy struct{}

func (*noCopy) Lock()   {}
func (*noCopy) Unlock() {}

// Either holds either a success value of type S, a failure value of type
// F, or - only while a bound computation is still running - nothing yet.
// S and F must be distinct types; constructors panic otherwise.
//
// A settled container is immutable except via Move/MoveFrom and can be
// read any number of times with identical results. Containers must not be
// copied: a copy would alias two containers over one control block. Use
// Move instead; go vet reports accidental copies.
//
// The zero Either is empty with no bound computation, the same state a
// moved-from or cancelled container is left in.
type Either[S, F any] struct {
	noCopy noCopy

	state variant
	value S
	fault F

	// pr is the control block of a still-running bound computation,
	// nil in value mode and after settlement.
	pr *Promise[S, F]
}

// Success builds a settled container holding v.
func Success[S, F any](v S) *Either[S, F] {
	ensureLegalPair[S, F]()
	return &Either[S, F]{state: varSuccess, value: v}
}

// Failure builds a settled container holding f.
func Failure[S, F any](f F) *Either[S, F] {
	ensureLegalPair[S, F]()
	return &Either[S, F]{state: varFailure, fault: f}
}

// Result returns a view of the success value, empty when the container
// does not hold one. The view is invalidated by moving or reusing the
// container.
func (e *Either[S, F]) Result() Borrower[S] {
	if e.state != varSuccess {
		return Borrower[S]{}
	}
	return borrow(&e.value)
}

// Err returns a view of the failure value, empty when the container does
// not hold one. The view is invalidated by moving or reusing the
// container.
func (e *Either[S, F]) Err() Borrower[F] {
	if e.state != varFailure {
		return Borrower[F]{}
	}
	return borrow(&e.fault)
}

// IsSettled reports whether the container holds a success or failure
// value. It is false only while a bound computation is still pending and
// for moved-from or cancelled containers.
func (e *Either[S, F]) IsSettled() bool {
	return e.state != varEmpty
}

// IsSuccess reports whether the container holds a success value.
func (e *Either[S, F]) IsSuccess() bool {
	return e.state == varSuccess
}

// IsFailure reports whether the container holds a failure value.
func (e *Either[S, F]) IsFailure() bool {
	return e.state == varFailure
}

// Move transfers the container's state into a fresh container and leaves
// the receiver empty with no bound computation. A pending computation
// follows the state: it will settle into the returned container.
func (e *Either[S, F]) Move() *Either[S, F] {
	dst := &Either[S, F]{}
	dst.MoveFrom(e)
	return dst
}

// MoveFrom replaces the receiver's state with src's and resets src to
// empty. A computation still pending on the receiver is abandoned first;
// one pending on src is re-bound so that it settles into the receiver.
// MoveFrom(e) on e itself is a no-op.
func (e *Either[S, F]) MoveFrom(src *Either[S, F]) {
	if e == src {
		return
	}
	e.Cancel()

	e.state = src.state
	e.value = src.value
	e.fault = src.fault
	e.pr = src.pr
	if e.pr != nil {
		e.pr.rebind(e)
	}

	var zv S
	var zf F
	src.state = varEmpty
	src.value = zv
	src.fault = zf
	src.pr = nil
}

// Cancel abandons a still-pending bound computation without writing a
// value: the body is torn down at its current await point and never runs
// further. The container is left empty with no bound computation. Cancel
// is a no-op on settled, moved-from and value-mode containers.
func (e *Either[S, F]) Cancel() {
	p := e.pr
	if p == nil {
		return
	}
	p.kill()
	if e.pr == nil {
		// The body settled in the instant before the teardown signal
		// reached it; the settled value wins.
		return
	}
	e.pr = nil
	e.state = varEmpty
}

// Ready, Subscribe and Value implement the Awaitable protocol in
// pass-through mode, so foreign computations can consume a container
// without the container being inspected or unwrapped: the awaited "value"
// is the container itself, and awaiting it never suspends.

// Ready always reports true: awaiting an Either never suspends.
func (e *Either[S, F]) Ready() bool {
	return true
}

// Subscribe never registers anything; the container is always ready.
func (e *Either[S, F]) Subscribe(func()) bool {
	return false
}

// Value returns the container itself, unchanged and uninspected.
func (e *Either[S, F]) Value() *Either[S, F] {
	return e
}

// Package ropic provides the Either container for railway oriented
// programming: a generic result type that holds either a success value, a
// failure value, or - while a bound computation is still running - nothing
// yet.
//
// An Either is obtained in one of two ways:
//
//   - Value mode: Success and Failure build an already settled container.
//   - Computation mode: Run binds a container to a computation body. The
//     body starts immediately and runs until it settles or parks on a
//     foreign awaitable; by the time Run returns the container is either
//     settled or still pending on that foreign value.
//
// Inside a body, Await composes with another Either of the same failure
// type. A successful inner container yields its payload and the body keeps
// running; a failed inner container writes its failure into the current
// computation's own container and abandons the body at the await point.
// Every link of a composition chain therefore pays one failure write and
// one teardown, no matter how deep the chain is.
//
// AwaitForeign consumes any value implementing the Awaitable protocol
// without inspecting it. Suspension only ever happens there; awaiting an
// Either never blocks.
//
// Containers are single-owner. They can be moved (Move, MoveFrom) but not
// copied; go vet flags accidental copies. Reads go through Borrower, a
// transient non-owning view that must not be stored past the statement
// that obtained it.
//
// Failure values are the only recoverable unsuccessful outcome. A panic
// escaping a computation body is fatal and is not converted into a
// failure.
package ropic

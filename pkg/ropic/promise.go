package ropic

import (
	"time"

	"github.com/google/uuid"
)

// abandonSignal unwinds a computation body that has been torn down, either
// because an awaited container held a failure or because the owning
// container was cancelled. Any other value escaping a body is fatal.
type abandonSignal struct{}

// Promise is the control block of one running computation, bound
// one-to-one to the container Run produced for it. It decides how the
// body's terminal value is stored: on normal termination it writes the
// value straight into the owning container and clears the container's
// record of the block.
//
// The body goroutine and whoever currently drives it (the constructor, a
// foreign resume callback, or Cancel) hand control to each other over the
// yield/resume/abort channels; at most one of them runs at a time.
type Promise[S, F any] struct {
	id        uuid.UUID
	createdAt time.Time

	// owner is the container this computation settles into. Re-bound by
	// MoveFrom while the body is parked.
	owner *Either[S, F]

	yield  chan struct{} // body -> driver: parked on a foreign value
	resume chan struct{} // driver -> body: foreign value resolved
	abort  chan struct{} // driver -> body: tear down without settling
	done   chan struct{} // closed when the body goroutine exits
}

// Run starts a computation and returns the container bound to it. The
// body begins executing immediately; Run returns once it has either
// settled the container or parked on an unready foreign awaitable. The
// body terminates by returning a settled container, normally built with
// p.Succeed or p.Fail; returning anything else panics.
//
// A panic escaping the body is not recovered into a failure value: it
// crashes the process. Recoverable outcomes travel through the failure
// channel only.
func Run[S, F any](body func(p *Promise[S, F]) *Either[S, F]) *Either[S, F] {
	ensureLegalPair[S, F]()

	e := &Either[S, F]{}
	p := &Promise[S, F]{
		id:        uuid.New(),
		createdAt: time.Now().UTC(),
		owner:     e,
		yield:     make(chan struct{}),
		resume:    make(chan struct{}, 1),
		abort:     make(chan struct{}),
		done:      make(chan struct{}),
	}
	e.pr = p

	go p.drive(body)
	p.waitTurn()
	return e
}

// Id returns the control block identity.
func (p *Promise[S, F]) Id() uuid.UUID {
	return p.id
}

// CreatedAt returns the control block creation time (UTC).
func (p *Promise[S, F]) CreatedAt() time.Time {
	return p.createdAt
}

// Succeed builds the terminal success value for the body to return.
func (p *Promise[S, F]) Succeed(v S) *Either[S, F] {
	return Success[S, F](v)
}

// Fail builds the terminal failure value for the body to return.
func (p *Promise[S, F]) Fail(f F) *Either[S, F] {
	return Failure[S, F](f)
}

// Await composes the running computation with another container of the
// same failure type. A successful inner container yields its payload and
// leaves the container intact for further inspection. A failed inner
// container settles the current computation's own container with that
// failure and abandons the body at the await point: no code after the
// failed Await runs. The caller of that container then observes an
// already-failed result and the same applies transitively, one write and
// one teardown per link.
//
// The inner container must be settled; awaiting a container still pending
// on a foreign value is a programming error and panics.
func Await[O, S, F any](p *Promise[S, F], inner *Either[O, F]) O {
	switch inner.state {
	case varSuccess:
		return inner.value
	case varFailure:
		p.fail(inner.fault)
		panic(abandonSignal{})
	default:
		panic("ropic: await on an unsettled container")
	}
}

// AwaitForeign consumes any foreign suspendable value. A ready value is
// extracted immediately and the body keeps running. Otherwise the body
// parks, control returns to whoever is driving the computation, and the
// value's resume callback later hands control back to the body. The value
// is passed through verbatim; the container machinery never inspects it.
func AwaitForeign[T, S, F any](p *Promise[S, F], a Awaitable[T]) T {
	if a.Ready() {
		return a.Value()
	}
	p.park(a.Subscribe)
	return a.Value()
}

// drive runs the body to its end and publishes its terminal value.
func (p *Promise[S, F]) drive(body func(*Promise[S, F]) *Either[S, F]) {
	defer close(p.done)
	defer func() {
		if r := recover(); r != nil {
			if _, ok := r.(abandonSignal); !ok {
				panic(r)
			}
			// Torn down: the owning container already holds the
			// propagated failure, or is being cancelled.
		}
	}()
	p.settleFrom(body(p))
}

// settleFrom moves the body's terminal value into the owning container.
func (p *Promise[S, F]) settleFrom(out *Either[S, F]) {
	if out == nil {
		panic("ropic: computation returned a nil container")
	}
	switch out.state {
	case varSuccess:
		p.succeed(out.value)
	case varFailure:
		p.fail(out.fault)
	default:
		panic("ropic: computation returned an unsettled container")
	}
}

func (p *Promise[S, F]) succeed(v S) {
	e := p.owner
	e.value = v
	e.state = varSuccess
	e.pr = nil
}

func (p *Promise[S, F]) fail(f F) {
	e := p.owner
	e.fault = f
	e.state = varFailure
	e.pr = nil
}

// rebind points the control block at the container that now owns it.
// Called with the body parked; the body reads owner again only after the
// next handoff.
func (p *Promise[S, F]) rebind(e *Either[S, F]) {
	p.owner = e
}

// waitTurn blocks the driver until the body parks or exits.
func (p *Promise[S, F]) waitTurn() {
	select {
	case <-p.yield:
	case <-p.done:
	}
}

// wake is the resume callback handed to foreign awaitables. It hands
// control to the parked body and drives it until the next park or until
// it exits. After teardown it degrades to a no-op.
func (p *Promise[S, F]) wake() {
	select {
	case p.resume <- struct{}{}:
		p.waitTurn()
	case <-p.done:
	}
}

// park registers the resume callback and suspends the body. If subscribe
// reports the value resolved in the meantime, the body keeps running
// without suspending.
func (p *Promise[S, F]) park(subscribe func(resume func()) bool) {
	if !subscribe(p.wake) {
		return
	}
	p.yield <- struct{}{}
	select {
	case <-p.resume:
	case <-p.abort:
		panic(abandonSignal{})
	}
}

// kill tears the body down without settling and waits for it to exit.
// Safe to call after the body has already finished.
func (p *Promise[S, F]) kill() {
	select {
	case p.abort <- struct{}{}:
		<-p.done
	case <-p.done:
	}
}

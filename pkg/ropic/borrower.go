package ropic

// Borrower is a non-owning view of a value stored inside an Either. It is
// meant to live for a single access expression:
//
//	if err := res.Err(); err.Ok() {
//		log.Println(err.Value().Message())
//	}
//
// A Borrower must not be stored past the statement that obtained it: the
// underlying container may be moved or go out of scope, after which the
// view reads stale memory. Two Borrowers taken from the same container in
// sequence are independent objects but observe the same value until the
// container is mutated.
type Borrower[T any] struct {
	ptr *T
}

func borrow[T any](p *T) Borrower[T] {
	return Borrower[T]{ptr: p}
}

// Ok reports whether the view points at a value.
func (b Borrower[T]) Ok() bool {
	return b.ptr != nil
}

// IsEmpty reports whether the view points at nothing.
func (b Borrower[T]) IsEmpty() bool {
	return b.ptr == nil
}

// Get returns the underlying pointer, nil for an empty view.
func (b Borrower[T]) Get() *T {
	return b.ptr
}

// Value returns the borrowed value. Dereferencing an empty view is a
// programming error and panics.
func (b Borrower[T]) Value() T {
	if b.ptr == nil {
		panic("ropic: dereferencing an empty borrower")
	}
	return *b.ptr
}

package ropic

import (
	"fmt"
	"reflect"
)

// ensureLegalPair rejects success/failure type pairs that would make the
// stored variant ambiguous. The two payload types must differ; a container
// whose success and failure are the same type is nonsensical. Violations
// are precondition bugs, not data errors, so they panic.
func ensureLegalPair[S, F any]() {
	s := reflect.TypeFor[S]()
	f := reflect.TypeFor[F]()
	if s == f {
		panic(fmt.Sprintf("ropic: success and failure types must differ, both are %v", s))
	}
}

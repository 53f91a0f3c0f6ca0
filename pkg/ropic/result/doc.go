// Package result specializes the Either container to fault.Fault
// failures and provides the construction helpers a typical pipeline needs:
// lifting values, wrapping (value, error) calls, validating input and
// collapsing a settled result to a concrete value.
package result

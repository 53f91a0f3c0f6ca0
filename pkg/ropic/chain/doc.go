// Package chain provides a fluent, context-threaded wrapper for composing
// settled Either containers: the synchronous flavour of railway chaining.
// A Chain carries its container by pointer and skips every step after the
// first failure. Steps that change the success type go through the free
// Switch function; everything else is a method.
//
// Chains expect settled containers. Feed pending ones (still awaiting a
// foreign value) to ropic.Await inside a computation instead.
package chain

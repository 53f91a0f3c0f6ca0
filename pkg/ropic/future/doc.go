// Package future provides a minimal settle-once future, the reference
// implementation of the ropic.Awaitable protocol. A computation parks on
// an incomplete Future via ropic.AwaitForeign and is driven onward by
// whichever goroutine calls Complete.
package future

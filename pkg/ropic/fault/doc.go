// Package fault defines the domain failure payload used throughout the
// module's own pipelines: a value carrying a coarse classification tag, a
// human-readable message and an optional handling-strategy code. Fault
// implements error, so it slots into ordinary Go error plumbing at the
// boundary of a railway pipeline.
package fault

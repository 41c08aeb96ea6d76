// Package combined holds benchmarks that span several packages.
//
// The queue benchmarks put adt.Queue next to a buffered channel and
// go-lock-free-ring, first as a single-goroutine FIFO buffer and then as
// a producer/consumer handoff. The harness benchmarks measure what one
// measurement and one growth analysis cost end to end, including the
// per-iteration cancellation check and clock reads.
package combined

// Package sorting holds the instrumented sorting engine.
//
// Algorithms are written only in terms of Buffer primitives and report every
// comparison or swap to a Sink right after it happens. The engine knows
// nothing about windows, frames or timing; a Driver observes progress by
// supplying its own Sink.
package sorting

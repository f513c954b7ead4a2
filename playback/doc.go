// Package playback provides the transport behind every visualization: it
// drains a step generator eagerly, prepends an "Initial State" step, and
// exposes play, pause, next, prev, seek, reset and speed control over the
// resulting fixed sequence.
//
// Timing:
//
//	A play session owns one Ticker and one goroutine. Each tick advances the
//	index by one; reaching the last step ends the session (no wraparound).
//	Next, Prev, Seek and Reset stop the session before moving, so manual and
//	automatic advancement never interleave. SetSpeed resets the running
//	ticker in place and keeps the position. Load cancels the session before
//	swapping sequences, and a tick that races with the swap is discarded.
//
// Errors:
//
//	A failing Generator aborts New. On Load the previous sequence stays
//	visible, so a viewer never shows a partially built timeline.
//
// The controller is generic over the step state, so the same type plays
// sorting runs ([]int) and graph, tree or map runs (core.Graph).
package playback

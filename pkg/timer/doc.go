// Package timer implements the monotonic tick source, interval timers, and
// waveform evaluators that gate input and animation (§4.J).
package timer

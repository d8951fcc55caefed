// Package biorhythm implements the pure computation core of the
// application: cycle value math, simplified birthdate day-count
// arithmetic, birthdate validation, and chart sample generation.
//
// Nothing here touches the UI toolkit, the clock, or any other global
// state. Every function is deterministic over its arguments, so the
// package may be called from any goroutine without synchronization.
package biorhythm

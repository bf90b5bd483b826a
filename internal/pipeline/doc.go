// Package pipeline orchestrates a full reconciliation run: parse every
// input decomposition, fold the scale reconciler across them coarsest
// to finest, then emit one filtered, renumbered report set per stage.
//
// The core stays pure and single-threaded; all file I/O and fan-out
// lives here.
package pipeline

// Package scenetag strips trailing scene-release tags (codec, source medium,
// year, distributing group) from filename stems and recovers the release
// group that produced the rip.
//
// Extraction runs a fixed cascade of rules against a progressively shrinking
// working text. Rule order and the per-rule overwrite policies are tuned
// against real-world filenames; both are load-bearing and must not be
// reordered or merged.
package scenetag

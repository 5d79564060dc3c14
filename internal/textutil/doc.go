// Package textutil provides text transforms for filename parsing and display.
//
// The primary use cases are:
//   - Normalizing curly quotes to straight ASCII quotes
//   - Shielding word-internal apostrophes so quoted phrases can be matched safely
//   - Cleaning underscore-separated names into display form
//
// Shielding swaps apostrophes for a placeholder rune before pattern matching
// and restores them afterwards; the round trip is lossless for any input that
// does not already contain the placeholder.
package textutil

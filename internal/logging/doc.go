// Package logging assembles the structured slog loggers used across cratedig
// commands.
//
// It owns the console and JSON handlers, centralizes level plumbing, and
// exposes attribute helpers so scanning code tags log lines consistently.
// Logs default to stderr because stdout is reserved for report output, which
// may be piped or redirected. The package also provides a no-op logger for
// tests and wiring code that cannot fail.
package logging

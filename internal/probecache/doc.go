// Package probecache persists ffprobe summaries between scans.
//
// Probing is by far the slowest part of a scan, so results are keyed by
// (path, size, mtime) and reused when a file has not changed. A file that
// was modified in place misses the cache and is probed again; the upsert on
// the next scan replaces the stale row.
//
// # Storage
//
// The cache is a SQLite database at a configurable path (default:
// ~/.cache/cratedig/probe.db). Opening applies WAL journaling and a busy
// timeout so watch mode and an ad-hoc scan can share the file.
//
// Degraded summaries are never written: callers skip caching when a probe
// fails so a later scan can retry the file.
//
// CLI commands for inspection and management:
//
//	cratedig cache status   # Entry count and database size
//	cratedig cache clear    # Remove all entries
package probecache

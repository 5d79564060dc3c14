// Package scan walks a directory of music videos and turns each file into
// a flat Record combining filename parsing, ffprobe metadata, and
// classification.
//
// The walk is non-recursive and lexicographic. Probing fans out over a
// bounded worker pool; parse and classify are pure and run inline. Results
// always come back in walker order regardless of probe completion order.
//
// Per-file failures never abort a scan: a file that cannot be statted or
// probed still yields a Record with "unknown" fields. Only an invalid root
// or a canceled context returns an error.
package scan

// Package ffprobe shells out to ffprobe and turns its JSON into typed
// results.
//
// Client.Inspect runs the binary and decodes streams plus container
// metadata into a Result. Result.Summary condenses that document into the
// display fields a scan record carries; probe or parse failures degrade to
// UnknownSummary rather than aborting a scan.
//
// Nothing here depends on the rest of cratedig, so the package could be
// lifted out on its own.
package ffprobe

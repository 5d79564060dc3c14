package scan

import (
	"context"

	"cratedig/internal/media/ffprobe"
)

// probeInspect is the ffprobe runner used by the scan package. It is a
// package-level variable so tests can override it.
var probeInspect = func(ctx context.Context, client *ffprobe.Client, path string) (*ffprobe.Result, error) {
	return client.Inspect(ctx, path)
}

// SetProbeForTests overrides the ffprobe runner during tests.
func SetProbeForTests(fn func(context.Context, *ffprobe.Client, string) (*ffprobe.Result, error)) func() {
	previous := probeInspect
	probeInspect = fn
	return func() {
		probeInspect = previous
	}
}

package testsupport

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/pelletier/go-toml/v2"

	"cratedig/internal/config"
)

// ConfigOption adjusts the config NewConfig generates.
type ConfigOption func(*configBuilder)

type configBuilder struct {
	t       testing.TB
	baseDir string
	cfg     *config.Config
}

// NewConfig produces a config seeded with unique temp paths per test. It
// defaults common fields and applies any provided options.
func NewConfig(t testing.TB, opts ...ConfigOption) *config.Config {
	t.Helper()

	base := t.TempDir()
	cfgVal := config.Default()
	cfgVal.Cache.Path = filepath.Join(base, "cache", "probe.db")
	cfgVal.Scan.Concurrency = 2
	cfgVal.Probe.TimeoutSeconds = 10
	cfgVal.Watch.SettleSeconds = 0

	builder := &configBuilder{
		t:       t,
		baseDir: base,
		cfg:     &cfgVal,
	}

	for _, opt := range opts {
		opt(builder)
	}

	return builder.cfg
}

// WithThresholdMinutes overrides the live set threshold on the test config.
func WithThresholdMinutes(minutes int) ConfigOption {
	return func(b *configBuilder) {
		b.cfg.Scan.ThresholdMinutes = minutes
	}
}

// WithCacheDisabled turns the probe cache off on the test config.
func WithCacheDisabled() ConfigOption {
	return func(b *configBuilder) {
		b.cfg.Cache.Enabled = false
	}
}

// WithStubbedFFprobe points the probe binary at a stub executable that
// prints payload on stdout and exits zero.
func WithStubbedFFprobe(payload string) ConfigOption {
	return func(b *configBuilder) {
		b.cfg.Probe.Binary = StubFFprobe(b.t, payload)
	}
}

// StubFFprobe writes an executable that emits payload on stdout regardless
// of arguments and returns its path.
func StubFFprobe(t testing.TB, payload string) string {
	t.Helper()

	dir := t.TempDir()
	target := filepath.Join(dir, "ffprobe")
	script := "#!/bin/sh\ncat <<'PAYLOAD'\n" + payload + "\nPAYLOAD\n"
	if err := os.WriteFile(target, []byte(script), 0o755); err != nil {
		t.Fatalf("write stub ffprobe: %v", err)
	}
	return target
}

// ProbePayload builds a minimal ffprobe JSON document for a stubbed probe.
func ProbePayload(durationSeconds float64) string {
	return fmt.Sprintf(`{
  "streams": [
    {"codec_type": "video", "codec_name": "h264", "width": 1920, "height": 1080, "r_frame_rate": "30/1"},
    {"codec_type": "audio", "codec_name": "aac"}
  ],
  "format": {"duration": "%.1f", "size": "10485760", "bit_rate": "2000000"}
}`, durationSeconds)
}

// WriteConfig marshals cfg to a TOML file in its temp root and returns the
// path for --config flags.
func WriteConfig(t testing.TB, cfg *config.Config) string {
	t.Helper()

	data, err := toml.Marshal(cfg)
	if err != nil {
		t.Fatalf("marshal config: %v", err)
	}
	path := filepath.Join(BaseDir(cfg), "config.toml")
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

// BaseDir recovers the temp directory a generated config is rooted in.
func BaseDir(cfg *config.Config) string {
	return filepath.Dir(filepath.Dir(cfg.Cache.Path))
}

package config

import (
	_ "embed"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/pelletier/go-toml/v2"
)

//go:embed sample_config.toml
var sampleConfig string

// Scan contains configuration for directory scans.
type Scan struct {
	DefaultFormat    string `toml:"default_format"`
	ThresholdMinutes int    `toml:"threshold_minutes"`
	Concurrency      int    `toml:"concurrency"`
}

// Probe contains configuration for the ffprobe integration.
type Probe struct {
	Binary         string `toml:"binary"`
	TimeoutSeconds int    `toml:"timeout_seconds"`
}

// Cache contains configuration for the probe result cache.
type Cache struct {
	Enabled bool   `toml:"enabled"`
	Path    string `toml:"path"`
}

// Log contains configuration for log output.
type Log struct {
	Level  string `toml:"level"`
	Format string `toml:"format"`
}

// Watch contains configuration for watch mode.
type Watch struct {
	SettleSeconds int `toml:"settle_seconds"`
}

// Config encapsulates all configuration values for cratedig.
//
// Sections:
//   - Scan: output format, live-set threshold, and probe concurrency
//   - Probe: ffprobe binary name and per-file timeout
//   - Cache: probe result cache toggle and database path
//   - Log: log format and level
//   - Watch: settle delay for files still being written
type Config struct {
	Scan  Scan  `toml:"scan"`
	Probe Probe `toml:"probe"`
	Cache Cache `toml:"cache"`
	Log   Log   `toml:"log"`
	Watch Watch `toml:"watch"`
}

// DefaultConfigPath returns the absolute path to the default configuration
// file location.
func DefaultConfigPath() (string, error) {
	return expandPath("~/.config/cratedig/config.toml")
}

// Load locates, parses, and validates a configuration file. The returned
// config has all path fields expanded and normalized. A missing file yields
// the defaults.
func Load(path string) (*Config, string, bool, error) {
	cfg := Default()

	resolvedPath, exists, err := resolveConfigPath(path)
	if err != nil {
		return nil, "", false, err
	}

	if exists {
		raw, err := os.ReadFile(resolvedPath)
		if err != nil {
			return nil, "", false, fmt.Errorf("read %s: %w", resolvedPath, err)
		}
		if err := toml.Unmarshal(raw, &cfg); err != nil {
			return nil, "", false, fmt.Errorf("parse %s: %w", resolvedPath, err)
		}
	}

	if err := cfg.normalize(); err != nil {
		return nil, "", false, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, "", false, err
	}

	return &cfg, resolvedPath, exists, nil
}

// resolveConfigPath picks the config file to read. An explicit path wins
// whether or not it exists; otherwise the default location is tried first,
// then a cratedig.toml in the working directory.
func resolveConfigPath(path string) (string, bool, error) {
	if path != "" {
		expanded, err := expandPath(path)
		if err != nil {
			return "", false, err
		}
		_, statErr := os.Stat(expanded)
		switch {
		case statErr == nil:
			return expanded, true, nil
		case errors.Is(statErr, fs.ErrNotExist):
			return expanded, false, nil
		default:
			return "", false, fmt.Errorf("stat config: %w", statErr)
		}
	}

	defaultPath, err := DefaultConfigPath()
	if err != nil {
		return "", false, err
	}
	projectPath, err := filepath.Abs("cratedig.toml")
	if err != nil {
		return "", false, err
	}

	for _, candidate := range []string{defaultPath, projectPath} {
		if info, err := os.Stat(candidate); err == nil && !info.IsDir() {
			return candidate, true, nil
		}
	}
	return defaultPath, false, nil
}

// FFprobeBinary returns the ffprobe executable name or path.
func (c *Config) FFprobeBinary() string {
	return c.Probe.Binary
}

// ProbeTimeout returns the per-file ffprobe timeout.
func (c *Config) ProbeTimeout() time.Duration {
	return time.Duration(c.Probe.TimeoutSeconds) * time.Second
}

// ThresholdSeconds returns the live-set duration threshold in seconds.
func (c *Config) ThresholdSeconds() int {
	return c.Scan.ThresholdMinutes * 60
}

// SettleDelay returns how long watch mode waits after the last write event
// before processing a file.
func (c *Config) SettleDelay() time.Duration {
	return time.Duration(c.Watch.SettleSeconds) * time.Second
}

// expandPath turns "~" and "~/..." into the user's home directory and makes
// the result absolute. Other "~user" forms pass through untouched.
func expandPath(pathValue string) (string, error) {
	if pathValue == "" {
		return pathValue, nil
	}
	if rest, ok := strings.CutPrefix(pathValue, "~"); ok {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("find home directory: %w", err)
		}
		switch {
		case rest == "":
			pathValue = home
		case rest[0] == '/' || rest[0] == '\\':
			pathValue = filepath.Join(home, rest[1:])
		}
	}
	absolute, err := filepath.Abs(pathValue)
	if err != nil {
		return "", fmt.Errorf("make %q absolute: %w", pathValue, err)
	}
	return absolute, nil
}

// ExpandPath applies the same tilde and absolute-path expansion the loader
// uses, for callers resolving user-supplied paths.
func ExpandPath(pathValue string) (string, error) {
	return expandPath(pathValue)
}

func defaultCachePath() string {
	if base, ok := os.LookupEnv("XDG_CACHE_HOME"); ok && strings.TrimSpace(base) != "" {
		return filepath.Join(base, "cratedig", "probe.db")
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "~/.cache/cratedig/probe.db"
	}
	return filepath.Join(home, ".cache", "cratedig", "probe.db")
}

// CreateSample writes the embedded sample configuration to path, creating
// parent directories as needed.
func CreateSample(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create %s: %w", filepath.Dir(path), err)
	}
	if err := os.WriteFile(path, []byte(sampleConfig), 0o644); err != nil {
		return fmt.Errorf("write sample config %s: %w", path, err)
	}
	return nil
}

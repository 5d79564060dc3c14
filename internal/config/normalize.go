package config

import (
	"fmt"
	"strings"
)

func (c *Config) normalize() error {
	c.normalizeScan()
	c.normalizeProbe()
	if err := c.normalizeCache(); err != nil {
		return err
	}
	c.normalizeLog()
	return nil
}

func (c *Config) normalizeScan() {
	c.Scan.DefaultFormat = strings.ToLower(strings.TrimSpace(c.Scan.DefaultFormat))
	if c.Scan.DefaultFormat == "" {
		c.Scan.DefaultFormat = defaultScanFormat
	}
}

func (c *Config) normalizeProbe() {
	c.Probe.Binary = strings.TrimSpace(c.Probe.Binary)
	if c.Probe.Binary == "" {
		c.Probe.Binary = defaultProbeBinary
	}
}

func (c *Config) normalizeCache() error {
	var err error
	if strings.TrimSpace(c.Cache.Path) == "" {
		c.Cache.Path = defaultCachePath()
	}
	if c.Cache.Path, err = expandPath(c.Cache.Path); err != nil {
		return fmt.Errorf("cache.path: %w", err)
	}
	return nil
}

func (c *Config) normalizeLog() {
	c.Log.Format = strings.ToLower(strings.TrimSpace(c.Log.Format))
	switch c.Log.Format {
	case "", "console":
		c.Log.Format = "console"
	case "json":
	default:
		c.Log.Format = "console"
	}
	c.Log.Level = strings.ToLower(strings.TrimSpace(c.Log.Level))
	if c.Log.Level == "" {
		c.Log.Level = defaultLogLevel
	}
}

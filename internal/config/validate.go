package config

import (
	"fmt"
	"strings"
)

// Validate ensures the configuration is usable. All problems are collected
// into a single error so the user can fix the file in one pass.
func (c *Config) Validate() error {
	var issues []string

	switch c.Scan.DefaultFormat {
	case "table", "csv", "json":
	default:
		issues = append(issues, fmt.Sprintf("scan.default_format must be one of table, csv, json (got %q)", c.Scan.DefaultFormat))
	}
	if c.Scan.ThresholdMinutes <= 0 {
		issues = append(issues, "scan.threshold_minutes must be positive")
	}
	if c.Scan.Concurrency <= 0 {
		issues = append(issues, "scan.concurrency must be positive")
	}
	if c.Probe.TimeoutSeconds <= 0 {
		issues = append(issues, "probe.timeout_seconds must be positive")
	}
	if c.Cache.Enabled && strings.TrimSpace(c.Cache.Path) == "" {
		issues = append(issues, "cache.path must be set when cache.enabled is true")
	}
	if c.Watch.SettleSeconds < 0 {
		issues = append(issues, "watch.settle_seconds must be >= 0")
	}

	if len(issues) > 0 {
		return fmt.Errorf("invalid configuration: %s", strings.Join(issues, "; "))
	}
	return nil
}

package config

const (
	defaultScanFormat       = "table"
	defaultThresholdMinutes = 45
	defaultConcurrency      = 4
	defaultProbeBinary      = "ffprobe"
	defaultProbeTimeout     = 60
	defaultCacheEnabled     = true
	defaultLogFormat        = "console"
	defaultLogLevel         = "info"
	defaultSettleSeconds    = 2
)

// Default returns a Config populated with repository defaults.
func Default() Config {
	return Config{
		Scan: Scan{
			DefaultFormat:    defaultScanFormat,
			ThresholdMinutes: defaultThresholdMinutes,
			Concurrency:      defaultConcurrency,
		},
		Probe: Probe{
			Binary:         defaultProbeBinary,
			TimeoutSeconds: defaultProbeTimeout,
		},
		Cache: Cache{
			Enabled: defaultCacheEnabled,
			Path:    defaultCachePath(),
		},
		Log: Log{
			Format: defaultLogFormat,
			Level:  defaultLogLevel,
		},
		Watch: Watch{
			SettleSeconds: defaultSettleSeconds,
		},
	}
}

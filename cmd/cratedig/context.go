package main

import (
	"log/slog"
	"strings"
	"sync"

	"github.com/spf13/cobra"

	"cratedig/internal/config"
	"cratedig/internal/logging"
	"cratedig/internal/media/ffprobe"
	"cratedig/internal/probecache"
	"cratedig/internal/scan"
)

type commandContext struct {
	configFlag   *string
	noCacheFlag  *bool
	logLevelFlag *string

	configOnce sync.Once
	config     *config.Config
	configErr  error

	loggerOnce sync.Once
	logger     *slog.Logger
	loggerErr  error
}

func newCommandContext(configFlag *string, noCacheFlag *bool, logLevelFlag *string) *commandContext {
	return &commandContext{
		configFlag:   configFlag,
		noCacheFlag:  noCacheFlag,
		logLevelFlag: logLevelFlag,
	}
}

func (c *commandContext) configPath() string {
	if c.configFlag == nil {
		return ""
	}
	return strings.TrimSpace(*c.configFlag)
}

func (c *commandContext) ensureConfig() (*config.Config, error) {
	c.configOnce.Do(func() {
		cfg, _, _, err := config.Load(c.configPath())
		if err != nil {
			c.configErr = err
			return
		}
		c.config = cfg
	})
	return c.config, c.configErr
}

// ensureLogger builds the process logger once. The --log-level flag wins
// over the configured level.
func (c *commandContext) ensureLogger() (*slog.Logger, error) {
	c.loggerOnce.Do(func() {
		cfg, err := c.ensureConfig()
		if err != nil {
			c.loggerErr = err
			return
		}
		level := cfg.Log.Level
		if c.logLevelFlag != nil && strings.TrimSpace(*c.logLevelFlag) != "" {
			level = strings.TrimSpace(*c.logLevelFlag)
		}
		logger, err := logging.New(logging.Options{Level: level, Format: cfg.Log.Format})
		if err != nil {
			c.loggerErr = err
			return
		}
		c.logger = logger
	})
	return c.logger, c.loggerErr
}

func (c *commandContext) cacheEnabled() bool {
	cfg, err := c.ensureConfig()
	if err != nil || cfg == nil {
		return false
	}
	if c.noCacheFlag != nil && *c.noCacheFlag {
		return false
	}
	return cfg.Cache.Enabled
}

// openCache returns the probe cache store, or nil when caching is off or the
// database cannot be opened. Open failures degrade to uncached scans.
func (c *commandContext) openCache(logger *slog.Logger) *probecache.Store {
	if !c.cacheEnabled() {
		return nil
	}
	cfg, err := c.ensureConfig()
	if err != nil {
		return nil
	}
	store, err := probecache.Open(cfg.Cache.Path, logger)
	if err != nil {
		logger.Warn("probe cache unavailable, scanning without it",
			logging.String(logging.FieldPath, cfg.Cache.Path),
			logging.Error(err))
		return nil
	}
	return store
}

// newScanner assembles a scanner from the loaded config, the given cache
// (may be nil), and the effective live set threshold.
func (c *commandContext) newScanner(logger *slog.Logger, cache *probecache.Store, thresholdSeconds int) (*scan.Scanner, error) {
	cfg, err := c.ensureConfig()
	if err != nil {
		return nil, err
	}
	return scan.New(scan.Options{
		Probe:            ffprobe.New(ffprobe.WithBinary(cfg.FFprobeBinary())),
		Cache:            cache,
		Logger:           logger,
		ThresholdSeconds: thresholdSeconds,
		ProbeTimeout:     cfg.ProbeTimeout(),
		Concurrency:      cfg.Scan.Concurrency,
	}), nil
}

func shouldSkipConfig(cmd *cobra.Command) bool {
	for c := cmd; c != nil; c = c.Parent() {
		if c.Annotations != nil && c.Annotations["skipConfigLoad"] == "true" {
			return true
		}
	}
	return false
}

// Package config loads, normalizes, and validates cratedig configuration.
//
// It supplies repository defaults, expands user paths (including tilde
// shortcuts), and reads TOML files. A missing config file is not an error:
// the defaults describe a working setup. The Config type centralizes every
// knob the scan, watch, and cache commands need.
//
// Always obtain settings through this package so downstream code receives
// sanitized paths, canonical format names, and clear validation errors.
package config

// Package config loads, normalizes, and validates scorecard configuration.
//
// It supplies repository defaults, expands user paths (including tilde
// shortcuts), reads TOML files, and honours the SCORECARD_CONFIG environment
// fallback for the config location. The Config type centralizes every knob
// the CLI needs: the team of interest, grid shape, output format, clipboard
// behavior, and logging.
//
// Always obtain settings through this package so downstream code receives
// sanitized paths, canonical enum values, and clear validation errors.
package config

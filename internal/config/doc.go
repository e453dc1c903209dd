// Package config loads, normalizes, and validates tidy configuration data.
//
// It supplies repository defaults (including the default category table),
// expands user paths (including tilde shortcuts), reads TOML files, and honours
// environment fallbacks such as TIDY_STATE_DIR and TIDY_LOG_LEVEL. The Config
// type centralizes every knob the CLI needs so the organizer, journal, and run
// lock are wired from one pass.
//
// Always obtain settings through this package so downstream code receives
// sanitized paths, canonical category labels, and clear validation errors.
package config

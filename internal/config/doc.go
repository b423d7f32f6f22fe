// Package config loads, normalizes, and validates tvscript configuration.
//
// It supplies repository defaults, expands user paths (including tilde
// shortcuts), and reads TOML files. The Config type centralizes every knob
// the cache, the transcript model, and the CLI need, so cache directories,
// freshness windows, and fetch behavior are discovered in one pass.
//
// Always obtain settings through this package so downstream code receives
// sanitized paths, canonical log formats, and clear validation errors.
package config

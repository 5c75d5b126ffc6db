// Package config loads, normalizes, and validates scrollsub configuration.
//
// It supplies defaults, expands user paths (including tilde shortcuts), reads
// TOML files while rejecting unknown keys, and converts the [layout] section
// into the layout.Config record the converter consumes. Every recognized
// option is listed on the Config type; nothing is merged in dynamically.
//
// Always obtain settings through this package so the CLI and the converter
// see the same sanitized values and the same validation errors.
package config

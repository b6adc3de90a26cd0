// Package config loads, normalizes, and validates gorender configuration
// data.
//
// It supplies repository defaults, expands user paths (including tilde
// shortcuts), reads TOML files, and generates a device UUID when none is
// configured. The Config type centralizes every knob the renderer shell and
// CLI need: log and state file locations, the debug level threshold, and the
// advertised device identity.
//
// Always obtain settings through this package so downstream code receives
// sanitized absolute paths and clear validation errors.
package config

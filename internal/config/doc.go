// Package config loads, normalizes, and validates the TOML configuration
// file that controls directories, API settings, codec choices, and logging.
package config

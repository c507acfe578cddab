// Package logging builds slog loggers with the console and JSON handlers
// shared across the CLI, plus the standardized attribute keys the pipeline
// components tag their records with.
package logging

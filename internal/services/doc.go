// Package services defines the shared error taxonomy used by the pipeline
// stages and the helper that attaches stage context to failures.
package services

package services

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrExtraction marks failures while demuxing audio out of a video container.
	ErrExtraction = errors.New("extraction error")
	// ErrAuthentication marks a missing or rejected API key.
	ErrAuthentication = errors.New("authentication error")
	// ErrService marks a non-success response from the voice isolation API.
	ErrService = errors.New("service error")
	// ErrNetwork marks transport-level failures reaching the isolation API.
	ErrNetwork = errors.New("network error")
	// ErrMerge marks failures while remuxing cleaned audio into the container.
	ErrMerge = errors.New("merge error")
	// ErrFileExists marks an output collision when overwrite is disabled.
	ErrFileExists = errors.New("output already exists")
	// ErrDirectory marks a missing or unreadable batch input directory.
	ErrDirectory = errors.New("directory error")
	// ErrConfiguration marks unusable configuration values.
	ErrConfiguration = errors.New("configuration error")
	// ErrExternalTool marks an unavailable or misbehaving external binary.
	ErrExternalTool = errors.New("external tool error")
)

// Wrap builds an error message that includes stage context while tagging it
// with the provided marker for later classification. The marker should be one
// of the exported sentinel errors above.
func Wrap(marker error, stage, operation, message string, err error) error {
	detail := buildDetail(stage, operation, message)
	if marker == nil {
		marker = ErrExternalTool
	}
	if err != nil {
		return fmt.Errorf("%w: %s: %w", marker, detail, err)
	}
	return fmt.Errorf("%w: %s", marker, detail)
}

func buildDetail(stage, operation, message string) string {
	parts := make([]string, 0, 3)
	if stage = strings.TrimSpace(stage); stage != "" {
		parts = append(parts, stage)
	}
	if operation = strings.TrimSpace(operation); operation != "" {
		parts = append(parts, operation)
	}
	if message = strings.TrimSpace(message); message != "" {
		parts = append(parts, message)
	}
	if len(parts) == 0 {
		return "service failure"
	}
	return strings.Join(parts, ": ")
}

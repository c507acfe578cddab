package processor

import (
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

// Job describes one video to process.
type Job struct {
	ID         uuid.UUID
	InputPath  string
	OutputPath string
	VideoCodec string
	KeepTemp   bool
	Overwrite  bool
}

// NewJob builds a job for inputPath. An empty outputPath falls back to the
// default naming next to the input.
func NewJob(inputPath, outputPath, suffix string) *Job {
	if outputPath == "" {
		outputPath = DefaultOutputPath(inputPath, suffix)
	}
	return &Job{
		ID:         uuid.New(),
		InputPath:  inputPath,
		OutputPath: outputPath,
	}
}

// DefaultOutputPath appends suffix to the input's stem, keeping the directory
// and container extension: /videos/talk.mp4 becomes /videos/talk_clean.mp4.
func DefaultOutputPath(inputPath, suffix string) string {
	dir := filepath.Dir(inputPath)
	base := filepath.Base(inputPath)
	ext := filepath.Ext(base)
	stem := strings.TrimSuffix(base, ext)
	return filepath.Join(dir, stem+suffix+ext)
}

package ffmpeg

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"voiceclean/internal/config"
	"voiceclean/internal/logging"
	"voiceclean/internal/services"
)

// Merger remuxes the original video stream with a replacement audio stream
// into a new container by invoking ffmpeg.
type Merger struct {
	binary       string
	audioCodec   string
	audioBitrate string
	exec         Executor
	logger       *slog.Logger
}

// MergeOptions controls a single merge invocation.
type MergeOptions struct {
	// VideoCodec is passed through to ffmpeg's -c:v. "copy" (the default when
	// empty) remuxes the video stream without re-encoding.
	VideoCodec string
	// Overwrite allows replacing an existing output file.
	Overwrite bool
}

// MergerOption configures the merger.
type MergerOption func(*Merger)

// WithMergerExecutor injects a custom executor (primarily for tests).
func WithMergerExecutor(exec Executor) MergerOption {
	return func(m *Merger) {
		if exec != nil {
			m.exec = exec
		}
	}
}

// NewMerger constructs a merger from configuration.
func NewMerger(cfg *config.Config, logger *slog.Logger, opts ...MergerOption) *Merger {
	merger := &Merger{
		binary:       cfg.FFmpegBinary(),
		audioCodec:   cfg.Merge.AudioCodec,
		audioBitrate: cfg.Merge.AudioBitrate,
		exec:         commandExecutor{},
		logger:       logging.WithComponent(logger, "merger"),
	}
	for _, opt := range opts {
		opt(merger)
	}
	return merger
}

// Merge combines the video stream of videoPath with the audio stream of
// audioPath into outputPath. When the output exists and overwrite is off it
// fails before invoking ffmpeg.
func (m *Merger) Merge(ctx context.Context, videoPath, audioPath, outputPath string, opts MergeOptions) (string, error) {
	if _, err := os.Stat(videoPath); err != nil {
		return "", services.Wrap(services.ErrMerge, "merge", "stat video", fmt.Sprintf("video file not found: %s", videoPath), err)
	}
	if _, err := os.Stat(audioPath); err != nil {
		return "", services.Wrap(services.ErrMerge, "merge", "stat audio", fmt.Sprintf("audio file not found: %s", audioPath), err)
	}
	if _, err := os.Stat(outputPath); err == nil && !opts.Overwrite {
		return "", services.Wrap(services.ErrFileExists, "merge", "", fmt.Sprintf("output file already exists: %s (use --overwrite)", outputPath), nil)
	}
	if dir := filepath.Dir(outputPath); dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return "", services.Wrap(services.ErrMerge, "merge", "create output directory", "", err)
		}
	}

	codec := strings.TrimSpace(opts.VideoCodec)
	if codec == "" {
		codec = "copy"
	}

	args := []string{
		"-y",
		"-loglevel", "error",
		"-i", videoPath,
		"-i", audioPath,
		"-map", "0:v:0",
		"-map", "1:a:0",
		"-c:v", codec,
		"-c:a", m.audioCodec,
		"-b:a", m.audioBitrate,
		"-map_metadata", "0",
		outputPath,
	}
	m.logger.Debug("merging streams",
		logging.String(logging.FieldInput, videoPath),
		logging.String("audio", audioPath),
		logging.String(logging.FieldOutput, outputPath),
		logging.String("video_codec", codec),
	)

	output, err := m.exec.Run(ctx, m.binary, args)
	if err != nil {
		return "", services.Wrap(services.ErrMerge, "merge", "ffmpeg", output, err)
	}
	return outputPath, nil
}

package ffmpeg

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"voiceclean/internal/config"
	"voiceclean/internal/logging"
	"voiceclean/internal/media/ffprobe"
	"voiceclean/internal/services"
)

// Extractor demuxes the audio track of a video container into a standalone
// audio file by invoking ffmpeg.
type Extractor struct {
	binary      string
	probeBinary string
	codec       string
	bitrate     string
	channels    int
	exec        Executor
	inspect     ffprobe.InspectFunc
	logger      *slog.Logger
}

// ExtractorOption configures the extractor.
type ExtractorOption func(*Extractor)

// WithExtractorExecutor injects a custom executor (primarily for tests).
func WithExtractorExecutor(exec Executor) ExtractorOption {
	return func(e *Extractor) {
		if exec != nil {
			e.exec = exec
		}
	}
}

// WithExtractorInspector injects a custom ffprobe inspection function.
func WithExtractorInspector(inspect ffprobe.InspectFunc) ExtractorOption {
	return func(e *Extractor) {
		if inspect != nil {
			e.inspect = inspect
		}
	}
}

// NewExtractor constructs an extractor from configuration.
func NewExtractor(cfg *config.Config, logger *slog.Logger, opts ...ExtractorOption) *Extractor {
	extractor := &Extractor{
		binary:      cfg.FFmpegBinary(),
		probeBinary: cfg.FFprobeBinary(),
		codec:       cfg.Extraction.AudioCodec,
		bitrate:     cfg.Extraction.AudioBitrate,
		channels:    cfg.Extraction.AudioChannels,
		exec:        commandExecutor{},
		inspect:     ffprobe.Inspect,
		logger:      logging.WithComponent(logger, "extractor"),
	}
	for _, opt := range opts {
		opt(extractor)
	}
	return extractor
}

// Extract demuxes the audio stream of videoPath into audioPath, overwriting
// any existing file there. It fails before invoking ffmpeg when the input is
// missing or carries no audio stream. Single attempt, no retry.
func (e *Extractor) Extract(ctx context.Context, videoPath, audioPath string) (string, error) {
	if _, err := os.Stat(videoPath); err != nil {
		return "", services.Wrap(services.ErrExtraction, "extract", "stat input", fmt.Sprintf("video file not found: %s", videoPath), err)
	}

	probe, err := e.inspect(ctx, e.probeBinary, videoPath)
	if err != nil {
		return "", services.Wrap(services.ErrExtraction, "extract", "probe input", "", err)
	}
	if probe.AudioStreamCount() == 0 {
		return "", services.Wrap(services.ErrExtraction, "extract", "probe input", fmt.Sprintf("no audio stream in %s", videoPath), nil)
	}

	args := []string{
		"-y",
		"-loglevel", "error",
		"-i", videoPath,
		"-vn",
		"-acodec", e.codec,
		"-ab", e.bitrate,
		"-ac", strconv.Itoa(e.channels),
		audioPath,
	}
	e.logger.Debug("extracting audio",
		logging.String(logging.FieldInput, videoPath),
		logging.String(logging.FieldOutput, audioPath),
		logging.String("command", e.binary+" "+strings.Join(args, " ")),
	)

	output, err := e.exec.Run(ctx, e.binary, args)
	if err != nil {
		return "", services.Wrap(services.ErrExtraction, "extract", "ffmpeg", output, err)
	}
	return audioPath, nil
}

// Package batch discovers videos in a directory and processes them
// sequentially, continuing past per-file failures so one bad video never
// blocks the rest of the run.
package batch

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/gofrs/flock"

	"voiceclean/internal/config"
	"voiceclean/internal/logging"
	"voiceclean/internal/processor"
	"voiceclean/internal/services"
)

const lockFileName = ".voiceclean.lock"

var videoExtensions = map[string]struct{}{
	".mp4":  {},
	".avi":  {},
	".mov":  {},
	".mkv":  {},
	".webm": {},
}

// VideoProcessor runs one job to completion.
type VideoProcessor interface {
	Process(ctx context.Context, job *processor.Job) (string, error)
}

// Options controls one batch run.
type Options struct {
	InputDir   string
	OutputDir  string
	VideoCodec string
	KeepTemp   bool
	Overwrite  bool
}

// Entry is the outcome for one discovered video.
type Entry struct {
	Input  string
	Output string
	Err    error
}

// Result aggregates per-file outcomes for a batch run.
type Result struct {
	Entries []Entry
}

// Succeeded counts entries that completed without error.
func (r Result) Succeeded() int {
	count := 0
	for _, entry := range r.Entries {
		if entry.Err == nil {
			count++
		}
	}
	return count
}

// Failed counts entries that ended in an error.
func (r Result) Failed() int {
	return len(r.Entries) - r.Succeeded()
}

// Runner executes batch runs against a directory of videos.
type Runner struct {
	proc   VideoProcessor
	suffix string
	subdir string
	logger *slog.Logger
}

// NewRunner builds a batch runner around the given processor.
func NewRunner(cfg *config.Config, proc VideoProcessor, logger *slog.Logger) *Runner {
	return &Runner{
		proc:   proc,
		suffix: cfg.Output.Suffix,
		subdir: cfg.Output.BatchSubdir,
		logger: logging.WithComponent(logger, "batch"),
	}
}

// Discover lists the supported video files directly under dir, in the name
// order os.ReadDir reports. Subdirectories are not descended into.
func Discover(dir string) ([]string, error) {
	info, err := os.Stat(dir)
	if err != nil {
		return nil, services.Wrap(services.ErrDirectory, "batch", "stat input directory", "", err)
	}
	if !info.IsDir() {
		return nil, services.Wrap(services.ErrDirectory, "batch", "", fmt.Sprintf("not a directory: %s", dir), nil)
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, services.Wrap(services.ErrDirectory, "batch", "read input directory", "", err)
	}

	var videos []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		ext := strings.ToLower(filepath.Ext(entry.Name()))
		if _, ok := videoExtensions[ext]; !ok {
			continue
		}
		videos = append(videos, filepath.Join(dir, entry.Name()))
	}
	return videos, nil
}

// Run processes every supported video under opts.InputDir. Per-file failures
// are collected in the result; the returned error covers run-level problems
// only (bad directory, lock contention).
func (r *Runner) Run(ctx context.Context, opts Options) (Result, error) {
	videos, err := Discover(opts.InputDir)
	if err != nil {
		return Result{}, err
	}

	outputDir := opts.OutputDir
	if outputDir == "" {
		outputDir = filepath.Join(opts.InputDir, r.subdir)
	}
	if err := os.MkdirAll(outputDir, 0o755); err != nil {
		return Result{}, services.Wrap(services.ErrDirectory, "batch", "create output directory", "", err)
	}

	lock := flock.New(filepath.Join(outputDir, lockFileName))
	ok, err := lock.TryLock()
	if err != nil {
		return Result{}, services.Wrap(services.ErrDirectory, "batch", "acquire lock", "", err)
	}
	if !ok {
		return Result{}, services.Wrap(services.ErrDirectory, "batch", "",
			fmt.Sprintf("another run is already processing %s", outputDir), nil)
	}
	defer func() { _ = lock.Unlock() }()

	if len(videos) == 0 {
		r.logger.Info("no supported video files found",
			logging.String("directory", opts.InputDir),
		)
		return Result{}, nil
	}
	r.logger.Info("starting batch run",
		logging.String("directory", opts.InputDir),
		logging.String("output_directory", outputDir),
		logging.Int("videos", len(videos)),
	)

	result := Result{Entries: make([]Entry, 0, len(videos))}
	for _, video := range videos {
		output := filepath.Join(outputDir, filepath.Base(processor.DefaultOutputPath(video, r.suffix)))
		job := processor.NewJob(video, output, r.suffix)
		job.VideoCodec = opts.VideoCodec
		job.KeepTemp = opts.KeepTemp
		job.Overwrite = opts.Overwrite

		_, procErr := r.proc.Process(ctx, job)
		result.Entries = append(result.Entries, Entry{Input: video, Output: output, Err: procErr})
		if procErr != nil {
			r.logger.Warn("video failed, continuing",
				logging.String(logging.FieldInput, video),
				logging.Error(procErr),
			)
		}
	}

	r.logger.Info("batch run finished",
		logging.Int("succeeded", result.Succeeded()),
		logging.Int("failed", result.Failed()),
	)
	return result, nil
}

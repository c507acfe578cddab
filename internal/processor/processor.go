package processor

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"voiceclean/internal/config"
	"voiceclean/internal/fileutil"
	"voiceclean/internal/history"
	"voiceclean/internal/logging"
	"voiceclean/internal/media/ffmpeg"
	"voiceclean/internal/services"
	"voiceclean/internal/textutil"
)

// keepTempDirName is the directory next to the input where intermediate audio
// is preserved when a job requests it.
const keepTempDirName = "temp_files"

// Extractor demuxes a video's audio track into a standalone file.
type Extractor interface {
	Extract(ctx context.Context, videoPath, audioPath string) (string, error)
}

// Isolator removes background noise from an audio file, returning the cleaned
// audio bytes.
type Isolator interface {
	Isolate(ctx context.Context, audioPath string) ([]byte, error)
}

// Merger remuxes a video stream with a replacement audio stream.
type Merger interface {
	Merge(ctx context.Context, videoPath, audioPath, outputPath string, opts ffmpeg.MergeOptions) (string, error)
}

// Recorder persists finished jobs. A nil recorder disables bookkeeping.
type Recorder interface {
	Record(ctx context.Context, entry history.Entry) error
}

// Processor drives one video through extract, isolate, merge, and cleanup.
// Stages run sequentially with a single attempt each; the first failure stops
// forward progress and routes the job through cleanup.
type Processor struct {
	extractor   Extractor
	isolator    Isolator
	merger      Merger
	recorder    Recorder
	tempDir     string
	audioFormat string
	logger      *slog.Logger
}

// New wires a processor from its stage implementations.
func New(cfg *config.Config, extractor Extractor, isolator Isolator, merger Merger, recorder Recorder, logger *slog.Logger) *Processor {
	return &Processor{
		extractor:   extractor,
		isolator:    isolator,
		merger:      merger,
		recorder:    recorder,
		tempDir:     cfg.Paths.TempDir,
		audioFormat: cfg.Extraction.AudioFormat,
		logger:      logging.WithComponent(logger, "processor"),
	}
}

// workspace holds the per-job scratch paths. The directory name embeds the
// job ID so concurrent invocations never collide.
type workspace struct {
	dir           string
	rawAudio      string
	isolatedAudio string
}

func (p *Processor) newWorkspace(job *Job) workspace {
	stem := strings.TrimSuffix(filepath.Base(job.InputPath), filepath.Ext(job.InputPath))
	dir := filepath.Join(p.tempDir, "voiceclean-"+job.ID.String())
	return workspace{
		dir:           dir,
		rawAudio:      filepath.Join(dir, stem+"."+p.audioFormat),
		isolatedAudio: filepath.Join(dir, stem+"_isolated."+p.audioFormat),
	}
}

// Process runs the job to completion and returns the output path. The
// workspace is removed before returning regardless of outcome; only the
// pre-stage checks in Init skip cleanup because nothing was created yet.
func (p *Processor) Process(ctx context.Context, job *Job) (string, error) {
	start := time.Now()
	ws := p.newWorkspace(job)
	logger := p.logger.With(logging.String(logging.FieldJobID, job.ID.String()))

	state := StateInit
	var procErr error
	for !state.terminal() {
		logger.Debug("entering stage",
			logging.String(logging.FieldStage, state.String()),
			logging.String(logging.FieldInput, job.InputPath),
		)
		next, err := p.step(ctx, job, ws, logger, state)
		if err != nil {
			if procErr == nil {
				procErr = err
			}
			if state == StateInit {
				next = StateAborted
			} else {
				next = StateCleanup
			}
		}
		if next == StateDone && procErr != nil {
			next = StateAborted
		}
		state = next
	}

	p.record(ctx, job, procErr, time.Since(start))

	if procErr != nil {
		logger.Error("processing failed",
			logging.String(logging.FieldInput, job.InputPath),
			logging.Error(procErr),
		)
		return "", procErr
	}
	logger.Info("processing complete",
		logging.String(logging.FieldInput, job.InputPath),
		logging.String(logging.FieldOutput, job.OutputPath),
		logging.Duration("elapsed", time.Since(start)),
	)
	return job.OutputPath, nil
}

// step executes one stage and names its successor. Failure routing back to
// cleanup lives in Process, not here.
func (p *Processor) step(ctx context.Context, job *Job, ws workspace, logger *slog.Logger, state State) (State, error) {
	switch state {
	case StateInit:
		if err := p.initJob(job, ws); err != nil {
			return StateAborted, err
		}
		return StateExtracting, nil
	case StateExtracting:
		if _, err := p.extractor.Extract(ctx, job.InputPath, ws.rawAudio); err != nil {
			return StateCleanup, err
		}
		return StateIsolating, nil
	case StateIsolating:
		cleaned, err := p.isolator.Isolate(ctx, ws.rawAudio)
		if err != nil {
			return StateCleanup, err
		}
		if err := os.WriteFile(ws.isolatedAudio, cleaned, 0o644); err != nil {
			return StateCleanup, services.Wrap(services.ErrService, "isolate", "write cleaned audio", "", err)
		}
		return StateMerging, nil
	case StateMerging:
		opts := ffmpeg.MergeOptions{VideoCodec: job.VideoCodec, Overwrite: job.Overwrite}
		if _, err := p.merger.Merge(ctx, job.InputPath, ws.isolatedAudio, job.OutputPath, opts); err != nil {
			return StateCleanup, err
		}
		return StateCleanup, nil
	case StateCleanup:
		p.cleanup(job, ws, logger)
		return StateDone, nil
	default:
		return StateAborted, fmt.Errorf("unexpected pipeline state %s", state)
	}
}

// initJob validates the input and output before any stage runs so a doomed
// job never touches ffmpeg or the network.
func (p *Processor) initJob(job *Job, ws workspace) error {
	info, err := os.Stat(job.InputPath)
	if err != nil {
		return services.Wrap(services.ErrExtraction, "init", "stat input", fmt.Sprintf("video file not found: %s", job.InputPath), err)
	}
	if info.IsDir() {
		return services.Wrap(services.ErrExtraction, "init", "", fmt.Sprintf("input is a directory: %s", job.InputPath), nil)
	}
	if _, err := os.Stat(job.OutputPath); err == nil && !job.Overwrite {
		return services.Wrap(services.ErrFileExists, "init", "", fmt.Sprintf("output file already exists: %s (use --overwrite)", job.OutputPath), nil)
	}
	if err := os.MkdirAll(ws.dir, 0o755); err != nil {
		return services.Wrap(services.ErrConfiguration, "init", "create workspace", "", err)
	}
	return nil
}

// cleanup optionally exports intermediates, then removes the workspace. All
// failures here are warnings; the job outcome was decided by earlier stages.
func (p *Processor) cleanup(job *Job, ws workspace, logger *slog.Logger) {
	if job.KeepTemp {
		p.exportIntermediates(job, ws, logger)
	}
	if err := os.RemoveAll(ws.dir); err != nil {
		logger.Warn("failed to remove workspace",
			logging.String("workspace", ws.dir),
			logging.Error(err),
		)
	}
}

// exportIntermediates copies whichever intermediate files exist into a
// temp_files directory next to the input. Re-running the same job overwrites
// the previous copies rather than accumulating duplicates.
func (p *Processor) exportIntermediates(job *Job, ws workspace, logger *slog.Logger) {
	keepDir := filepath.Join(filepath.Dir(job.InputPath), keepTempDirName)
	if err := os.MkdirAll(keepDir, 0o755); err != nil {
		logger.Warn("failed to create temp_files directory",
			logging.String("directory", keepDir),
			logging.Error(err),
		)
		return
	}
	for _, src := range []string{ws.rawAudio, ws.isolatedAudio} {
		if _, err := os.Stat(src); err != nil {
			continue
		}
		dst := filepath.Join(keepDir, filepath.Base(src))
		if err := fileutil.CopyFile(src, dst); err != nil {
			logger.Warn("failed to keep intermediate file",
				logging.String("source", src),
				logging.String("destination", dst),
				logging.Error(err),
			)
		}
	}
}

func (p *Processor) record(ctx context.Context, job *Job, procErr error, elapsed time.Duration) {
	if p.recorder == nil {
		return
	}
	entry := history.Entry{
		JobID:      job.ID.String(),
		Title:      textutil.DisplayTitle(job.InputPath),
		InputPath:  job.InputPath,
		VideoCodec: job.VideoCodec,
		Duration:   elapsed,
		Status:     history.StatusCompleted,
	}
	if procErr != nil {
		entry.Status = history.StatusFailed
		entry.ErrorMessage = procErr.Error()
	} else {
		entry.OutputPath = job.OutputPath
	}
	if err := p.recorder.Record(ctx, entry); err != nil {
		p.logger.Warn("failed to record job history",
			logging.String(logging.FieldJobID, job.ID.String()),
			logging.Error(err),
		)
	}
}

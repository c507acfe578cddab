package main

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"voiceclean/internal/batch"
	"voiceclean/internal/config"
	"voiceclean/internal/history"
	"voiceclean/internal/logging"
	"voiceclean/internal/media/ffmpeg"
	"voiceclean/internal/processor"
	"voiceclean/internal/services/elevenlabs"
)

func loadConfig(path string) (*config.Config, error) {
	cfg, _, _, err := config.Load(path)
	if err != nil {
		return nil, err
	}
	if err := cfg.EnsureDirectories(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func buildLogger(cfg *config.Config, verbose bool) (*slog.Logger, error) {
	level := cfg.Logging.Level
	if verbose {
		level = "debug"
	}
	return logging.New(logging.Options{
		Level:  level,
		Format: cfg.Logging.Format,
		OutputPaths: []string{
			"stderr",
			filepath.Join(cfg.Paths.LogDir, "voiceclean.log"),
		},
	})
}

func run(cmd *cobra.Command, input string, opts *rootOptions) error {
	// A missing .env is fine; any keys it holds land in the environment
	// before the API key is resolved.
	_ = godotenv.Load()

	cfg, err := loadConfig(opts.configPath)
	if err != nil {
		return err
	}
	if opts.tempDir != "" {
		expanded, err := config.ExpandPath(opts.tempDir)
		if err != nil {
			return fmt.Errorf("resolve temp dir: %w", err)
		}
		if err := os.MkdirAll(expanded, 0o755); err != nil {
			return fmt.Errorf("create temp dir: %w", err)
		}
		cfg.Paths.TempDir = expanded
	}

	logger, err := buildLogger(cfg, opts.verbose)
	if err != nil {
		return err
	}

	// Flag wins over environment; the config file is the last resort.
	apiKey, err := elevenlabs.ResolveKey(opts.apiKey, os.LookupEnv)
	if err != nil {
		if cfg.ElevenLabs.APIKey == "" {
			return err
		}
		apiKey = cfg.ElevenLabs.APIKey
	}

	inputPath, err := config.ExpandPath(input)
	if err != nil {
		return fmt.Errorf("resolve input path: %w", err)
	}

	videoCodec := opts.videoCodec
	if videoCodec == "" {
		videoCodec = cfg.Merge.VideoCodec
	}
	overwrite := opts.overwrite || cfg.Output.Overwrite

	var recorder processor.Recorder
	if cfg.History.Enabled {
		store, err := history.Open(cfg.Paths.HistoryDB)
		if err != nil {
			logger.Warn("history store unavailable, continuing without it",
				logging.String("path", cfg.Paths.HistoryDB),
				logging.Error(err),
			)
		} else {
			defer store.Close()
			recorder = store
		}
	}

	proc := processor.New(cfg,
		ffmpeg.NewExtractor(cfg, logger),
		elevenlabs.New(cfg, apiKey, logger),
		ffmpeg.NewMerger(cfg, logger),
		recorder,
		logger,
	)

	ctx := cmd.Context()
	if opts.batch {
		runner := batch.NewRunner(cfg, proc, logger)
		result, err := runner.Run(ctx, batch.Options{
			InputDir:   inputPath,
			OutputDir:  opts.output,
			VideoCodec: videoCodec,
			KeepTemp:   opts.keepTemp,
			Overwrite:  overwrite,
		})
		if err != nil {
			return err
		}
		out := cmd.OutOrStdout()
		printBatchSummary(out, result)
		if failed := result.Failed(); failed > 0 {
			return fmt.Errorf("%d of %d videos failed", failed, len(result.Entries))
		}
		return nil
	}

	job := processor.NewJob(inputPath, opts.output, cfg.Output.Suffix)
	job.VideoCodec = videoCodec
	job.KeepTemp = opts.keepTemp
	job.Overwrite = overwrite

	output, err := proc.Process(ctx, job)
	if err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Saved cleaned video to %s\n", output)
	return nil
}

package batch_test

import (
	"context"
	"errors"
	"path/filepath"
	"strings"
	"testing"

	"voiceclean/internal/batch"
	"voiceclean/internal/logging"
	"voiceclean/internal/processor"
	"voiceclean/internal/services"
	"voiceclean/internal/testsupport"
)

type scriptedProcessor struct {
	inputs []string
	fail   map[string]error
}

func (s *scriptedProcessor) Process(_ context.Context, job *processor.Job) (string, error) {
	s.inputs = append(s.inputs, job.InputPath)
	if err, ok := s.fail[filepath.Base(job.InputPath)]; ok {
		return "", err
	}
	return job.OutputPath, nil
}

func TestDiscoverFiltersUnsupportedEntries(t *testing.T) {
	dir := t.TempDir()
	testsupport.WriteVideoFixture(t, dir, "a.mp4")
	testsupport.WriteVideoFixture(t, dir, "b.MOV")
	testsupport.WriteVideoFixture(t, dir, "c.webm")
	testsupport.WriteFile(t, filepath.Join(dir, "notes.txt"), []byte("notes"))
	testsupport.WriteFile(t, filepath.Join(dir, "nested", "d.mp4"), []byte("nested"))

	videos, err := batch.Discover(dir)
	if err != nil {
		t.Fatalf("Discover returned error: %v", err)
	}
	if len(videos) != 3 {
		t.Fatalf("expected 3 videos, got %v", videos)
	}
	for _, video := range videos {
		if strings.Contains(video, "notes.txt") || strings.Contains(video, "nested") {
			t.Fatalf("unexpected discovery entry %q", video)
		}
	}
}

func TestDiscoverRejectsMissingDirectory(t *testing.T) {
	_, err := batch.Discover(filepath.Join(t.TempDir(), "missing"))
	if !errors.Is(err, services.ErrDirectory) {
		t.Fatalf("expected directory error, got %v", err)
	}
}

func TestDiscoverRejectsFileInput(t *testing.T) {
	dir := t.TempDir()
	file := testsupport.WriteVideoFixture(t, dir, "single.mp4")
	_, err := batch.Discover(file)
	if !errors.Is(err, services.ErrDirectory) {
		t.Fatalf("expected directory error, got %v", err)
	}
}

func TestRunProcessesEveryVideoDespiteFailures(t *testing.T) {
	cfg := testsupport.NewConfig(t)
	dir := t.TempDir()
	testsupport.WriteVideoFixture(t, dir, "a.mp4")
	testsupport.WriteVideoFixture(t, dir, "b.mkv")
	testsupport.WriteVideoFixture(t, dir, "c.mov")

	proc := &scriptedProcessor{
		fail: map[string]error{
			"b.mkv": services.Wrap(services.ErrExtraction, "extract", "", "no audio stream", nil),
		},
	}
	runner := batch.NewRunner(cfg, proc, logging.NewNop())

	result, err := runner.Run(context.Background(), batch.Options{InputDir: dir})
	if err != nil {
		t.Fatalf("Run returned error: %v", err)
	}
	if len(proc.inputs) != 3 {
		t.Fatalf("expected all 3 videos attempted, got %v", proc.inputs)
	}
	if result.Succeeded() != 2 || result.Failed() != 1 {
		t.Fatalf("unexpected outcome: succeeded=%d failed=%d", result.Succeeded(), result.Failed())
	}
	for _, entry := range result.Entries {
		if filepath.Base(entry.Input) == "b.mkv" {
			if !errors.Is(entry.Err, services.ErrExtraction) {
				t.Fatalf("expected extraction error on b.mkv, got %v", entry.Err)
			}
		} else if entry.Err != nil {
			t.Fatalf("unexpected failure for %s: %v", entry.Input, entry.Err)
		}
	}
}

func TestRunRoutesOutputsToDefaultSubdirectory(t *testing.T) {
	cfg := testsupport.NewConfig(t)
	dir := t.TempDir()
	testsupport.WriteVideoFixture(t, dir, "talk.mp4")

	proc := &scriptedProcessor{}
	runner := batch.NewRunner(cfg, proc, logging.NewNop())

	result, err := runner.Run(context.Background(), batch.Options{InputDir: dir})
	if err != nil {
		t.Fatalf("Run returned error: %v", err)
	}
	want := filepath.Join(dir, "processed_videos", "talk_clean.mp4")
	if result.Entries[0].Output != want {
		t.Fatalf("expected output %q, got %q", want, result.Entries[0].Output)
	}
}

func TestRunWithExplicitOutputDirectory(t *testing.T) {
	cfg := testsupport.NewConfig(t)
	dir := t.TempDir()
	outDir := filepath.Join(t.TempDir(), "cleaned")
	testsupport.WriteVideoFixture(t, dir, "talk.webm")

	proc := &scriptedProcessor{}
	runner := batch.NewRunner(cfg, proc, logging.NewNop())

	result, err := runner.Run(context.Background(), batch.Options{InputDir: dir, OutputDir: outDir})
	if err != nil {
		t.Fatalf("Run returned error: %v", err)
	}
	if result.Entries[0].Output != filepath.Join(outDir, "talk_clean.webm") {
		t.Fatalf("unexpected output %q", result.Entries[0].Output)
	}
}

func TestRunEmptyDirectoryIsNotAnError(t *testing.T) {
	cfg := testsupport.NewConfig(t)
	dir := t.TempDir()

	runner := batch.NewRunner(cfg, &scriptedProcessor{}, logging.NewNop())
	result, err := runner.Run(context.Background(), batch.Options{InputDir: dir})
	if err != nil {
		t.Fatalf("Run returned error: %v", err)
	}
	if len(result.Entries) != 0 {
		t.Fatalf("expected no entries, got %d", len(result.Entries))
	}
}

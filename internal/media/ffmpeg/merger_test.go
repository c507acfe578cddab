package ffmpeg_test

import (
	"context"
	"errors"
	"path/filepath"
	"strings"
	"testing"

	"voiceclean/internal/logging"
	"voiceclean/internal/media/ffmpeg"
	"voiceclean/internal/services"
	"voiceclean/internal/testsupport"
)

func TestMergeDefaultsToStreamCopy(t *testing.T) {
	cfg := testsupport.NewConfig(t)
	dir := t.TempDir()
	video := testsupport.WriteVideoFixture(t, dir, "sample.mp4")
	audio := testsupport.WriteFile(t, filepath.Join(dir, "sample_isolated.mp3"), []byte("clean-audio"))
	output := filepath.Join(dir, "out", "sample_clean.mp4")

	exec := &fakeExecutor{}
	merger := ffmpeg.NewMerger(cfg, logging.NewNop(), ffmpeg.WithMergerExecutor(exec))

	got, err := merger.Merge(context.Background(), video, audio, output, ffmpeg.MergeOptions{})
	if err != nil {
		t.Fatalf("Merge returned error: %v", err)
	}
	if got != output {
		t.Fatalf("unexpected output path: %q", got)
	}
	if len(exec.calls) != 1 {
		t.Fatalf("expected one ffmpeg invocation, got %d", len(exec.calls))
	}
	call := strings.Join(exec.calls[0], " ")
	for _, fragment := range []string{"-map 0:v:0", "-map 1:a:0", "-c:v copy", "-c:a aac", "-b:a 192k", "-map_metadata 0"} {
		if !strings.Contains(call, fragment) {
			t.Fatalf("expected %q in command %q", fragment, call)
		}
	}
}

func TestMergePassesCodecThroughOpaquely(t *testing.T) {
	cfg := testsupport.NewConfig(t)
	dir := t.TempDir()
	video := testsupport.WriteVideoFixture(t, dir, "sample.webm")
	audio := testsupport.WriteFile(t, filepath.Join(dir, "clean.mp3"), []byte("clean"))

	exec := &fakeExecutor{}
	merger := ffmpeg.NewMerger(cfg, logging.NewNop(), ffmpeg.WithMergerExecutor(exec))

	_, err := merger.Merge(context.Background(), video, audio, filepath.Join(dir, "out.webm"), ffmpeg.MergeOptions{VideoCodec: "libx264"})
	if err != nil {
		t.Fatalf("Merge returned error: %v", err)
	}
	if !strings.Contains(strings.Join(exec.calls[0], " "), "-c:v libx264") {
		t.Fatalf("expected codec pass-through, got %v", exec.calls[0])
	}
}

func TestMergeFailsFastOnExistingOutput(t *testing.T) {
	cfg := testsupport.NewConfig(t)
	dir := t.TempDir()
	video := testsupport.WriteVideoFixture(t, dir, "sample.avi")
	audio := testsupport.WriteFile(t, filepath.Join(dir, "clean.mp3"), []byte("clean"))
	output := testsupport.WriteFile(t, filepath.Join(dir, "sample_clean.avi"), []byte("old"))

	exec := &fakeExecutor{}
	merger := ffmpeg.NewMerger(cfg, logging.NewNop(), ffmpeg.WithMergerExecutor(exec))

	_, err := merger.Merge(context.Background(), video, audio, output, ffmpeg.MergeOptions{})
	if !errors.Is(err, services.ErrFileExists) {
		t.Fatalf("expected file-exists error, got %v", err)
	}
	if len(exec.calls) != 0 {
		t.Fatal("ffmpeg must not run when the output collides")
	}
}

func TestMergeOverwriteReplacesExistingOutput(t *testing.T) {
	cfg := testsupport.NewConfig(t)
	dir := t.TempDir()
	video := testsupport.WriteVideoFixture(t, dir, "sample.avi")
	audio := testsupport.WriteFile(t, filepath.Join(dir, "clean.mp3"), []byte("clean"))
	output := testsupport.WriteFile(t, filepath.Join(dir, "sample_clean.avi"), []byte("old"))

	exec := &fakeExecutor{}
	merger := ffmpeg.NewMerger(cfg, logging.NewNop(), ffmpeg.WithMergerExecutor(exec))

	if _, err := merger.Merge(context.Background(), video, audio, output, ffmpeg.MergeOptions{Overwrite: true}); err != nil {
		t.Fatalf("Merge with overwrite returned error: %v", err)
	}
	if len(exec.calls) != 1 {
		t.Fatalf("expected one ffmpeg invocation, got %d", len(exec.calls))
	}
}

func TestMergeFailsForMissingSources(t *testing.T) {
	cfg := testsupport.NewConfig(t)
	dir := t.TempDir()
	audio := testsupport.WriteFile(t, filepath.Join(dir, "clean.mp3"), []byte("clean"))

	exec := &fakeExecutor{}
	merger := ffmpeg.NewMerger(cfg, logging.NewNop(), ffmpeg.WithMergerExecutor(exec))

	_, err := merger.Merge(context.Background(), filepath.Join(dir, "missing.mp4"), audio, filepath.Join(dir, "out.mp4"), ffmpeg.MergeOptions{})
	if !errors.Is(err, services.ErrMerge) {
		t.Fatalf("expected merge error, got %v", err)
	}
	if len(exec.calls) != 0 {
		t.Fatal("ffmpeg must not run for missing sources")
	}
}

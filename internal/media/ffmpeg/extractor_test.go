package ffmpeg_test

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"voiceclean/internal/logging"
	"voiceclean/internal/media/ffmpeg"
	"voiceclean/internal/media/ffprobe"
	"voiceclean/internal/services"
	"voiceclean/internal/testsupport"
)

type fakeExecutor struct {
	calls  [][]string
	output string
	err    error
	onRun  func(binary string, args []string)
}

func (f *fakeExecutor) Run(_ context.Context, binary string, args []string) (string, error) {
	f.calls = append(f.calls, append([]string{binary}, args...))
	if f.onRun != nil {
		f.onRun(binary, args)
	}
	return f.output, f.err
}

func audioProbe(streams int) ffprobe.InspectFunc {
	return func(context.Context, string, string) (ffprobe.Result, error) {
		result := ffprobe.Result{}
		result.Streams = append(result.Streams, ffprobe.Stream{CodecType: "video"})
		for i := 0; i < streams; i++ {
			result.Streams = append(result.Streams, ffprobe.Stream{CodecType: "audio"})
		}
		return result, nil
	}
}

func TestExtractInvokesFFmpegWithConfiguredCodec(t *testing.T) {
	cfg := testsupport.NewConfig(t)
	dir := t.TempDir()
	video := testsupport.WriteVideoFixture(t, dir, "sample.mp4")
	audio := filepath.Join(dir, "sample.mp3")

	exec := &fakeExecutor{}
	extractor := ffmpeg.NewExtractor(cfg, logging.NewNop(),
		ffmpeg.WithExtractorExecutor(exec),
		ffmpeg.WithExtractorInspector(audioProbe(1)),
	)

	got, err := extractor.Extract(context.Background(), video, audio)
	if err != nil {
		t.Fatalf("Extract returned error: %v", err)
	}
	if got != audio {
		t.Fatalf("unexpected output path: %q", got)
	}
	if len(exec.calls) != 1 {
		t.Fatalf("expected one ffmpeg invocation, got %d", len(exec.calls))
	}
	call := strings.Join(exec.calls[0], " ")
	for _, fragment := range []string{"ffmpeg", "-vn", "-acodec libmp3lame", "-ab 192k", "-ac 2", audio} {
		if !strings.Contains(call, fragment) {
			t.Fatalf("expected %q in command %q", fragment, call)
		}
	}
}

func TestExtractFailsWithoutAudioStreamBeforeInvokingTool(t *testing.T) {
	cfg := testsupport.NewConfig(t)
	dir := t.TempDir()
	video := testsupport.WriteVideoFixture(t, dir, "silent.mkv")

	exec := &fakeExecutor{}
	extractor := ffmpeg.NewExtractor(cfg, logging.NewNop(),
		ffmpeg.WithExtractorExecutor(exec),
		ffmpeg.WithExtractorInspector(audioProbe(0)),
	)

	_, err := extractor.Extract(context.Background(), video, filepath.Join(dir, "silent.mp3"))
	if !errors.Is(err, services.ErrExtraction) {
		t.Fatalf("expected extraction error, got %v", err)
	}
	if len(exec.calls) != 0 {
		t.Fatalf("ffmpeg must not run for audioless input, got %d calls", len(exec.calls))
	}
	if _, statErr := os.Stat(filepath.Join(dir, "silent.mp3")); !errors.Is(statErr, os.ErrNotExist) {
		t.Fatal("no output file should be created on failure")
	}
}

func TestExtractFailsForMissingInput(t *testing.T) {
	cfg := testsupport.NewConfig(t)
	exec := &fakeExecutor{}
	extractor := ffmpeg.NewExtractor(cfg, logging.NewNop(),
		ffmpeg.WithExtractorExecutor(exec),
		ffmpeg.WithExtractorInspector(audioProbe(1)),
	)

	_, err := extractor.Extract(context.Background(), filepath.Join(t.TempDir(), "missing.mp4"), "out.mp3")
	if !errors.Is(err, services.ErrExtraction) {
		t.Fatalf("expected extraction error, got %v", err)
	}
	if len(exec.calls) != 0 {
		t.Fatal("ffmpeg must not run for a missing input")
	}
}

func TestExtractSurfacesToolDiagnostics(t *testing.T) {
	cfg := testsupport.NewConfig(t)
	dir := t.TempDir()
	video := testsupport.WriteVideoFixture(t, dir, "broken.mov")

	exec := &fakeExecutor{output: "Invalid data found when processing input", err: errors.New("exit status 1")}
	extractor := ffmpeg.NewExtractor(cfg, logging.NewNop(),
		ffmpeg.WithExtractorExecutor(exec),
		ffmpeg.WithExtractorInspector(audioProbe(1)),
	)

	_, err := extractor.Extract(context.Background(), video, filepath.Join(dir, "broken.mp3"))
	if !errors.Is(err, services.ErrExtraction) {
		t.Fatalf("expected extraction error, got %v", err)
	}
	if !strings.Contains(err.Error(), "Invalid data found") {
		t.Fatalf("expected tool output attached to error, got %q", err.Error())
	}
}

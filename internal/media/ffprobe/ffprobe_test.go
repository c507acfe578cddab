package ffprobe

import (
	"encoding/json"
	"testing"
)

func TestStreamCounts(t *testing.T) {
	payload := `{
		"streams": [
			{"index": 0, "codec_type": "video", "codec_name": "h264", "width": 1920, "height": 1080},
			{"index": 1, "codec_type": "audio", "codec_name": "aac", "channels": 2},
			{"index": 2, "codec_type": "subtitle", "codec_name": "srt"}
		],
		"format": {"filename": "sample.mp4", "nb_streams": 3, "duration": "12.5", "size": "1048576"}
	}`
	var result Result
	if err := json.Unmarshal([]byte(payload), &result); err != nil {
		t.Fatalf("unmarshal fixture: %v", err)
	}

	if got := result.VideoStreamCount(); got != 1 {
		t.Fatalf("video stream count = %d, want 1", got)
	}
	if got := result.AudioStreamCount(); got != 1 {
		t.Fatalf("audio stream count = %d, want 1", got)
	}
	if got := result.DurationSeconds(); got != 12.5 {
		t.Fatalf("duration = %v, want 12.5", got)
	}
	if got := result.SizeBytes(); got != 1048576 {
		t.Fatalf("size = %d, want 1048576", got)
	}
}

func TestSizeBytesHandlesGarbage(t *testing.T) {
	result := Result{Format: Format{Size: "not-a-number"}}
	if got := result.SizeBytes(); got != 0 {
		t.Fatalf("expected 0 for unparseable size, got %d", got)
	}
	result = Result{}
	if got := result.SizeBytes(); got != 0 {
		t.Fatalf("expected 0 for empty size, got %d", got)
	}
}

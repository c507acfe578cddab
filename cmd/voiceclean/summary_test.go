package main

import (
	"bytes"
	"errors"
	"testing"

	"voiceclean/internal/batch"
)

func TestPrintBatchSummaryPlainOutput(t *testing.T) {
	result := batch.Result{Entries: []batch.Entry{
		{Input: "/videos/a.mp4", Output: "/videos/processed_videos/a_clean.mp4"},
		{Input: "/videos/b.mkv", Err: errors.New("extraction error: no audio stream")},
	}}

	var out bytes.Buffer
	printBatchSummary(&out, result)

	text := out.String()
	requireContains(t, text, "ok\t/videos/a.mp4\t/videos/processed_videos/a_clean.mp4")
	requireContains(t, text, "failed\t/videos/b.mkv")
	requireContains(t, text, "Processed 2 videos: 1 succeeded, 1 failed")
}

func TestPrintBatchSummaryEmptyRun(t *testing.T) {
	var out bytes.Buffer
	printBatchSummary(&out, batch.Result{})
	requireContains(t, out.String(), "No supported video files found")
}

package services_test

import (
	"errors"
	"strings"
	"testing"

	"voiceclean/internal/services"
)

func TestWrapTagsMarker(t *testing.T) {
	base := errors.New("exit status 1")
	err := services.Wrap(services.ErrExtraction, "extract", "ffmpeg", "no audio stream", base)
	if !errors.Is(err, services.ErrExtraction) {
		t.Fatalf("expected extraction marker, got %v", err)
	}
	if !errors.Is(err, base) {
		t.Fatal("expected wrapped cause to survive")
	}
	want := "extract: ffmpeg: no audio stream"
	if !strings.Contains(err.Error(), want) {
		t.Fatalf("expected detail %q in %q", want, err.Error())
	}
}

func TestWrapWithoutCause(t *testing.T) {
	err := services.Wrap(services.ErrFileExists, "merge", "", "output present", nil)
	if !errors.Is(err, services.ErrFileExists) {
		t.Fatalf("expected file-exists marker, got %v", err)
	}
	if strings.Contains(err.Error(), "<nil>") {
		t.Fatalf("unexpected nil rendering: %q", err.Error())
	}
}

func TestWrapNilMarkerDefaultsToExternalTool(t *testing.T) {
	err := services.Wrap(nil, "", "", "", errors.New("boom"))
	if !errors.Is(err, services.ErrExternalTool) {
		t.Fatalf("expected external tool fallback, got %v", err)
	}
	if !strings.Contains(err.Error(), "service failure") {
		t.Fatalf("expected generic detail, got %q", err.Error())
	}
}

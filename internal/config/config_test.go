package config_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"voiceclean/internal/config"
)

func TestLoadWithoutFileUsesDefaultsAndExpandsPaths(t *testing.T) {
	tempHome := t.TempDir()
	t.Setenv("HOME", tempHome)

	cfg, resolved, exists, err := config.Load("")
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if resolved == "" {
		t.Fatal("expected resolved path")
	}
	if exists {
		t.Fatal("expected config file to be absent in temp HOME")
	}

	wantLogs := filepath.Join(tempHome, ".local", "share", "voiceclean", "logs")
	if cfg.Paths.LogDir != wantLogs {
		t.Fatalf("unexpected log dir: got %q want %q", cfg.Paths.LogDir, wantLogs)
	}
	if cfg.Paths.TempDir == "" {
		t.Fatal("expected temp dir default to system temp")
	}
	if cfg.ElevenLabs.BaseURL != "https://api.elevenlabs.io" {
		t.Fatalf("unexpected base url: %q", cfg.ElevenLabs.BaseURL)
	}
	if cfg.ElevenLabs.RequestTimeout != 300 {
		t.Fatalf("unexpected request timeout: %d", cfg.ElevenLabs.RequestTimeout)
	}
	if cfg.Merge.VideoCodec != "copy" {
		t.Fatalf("expected stream-copy default, got %q", cfg.Merge.VideoCodec)
	}
	if cfg.Output.Suffix != "_clean" {
		t.Fatalf("unexpected output suffix: %q", cfg.Output.Suffix)
	}
	if !cfg.History.Enabled {
		t.Fatal("expected history enabled by default")
	}
	if err := cfg.EnsureDirectories(); err != nil {
		t.Fatalf("EnsureDirectories failed: %v", err)
	}
	for _, dir := range []string{cfg.Paths.LogDir, filepath.Dir(cfg.Paths.HistoryDB)} {
		info, err := os.Stat(dir)
		if err != nil {
			t.Fatalf("expected directory %q to exist: %v", dir, err)
		}
		if !info.IsDir() {
			t.Fatalf("expected %q to be a directory", dir)
		}
	}
}

func TestLoadParsesFileAndNormalizes(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")
	contents := `
[paths]
temp_dir = "` + dir + `/scratch"

[elevenlabs]
base_url = "https://isolation.example.com/"
request_timeout = 30

[extraction]
audio_format = ".WAV"

[logging]
format = "JSON"
`
	if err := os.WriteFile(path, []byte(contents), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, _, exists, err := config.Load(path)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if !exists {
		t.Fatal("expected config file to exist")
	}
	if cfg.ElevenLabs.BaseURL != "https://isolation.example.com" {
		t.Fatalf("expected trailing slash trimmed, got %q", cfg.ElevenLabs.BaseURL)
	}
	if cfg.ElevenLabs.RequestTimeout != 30 {
		t.Fatalf("unexpected timeout: %d", cfg.ElevenLabs.RequestTimeout)
	}
	if cfg.Extraction.AudioFormat != "wav" {
		t.Fatalf("expected normalized audio format, got %q", cfg.Extraction.AudioFormat)
	}
	if cfg.Logging.Format != "json" {
		t.Fatalf("expected lowercased log format, got %q", cfg.Logging.Format)
	}
	if cfg.Paths.TempDir != filepath.Join(dir, "scratch") {
		t.Fatalf("unexpected temp dir: %q", cfg.Paths.TempDir)
	}
}

func TestLoadRejectsInvalidValues(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")
	contents := `
[extraction]
audio_channels = -1
`
	if err := os.WriteFile(path, []byte(contents), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	if _, _, _, err := config.Load(path); err == nil {
		t.Fatal("expected validation error for negative channels")
	}

	contents = `
[logging]
level = "loud"
`
	if err := os.WriteFile(path, []byte(contents), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	_, _, _, err := config.Load(path)
	if err == nil {
		t.Fatal("expected validation error for unknown log level")
	}
	if !strings.Contains(err.Error(), "logging.level") {
		t.Fatalf("expected logging.level mention, got %v", err)
	}
}

func TestCreateSampleWritesParseableConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.toml")
	if err := config.CreateSample(path); err != nil {
		t.Fatalf("CreateSample failed: %v", err)
	}
	cfg, _, exists, err := config.Load(path)
	if err != nil {
		t.Fatalf("sample config failed to load: %v", err)
	}
	if !exists {
		t.Fatal("expected sample file to exist")
	}
	if cfg.Merge.VideoCodec != "copy" {
		t.Fatalf("sample should keep stream-copy default, got %q", cfg.Merge.VideoCodec)
	}
}

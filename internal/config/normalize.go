package config

import (
	"fmt"
	"os"
	"strings"
)

func (c *Config) normalize() error {
	if err := c.normalizePaths(); err != nil {
		return err
	}
	c.normalizeElevenLabs()
	c.normalizeExtraction()
	c.normalizeMerge()
	c.normalizeOutput()
	c.normalizeLogging()
	return nil
}

func (c *Config) normalizePaths() error {
	var err error
	if strings.TrimSpace(c.Paths.TempDir) == "" {
		c.Paths.TempDir = os.TempDir()
	}
	if c.Paths.TempDir, err = expandPath(c.Paths.TempDir); err != nil {
		return fmt.Errorf("paths.temp_dir: %w", err)
	}
	if strings.TrimSpace(c.Paths.LogDir) == "" {
		c.Paths.LogDir = defaultLogDir
	}
	if c.Paths.LogDir, err = expandPath(c.Paths.LogDir); err != nil {
		return fmt.Errorf("paths.log_dir: %w", err)
	}
	if strings.TrimSpace(c.Paths.HistoryDB) == "" {
		c.Paths.HistoryDB = defaultHistoryDB
	}
	if c.Paths.HistoryDB, err = expandPath(c.Paths.HistoryDB); err != nil {
		return fmt.Errorf("paths.history_db: %w", err)
	}
	return nil
}

func (c *Config) normalizeElevenLabs() {
	c.ElevenLabs.APIKey = strings.TrimSpace(c.ElevenLabs.APIKey)
	c.ElevenLabs.BaseURL = strings.TrimRight(strings.TrimSpace(c.ElevenLabs.BaseURL), "/")
	if c.ElevenLabs.BaseURL == "" {
		c.ElevenLabs.BaseURL = defaultBaseURL
	}
	if c.ElevenLabs.RequestTimeout <= 0 {
		c.ElevenLabs.RequestTimeout = defaultRequestTimeout
	}
}

func (c *Config) normalizeExtraction() {
	c.Extraction.AudioFormat = strings.TrimPrefix(strings.ToLower(strings.TrimSpace(c.Extraction.AudioFormat)), ".")
	if c.Extraction.AudioFormat == "" {
		c.Extraction.AudioFormat = defaultAudioFormat
	}
	if strings.TrimSpace(c.Extraction.AudioCodec) == "" {
		c.Extraction.AudioCodec = defaultAudioCodec
	}
	if strings.TrimSpace(c.Extraction.AudioBitrate) == "" {
		c.Extraction.AudioBitrate = defaultAudioBitrate
	}
	if c.Extraction.AudioChannels == 0 {
		c.Extraction.AudioChannels = defaultAudioChannels
	}
}

func (c *Config) normalizeMerge() {
	if strings.TrimSpace(c.Merge.VideoCodec) == "" {
		c.Merge.VideoCodec = defaultMergeVideoCodec
	}
	if strings.TrimSpace(c.Merge.AudioCodec) == "" {
		c.Merge.AudioCodec = defaultMergeAudioCodec
	}
	if strings.TrimSpace(c.Merge.AudioBitrate) == "" {
		c.Merge.AudioBitrate = defaultAudioBitrate
	}
}

func (c *Config) normalizeOutput() {
	if strings.TrimSpace(c.Output.Suffix) == "" {
		c.Output.Suffix = defaultOutputSuffix
	}
	if strings.TrimSpace(c.Output.BatchSubdir) == "" {
		c.Output.BatchSubdir = defaultBatchSubdir
	}
}

func (c *Config) normalizeLogging() {
	c.Logging.Format = strings.ToLower(strings.TrimSpace(c.Logging.Format))
	if c.Logging.Format == "" {
		c.Logging.Format = defaultLogFormat
	}
	c.Logging.Level = strings.ToLower(strings.TrimSpace(c.Logging.Level))
	if c.Logging.Level == "" {
		c.Logging.Level = defaultLogLevel
	}
}

package config

import (
	"errors"
	"fmt"
)

// Validate ensures the configuration is usable.
func (c *Config) Validate() error {
	if err := c.validateElevenLabs(); err != nil {
		return err
	}
	if err := c.validateExtraction(); err != nil {
		return err
	}
	if err := c.validateLogging(); err != nil {
		return err
	}
	return nil
}

func (c *Config) validateElevenLabs() error {
	if c.ElevenLabs.BaseURL == "" {
		return errors.New("elevenlabs.base_url must be set")
	}
	if c.ElevenLabs.RequestTimeout <= 0 {
		return errors.New("elevenlabs.request_timeout must be positive (seconds)")
	}
	return nil
}

func (c *Config) validateExtraction() error {
	if c.Extraction.AudioChannels <= 0 {
		return errors.New("extraction.audio_channels must be positive")
	}
	return nil
}

func (c *Config) validateLogging() error {
	switch c.Logging.Format {
	case "console", "json":
	default:
		return fmt.Errorf("logging.format must be console or json, got %q", c.Logging.Format)
	}
	switch c.Logging.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("logging.level must be debug, info, warn, or error, got %q", c.Logging.Level)
	}
	return nil
}

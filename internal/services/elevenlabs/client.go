package elevenlabs

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"log/slog"
	"mime/multipart"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"voiceclean/internal/config"
	"voiceclean/internal/logging"
	"voiceclean/internal/services"
)

const (
	headerAPIKey  = "xi-api-key"
	isolationPath = "/v1/audio-isolation"

	// maxErrorBody caps how much of an error response is attached to the
	// returned error so a misbehaving endpoint cannot flood the logs.
	maxErrorBody = 2 << 10
)

// EnvKeyName is the environment variable consulted when no explicit API key
// is supplied.
const EnvKeyName = "ELEVENLABS_API_KEY"

// Isolator strips background noise from an audio recording, leaving speech.
type Isolator interface {
	Isolate(ctx context.Context, audioPath string) ([]byte, error)
}

// Client calls the ElevenLabs audio isolation endpoint.
type Client struct {
	apiKey     string
	baseURL    string
	httpClient *http.Client
	logger     *slog.Logger
}

var _ Isolator = (*Client)(nil)

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient overrides the default HTTP client.
func WithHTTPClient(client *http.Client) Option {
	return func(c *Client) {
		if client != nil {
			c.httpClient = client
		}
	}
}

// New creates an isolation client. The API key may be empty here; Isolate
// rejects requests without one before touching the network.
func New(cfg *config.Config, apiKey string, logger *slog.Logger, opts ...Option) *Client {
	client := &Client{
		apiKey:     strings.TrimSpace(apiKey),
		baseURL:    strings.TrimRight(cfg.ElevenLabs.BaseURL, "/"),
		httpClient: &http.Client{Timeout: time.Duration(cfg.ElevenLabs.RequestTimeout) * time.Second},
		logger:     logging.WithComponent(logger, "elevenlabs"),
	}
	for _, opt := range opts {
		opt(client)
	}
	return client
}

// ResolveKey picks the API key to use: an explicit value wins, otherwise the
// ELEVENLABS_API_KEY entry from lookup. It fails when neither is set.
func ResolveKey(explicit string, lookup func(string) (string, bool)) (string, error) {
	if key := strings.TrimSpace(explicit); key != "" {
		return key, nil
	}
	if lookup != nil {
		if value, ok := lookup(EnvKeyName); ok {
			if key := strings.TrimSpace(value); key != "" {
				return key, nil
			}
		}
	}
	return "", services.Wrap(services.ErrAuthentication, "isolate", "resolve api key",
		fmt.Sprintf("no API key provided and %s is not set", EnvKeyName), nil)
}

// Isolate uploads the audio file and returns the cleaned audio bytes. One
// attempt only; callers decide what to do with a failure.
func (c *Client) Isolate(ctx context.Context, audioPath string) ([]byte, error) {
	if c.apiKey == "" {
		return nil, services.Wrap(services.ErrAuthentication, "isolate", "",
			fmt.Sprintf("no API key provided and %s is not set", EnvKeyName), nil)
	}

	file, err := os.Open(audioPath)
	if err != nil {
		return nil, services.Wrap(services.ErrService, "isolate", "open audio", "", err)
	}
	defer file.Close()

	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)
	field, err := writer.CreateFormFile("audio", filepath.Base(audioPath))
	if err != nil {
		return nil, services.Wrap(services.ErrService, "isolate", "create form file", "", err)
	}
	if _, err := io.Copy(field, file); err != nil {
		return nil, services.Wrap(services.ErrService, "isolate", "copy audio", "", err)
	}
	if err := writer.Close(); err != nil {
		return nil, services.Wrap(services.ErrService, "isolate", "close multipart writer", "", err)
	}

	endpoint := c.baseURL + isolationPath
	request, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, body)
	if err != nil {
		return nil, services.Wrap(services.ErrService, "isolate", "build request", "", err)
	}
	request.Header.Set("Content-Type", writer.FormDataContentType())
	request.Header.Set(headerAPIKey, c.apiKey)

	requestStart := time.Now()
	resp, err := c.httpClient.Do(request)
	latency := time.Since(requestStart)
	if err != nil {
		return nil, services.Wrap(services.ErrNetwork, "isolate", "http request",
			fmt.Sprintf("latency=%v", latency), err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden {
		return nil, services.Wrap(services.ErrAuthentication, "isolate", "",
			fmt.Sprintf("API key rejected (status %d): %s", resp.StatusCode, readErrorBody(resp.Body)), nil)
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, services.Wrap(services.ErrService, "isolate", "",
			fmt.Sprintf("unexpected status %d: %s", resp.StatusCode, readErrorBody(resp.Body)), nil)
	}

	cleaned, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, services.Wrap(services.ErrNetwork, "isolate", "read response", "", err)
	}
	c.logger.Debug("isolation complete",
		logging.String(logging.FieldInput, audioPath),
		logging.Int("bytes", len(cleaned)),
		logging.Duration("latency", latency),
	)
	return cleaned, nil
}

func readErrorBody(r io.Reader) string {
	payload, err := io.ReadAll(io.LimitReader(r, maxErrorBody))
	if err != nil {
		return ""
	}
	return strings.TrimSpace(string(payload))
}

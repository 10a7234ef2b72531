package sarvam

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"go.uber.org/zap"

	"github.com/odiaaudiogen/server/internal/faults"
)

const (
	defaultBaseURL = "https://api.sarvam.ai"
	defaultTimeout = 30 * time.Second

	subscriptionKeyHeader = "api-subscription-key"
)

// Config holds configuration for the Sarvam AI client.
// Required fields:
// - APIKey: the Sarvam subscription key. An empty key is tolerated here so
//   the server can still boot; every call then fails with a configuration
//   fault, logged loudly and never detailed to the caller.
// Optional fields with defaults:
// - BaseURL: the API base URL (default: "https://api.sarvam.ai")
// - Timeout: per-call timeout (default: 30s)
type Config struct {
	APIKey  string
	BaseURL string
	Timeout time.Duration
}

// Client calls the Sarvam AI speech-to-text, text-to-speech and translation
// endpoints. Connections are reused across calls; each call is attempted
// exactly once, fail-fast.
type Client struct {
	apiKey     string
	baseURL    string
	httpClient *http.Client
	logger     *zap.Logger
}

// NewClient creates a Sarvam AI client.
func NewClient(config Config, logger *zap.Logger) *Client {
	baseURL := config.BaseURL
	if baseURL == "" {
		baseURL = defaultBaseURL
	}

	timeout := config.Timeout
	if timeout == 0 {
		timeout = defaultTimeout
	}

	if config.APIKey == "" {
		logger.Warn("Sarvam API key is not configured; conversion calls will fail")
	}

	return &Client{
		apiKey:  config.APIKey,
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: timeout,
			Transport: &http.Transport{
				MaxIdleConnsPerHost: 10,
				IdleConnTimeout:     90 * time.Second,
			},
		},
		logger: logger,
	}
}

// do executes one provider call and returns the raw body and status.
// Transport-level failures come back as unreachable upstream faults.
func (c *Client) do(req *http.Request, operation string) ([]byte, int, error) {
	if c.apiKey == "" {
		c.logger.Error("Sarvam API key is not configured", zap.String("operation", operation))
		return nil, 0, faults.NewConfiguration("API_KEY is not configured")
	}
	req.Header.Set(subscriptionKeyHeader, c.apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Error("Failed to reach Sarvam API",
			zap.String("operation", operation),
			zap.Error(err))
		return nil, 0, faults.NewUnreachable(fmt.Sprintf("%s request failed", operation), err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, 0, faults.NewUnreachable(fmt.Sprintf("%s response read failed", operation), err)
	}

	return body, resp.StatusCode, nil
}

// upstreamFault builds the fault for a non-success provider response,
// preferring the provider's own message over the templated one.
func upstreamFault(operation string, status int, body []byte) *faults.Fault {
	if msg := providerMessage(body); msg != "" {
		return faults.NewUpstream(status, msg)
	}
	return faults.NewUpstream(status, fmt.Sprintf("%s failed with status %d", operation, status))
}

// providerMessage digs the human-readable message out of a Sarvam error
// body. The API is inconsistent about where it puts it.
func providerMessage(body []byte) string {
	var envelope struct {
		Message string `json:"message"`
		Detail  string `json:"detail"`
		Error   struct {
			Message string `json:"message"`
		} `json:"error"`
	}
	if err := json.Unmarshal(body, &envelope); err != nil {
		return ""
	}
	switch {
	case envelope.Message != "":
		return envelope.Message
	case envelope.Error.Message != "":
		return envelope.Error.Message
	case envelope.Detail != "":
		return envelope.Detail
	}
	return ""
}

package sarvam

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"go.uber.org/zap"

	"github.com/odiaaudiogen/server/domain/entities"
	"github.com/odiaaudiogen/server/domain/repositories"
	"github.com/odiaaudiogen/server/internal/faults"
)

// Ensure Client implements the Synthesizer interface
var _ repositories.Synthesizer = (*Client)(nil)

type synthesisRequest struct {
	Text               string `json:"text"`
	TargetLanguageCode string `json:"target_language_code"`
	Speaker            string `json:"speaker"`
	Model              string `json:"model"`
}

type synthesisResponse struct {
	RequestID string   `json:"request_id"`
	Audios    []string `json:"audios"`
}

// Synthesize converts text to speech via the Sarvam text-to-speech endpoint.
func (c *Client) Synthesize(ctx context.Context, text, targetLanguageCode, model, speaker string) (*entities.SynthesisResult, error) {
	if text == "" {
		return nil, faults.NewValidation("Text is required for text-to-speech conversion")
	}
	if targetLanguageCode == "" {
		return nil, faults.NewValidation("Target language code is required")
	}
	if model == "" {
		model = entities.DefaultTTSModel
	}
	if speaker == "" {
		speaker = entities.DefaultSpeaker
	}

	c.logger.Info("Converting text to speech",
		zap.String("targetLanguageCode", targetLanguageCode),
		zap.String("speaker", speaker),
		zap.String("model", model),
		zap.Int("textLength", len(text)))

	payload, err := json.Marshal(synthesisRequest{
		Text:               text,
		TargetLanguageCode: targetLanguageCode,
		Speaker:            speaker,
		Model:              model,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/text-to-speech", bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("failed to create HTTP request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	respBody, status, err := c.do(req, "text-to-speech")
	if err != nil {
		return nil, err
	}
	if status < 200 || status >= 300 {
		c.logger.Error("Sarvam text-to-speech returned error",
			zap.Int("statusCode", status),
			zap.ByteString("response", respBody))
		return nil, upstreamFault("text-to-speech", status, respBody)
	}

	var parsed synthesisResponse
	if err := json.Unmarshal(respBody, &parsed); err != nil {
		return nil, faults.NewInvalidUpstream("Invalid TTS response structure - missing or invalid audios array")
	}
	if len(parsed.Audios) == 0 {
		return nil, faults.NewInvalidUpstream("Invalid TTS response structure - missing or invalid audios array")
	}

	requestID := parsed.RequestID
	if requestID == "" {
		requestID = "unknown"
	}

	c.logger.Info("Synthesis completed",
		zap.String("requestID", requestID),
		zap.Int("audioCount", len(parsed.Audios)))

	return &entities.SynthesisResult{
		RequestID: requestID,
		Audios:    parsed.Audios,
	}, nil
}

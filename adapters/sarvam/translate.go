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

// Ensure Client implements the Translator interface
var _ repositories.Translator = (*Client)(nil)

type translateRequest struct {
	Input              string `json:"input"`
	SourceLanguageCode string `json:"source_language_code"`
	TargetLanguageCode string `json:"target_language_code"`
}

type translateResponse struct {
	RequestID          string `json:"request_id"`
	TranslatedText     string `json:"translated_text"`
	SourceLanguageCode string `json:"source_language_code"`
	TargetLanguageCode string `json:"target_language_code"`
}

// Translate converts text into the target language via the Sarvam translate
// endpoint. The source language is always auto-detected.
func (c *Client) Translate(ctx context.Context, text, targetLanguageCode string) (*entities.TranslationResult, error) {
	if text == "" {
		return nil, faults.NewValidation("Text to translate is required")
	}
	if targetLanguageCode == "" {
		return nil, faults.NewValidation("Target language code is required")
	}

	c.logger.Info("Translating text",
		zap.String("targetLanguageCode", targetLanguageCode),
		zap.Int("textLength", len(text)))

	payload, err := json.Marshal(translateRequest{
		Input:              text,
		SourceLanguageCode: entities.TranslateSourceAuto,
		TargetLanguageCode: targetLanguageCode,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/translate", bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("failed to create HTTP request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	respBody, status, err := c.do(req, "translation")
	if err != nil {
		return nil, err
	}
	if status < 200 || status >= 300 {
		c.logger.Error("Sarvam translate returned error",
			zap.Int("statusCode", status),
			zap.ByteString("response", respBody))
		return nil, upstreamFault("translation", status, respBody)
	}

	var parsed translateResponse
	if err := json.Unmarshal(respBody, &parsed); err != nil {
		return nil, faults.NewInvalidUpstream("Invalid translation response body")
	}

	sourceLanguage := parsed.SourceLanguageCode
	if sourceLanguage == "" {
		sourceLanguage = entities.TranslateSourceAuto
	}
	targetLanguage := parsed.TargetLanguageCode
	if targetLanguage == "" {
		targetLanguage = targetLanguageCode
	}

	// An empty translated_text on a success body is passed through as-is;
	// the orchestrator owns the fallback policy.
	return &entities.TranslationResult{
		RequestID:          parsed.RequestID,
		SourceText:         text,
		TranslatedText:     parsed.TranslatedText,
		SourceLanguageCode: sourceLanguage,
		TargetLanguageCode: targetLanguage,
	}, nil
}

package sarvam

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"mime/multipart"
	"net/http"
	"net/textproto"

	"go.uber.org/zap"

	"github.com/odiaaudiogen/server/domain/entities"
	"github.com/odiaaudiogen/server/domain/repositories"
	"github.com/odiaaudiogen/server/internal/faults"
)

// Ensure Client implements the Transcriber interface
var _ repositories.Transcriber = (*Client)(nil)

type transcriptionResponse struct {
	RequestID    string `json:"request_id"`
	Transcript   string `json:"transcript"`
	LanguageCode string `json:"language_code"`
}

// Transcribe converts audio to text via the Sarvam speech-to-text endpoint.
func (c *Client) Transcribe(ctx context.Context, audio entities.Audio, languageCode, model string) (*entities.TranscriptionResult, error) {
	if len(audio.Data) == 0 {
		return nil, faults.NewValidation("Missing audio file buffer")
	}
	if languageCode == "" {
		languageCode = entities.LanguageAutoDetect
	}
	if model == "" {
		model = entities.DefaultSTTModel
	}

	fileName := audio.FileName
	if fileName == "" {
		fileName = "audio.wav"
	}
	mimeType := audio.MimeType
	if mimeType == "" {
		mimeType = "audio/wav"
	}

	c.logger.Info("Transcribing audio",
		zap.String("fileName", fileName),
		zap.String("mimeType", mimeType),
		zap.String("languageCode", languageCode),
		zap.String("model", model),
		zap.Int("audioBytes", len(audio.Data)))

	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)

	header := make(textproto.MIMEHeader)
	header.Set("Content-Disposition", fmt.Sprintf(`form-data; name="file"; filename=%q`, fileName))
	header.Set("Content-Type", mimeType)
	part, err := writer.CreatePart(header)
	if err != nil {
		return nil, fmt.Errorf("failed to create multipart file part: %w", err)
	}
	if _, err := part.Write(audio.Data); err != nil {
		return nil, fmt.Errorf("failed to write audio data: %w", err)
	}
	if err := writer.WriteField("model", model); err != nil {
		return nil, fmt.Errorf("failed to write model field: %w", err)
	}
	if err := writer.WriteField("language_code", languageCode); err != nil {
		return nil, fmt.Errorf("failed to write language_code field: %w", err)
	}
	if err := writer.Close(); err != nil {
		return nil, fmt.Errorf("failed to finalize multipart body: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/speech-to-text", body)
	if err != nil {
		return nil, fmt.Errorf("failed to create HTTP request: %w", err)
	}
	req.Header.Set("Content-Type", writer.FormDataContentType())

	respBody, status, err := c.do(req, "speech-to-text")
	if err != nil {
		return nil, err
	}
	if status < 200 || status >= 300 {
		c.logger.Error("Sarvam speech-to-text returned error",
			zap.Int("statusCode", status),
			zap.ByteString("response", respBody))
		return nil, upstreamFault("speech-to-text", status, respBody)
	}

	var parsed transcriptionResponse
	if err := json.Unmarshal(respBody, &parsed); err != nil {
		return nil, faults.NewInvalidUpstream("Invalid speech-to-text response body")
	}

	c.logger.Info("Transcription completed",
		zap.String("requestID", parsed.RequestID),
		zap.String("detectedLanguage", parsed.LanguageCode))

	return &entities.TranscriptionResult{
		RequestID:    parsed.RequestID,
		Transcript:   parsed.Transcript,
		LanguageCode: parsed.LanguageCode,
	}, nil
}

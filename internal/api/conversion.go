package api

import (
	"io"
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/odiaaudiogen/server/domain/entities"
	"github.com/odiaaudiogen/server/internal/faults"
	"github.com/odiaaudiogen/server/usecase"
)

// ConversionHandler serves the speech and translation endpoints.
type ConversionHandler struct {
	conversions *usecase.ConversionService
	logger      *zap.Logger
}

// NewConversionHandler creates a new conversion handler.
func NewConversionHandler(conversions *usecase.ConversionService, logger *zap.Logger) *ConversionHandler {
	return &ConversionHandler{conversions: conversions, logger: logger}
}

// GetSpeechToText returns the usage hint for the STT endpoint.
func (h *ConversionHandler) GetSpeechToText(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{
		"message": "This is the Speech to Text API endpoint. Please use POST method with audio data.",
		"status":  "success",
	})
}

// PostSpeechToText transcribes the uploaded audio and translates the
// transcript into the destination language.
func (h *ConversionHandler) PostSpeechToText(c echo.Context) error {
	audio, err := formAudio(c)
	if err != nil {
		return h.fail(c, err)
	}

	result, err := h.conversions.SpeechToText(c.Request().Context(), usecase.SpeechToTextInput{
		Audio:               audio,
		SourceLanguage:      c.FormValue("source_language"),
		DestinationLanguage: c.FormValue("destination_language"),
	})
	if err != nil {
		return h.fail(c, err)
	}

	return c.JSON(http.StatusOK, STTResponse{
		Transcript:  result.Transcript,
		Translation: result.Translation,
	})
}

// GetTextToSpeech returns the usage hint for the TTS endpoint.
func (h *ConversionHandler) GetTextToSpeech(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]interface{}{
		"message": "This is the NEW text-to-speech endpoint",
		"data": map[string]string{
			"text":                 "Hello, this is a sample text for TTS.",
			"target_language_code": "en-US",
		},
	})
}

// PostTextToSpeech translates the text and synthesizes the translation.
func (h *ConversionHandler) PostTextToSpeech(c echo.Context) error {
	var req TTSRequest
	if err := c.Bind(&req); err != nil {
		return h.fail(c, faults.NewValidation("Invalid request body"))
	}

	result, err := h.conversions.TextToSpeech(c.Request().Context(), usecase.TextToSpeechInput{
		Text:               req.Text,
		TargetLanguageCode: req.TargetLanguageCode,
		Speaker:            req.Speaker,
	})
	if err != nil {
		return h.fail(c, err)
	}

	return c.JSON(http.StatusOK, TTSResponse{
		RequestID: result.RequestID,
		Audios:    result.Audios,
	})
}

// GetSpeechToSpeech returns the usage hint for the STS endpoint.
func (h *ConversionHandler) GetSpeechToSpeech(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{
		"message": "This is the Speech to Speech API endpoint. Please use POST method with audio data.",
		"status":  "success",
	})
}

// PostSpeechToSpeech runs the full transcribe-translate-synthesize pipeline.
func (h *ConversionHandler) PostSpeechToSpeech(c echo.Context) error {
	audio, err := formAudio(c)
	if err != nil {
		return h.fail(c, err)
	}

	result, err := h.conversions.SpeechToSpeech(c.Request().Context(), usecase.SpeechToSpeechInput{
		Audio:               audio,
		SourceLanguage:      c.FormValue("source_language"),
		DestinationLanguage: c.FormValue("destination_language"),
		Speaker:             c.FormValue("speaker"),
	})
	if err != nil {
		return h.fail(c, err)
	}

	return c.JSON(http.StatusOK, STSResponse{
		Transcript:  result.Transcript,
		Translation: result.Translation,
		Audio:       result.Audio,
	})
}

// GetTextToText returns the usage hint for the TTT endpoint.
func (h *ConversionHandler) GetTextToText(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{
		"message": "This is the Text to Text API endpoint. Please use POST method with text data.",
		"status":  "success",
	})
}

// PostTextToText translates text into the target language.
func (h *ConversionHandler) PostTextToText(c echo.Context) error {
	var req TTTRequest
	if err := c.Bind(&req); err != nil {
		return h.fail(c, faults.NewValidation("Invalid request body"))
	}

	result, err := h.conversions.TranslateText(c.Request().Context(), req.Text, req.TargetLanguage)
	if err != nil {
		return h.fail(c, err)
	}

	return c.JSON(http.StatusOK, TTTResponse{
		Success:        true,
		OriginalText:   result.OriginalText,
		Translation:    result.Translation,
		SourceLanguage: result.SourceLanguage,
		TargetLanguage: result.TargetLanguage,
	})
}

// formAudio extracts the uploaded audio file from a multipart request.
func formAudio(c echo.Context) (entities.Audio, error) {
	fileHeader, err := c.FormFile("audio")
	if err != nil {
		return entities.Audio{}, faults.NewValidation("Missing audio file in request.")
	}

	file, err := fileHeader.Open()
	if err != nil {
		return entities.Audio{}, faults.NewValidation("Missing audio file in request.")
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		return entities.Audio{}, faults.NewValidation("Missing audio file in request.")
	}

	return entities.Audio{
		Data:     data,
		FileName: fileHeader.Filename,
		MimeType: fileHeader.Header.Get("Content-Type"),
	}, nil
}

// fail serializes a conversion failure into the unified error shape.
func (h *ConversionHandler) fail(c echo.Context, err error) error {
	status := faults.HTTPStatus(err)
	if status >= http.StatusInternalServerError {
		h.logger.Error("Conversion request failed",
			zap.String("path", c.Path()),
			zap.Int("status", status),
			zap.Error(err))
	} else {
		h.logger.Warn("Conversion request rejected",
			zap.String("path", c.Path()),
			zap.Int("status", status),
			zap.Error(err))
	}
	return c.JSON(status, ErrorResponse{Error: faults.PublicMessage(err)})
}

package usecase

import (
	"context"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/odiaaudiogen/server/domain/entities"
	"github.com/odiaaudiogen/server/domain/repositories"
	"github.com/odiaaudiogen/server/internal/faults"
)

// Validation messages kept verbatim; mobile and web clients match on them.
const (
	msgMissingAudio     = "Missing audio file in request."
	msgMissingTTSFields = "Missing 'text' or 'target_language_code' in request body."
	msgMissingText      = "Text to translate is required"
)

// ConversionService orchestrates the conversion flows. Every operation is a
// straight-line sequence of at most three dependent upstream calls with
// fail-fast propagation: if a step fails, the following steps never execute
// and no partial result is returned.
type ConversionService struct {
	transcriber repositories.Transcriber
	synthesizer repositories.Synthesizer
	translator  repositories.Translator
	logger      *zap.Logger
}

// NewConversionService creates a new conversion service.
func NewConversionService(
	transcriber repositories.Transcriber,
	synthesizer repositories.Synthesizer,
	translator repositories.Translator,
	logger *zap.Logger,
) *ConversionService {
	return &ConversionService{
		transcriber: transcriber,
		synthesizer: synthesizer,
		translator:  translator,
		logger:      logger,
	}
}

// SpeechToTextInput carries one STT request.
type SpeechToTextInput struct {
	Audio               entities.Audio
	SourceLanguage      string
	DestinationLanguage string
}

// SpeechToText transcribes audio and translates the transcript into the
// destination language.
func (s *ConversionService) SpeechToText(ctx context.Context, in SpeechToTextInput) (*entities.SpeechToTextResult, error) {
	if len(in.Audio.Data) == 0 {
		return nil, faults.NewValidation(msgMissingAudio)
	}

	logger := s.operationLogger("speech_to_text")

	sourceLanguage := in.SourceLanguage
	if sourceLanguage == "" {
		sourceLanguage = entities.LanguageAutoDetect
	}

	transcription, err := s.transcriber.Transcribe(ctx, in.Audio, sourceLanguage, entities.DefaultSTTModel)
	if err != nil {
		return nil, err
	}

	logger.Info("Transcription completed",
		zap.String("detectedLanguage", transcription.LanguageCode))

	destination := in.DestinationLanguage
	if destination == "" {
		destination = entities.DefaultDestinationLanguage
	}

	translation, err := s.translator.Translate(ctx, transcription.Transcript, destination)
	if err != nil {
		return nil, err
	}

	return &entities.SpeechToTextResult{
		Transcript:  transcription.Transcript,
		Translation: translation.TranslatedText,
	}, nil
}

// TextToSpeechInput carries one TTS request.
type TextToSpeechInput struct {
	Text               string
	TargetLanguageCode string
	Speaker            string
}

// TextToSpeech translates text into the target language and synthesizes the
// translated text. When the translation success body carries no translated
// text, the original text is synthesized instead; the clients depend on this
// fallback, so it is kept and logged rather than treated as an error.
func (s *ConversionService) TextToSpeech(ctx context.Context, in TextToSpeechInput) (*entities.TextToSpeechResult, error) {
	if in.Text == "" || in.TargetLanguageCode == "" {
		return nil, faults.NewValidation(msgMissingTTSFields)
	}

	logger := s.operationLogger("text_to_speech")

	translation, err := s.translator.Translate(ctx, in.Text, in.TargetLanguageCode)
	if err != nil {
		return nil, err
	}

	resolvedText := s.resolveSynthesisText(logger, translation, in.Text)

	speaker := in.Speaker
	if speaker == "" {
		speaker = entities.DefaultSpeaker
	}

	synthesis, err := s.synthesizer.Synthesize(ctx, resolvedText, in.TargetLanguageCode, entities.DefaultTTSModel, speaker)
	if err != nil {
		return nil, err
	}

	return &entities.TextToSpeechResult{
		RequestID: synthesis.RequestID,
		Audios:    synthesis.Audios,
	}, nil
}

// SpeechToSpeechInput carries one STS request.
type SpeechToSpeechInput struct {
	Audio               entities.Audio
	SourceLanguage      string
	DestinationLanguage string
	Speaker             string
}

// SpeechToSpeech transcribes audio, translates the transcript and
// synthesizes the translated text in the destination language. When the
// caller omits the destination, English and Odia toggle based on the
// detected language.
func (s *ConversionService) SpeechToSpeech(ctx context.Context, in SpeechToSpeechInput) (*entities.SpeechToSpeechResult, error) {
	if len(in.Audio.Data) == 0 {
		return nil, faults.NewValidation(msgMissingAudio)
	}

	logger := s.operationLogger("speech_to_speech")

	sourceLanguage := in.SourceLanguage
	if sourceLanguage == "" {
		sourceLanguage = entities.LanguageAutoDetect
	}

	transcription, err := s.transcriber.Transcribe(ctx, in.Audio, sourceLanguage, entities.DefaultSTTModel)
	if err != nil {
		return nil, err
	}

	destination := in.DestinationLanguage
	if destination == "" {
		if transcription.LanguageCode == entities.LanguageEnglishIndia {
			destination = entities.LanguageOdia
		} else {
			destination = entities.LanguageEnglishIndia
		}
		logger.Info("Destination language not supplied, toggled from detected language",
			zap.String("detectedLanguage", transcription.LanguageCode),
			zap.String("destination", destination))
	}

	translation, err := s.translator.Translate(ctx, transcription.Transcript, destination)
	if err != nil {
		return nil, err
	}

	resolvedText := s.resolveSynthesisText(logger, translation, transcription.Transcript)

	speaker := in.Speaker
	if speaker == "" {
		speaker = entities.DefaultSpeaker
	}

	synthesis, err := s.synthesizer.Synthesize(ctx, resolvedText, destination, entities.DefaultTTSModel, speaker)
	if err != nil {
		return nil, err
	}

	var audio string
	if len(synthesis.Audios) > 0 {
		audio = synthesis.Audios[0]
	}

	return &entities.SpeechToSpeechResult{
		Transcript:  transcription.Transcript,
		Translation: resolvedText,
		Audio:       audio,
	}, nil
}

// TranslateText translates text into the target language. Unlike the speech
// flows, a success body without translated text is rejected here: the caller
// asked for the translation itself, so there is nothing to fall back to.
func (s *ConversionService) TranslateText(ctx context.Context, text, targetLanguage string) (*entities.TextTranslationResult, error) {
	if text == "" {
		return nil, faults.NewValidation(msgMissingText)
	}
	if targetLanguage == "" {
		targetLanguage = entities.DefaultDestinationLanguage
	}

	translation, err := s.translator.Translate(ctx, text, targetLanguage)
	if err != nil {
		return nil, err
	}
	if translation.TranslatedText == "" {
		return nil, faults.NewInvalidUpstream("Invalid translation response - missing translated_text")
	}

	return &entities.TextTranslationResult{
		OriginalText:   text,
		Translation:    translation.TranslatedText,
		SourceLanguage: translation.SourceLanguageCode,
		TargetLanguage: translation.TargetLanguageCode,
	}, nil
}

// resolveSynthesisText applies the fallback-on-missing-field policy.
func (s *ConversionService) resolveSynthesisText(logger *zap.Logger, translation *entities.TranslationResult, original string) string {
	if translation.TranslatedText != "" {
		return translation.TranslatedText
	}
	logger.Warn("Translation succeeded without translated text, synthesizing original text",
		zap.String("requestID", translation.RequestID),
		zap.String("targetLanguage", translation.TargetLanguageCode))
	return original
}

func (s *ConversionService) operationLogger(operation string) *zap.Logger {
	return s.logger.With(
		zap.String("operation", operation),
		zap.String("conversionID", uuid.NewString()),
	)
}

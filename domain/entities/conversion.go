package entities

// Provider defaults shared by every call site. Declared once here so no
// handler or adapter re-declares its own copy.
const (
	// DefaultSTTModel is the Sarvam speech-to-text model.
	DefaultSTTModel = "saarika:v2"
	// DefaultTTSModel is the Sarvam text-to-speech model.
	DefaultTTSModel = "bulbul:v2"
	// DefaultSpeaker is the voice used when the caller does not pick one.
	DefaultSpeaker = "abhilash"
	// LanguageAutoDetect is the provider's sentinel for "detect the spoken
	// language" on speech-to-text.
	LanguageAutoDetect = "unknown"
	// TranslateSourceAuto is the provider's sentinel for auto-detected
	// translation source language.
	TranslateSourceAuto = "auto"
	// DefaultDestinationLanguage is used when the caller omits one.
	DefaultDestinationLanguage = "en-IN"

	LanguageEnglishIndia = "en-IN"
	LanguageOdia         = "od-IN"
)

// Audio is one uploaded audio payload.
type Audio struct {
	Data     []byte
	FileName string
	MimeType string
}

// TranscriptionResult is the normalized output of the speech-to-text provider.
type TranscriptionResult struct {
	RequestID    string
	Transcript   string
	LanguageCode string
}

// TranslationResult is the normalized output of the translation provider.
// TranslatedText may be empty when the provider returned a success body
// without the field; fallback policy belongs to the caller.
type TranslationResult struct {
	RequestID          string
	SourceText         string
	TranslatedText     string
	SourceLanguageCode string
	TargetLanguageCode string
}

// SynthesisResult is the normalized output of the text-to-speech provider.
// Audios holds base64-encoded audio payloads, at least one on success.
type SynthesisResult struct {
	RequestID string
	Audios    []string
}

// SpeechToTextResult is the unified payload for one STT conversion.
type SpeechToTextResult struct {
	Transcript  string
	Translation string
}

// TextToSpeechResult is the unified payload for one TTS conversion.
type TextToSpeechResult struct {
	RequestID string
	Audios    []string
}

// SpeechToSpeechResult is the unified payload for one STS conversion.
type SpeechToSpeechResult struct {
	Transcript  string
	Translation string
	Audio       string
}

// TextTranslationResult is the unified payload for one text translation.
type TextTranslationResult struct {
	OriginalText   string
	Translation    string
	SourceLanguage string
	TargetLanguage string
}

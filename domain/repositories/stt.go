package repositories

import (
	"context"

	"github.com/odiaaudiogen/server/domain/entities"
)

// Transcriber abstracts the speech-to-text provider.
type Transcriber interface {
	// Transcribe converts audio data to text. languageCode may be the
	// auto-detect sentinel; model falls back to the default when empty.
	Transcribe(ctx context.Context, audio entities.Audio, languageCode, model string) (*entities.TranscriptionResult, error)
}

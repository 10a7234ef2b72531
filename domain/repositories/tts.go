package repositories

import (
	"context"

	"github.com/odiaaudiogen/server/domain/entities"
)

// Synthesizer abstracts the text-to-speech provider.
type Synthesizer interface {
	// Synthesize converts text to one or more base64 audio payloads.
	Synthesize(ctx context.Context, text, targetLanguageCode, model, speaker string) (*entities.SynthesisResult, error)
}

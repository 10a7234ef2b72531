package repositories

import (
	"context"

	"github.com/odiaaudiogen/server/domain/entities"
)

// Translator abstracts the text-translation provider.
type Translator interface {
	// Translate converts text into the target language. A success body
	// without a translated_text field is surfaced as an empty
	// TranslatedText, not an error; the caller decides fallback policy.
	Translate(ctx context.Context, text, targetLanguageCode string) (*entities.TranslationResult, error)
}

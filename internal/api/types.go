package api

import "github.com/odiaaudiogen/server/domain/entities"

// ErrorResponse is the unified failure shape for conversion endpoints.
type ErrorResponse struct {
	Error string `json:"error"`
}

// MessageResponse carries a human-readable status for the account endpoints.
type MessageResponse struct {
	Message string `json:"message"`
}

// STTResponse is the success payload for POST /api/v1/stt.
type STTResponse struct {
	Transcript  string `json:"transcript"`
	Translation string `json:"translation"`
}

// TTSRequest is the body for POST /api/v1/tts.
type TTSRequest struct {
	Text               string `json:"text"`
	TargetLanguageCode string `json:"target_language_code"`
	Speaker            string `json:"speaker,omitempty"`
}

// TTSResponse is the success payload for POST /api/v1/tts.
type TTSResponse struct {
	RequestID string   `json:"request_id"`
	Audios    []string `json:"audios"`
}

// STSResponse is the success payload for POST /api/v1/sts.
type STSResponse struct {
	Transcript  string `json:"transcript"`
	Translation string `json:"translation"`
	Audio       string `json:"audio"`
}

// TTTRequest is the body for POST /api/v1/ttt.
type TTTRequest struct {
	Text           string `json:"text"`
	TargetLanguage string `json:"targetLanguage"`
}

// TTTResponse is the success payload for POST /api/v1/ttt.
type TTTResponse struct {
	Success        bool   `json:"success"`
	OriginalText   string `json:"originalText"`
	Translation    string `json:"translation"`
	SourceLanguage string `json:"sourceLanguage"`
	TargetLanguage string `json:"targetLanguage"`
}

// RegisterRequest is the body for POST /api/v1/users/register.
type RegisterRequest struct {
	Name            string `json:"name"`
	Username        string `json:"username"`
	Email           string `json:"email"`
	Password        string `json:"password"`
	ConfirmPassword string `json:"confirmPassword"`
}

// LoginRequest is the body for POST /api/v1/users/login. A Google ID token
// in Token delegates to the Google sign-in flow.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Token    string `json:"token"`
}

// GoogleAuthRequest is the body for POST /api/v1/users/google.
type GoogleAuthRequest struct {
	Token string `json:"token"`
}

// UserResponse is the success payload for the account endpoints.
type UserResponse struct {
	ID       string `json:"_id"`
	Name     string `json:"name,omitempty"`
	Username string `json:"username"`
	Email    string `json:"email"`
	Picture  string `json:"picture,omitempty"`
	Token    string `json:"token,omitempty"`
	Message  string `json:"message,omitempty"`
}

// ProfileResponse is the success payload for GET /api/v1/users/profile.
type ProfileResponse struct {
	ID             string `json:"_id"`
	Name           string `json:"name"`
	Username       string `json:"username"`
	Email          string `json:"email"`
	ProfilePicture string `json:"profilePicture,omitempty"`
}

// FeedbackRequest is the body for POST /api/v1/feedback/submit.
type FeedbackRequest struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Rating  int    `json:"rating"`
	Message string `json:"message"`
}

// FeedbackResponse is the success payload for feedback submission.
type FeedbackResponse struct {
	Success bool               `json:"success"`
	Message string             `json:"message"`
	Data    *entities.Feedback `json:"data,omitempty"`
}

// FeedbackListResponse is the success payload for the admin feedback list.
type FeedbackListResponse struct {
	Success bool                 `json:"success"`
	Data    []*entities.Feedback `json:"data"`
}

// ContactRequest is the body for POST /api/v1/contact.
type ContactRequest struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Subject string `json:"subject"`
	Message string `json:"message"`
}

// ContactResponse is the success payload for contact submission.
type ContactResponse struct {
	Success bool              `json:"success"`
	Message string            `json:"message"`
	Data    *entities.Contact `json:"data,omitempty"`
}

// ContactListResponse is the success payload for the admin contact list.
type ContactListResponse struct {
	Success bool                `json:"success"`
	Data    []*entities.Contact `json:"data"`
}

package api

import (
	"bytes"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap/zaptest"

	"github.com/odiaaudiogen/server/adapters/sarvam"
	"github.com/odiaaudiogen/server/usecase"
)

// fakeProvider stands in for the Sarvam API and counts calls per endpoint.
type fakeProvider struct {
	server *httptest.Server

	sttStatus int
	sttBody   string

	translateCalls int
	translateBody  string

	ttsCalls int
	ttsBody  string
}

func newFakeProvider(t *testing.T) *fakeProvider {
	t.Helper()
	p := &fakeProvider{
		sttStatus:     http.StatusOK,
		sttBody:       `{"request_id":"stt-1","transcript":"hello","language_code":"en-IN"}`,
		translateBody: `{"request_id":"tr-1","translated_text":"ନମସ୍କାର","source_language_code":"en-IN","target_language_code":"od-IN"}`,
		ttsBody:       `{"request_id":"r1","audios":["QUJD"]}`,
	}
	p.server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		switch r.URL.Path {
		case "/speech-to-text":
			w.WriteHeader(p.sttStatus)
			w.Write([]byte(p.sttBody))
		case "/translate":
			p.translateCalls++
			w.Write([]byte(p.translateBody))
		case "/text-to-speech":
			p.ttsCalls++
			w.Write([]byte(p.ttsBody))
		default:
			t.Errorf("unexpected provider path %s", r.URL.Path)
			w.WriteHeader(http.StatusNotFound)
		}
	}))
	t.Cleanup(p.server.Close)
	return p
}

func newConversionEcho(t *testing.T, provider *fakeProvider) *echo.Echo {
	t.Helper()
	logger := zaptest.NewLogger(t)
	client := sarvam.NewClient(sarvam.Config{APIKey: "test-key", BaseURL: provider.server.URL}, logger)
	service := usecase.NewConversionService(client, client, client, logger)
	handler := NewConversionHandler(service, logger)

	e := echo.New()
	e.GET("/api/v1/stt", handler.GetSpeechToText)
	e.POST("/api/v1/stt", handler.PostSpeechToText)
	e.POST("/api/v1/tts", handler.PostTextToSpeech)
	e.POST("/api/v1/sts", handler.PostSpeechToSpeech)
	e.POST("/api/v1/ttt", handler.PostTextToText)
	return e
}

func multipartAudio(t *testing.T, fields map[string]string, withAudio bool) (*bytes.Buffer, string) {
	t.Helper()
	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)
	if withAudio {
		part, err := writer.CreateFormFile("audio", "clip.wav")
		if err != nil {
			t.Fatalf("failed to create audio part: %v", err)
		}
		part.Write([]byte("RIFF....WAVEfmt "))
	}
	for k, v := range fields {
		writer.WriteField(k, v)
	}
	writer.Close()
	return body, writer.FormDataContentType()
}

func TestPostTextToSpeechEndToEnd(t *testing.T) {
	provider := newFakeProvider(t)
	e := newConversionEcho(t, provider)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/tts",
		strings.NewReader(`{"text":"Hello","target_language_code":"od-IN"}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}

	var resp TTSResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if resp.RequestID != "r1" {
		t.Errorf("expected request_id r1, got %q", resp.RequestID)
	}
	if len(resp.Audios) != 1 || resp.Audios[0] != "QUJD" {
		t.Errorf("unexpected audios %v", resp.Audios)
	}
	if provider.translateCalls != 1 || provider.ttsCalls != 1 {
		t.Errorf("expected one translate and one tts call, got %d/%d", provider.translateCalls, provider.ttsCalls)
	}
}

func TestPostTextToSpeechMissingFields(t *testing.T) {
	provider := newFakeProvider(t)
	e := newConversionEcho(t, provider)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/tts", strings.NewReader(`{"text":"Hello"}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
	if provider.translateCalls != 0 {
		t.Error("no upstream call may happen on validation failure")
	}
}

func TestPostSpeechToTextMissingAudio(t *testing.T) {
	provider := newFakeProvider(t)
	e := newConversionEcho(t, provider)

	body, contentType := multipartAudio(t, map[string]string{"destination_language": "en-IN"}, false)
	req := httptest.NewRequest(http.MethodPost, "/api/v1/stt", body)
	req.Header.Set(echo.HeaderContentType, contentType)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}

	var resp ErrorResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if resp.Error != "Missing audio file in request." {
		t.Errorf("expected literal error message, got %q", resp.Error)
	}
}

func TestPostSpeechToTextEndToEnd(t *testing.T) {
	provider := newFakeProvider(t)
	e := newConversionEcho(t, provider)

	body, contentType := multipartAudio(t, map[string]string{"destination_language": "od-IN"}, true)
	req := httptest.NewRequest(http.MethodPost, "/api/v1/stt", body)
	req.Header.Set(echo.HeaderContentType, contentType)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}

	var resp STTResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if resp.Transcript != "hello" {
		t.Errorf("unexpected transcript %q", resp.Transcript)
	}
	if resp.Translation != "ନମସ୍କାର" {
		t.Errorf("unexpected translation %q", resp.Translation)
	}
}

func TestPostSpeechToSpeechUpstreamFailureIsFailFast(t *testing.T) {
	provider := newFakeProvider(t)
	provider.sttStatus = http.StatusInternalServerError
	provider.sttBody = `{"message":"recognizer crashed"}`
	e := newConversionEcho(t, provider)

	body, contentType := multipartAudio(t, nil, true)
	req := httptest.NewRequest(http.MethodPost, "/api/v1/sts", body)
	req.Header.Set(echo.HeaderContentType, contentType)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadGateway {
		t.Fatalf("expected 502, got %d", rec.Code)
	}
	if provider.translateCalls != 0 || provider.ttsCalls != 0 {
		t.Errorf("translation/synthesis must not run after transcription failure, got %d/%d",
			provider.translateCalls, provider.ttsCalls)
	}

	var resp ErrorResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if resp.Error != "recognizer crashed" {
		t.Errorf("expected provider message, got %q", resp.Error)
	}
}

func TestPostSpeechToSpeechEndToEnd(t *testing.T) {
	provider := newFakeProvider(t)
	e := newConversionEcho(t, provider)

	body, contentType := multipartAudio(t, map[string]string{"speaker": "abhilash"}, true)
	req := httptest.NewRequest(http.MethodPost, "/api/v1/sts", body)
	req.Header.Set(echo.HeaderContentType, contentType)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}

	var resp STSResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if resp.Transcript != "hello" || resp.Translation != "ନମସ୍କାର" || resp.Audio != "QUJD" {
		t.Errorf("unexpected response %+v", resp)
	}
}

func TestPostTextToTextEndToEnd(t *testing.T) {
	provider := newFakeProvider(t)
	e := newConversionEcho(t, provider)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/ttt",
		strings.NewReader(`{"text":"Hello","targetLanguage":"od-IN"}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}

	var resp TTTResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if !resp.Success || resp.Translation != "ନମସ୍କାର" || resp.OriginalText != "Hello" {
		t.Errorf("unexpected response %+v", resp)
	}
}

func TestGetSpeechToTextUsageHint(t *testing.T) {
	provider := newFakeProvider(t)
	e := newConversionEcho(t, provider)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/stt", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "POST method") {
		t.Errorf("expected usage hint, got %s", rec.Body.String())
	}
}

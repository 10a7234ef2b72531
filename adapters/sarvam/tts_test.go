package sarvam

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"go.uber.org/zap/zaptest"

	"github.com/odiaaudiogen/server/domain/entities"
	"github.com/odiaaudiogen/server/internal/faults"
)

func TestSynthesize(t *testing.T) {
	var gotRequest synthesisRequest

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/text-to-speech" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		if r.Header.Get("api-subscription-key") != "test-key" {
			t.Errorf("missing subscription key header")
		}
		if err := json.NewDecoder(r.Body).Decode(&gotRequest); err != nil {
			t.Fatalf("failed to decode request: %v", err)
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"request_id":"r1","audios":["QUJD"]}`))
	}))
	defer server.Close()

	client := NewClient(Config{APIKey: "test-key", BaseURL: server.URL}, zaptest.NewLogger(t))

	result, err := client.Synthesize(context.Background(), "ନମସ୍କାର", "od-IN", "", "")
	if err != nil {
		t.Fatalf("Synthesize failed: %v", err)
	}

	if gotRequest.Model != entities.DefaultTTSModel {
		t.Errorf("expected default model %q, got %q", entities.DefaultTTSModel, gotRequest.Model)
	}
	if gotRequest.Speaker != entities.DefaultSpeaker {
		t.Errorf("expected default speaker %q, got %q", entities.DefaultSpeaker, gotRequest.Speaker)
	}
	if gotRequest.TargetLanguageCode != "od-IN" {
		t.Errorf("expected target language od-IN, got %q", gotRequest.TargetLanguageCode)
	}
	if result.RequestID != "r1" {
		t.Errorf("expected request id r1, got %q", result.RequestID)
	}
	if len(result.Audios) != 1 || result.Audios[0] != "QUJD" {
		t.Errorf("unexpected audios: %v", result.Audios)
	}
}

func TestSynthesizeMissingAudios(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"request_id":"r1"}`))
	}))
	defer server.Close()

	client := NewClient(Config{APIKey: "test-key", BaseURL: server.URL}, zaptest.NewLogger(t))

	_, err := client.Synthesize(context.Background(), "hello", "en-IN", "", "")
	if !faults.IsKind(err, faults.InvalidUpstreamResponse) {
		t.Errorf("expected invalid upstream response fault, got %v", err)
	}
}

func TestSynthesizeRequestIDFallback(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"audios":["QUJD"]}`))
	}))
	defer server.Close()

	client := NewClient(Config{APIKey: "test-key", BaseURL: server.URL}, zaptest.NewLogger(t))

	result, err := client.Synthesize(context.Background(), "hello", "en-IN", "", "")
	if err != nil {
		t.Fatalf("Synthesize failed: %v", err)
	}
	if result.RequestID != "unknown" {
		t.Errorf("expected request id fallback 'unknown', got %q", result.RequestID)
	}
}

func TestSynthesizeUpstream4xxPassesThrough(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnprocessableEntity)
		w.Write([]byte(`{"error":{"message":"unsupported language"}}`))
	}))
	defer server.Close()

	client := NewClient(Config{APIKey: "test-key", BaseURL: server.URL}, zaptest.NewLogger(t))

	_, err := client.Synthesize(context.Background(), "hello", "xx-XX", "", "")
	f, ok := faults.As(err)
	if !ok {
		t.Fatalf("expected fault, got %v", err)
	}
	if f.UpstreamStatus != http.StatusUnprocessableEntity {
		t.Errorf("expected upstream status 422, got %d", f.UpstreamStatus)
	}
	if f.Message != "unsupported language" {
		t.Errorf("expected nested provider message, got %q", f.Message)
	}
}

func TestSynthesizeEmptyText(t *testing.T) {
	client := NewClient(Config{APIKey: "test-key"}, zaptest.NewLogger(t))

	if _, err := client.Synthesize(context.Background(), "", "en-IN", "", ""); !faults.IsKind(err, faults.Validation) {
		t.Errorf("expected validation fault for empty text, got %v", err)
	}
	if _, err := client.Synthesize(context.Background(), "hello", "", "", ""); !faults.IsKind(err, faults.Validation) {
		t.Errorf("expected validation fault for empty target language, got %v", err)
	}
}

package gemini

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/yungbote/studyplan-backend/internal/logger"
)

func testLogger(t *testing.T) *logger.Logger {
	t.Helper()
	log, err := logger.New("test")
	if err != nil {
		t.Fatalf("init logger: %v", err)
	}
	return log
}

func testClient(t *testing.T, baseURL string) *Client {
	t.Helper()
	return &Client{
		log:        testLogger(t),
		baseURL:    baseURL,
		apiKey:     "test-key",
		model:      "test-model",
		httpClient: &http.Client{Timeout: 2 * time.Second},
	}
}

func TestGenerateText_ReturnsCandidateText(t *testing.T) {
	var gotBody generateRequest
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if err := json.NewDecoder(r.Body).Decode(&gotBody); err != nil {
			t.Errorf("decode request: %v", err)
		}
		_ = json.NewEncoder(w).Encode(map[string]any{
			"candidates": []map[string]any{
				{"content": map[string]any{"parts": []map[string]any{{"text": "{\"summary\":\"ok\"}"}}}},
			},
		})
	}))
	defer srv.Close()

	c := testClient(t, srv.URL)
	text, err := c.GenerateText(context.Background(), "make a plan", Options{Temperature: 0.7, TopP: 0.9, MaxOutputTokens: 1200})
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	if text != `{"summary":"ok"}` {
		t.Fatalf("unexpected text %q", text)
	}
	if len(gotBody.Contents) != 1 || gotBody.Contents[0].Parts[0].Text != "make a plan" {
		t.Fatalf("prompt not forwarded: %+v", gotBody)
	}
	if gotBody.GenerationConfig.MaxOutputTokens != 1200 {
		t.Fatalf("generation config not forwarded: %+v", gotBody.GenerationConfig)
	}
}

func TestGenerateText_NonSuccessStatusIsUpstreamError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "quota exceeded", http.StatusTooManyRequests)
	}))
	defer srv.Close()

	c := testClient(t, srv.URL)
	_, err := c.GenerateText(context.Background(), "prompt", Options{})
	var upstream *UpstreamError
	if !errors.As(err, &upstream) {
		t.Fatalf("expected *UpstreamError, got %v", err)
	}
	if upstream.StatusCode != http.StatusTooManyRequests {
		t.Fatalf("status = %d, want 429", upstream.StatusCode)
	}
}

func TestGenerateText_EmptyCandidatesIsUpstreamError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"candidates":[]}`))
	}))
	defer srv.Close()

	c := testClient(t, srv.URL)
	_, err := c.GenerateText(context.Background(), "prompt", Options{})
	var upstream *UpstreamError
	if !errors.As(err, &upstream) {
		t.Fatalf("expected *UpstreamError, got %v", err)
	}
}

func TestGenerateText_ConnectionFailureIsTransportError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close() // refuse connections

	c := testClient(t, srv.URL)
	_, err := c.GenerateText(context.Background(), "prompt", Options{})
	var transport *TransportError
	if !errors.As(err, &transport) {
		t.Fatalf("expected *TransportError, got %v", err)
	}
}

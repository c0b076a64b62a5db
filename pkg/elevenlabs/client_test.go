package elevenlabs_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"agent-relay/pkg/elevenlabs"
)

func TestSynthesize(t *testing.T) {
	audio := []byte{0xff, 0xf3, 0x01, 0x02}

	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("xi-api-key") != "test-key" {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		if !strings.HasSuffix(r.URL.Path, "/text-to-speech/test-voice") {
			w.WriteHeader(http.StatusNotFound)
			return
		}

		var req elevenlabs.SynthesizeRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		if req.Text == "cause_500" {
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		if req.ModelID == "" {
			w.WriteHeader(http.StatusBadRequest)
			return
		}

		w.Header().Set("Content-Type", "audio/mpeg")
		w.Write(audio)
	}))
	defer ts.Close()

	client, err := elevenlabs.New("test-key", "test-voice")
	if err != nil {
		t.Fatalf("failed to create client: %v", err)
	}
	client.WithBaseURL(ts.URL)

	t.Run("Success Flow", func(t *testing.T) {
		got, err := client.Synthesize(context.Background(), "hello world")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !bytes.Equal(got, audio) {
			t.Errorf("audio bytes not passed through: %v", got)
		}
	})

	t.Run("Empty Text", func(t *testing.T) {
		if _, err := client.Synthesize(context.Background(), ""); err == nil {
			t.Fatal("expected error for empty text")
		}
	})

	t.Run("Server Error Flow", func(t *testing.T) {
		if _, err := client.Synthesize(context.Background(), "cause_500"); err == nil {
			t.Fatal("expected error from 500 response")
		}
	})

	t.Run("Unauthorized", func(t *testing.T) {
		bad, _ := elevenlabs.New("bad-key", "test-voice")
		bad.WithBaseURL(ts.URL)
		_, err := bad.Synthesize(context.Background(), "hello")
		if err == nil || !strings.Contains(err.Error(), "401") {
			t.Fatalf("expected 401 error, got %v", err)
		}
	})
}

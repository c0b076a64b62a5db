package agentforce_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"agent-relay/pkg/agentforce"
)

func newTestClient(t *testing.T, ts *httptest.Server) *agentforce.Client {
	t.Helper()
	client, err := agentforce.New("https://example.my.salesforce-api.com", "agent-1", "https://example.my.salesforce.com")
	if err != nil {
		t.Fatalf("failed to create client: %v", err)
	}
	return client.WithBaseURL(ts.URL)
}

func TestCreateSession(t *testing.T) {
	var seenKeys []string

	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/einstein/ai-agent/v1/agents/agent-1/sessions" {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		if r.Header.Get("Authorization") != "Bearer tok-123" {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}

		var req agentforce.CreateSessionRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		seenKeys = append(seenKeys, req.ExternalSessionKey)

		if !strings.HasPrefix(req.ExternalSessionKey, "session-") {
			t.Errorf("unexpected external session key %q", req.ExternalSessionKey)
		}
		if req.InstanceConfig.Endpoint != "https://example.my.salesforce.com" {
			t.Errorf("unexpected instance endpoint %q", req.InstanceConfig.Endpoint)
		}
		if !req.BypassUser {
			t.Error("expected bypassUser to be set")
		}

		switch req.TZ {
		case "cause_500":
			w.WriteHeader(http.StatusInternalServerError)
		case "cause_empty":
			w.Write([]byte(`{}`))
		default:
			w.Write([]byte(`{"sessionId":"sess-abc"}`))
		}
	}))
	defer ts.Close()

	t.Run("Success Flow", func(t *testing.T) {
		client := newTestClient(t, ts)
		id, err := client.CreateSession(context.Background(), "tok-123")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if id != "sess-abc" {
			t.Errorf("expected sess-abc, got %q", id)
		}
	})

	t.Run("Fresh Key Per Call", func(t *testing.T) {
		client := newTestClient(t, ts)
		seenKeys = nil
		for i := 0; i < 2; i++ {
			if _, err := client.CreateSession(context.Background(), "tok-123"); err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
		}
		if len(seenKeys) != 2 || seenKeys[0] == seenKeys[1] {
			t.Errorf("expected two distinct external session keys, got %v", seenKeys)
		}
	})

	t.Run("Server Error Flow", func(t *testing.T) {
		client := newTestClient(t, ts).WithTimezone("cause_500")
		if _, err := client.CreateSession(context.Background(), "tok-123"); err == nil {
			t.Fatal("expected error from 500 response")
		}
	})

	t.Run("Missing Session ID", func(t *testing.T) {
		client := newTestClient(t, ts).WithTimezone("cause_empty")
		_, err := client.CreateSession(context.Background(), "tok-123")
		if err == nil || !strings.Contains(err.Error(), "missing sessionId") {
			t.Fatalf("expected missing sessionId error, got %v", err)
		}
	})

	t.Run("Unauthorized", func(t *testing.T) {
		client := newTestClient(t, ts)
		if _, err := client.CreateSession(context.Background(), "bad-token"); err == nil {
			t.Fatal("expected error for rejected token")
		}
	})
}

func TestSendMessage(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Authorization") != "Bearer tok-123" {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}

		var req agentforce.SendMessageRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			return
		}

		switch {
		case strings.HasSuffix(r.URL.Path, "/sessions/sess-gone/messages"):
			w.WriteHeader(http.StatusNotFound)
		case strings.HasSuffix(r.URL.Path, "/sessions/sess-abc/messages"):
			if req.Message.Type != "Text" {
				t.Errorf("unexpected message type %q", req.Message.Type)
			}
			// Echo the sequence back so the test can assert it was
			// carried through untouched.
			resp := agentforce.SendMessageResponse{
				Messages: []agentforce.AgentMessage{
					{Message: "reply-to-" + req.Message.Text},
				},
			}
			if req.Message.SequenceID == 0 {
				w.WriteHeader(http.StatusBadRequest)
				return
			}
			json.NewEncoder(w).Encode(resp)
		case strings.HasSuffix(r.URL.Path, "/sessions/sess-empty/messages"):
			w.Write([]byte(`{"messages":[]}`))
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	}))
	defer ts.Close()

	t.Run("Success Flow", func(t *testing.T) {
		client := newTestClient(t, ts)
		reply, err := client.SendMessage(context.Background(), "tok-123", "sess-abc", "hello", 1)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if reply != "reply-to-hello" {
			t.Errorf("unexpected reply %q", reply)
		}
	})

	t.Run("Zero Sequence Rejected By Server", func(t *testing.T) {
		client := newTestClient(t, ts)
		if _, err := client.SendMessage(context.Background(), "tok-123", "sess-abc", "hello", 0); err == nil {
			t.Fatal("expected error when sequence was not carried through")
		}
	})

	t.Run("Session Gone", func(t *testing.T) {
		client := newTestClient(t, ts)
		_, err := client.SendMessage(context.Background(), "tok-123", "sess-gone", "hello", 3)
		if err == nil {
			t.Fatal("expected error for expired session")
		}
		if !agentforce.IsSessionGone(err) {
			t.Errorf("expected session-gone error, got %v", err)
		}
	})

	t.Run("Empty Reply List", func(t *testing.T) {
		client := newTestClient(t, ts)
		_, err := client.SendMessage(context.Background(), "tok-123", "sess-empty", "hello", 1)
		if err == nil || !strings.Contains(err.Error(), "no messages") {
			t.Fatalf("expected empty-reply error, got %v", err)
		}
	})
}

package usecase

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"
)

// Mock logger for testing
type mockLogger struct{}

func (m *mockLogger) Debug(ctx context.Context, args ...interface{})                  {}
func (m *mockLogger) Debugf(ctx context.Context, format string, args ...interface{})  {}
func (m *mockLogger) Info(ctx context.Context, args ...interface{})                   {}
func (m *mockLogger) Infof(ctx context.Context, format string, args ...interface{})   {}
func (m *mockLogger) Warn(ctx context.Context, args ...interface{})                   {}
func (m *mockLogger) Warnf(ctx context.Context, format string, args ...interface{})   {}
func (m *mockLogger) Error(ctx context.Context, args ...interface{})                  {}
func (m *mockLogger) Errorf(ctx context.Context, format string, args ...interface{})  {}
func (m *mockLogger) DPanic(ctx context.Context, args ...interface{})                 {}
func (m *mockLogger) DPanicf(ctx context.Context, format string, args ...interface{}) {}
func (m *mockLogger) Panic(ctx context.Context, args ...interface{})                  {}
func (m *mockLogger) Panicf(ctx context.Context, format string, args ...interface{})  {}
func (m *mockLogger) Fatal(ctx context.Context, args ...interface{})                  {}
func (m *mockLogger) Fatalf(ctx context.Context, format string, args ...interface{})  {}

// mockCreds implements sfauth.IProvider.
type mockCreds struct {
	token   string
	err     error
	fetches int64
}

func (m *mockCreds) Fetch(ctx context.Context) (string, error) {
	atomic.AddInt64(&m.fetches, 1)
	if m.err != nil {
		return "", m.err
	}
	return m.token, nil
}

// sentMessage records one SendMessage call seen by mockAgent.
type sentMessage struct {
	Token     string
	SessionID string
	Text      string
	Sequence  int
}

// mockAgent implements agentforce.IAgentAPI and records every call.
type mockAgent struct {
	mu sync.Mutex

	createErr error
	creations int

	sendFunc func(sessionID string, sequence int) (string, error)
	sent     []sentMessage
}

func (m *mockAgent) CreateSession(ctx context.Context, token string) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.createErr != nil {
		return "", m.createErr
	}
	m.creations++
	return fmt.Sprintf("sess-%d", m.creations), nil
}

func (m *mockAgent) SendMessage(ctx context.Context, token, sessionID, text string, sequence int) (string, error) {
	m.mu.Lock()
	m.sent = append(m.sent, sentMessage{Token: token, SessionID: sessionID, Text: text, Sequence: sequence})
	fn := m.sendFunc
	m.mu.Unlock()

	if fn != nil {
		return fn(sessionID, sequence)
	}
	return "reply-to-" + text, nil
}

func (m *mockAgent) creationCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.creations
}

func (m *mockAgent) sentMessages() []sentMessage {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]sentMessage, len(m.sent))
	copy(out, m.sent)
	return out
}

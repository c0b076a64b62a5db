package usecase

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"agent-relay/internal/speech"
)

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

type mockTTS struct {
	audio []byte
	err   error
}

func (m *mockTTS) Synthesize(ctx context.Context, text string) ([]byte, error) {
	return m.audio, m.err
}

func TestSynthesize(t *testing.T) {
	ctx := context.Background()

	t.Run("Success Flow", func(t *testing.T) {
		audio := []byte{0x01, 0x02, 0x03}
		uc := New(&mockLogger{}, &mockTTS{audio: audio})

		out, err := uc.Synthesize(ctx, speech.SynthesizeInput{Text: "hello"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !bytes.Equal(out.Audio, audio) {
			t.Errorf("audio not passed through: %v", out.Audio)
		}
		if out.ContentType != "audio/mpeg" {
			t.Errorf("unexpected content type %q", out.ContentType)
		}
	})

	t.Run("Empty Text", func(t *testing.T) {
		uc := New(&mockLogger{}, &mockTTS{})
		_, err := uc.Synthesize(ctx, speech.SynthesizeInput{Text: "  "})
		if !errors.Is(err, speech.ErrEmptyText) {
			t.Errorf("expected ErrEmptyText, got %v", err)
		}
	})

	t.Run("TTS Failure", func(t *testing.T) {
		uc := New(&mockLogger{}, &mockTTS{err: errors.New("quota exceeded")})
		_, err := uc.Synthesize(ctx, speech.SynthesizeInput{Text: "hello"})
		if !errors.Is(err, speech.ErrSynthesisFailed) {
			t.Errorf("expected ErrSynthesisFailed, got %v", err)
		}
	})
}

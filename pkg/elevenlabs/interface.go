package elevenlabs

import "context"

// ITTS renders text as audio. Implementations are safe for concurrent use.
type ITTS interface {
	Synthesize(ctx context.Context, text string) ([]byte, error)
}

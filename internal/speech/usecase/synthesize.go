package usecase

import (
	"context"
	"fmt"
	"strings"

	"agent-relay/internal/speech"
)

// Synthesize renders text as mpeg audio via the TTS client.
func (uc *implUseCase) Synthesize(ctx context.Context, input speech.SynthesizeInput) (speech.SynthesizeOutput, error) {
	if strings.TrimSpace(input.Text) == "" {
		return speech.SynthesizeOutput{}, speech.ErrEmptyText
	}

	audio, err := uc.tts.Synthesize(ctx, input.Text)
	if err != nil {
		return speech.SynthesizeOutput{}, fmt.Errorf("%w: %v", speech.ErrSynthesisFailed, err)
	}

	return speech.SynthesizeOutput{
		Audio:       audio,
		ContentType: "audio/mpeg",
	}, nil
}

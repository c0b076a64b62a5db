package speech

import "context"

// UseCase defines the business logic interface for the speech domain.
type UseCase interface {
	// Synthesize renders text as audio. Stateless pass-through.
	Synthesize(ctx context.Context, input SynthesizeInput) (SynthesizeOutput, error)
}

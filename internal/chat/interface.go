package chat

import "context"

// UseCase defines the business logic interface for the chat domain.
type UseCase interface {
	// Converse relays one user message into that user's agent session,
	// establishing the session on first contact, and returns the
	// agent's reply.
	Converse(ctx context.Context, input ConverseInput) (ConverseOutput, error)
}

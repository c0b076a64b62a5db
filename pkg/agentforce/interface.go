package agentforce

import "context"

// IAgentAPI wraps the two Agent API operations as pure transport:
// no session state, no sequencing logic.
// Implementations are safe for concurrent use.
type IAgentAPI interface {
	// CreateSession opens a new agent session and returns its identifier.
	CreateSession(ctx context.Context, token string) (string, error)

	// SendMessage delivers text into an existing session under the given
	// sequence number and returns the agent's reply text.
	SendMessage(ctx context.Context, token, sessionID, text string, sequence int) (string, error)
}

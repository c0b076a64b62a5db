package usecase

import (
	"context"
	"fmt"
	"strings"

	"agent-relay/internal/chat"
	"agent-relay/pkg/agentforce"
)

// Converse relays one user message into that user's agent session.
// Flow: fetch credential, resolve the session (creating it on first
// contact), dispatch with the reserved sequence number. A dispatch
// rejected because the remote silently expired the session triggers one
// transparent recreate-and-retry; any other failure surfaces immediately.
func (uc *implUseCase) Converse(ctx context.Context, input chat.ConverseInput) (chat.ConverseOutput, error) {
	if input.UserID == "" {
		return chat.ConverseOutput{}, chat.ErrEmptyUserID
	}
	if strings.TrimSpace(input.Text) == "" {
		return chat.ConverseOutput{}, chat.ErrEmptyText
	}

	token, err := uc.creds.Fetch(ctx)
	if err != nil {
		return chat.ConverseOutput{}, fmt.Errorf("%w: %v", chat.ErrAuthFailed, err)
	}

	createSession := func(ctx context.Context) (string, error) {
		return uc.agent.CreateSession(ctx, token)
	}

	handle, seq, err := uc.sessions.GetOrCreate(ctx, input.UserID, createSession)
	if err != nil {
		return chat.ConverseOutput{}, fmt.Errorf("%w: %v", chat.ErrSessionCreateFailed, err)
	}

	reply, err := uc.agent.SendMessage(ctx, token, handle, input.Text, seq)
	if agentforce.IsSessionGone(err) {
		uc.l.Warnf(ctx, "chat.Converse: session %s for user %s expired remotely, recreating", handle, input.UserID)
		uc.sessions.Invalidate(input.UserID, handle)

		handle, seq, err = uc.sessions.GetOrCreate(ctx, input.UserID, createSession)
		if err != nil {
			return chat.ConverseOutput{}, fmt.Errorf("%w: %v", chat.ErrSessionCreateFailed, err)
		}
		reply, err = uc.agent.SendMessage(ctx, token, handle, input.Text, seq)
	}
	if err != nil {
		return chat.ConverseOutput{}, fmt.Errorf("%w: %v", chat.ErrDispatchFailed, err)
	}

	return chat.ConverseOutput{
		UserID:    input.UserID,
		SessionID: handle,
		Reply:     reply,
	}, nil
}

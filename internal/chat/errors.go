package chat

import "errors"

// Domain-specific errors for the chat package.
var (
	ErrEmptyUserID = errors.New("user id is empty")
	ErrEmptyText   = errors.New("message text is empty")

	ErrAuthFailed          = errors.New("credential exchange failed")
	ErrSessionCreateFailed = errors.New("agent session creation failed")
	ErrDispatchFailed      = errors.New("message dispatch failed")
)

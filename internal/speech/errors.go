package speech

import "errors"

// Domain-specific errors for the speech package.
var (
	ErrEmptyText       = errors.New("text is empty")
	ErrSynthesisFailed = errors.New("speech synthesis failed")
)

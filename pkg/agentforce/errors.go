package agentforce

import "errors"

var (
	// ErrMissingSessionID means session creation succeeded at the HTTP
	// level but the response carried no session identifier.
	ErrMissingSessionID = errors.New("agentforce: response missing sessionId")

	// ErrEmptyReply means the send succeeded but the response carried
	// no message objects.
	ErrEmptyReply = errors.New("agentforce: response contained no messages")

	// ErrSessionGone means the platform no longer recognizes the
	// session, typically after silent server-side expiry.
	ErrSessionGone = errors.New("agentforce: session no longer exists")
)

// IsSessionGone reports whether err indicates the remote session has been
// invalidated and must be recreated.
func IsSessionGone(err error) bool {
	return errors.Is(err, ErrSessionGone)
}

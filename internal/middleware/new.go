package middleware

import (
	pkgLog "agent-relay/pkg/log"
)

type Middleware struct {
	l       pkgLog.Logger
	limiter *rateLimiter
}

// New creates the middleware stack. A non-positive rate limit disables
// rate limiting entirely.
func New(l pkgLog.Logger, rateLimitPerMin int) Middleware {
	var rl *rateLimiter
	if rateLimitPerMin > 0 {
		rl = newRateLimiter(rateLimitPerMin)
	}
	return Middleware{
		l:       l,
		limiter: rl,
	}
}

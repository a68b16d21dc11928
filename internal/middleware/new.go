package middleware

import (
	"intent-engine/pkg/log"
)

// Middleware bundles the gin middlewares shared by the HTTP and webhook
// routes.
type Middleware struct {
	l       log.Logger
	limiter *rateLimiter
}

// New returns a Middleware limiting each client to requestsPerMin.
// A non-positive limit disables rate limiting.
func New(l log.Logger, requestsPerMin int) Middleware {
	var rl *rateLimiter
	if requestsPerMin > 0 {
		rl = newRateLimiter(requestsPerMin)
	}
	return Middleware{l: l, limiter: rl}
}

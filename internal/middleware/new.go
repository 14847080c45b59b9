// Package middleware carries the HTTP cross-cutting concerns: request
// identity and per-user rate limiting.
package middleware

import (
	pkgLog "study-plan-assistant/pkg/log"
)

type Middleware struct {
	l       pkgLog.Logger
	limiter *userRateLimiter
}

// New creates the middleware set. requestsPerMin bounds how many requests
// a single user may make per minute across all endpoints.
func New(l pkgLog.Logger, requestsPerMin int) Middleware {
	return Middleware{
		l:       l,
		limiter: newUserRateLimiter(requestsPerMin),
	}
}

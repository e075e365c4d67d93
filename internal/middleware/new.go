package middleware

import (
	"golang.org/x/time/rate"

	"agenda-assistant/pkg/log"
)

const defaultRequestsPerMinute = 120

// Middleware bundles the cross-cutting gin handlers.
type Middleware struct {
	l       log.Logger
	limiter *rate.Limiter
}

// New creates the middleware set. requestsPerMinute <= 0 falls back to the
// default; the limiter is a single process-wide token bucket.
func New(l log.Logger, requestsPerMinute int) Middleware {
	if requestsPerMinute <= 0 {
		requestsPerMinute = defaultRequestsPerMinute
	}
	return Middleware{
		l:       l,
		limiter: rate.NewLimiter(rate.Limit(float64(requestsPerMinute)/60.0), requestsPerMinute),
	}
}

package ratelimit

import (
	"net/http"

	"github.com/a-h/respond"
	"golang.org/x/time/rate"
)

// New limits the rate at which requests reach next. Requests over the limit
// are rejected with 429 rather than queued.
func New(limiter *rate.Limiter, next http.Handler) *RateLimit {
	return &RateLimit{
		Next:    next,
		Limiter: limiter,
	}
}

type RateLimit struct {
	Next    http.Handler
	Limiter *rate.Limiter
}

func (rl *RateLimit) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if !rl.Limiter.Allow() {
		w.Header().Set("Retry-After", "1")
		respond.WithError(w, "too many requests", http.StatusTooManyRequests)
		return
	}
	rl.Next.ServeHTTP(w, r)
}

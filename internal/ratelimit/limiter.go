// Package ratelimit paces outgoing requests on the client side.
// It does not read or account the exchange's weight headers.
package ratelimit

import (
	"context"
	"sync/atomic"
	"time"

	"golang.org/x/time/rate"
)

// RateLimiter spaces requests evenly over a period with a burst of one period's worth.
type RateLimiter struct {
	limiter *rate.Limiter
	metrics *Metrics
}

// Metrics tracks how often callers were let through or gave up waiting.
type Metrics struct {
	waited    atomic.Int64
	passed    atomic.Int64
	abandoned atomic.Int64
}

// New creates a RateLimiter allowing requests per period.
func New(requests int, period time.Duration) *RateLimiter {
	return &RateLimiter{
		limiter: rate.NewLimiter(perSecond(requests, period), requests),
		metrics: &Metrics{},
	}
}

func perSecond(requests int, period time.Duration) rate.Limit {
	return rate.Limit(float64(requests) / period.Seconds())
}

// Wait blocks until a request may be sent or ctx is done.
func (r *RateLimiter) Wait(ctx context.Context) error {
	r.metrics.waited.Add(1)
	if err := r.limiter.Wait(ctx); err != nil {
		r.metrics.abandoned.Add(1)
		return err
	}
	r.metrics.passed.Add(1)
	return nil
}

// Metrics returns a snapshot of the limiter's counters.
func (r *RateLimiter) Metrics() MetricsSnapshot {
	return MetricsSnapshot{
		Waited:    r.metrics.waited.Load(),
		Passed:    r.metrics.passed.Load(),
		Abandoned: r.metrics.abandoned.Load(),
	}
}

// MetricsSnapshot is a point-in-time capture of limiter counters.
type MetricsSnapshot struct {
	// Waited is the number of requests that asked to be let through.
	Waited int64
	// Passed is the number of requests let through.
	Passed int64
	// Abandoned is the number of requests denied or cancelled while waiting.
	Abandoned int64
}

package ratelimit

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestRateLimiter_Wait(t *testing.T) {
	limiter := New(5, 100*time.Millisecond)

	for i := 0; i < 5; i++ {
		assert.NoError(t, limiter.Wait(context.Background()))
	}
}

func TestRateLimiter_Wait_ContextCancellation(t *testing.T) {
	limiter := New(1, time.Minute)

	assert.NoError(t, limiter.Wait(context.Background()))

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()

	assert.Error(t, limiter.Wait(ctx))
}

func TestRateLimiter_Metrics(t *testing.T) {
	limiter := New(2, time.Minute)

	assert.NoError(t, limiter.Wait(context.Background()))
	assert.NoError(t, limiter.Wait(context.Background()))

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()
	assert.Error(t, limiter.Wait(ctx))

	m := limiter.Metrics()
	assert.Equal(t, int64(3), m.Waited)
	assert.Equal(t, int64(2), m.Passed)
	assert.Equal(t, int64(1), m.Abandoned)
}

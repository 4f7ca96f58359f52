package ratelimit

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenLimiter_AllowsWithinBudget(t *testing.T) {
	limiter := NewTokenLimiter(1000)

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()

	require.NoError(t, limiter.Wait(ctx, 400))
	require.NoError(t, limiter.Wait(ctx, 400))
	assert.Equal(t, 200, limiter.GetRemaining())
}

func TestTokenLimiter_BlocksWhenExhausted(t *testing.T) {
	limiter := NewTokenLimiter(100)

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	require.NoError(t, limiter.Wait(ctx, 100))
	err := limiter.Wait(ctx, 1)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}

func TestTokenLimiter_OversizedRequestStillAdmittedAlone(t *testing.T) {
	limiter := NewTokenLimiter(100)

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()

	// A single request larger than the per-minute budget must not
	// deadlock; it is admitted against a fresh window.
	require.NoError(t, limiter.Wait(ctx, 500))
}

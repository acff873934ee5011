package db

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWithRetry_SucceedsFirstAttempt(t *testing.T) {
	calls := 0
	err := withRetry(context.Background(), func() error {
		calls++
		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, 1, calls)
}

func TestWithRetry_RecoversAfterTransientFailure(t *testing.T) {
	calls := 0
	err := withRetry(context.Background(), func() error {
		calls++
		if calls < 2 {
			return fmt.Errorf("connection reset")
		}
		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, 2, calls)
}

func TestWithRetry_ExhaustsAttempts(t *testing.T) {
	calls := 0
	err := withRetry(context.Background(), func() error {
		calls++
		return fmt.Errorf("connection reset")
	})
	assert.Error(t, err)
	assert.Equal(t, retryAttempts, calls)
}

func TestWithRetry_CancelledContextStopsRetrying(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	calls := 0
	err := withRetry(ctx, func() error {
		calls++
		return fmt.Errorf("connection reset")
	})
	assert.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, 1, calls)
}

func TestClose_NilPool(t *testing.T) {
	db := &DB{}
	assert.NotPanics(t, func() { db.Close() })
}

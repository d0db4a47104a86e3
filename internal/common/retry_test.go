package common

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWithRetry(t *testing.T) {
	ctx := context.Background()

	t.Run("succeeds after transient failures", func(t *testing.T) {
		attempts := 0
		err := WithRetry(ctx, func() error {
			attempts++
			if attempts < 3 {
				return errors.New("transient")
			}
			return nil
		}, RetryOptions{MaxAttempts: 3, InitialDelay: time.Millisecond})
		require.NoError(t, err)
		assert.Equal(t, 3, attempts)
	})

	t.Run("stops immediately on a non-retryable error", func(t *testing.T) {
		sentinel := errors.New("permanent")
		attempts := 0
		err := WithRetry(ctx, func() error {
			attempts++
			return &RetryableError{Err: sentinel, Retryable: false}
		}, RetryOptions{MaxAttempts: 5, InitialDelay: time.Millisecond})
		require.Error(t, err)
		assert.ErrorIs(t, err, sentinel)
		assert.Equal(t, 1, attempts)
	})

	t.Run("exhausts attempts when the error never clears", func(t *testing.T) {
		attempts := 0
		err := WithRetry(ctx, func() error {
			attempts++
			return errors.New("transient")
		}, RetryOptions{MaxAttempts: 3, InitialDelay: time.Millisecond})
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrMaxRetries)
		assert.Equal(t, 3, attempts)
	})
}

func TestIsRetryable(t *testing.T) {
	assert.True(t, IsRetryable(errors.New("plain errors are presumed transient")))
	assert.True(t, IsRetryable(context.DeadlineExceeded))
	assert.True(t, IsRetryable(&RetryableError{Err: errors.New("x"), Retryable: true}))
	assert.False(t, IsRetryable(&RetryableError{Err: errors.New("x"), Retryable: false}))
}

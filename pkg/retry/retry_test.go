package retry

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fastConfig(attempts int) Config {
	cfg := DefaultConfig()
	cfg.MaxAttempts = attempts
	cfg.InitialDelay = time.Millisecond
	cfg.MaxDelay = 5 * time.Millisecond
	return cfg
}

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	assert.Equal(t, 5, cfg.MaxAttempts)
	assert.Equal(t, time.Second, cfg.InitialDelay)
	assert.Equal(t, 30*time.Second, cfg.MaxDelay)
	assert.Equal(t, 2.0, cfg.Multiplier)
	assert.Empty(t, cfg.RetryableErrors)
	assert.Nil(t, cfg.RetryIf)
}

func TestPostgresConfig(t *testing.T) {
	cfg := PostgresConfig()
	assert.Equal(t, 5, cfg.MaxAttempts)
	assert.Contains(t, cfg.RetryableErrors, "connection refused")
	assert.Contains(t, cfg.RetryableErrors, "i/o timeout")
}

func TestDo(t *testing.T) {
	ctx := context.Background()

	t.Run("success on first attempt", func(t *testing.T) {
		attempts := 0
		err := Do(ctx, fastConfig(3), func() error {
			attempts++
			return nil
		})
		assert.NoError(t, err)
		assert.Equal(t, 1, attempts)
	})

	t.Run("succeeds after transient failures", func(t *testing.T) {
		attempts := 0
		err := Do(ctx, fastConfig(3), func() error {
			attempts++
			if attempts < 3 {
				return errors.New("temporary error")
			}
			return nil
		})
		assert.NoError(t, err)
		assert.Equal(t, 3, attempts)
	})

	t.Run("returns last error after max attempts", func(t *testing.T) {
		attempts := 0
		err := Do(ctx, fastConfig(3), func() error {
			attempts++
			return errors.New("persistent error")
		})
		assert.EqualError(t, err, "persistent error")
		assert.Equal(t, 3, attempts)
	})

	t.Run("non retryable pattern stops immediately", func(t *testing.T) {
		cfg := fastConfig(5)
		cfg.RetryableErrors = []string{"connection refused"}

		attempts := 0
		err := Do(ctx, cfg, func() error {
			attempts++
			return errors.New("password authentication failed")
		})
		assert.Error(t, err)
		assert.Equal(t, 1, attempts)
	})

	t.Run("RetryIf overrides patterns", func(t *testing.T) {
		sentinel := errors.New("serialization failure")
		cfg := fastConfig(4)
		cfg.RetryableErrors = []string{"connection refused"}
		cfg.RetryIf = func(err error) bool { return errors.Is(err, sentinel) }

		attempts := 0
		err := Do(ctx, cfg, func() error {
			attempts++
			if attempts < 2 {
				return sentinel
			}
			return nil
		})
		assert.NoError(t, err)
		assert.Equal(t, 2, attempts)
	})

	t.Run("zero attempts is a config error", func(t *testing.T) {
		err := Do(ctx, Config{}, func() error { return nil })
		assert.ErrorIs(t, err, ErrInvalidConfig)
	})
}

func TestDo_ContextCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cfg := DefaultConfig()
	cfg.MaxAttempts = 10
	cfg.InitialDelay = 200 * time.Millisecond

	attempts := 0
	err := Do(ctx, cfg, func() error {
		attempts++
		cancel()
		return errors.New("temporary error")
	})

	assert.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, 1, attempts)
}

func TestDoWithResult(t *testing.T) {
	attempts := 0
	result, err := DoWithResult(context.Background(), fastConfig(3), func() (int, error) {
		attempts++
		if attempts == 1 {
			return 0, errors.New("dial tcp: connection refused")
		}
		return 42, nil
	})

	require.NoError(t, err)
	assert.Equal(t, 42, result)
	assert.Equal(t, 2, attempts)
}

func TestCalculateDelay(t *testing.T) {
	cfg := Config{InitialDelay: time.Second, MaxDelay: 30 * time.Second, Multiplier: 2.0}

	tests := []struct {
		attempt  int
		expected time.Duration
	}{
		{attempt: -1, expected: time.Second},
		{attempt: 0, expected: time.Second},
		{attempt: 1, expected: 2 * time.Second},
		{attempt: 3, expected: 8 * time.Second},
		{attempt: 5, expected: 30 * time.Second},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, calculateDelay(tt.attempt, cfg), "attempt %d", tt.attempt)
	}
}

func TestAddJitter(t *testing.T) {
	delay := time.Second
	for i := 0; i < 20; i++ {
		jittered := addJitter(delay)
		assert.GreaterOrEqual(t, jittered, 900*time.Millisecond)
		assert.LessOrEqual(t, jittered, 1100*time.Millisecond)
	}
	assert.Equal(t, time.Duration(0), addJitter(0))
}

func TestIsRetryableError(t *testing.T) {
	cfg := Config{RetryableErrors: []string{"connection refused"}}

	assert.False(t, IsRetryableError(nil, cfg))
	assert.True(t, IsRetryableError(errors.New("any error"), Config{}))
	assert.True(t, IsRetryableError(errors.New("CONNECTION REFUSED"), cfg))
	assert.True(t, IsRetryableError(errors.New("dial tcp: connection refused"), cfg))
	assert.False(t, IsRetryableError(errors.New("invalid credentials"), cfg))
}

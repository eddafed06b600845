package circuit_breaker

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func Test_circuitBreaker_Call(t *testing.T) {
	t.Parallel()
	errService := errors.New("service error")
	ok := func() error { return nil }
	fail := func() error { return errService }

	now := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
	cb := New(Config{Window: 4, Timeout: time.Second, FailureRatio: 0.5, RecoveryCalls: 2}).(*circuitBreaker)
	cb.now = func() time.Time { return now }

	for i := 0; i < 10; i++ {
		require.NoError(t, cb.Call(ok))
	}
	require.Equal(t, Closed, cb.State())

	require.ErrorIs(t, cb.Call(fail), errService)
	require.Equal(t, Closed, cb.State())
	require.ErrorIs(t, cb.Call(fail), errService)
	require.Equal(t, Open, cb.State())

	called := false
	require.ErrorIs(t, cb.Call(func() error { called = true; return nil }), ErrOpen)
	require.False(t, called)

	now = now.Add(2 * time.Second)
	require.NoError(t, cb.Call(ok))
	require.Equal(t, HalfOpen, cb.State())
	require.NoError(t, cb.Call(ok))
	require.Equal(t, Closed, cb.State())
}

func Test_circuitBreaker_HalfOpenFailureReopens(t *testing.T) {
	t.Parallel()
	now := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
	cb := New(Config{Window: 2, Timeout: time.Second, FailureRatio: 0.5, RecoveryCalls: 3}).(*circuitBreaker)
	cb.now = func() time.Time { return now }

	require.Error(t, cb.Call(func() error { return errors.New("boom") }))
	require.Equal(t, Open, cb.State())

	now = now.Add(2 * time.Second)
	require.Error(t, cb.Call(func() error { return errors.New("boom") }))
	require.Equal(t, Open, cb.State())
	require.ErrorIs(t, cb.Call(func() error { return nil }), ErrOpen)

	cb.Reset()
	require.Equal(t, Closed, cb.State())
}

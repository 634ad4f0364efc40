package circuitbreaker

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/redtestlab/portal/internal/pkg/logger"
	"github.com/stretchr/testify/assert"
)

var errBoom = errors.New("boom")

func newTestBreaker(threshold uint32, timeout time.Duration) (*CircuitBreaker, *time.Time) {
	now := time.Date(2025, 1, 1, 10, 0, 0, 0, time.UTC)
	cb := New(Config{Name: "lab-api", FailureThreshold: threshold, Timeout: timeout}, logger.NewNopLogger())
	cb.now = func() time.Time { return now }
	return cb, &now
}

func failing(context.Context) error { return errBoom }
func succeeding(context.Context) error { return nil }

func TestCircuitBreaker_OpensAfterThreshold(t *testing.T) {
	cb, _ := newTestBreaker(3, time.Minute)
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		assert.ErrorIs(t, cb.Execute(ctx, failing), errBoom)
	}
	assert.Equal(t, StateOpen, cb.State())

	called := false
	err := cb.Execute(ctx, func(context.Context) error {
		called = true
		return nil
	})
	assert.ErrorIs(t, err, ErrOpen)
	assert.False(t, called)
}

func TestCircuitBreaker_SuccessResetsFailures(t *testing.T) {
	cb, _ := newTestBreaker(2, time.Minute)
	ctx := context.Background()

	_ = cb.Execute(ctx, failing)
	_ = cb.Execute(ctx, succeeding)
	_ = cb.Execute(ctx, failing)

	assert.Equal(t, StateClosed, cb.State())
	assert.Equal(t, uint32(1), cb.Stats().ConsecutiveFailures)
	assert.Equal(t, uint32(2), cb.Stats().TotalFailures)
}

func TestCircuitBreaker_HalfOpenTrial(t *testing.T) {
	cb, now := newTestBreaker(1, time.Minute)
	ctx := context.Background()

	_ = cb.Execute(ctx, failing)
	assert.Equal(t, StateOpen, cb.State())

	*now = now.Add(2 * time.Minute)
	assert.NoError(t, cb.Execute(ctx, succeeding))
	assert.Equal(t, StateClosed, cb.State())

	_ = cb.Execute(ctx, failing)
	*now = now.Add(2 * time.Minute)
	assert.ErrorIs(t, cb.Execute(ctx, failing), errBoom)
	assert.Equal(t, StateOpen, cb.State())
}

func TestCircuitBreaker_IgnoresNonFailures(t *testing.T) {
	errClient := errors.New("bad request")
	cb := New(Config{
		Name:             "lab-api",
		FailureThreshold: 1,
		Timeout:          time.Minute,
		IsFailure:        func(err error) bool { return err != nil && !errors.Is(err, errClient) },
	}, logger.NewNopLogger())

	for i := 0; i < 5; i++ {
		assert.ErrorIs(t, cb.Execute(context.Background(), func(context.Context) error { return errClient }), errClient)
	}
	assert.Equal(t, StateClosed, cb.State())
}

package retry

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	"github.com/redtestlab/portal/internal/pkg/logger"
)

// Backoff re-runs an idempotent call, doubling the pause after each failure
type Backoff struct {
	retries   int
	initial   time.Duration
	max       time.Duration
	jitter    float64
	retryable func(error) bool
	logger    *logger.ZapLogger
	sleep     func(ctx context.Context, d time.Duration) error
}

// Option tunes a Backoff
type Option func(*Backoff)

// WithDelays sets the first pause and the cap every later pause is clamped to
func WithDelays(initial, max time.Duration) Option {
	return func(b *Backoff) {
		b.initial = initial
		b.max = max
	}
}

// WithJitter adds up to fraction*delay of random wait to every pause
func WithJitter(fraction float64) Option {
	return func(b *Backoff) {
		b.jitter = fraction
	}
}

// WithRetryable limits retries to errors for which fn returns true
func WithRetryable(fn func(error) bool) Option {
	return func(b *Backoff) {
		b.retryable = fn
	}
}

// NewBackoff allows up to retries extra attempts after the first call
func NewBackoff(retries int, log *logger.ZapLogger, opts ...Option) *Backoff {
	b := &Backoff{
		retries:   retries,
		initial:   200 * time.Millisecond,
		max:       5 * time.Second,
		jitter:    0.1,
		retryable: func(error) bool { return true },
		logger:    log,
		sleep:     sleepCtx,
	}
	for _, opt := range opts {
		opt(b)
	}
	if b.retries < 0 {
		b.retries = 0
	}
	return b
}

// Do calls fn until it succeeds, fails with a non-retryable error or the
// retries are used up. name only labels the log lines.
func (b *Backoff) Do(ctx context.Context, name string, fn func(context.Context) error) error {
	var err error
	for attempt := 0; ; attempt++ {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return ctxErr
		}

		if err = fn(ctx); err == nil {
			if attempt > 0 {
				b.logger.Info("Call recovered after retry",
					logger.String("call", name),
					logger.Int("attempts", attempt+1))
			}
			return nil
		}

		if !b.retryable(err) {
			return err
		}
		if attempt == b.retries {
			break
		}

		pause := b.withJitter(b.Delay(attempt))
		b.logger.Debug("Retrying call",
			logger.String("call", name),
			logger.Int("attempt", attempt+1),
			logger.Duration("pause", pause),
			logger.Err(err))

		if sleepErr := b.sleep(ctx, pause); sleepErr != nil {
			return sleepErr
		}
	}

	if b.retries == 0 {
		return err
	}
	return fmt.Errorf("%s failed after %d attempts: %w", name, b.retries+1, err)
}

// Delay is the pause before retry number attempt+1, without jitter
func (b *Backoff) Delay(attempt int) time.Duration {
	d := b.initial
	for i := 0; i < attempt && d < b.max; i++ {
		d *= 2
	}
	if d > b.max {
		d = b.max
	}
	return d
}

func (b *Backoff) withJitter(d time.Duration) time.Duration {
	if b.jitter <= 0 {
		return d
	}
	return d + time.Duration(float64(d)*b.jitter*rand.Float64())
}

func sleepCtx(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

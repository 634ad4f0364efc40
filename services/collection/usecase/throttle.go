package usecase

import (
	"sync"
	"time"

	"golang.org/x/time/rate"
)

type throttleEntry struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// otpThrottle spaces OTP sends per booking: one send, then one per interval
type otpThrottle struct {
	interval time.Duration

	mu       sync.Mutex
	bookings map[string]*throttleEntry
	lastGC   time.Time
}

func newOTPThrottle(interval time.Duration) *otpThrottle {
	return &otpThrottle{
		interval: interval,
		bookings: make(map[string]*throttleEntry),
	}
}

// Allow consumes a send for bookingID, reporting false while it must wait
func (t *otpThrottle) Allow(bookingID string, now time.Time) bool {
	if t.interval <= 0 {
		return true
	}

	t.mu.Lock()
	defer t.mu.Unlock()

	t.collect(now)

	entry, ok := t.bookings[bookingID]
	if !ok {
		entry = &throttleEntry{limiter: rate.NewLimiter(rate.Every(t.interval), 1)}
		t.bookings[bookingID] = entry
	}
	entry.lastSeen = now

	return entry.limiter.AllowN(now, 1)
}

// Refund returns the send consumed by a rejected OTP request. With a burst
// of one, Allow only succeeds on a full limiter, so dropping it restores the
// state before that Allow.
func (t *otpThrottle) Refund(bookingID string) {
	if t.interval <= 0 {
		return
	}

	t.mu.Lock()
	defer t.mu.Unlock()
	delete(t.bookings, bookingID)
}

// Forget drops the limiter of a booking that reached a terminal state
func (t *otpThrottle) Forget(bookingID string) {
	t.mu.Lock()
	defer t.mu.Unlock()
	delete(t.bookings, bookingID)
}

// collect drops limiters that have fully refilled; callers hold mu
func (t *otpThrottle) collect(now time.Time) {
	if now.Sub(t.lastGC) < t.interval {
		return
	}
	t.lastGC = now

	for id, entry := range t.bookings {
		if now.Sub(entry.lastSeen) >= t.interval {
			delete(t.bookings, id)
		}
	}
}

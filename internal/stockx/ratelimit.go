package stockx

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"golang.org/x/time/rate"
)

// ErrDailyLimitReached is returned when the daily API call quota is used up.
var ErrDailyLimitReached = errors.New("daily StockX API limit reached")

// RateLimiter paces StockX API calls with a token bucket and enforces a
// daily request quota. The quota window is the UTC calendar day: the
// counter resets at the first call after UTC midnight.
type RateLimiter struct {
	limiter  *rate.Limiter
	maxDaily int64
	nowFunc  func() time.Time

	mu      sync.Mutex
	used    int64
	resetAt time.Time
}

// RateLimiterOption configures the RateLimiter.
type RateLimiterOption func(*RateLimiter)

// WithRateLimiterNowFunc overrides the time function for testing.
func WithRateLimiterNowFunc(f func() time.Time) RateLimiterOption {
	return func(r *RateLimiter) {
		r.nowFunc = f
	}
}

// NewRateLimiter creates a limiter allowing perSecond calls with the given
// burst and at most maxDaily calls per UTC day.
func NewRateLimiter(
	perSecond float64,
	burst int,
	maxDaily int64,
	opts ...RateLimiterOption,
) *RateLimiter {
	r := &RateLimiter{
		limiter:  rate.NewLimiter(rate.Limit(perSecond), burst),
		maxDaily: maxDaily,
		nowFunc:  time.Now,
	}
	for _, opt := range opts {
		opt(r)
	}
	r.resetAt = nextUTCMidnight(r.nowFunc())
	return r
}

// Wait reserves one call from the daily quota and blocks until the token
// bucket admits it or ctx is done. The reservation is returned to the quota
// if the wait fails.
func (r *RateLimiter) Wait(ctx context.Context) error {
	r.mu.Lock()
	r.rollWindowLocked()
	if r.used >= r.maxDaily {
		used := r.used
		r.mu.Unlock()
		return fmt.Errorf("%w (%d/%d)", ErrDailyLimitReached, used, r.maxDaily)
	}
	r.used++
	r.mu.Unlock()

	if err := r.limiter.Wait(ctx); err != nil {
		r.mu.Lock()
		r.used--
		r.mu.Unlock()
		return fmt.Errorf("rate limiter wait: %w", err)
	}
	return nil
}

// DailyCount returns the calls made in the current UTC day.
func (r *RateLimiter) DailyCount() int64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.rollWindowLocked()
	return r.used
}

// MaxDaily returns the configured daily call limit.
func (r *RateLimiter) MaxDaily() int64 {
	return r.maxDaily
}

// Remaining returns the calls left before the quota resets.
func (r *RateLimiter) Remaining() int64 {
	return max(r.maxDaily-r.DailyCount(), 0)
}

// ResetAt returns when the daily counter next resets.
func (r *RateLimiter) ResetAt() time.Time {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.rollWindowLocked()
	return r.resetAt
}

func (r *RateLimiter) rollWindowLocked() {
	now := r.nowFunc()
	if !now.Before(r.resetAt) {
		r.used = 0
		r.resetAt = nextUTCMidnight(now)
	}
}

func nextUTCMidnight(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d+1, 0, 0, 0, 0, time.UTC)
}

package application

import (
	"context"
	"sync"
	"time"

	"golang.org/x/time/rate"

	"hoarder/internal/ports"
)

// FixedDelay pauses for the same duration after every request
type FixedDelay struct {
	Delay time.Duration
}

// Pause waits for the delay or until ctx is done
func (p FixedDelay) Pause(ctx context.Context) error {
	if p.Delay <= 0 {
		return ctx.Err()
	}
	timer := time.NewTimer(p.Delay)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

// RateLimit paces requests with a token bucket of burst 1
type RateLimit struct {
	limiter *rate.Limiter
	prime   sync.Once
}

// NewRateLimit allows perSecond requests per second on average
func NewRateLimit(perSecond float64) *RateLimit {
	return &RateLimit{limiter: rate.NewLimiter(rate.Limit(perSecond), 1)}
}

// Pause blocks until the limiter hands out a token. The first call spends the
// initial token, so it waits a full interval like every later one.
func (p *RateLimit) Pause(ctx context.Context) error {
	p.prime.Do(func() { p.limiter.Allow() })
	return p.limiter.Wait(ctx)
}

// NoPause never waits. Tests use it to run traversals without real time passing.
type NoPause struct{}

// Pause only reports cancellation
func (NoPause) Pause(ctx context.Context) error {
	return ctx.Err()
}

// NewPacer picks the pacing strategy described by settings
func NewPacer(s Settings) ports.Pacer {
	if s.RequestsPerSecond > 0 {
		return NewRateLimit(s.RequestsPerSecond)
	}
	return FixedDelay{Delay: s.RequestDelay}
}

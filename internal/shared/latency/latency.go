// Package latency fakes processing time so clients can exercise their
// loading states.
package latency

import (
	"context"
	"time"

	"paperqa-backend/internal/shared/metrics"
	"paperqa-backend/internal/shared/random"
)

// Range is a base delay plus up to Jitter of random extra delay.
type Range struct {
	Base   time.Duration
	Jitter time.Duration
}

// Profile holds the delay for each simulated operation.
type Profile struct {
	Upload Range
	Ask    Range
	Agent  Range
	Search Range
	Import Range
}

// DefaultProfile returns the delays the demo UI was tuned against.
func DefaultProfile() Profile {
	return Profile{
		Upload: Range{Base: 3 * time.Second},
		Ask:    Range{Base: 1500 * time.Millisecond, Jitter: time.Second},
		Agent:  Range{Base: 1500 * time.Millisecond, Jitter: time.Second},
		Search: Range{Base: 2 * time.Second, Jitter: time.Second},
		Import: Range{Base: 3 * time.Second},
	}
}

// Scaled multiplies every delay by factor. A factor of 0 disables delays.
func (p Profile) Scaled(factor float64) Profile {
	scale := func(r Range) Range {
		return Range{
			Base:   time.Duration(float64(r.Base) * factor),
			Jitter: time.Duration(float64(r.Jitter) * factor),
		}
	}
	return Profile{
		Upload: scale(p.Upload),
		Ask:    scale(p.Ask),
		Agent:  scale(p.Agent),
		Search: scale(p.Search),
		Import: scale(p.Import),
	}
}

// Simulator sleeps for randomized durations.
type Simulator struct {
	Rand  random.Source
	Sleep func(ctx context.Context, d time.Duration) error
}

// NewSimulator returns a Simulator using real timers.
func NewSimulator(src random.Source) *Simulator {
	return &Simulator{Rand: src, Sleep: sleepCtx}
}

// Wait blocks for a duration drawn from r or until ctx is done.
func (s *Simulator) Wait(ctx context.Context, r Range) (time.Duration, error) {
	d := r.Base
	if r.Jitter > 0 && s.Rand != nil {
		d += time.Duration(s.Rand.Float64() * float64(r.Jitter))
	}
	if d <= 0 {
		return 0, ctx.Err()
	}
	sleep := s.Sleep
	if sleep == nil {
		sleep = sleepCtx
	}
	if err := sleep(ctx, d); err != nil {
		return 0, err
	}
	metrics.ObserveSimulatedLatencyMs(float64(d) / float64(time.Millisecond))
	return d, nil
}

func sleepCtx(ctx context.Context, d time.Duration) error {
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}

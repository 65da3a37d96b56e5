package simulator

import (
	"log/slog"
	"time"
)

// DefaultInterval is the period between simulated notifications.
const DefaultInterval = 20 * time.Second

// Option configures a Simulator.
type Option func(*Simulator)

// WithInterval sets the period between simulated notifications. Non-positive values are ignored.
func WithInterval(d time.Duration) Option {
	return func(s *Simulator) {
		if d > 0 {
			s.interval = d
		}
	}
}

// WithLogger sets the logger for the Simulator.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Simulator) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// Ticker delivers ticks on C until stopped.
type Ticker interface {
	C() <-chan time.Time
	Stop()
}

// TickerFactory creates a Ticker with the given period.
type TickerFactory func(d time.Duration) Ticker

// WithTicker replaces the time.Ticker used by the loop.
func WithTicker(factory TickerFactory) Option {
	return func(s *Simulator) {
		if factory != nil {
			s.newTicker = factory
		}
	}
}

type timeTicker struct {
	t *time.Ticker
}

func newTimeTicker(d time.Duration) Ticker {
	return &timeTicker{t: time.NewTicker(d)}
}

func (t *timeTicker) C() <-chan time.Time { return t.t.C }
func (t *timeTicker) Stop()               { t.t.Stop() }

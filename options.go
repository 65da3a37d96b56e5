package notifykit

import (
	"log/slog"
	"math/rand"
	"time"

	"github.com/dmitrymomot/notifykit/pkg/simulator"
)

// Option configures a Center.
type Option func(*options)

type options struct {
	logger    *slog.Logger
	now       func() time.Time
	newID     func() string
	seed      *int64
	newTicker simulator.TickerFactory
}

// WithLogger sets the logger shared by every component of the Center.
// Without it the Center builds its own logger at Config.LogLevel.
func WithLogger(logger *slog.Logger) Option {
	return func(o *options) {
		if logger != nil {
			o.logger = logger
		}
	}
}

// WithClock sets the time source for notification timestamps and refresh cooldowns.
func WithClock(now func() time.Time) Option {
	return func(o *options) {
		if now != nil {
			o.now = now
		}
	}
}

// WithIDGenerator replaces the notification id generator.
func WithIDGenerator(gen func() string) Option {
	return func(o *options) {
		if gen != nil {
			o.newID = gen
		}
	}
}

// WithSeed makes content generation and category draws reproducible.
func WithSeed(seed int64) Option {
	return func(o *options) {
		o.seed = &seed
	}
}

// WithTicker replaces the simulator's ticker.
func WithTicker(factory simulator.TickerFactory) Option {
	return func(o *options) {
		if factory != nil {
			o.newTicker = factory
		}
	}
}

// rands returns independent sources for the generator and the picker.
func (o *options) rands() (*rand.Rand, *rand.Rand) {
	seed := time.Now().UnixNano()
	if o.seed != nil {
		seed = *o.seed
	}
	return rand.New(rand.NewSource(seed)), rand.New(rand.NewSource(seed + 1))
}

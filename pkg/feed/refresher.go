package feed

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/dmitrymomot/notifykit/pkg/async"
	"github.com/dmitrymomot/notifykit/pkg/logger"
	"github.com/dmitrymomot/notifykit/pkg/notifications"
)

const (
	// DefaultCooldown is the minimum time between two refreshes.
	DefaultCooldown = 5 * time.Second

	// DefaultLatency is the simulated delay before a refresh reads the source.
	DefaultLatency = 800 * time.Millisecond
)

// Source provides the current snapshot. *notifications.Store implements it.
type Source interface {
	Snapshot() notifications.Snapshot
}

// RefresherOption configures a Refresher.
type RefresherOption func(*Refresher)

// WithCooldown sets the minimum time between refreshes. Zero disables the cooldown.
func WithCooldown(d time.Duration) RefresherOption {
	return func(r *Refresher) {
		if d >= 0 {
			r.cooldown = d
		}
	}
}

// WithLatency sets the simulated delay. Zero makes Refresh complete synchronously.
func WithLatency(d time.Duration) RefresherOption {
	return func(r *Refresher) {
		if d >= 0 {
			r.latency = d
		}
	}
}

// WithClock sets the clock used for cooldown checks.
// The default time.Now carries a monotonic reading.
func WithClock(now func() time.Time) RefresherOption {
	return func(r *Refresher) {
		if now != nil {
			r.now = now
		}
	}
}

// WithRefreshLogger sets the logger for the Refresher.
func WithRefreshLogger(logger *slog.Logger) RefresherOption {
	return func(r *Refresher) {
		if logger != nil {
			r.logger = logger
		}
	}
}

// Refresher re-reads a Source after a simulated latency, refusing to start
// while a previous refresh is outstanding or too soon after the last one.
// Creating a Refresher counts as the first update, so the cooldown also
// applies right after construction.
type Refresher struct {
	source   Source
	cooldown time.Duration
	latency  time.Duration
	now      func() time.Time
	logger   *slog.Logger

	mu        sync.Mutex
	inFlight  bool
	lastDone  time.Time // construction time until the first refresh completes
	refreshed bool
}

// NewRefresher creates a Refresher over source.
func NewRefresher(source Source, opts ...RefresherOption) (*Refresher, error) {
	if source == nil {
		return nil, ErrNilSource
	}

	r := &Refresher{
		source:   source,
		cooldown: DefaultCooldown,
		latency:  DefaultLatency,
		now:      time.Now,
		logger:   slog.Default(),
	}
	for _, opt := range opts {
		opt(r)
	}
	r.lastDone = r.now()
	return r, nil
}

// Refresh starts a refresh and returns a Future for the fresh snapshot.
// It returns ErrRefreshInFlight or ErrRefreshCooldown, and starts nothing,
// when a refresh is not allowed.
//
// Cancelling ctx does not interrupt the latency wait. A caller that no longer
// wants the result simply stops waiting on the Future.
func (r *Refresher) Refresh(ctx context.Context) (*async.Future[notifications.Snapshot], error) {
	r.mu.Lock()
	if err := r.checkLocked(); err != nil {
		r.mu.Unlock()
		r.logger.LogAttrs(ctx, slog.LevelDebug, "refresh skipped",
			logger.Component("feed"),
			logger.Error(err),
		)
		return nil, err
	}
	r.inFlight = true
	r.mu.Unlock()

	if r.latency <= 0 {
		return async.Resolved(r.complete(), nil), nil
	}

	return async.Async(context.WithoutCancel(ctx), r.latency,
		func(_ context.Context, latency time.Duration) (notifications.Snapshot, error) {
			timer := time.NewTimer(latency)
			defer timer.Stop()
			<-timer.C
			return r.complete(), nil
		},
	), nil
}

// CanRefresh reports whether Refresh would start a refresh now.
func (r *Refresher) CanRefresh() bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.checkLocked() == nil
}

// InFlight reports whether a refresh is outstanding.
func (r *Refresher) InFlight() bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.inFlight
}

// SinceLastRefresh returns the time elapsed since the last completed refresh,
// and false if no refresh has completed yet.
func (r *Refresher) SinceLastRefresh() (time.Duration, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if !r.refreshed {
		return 0, false
	}
	return r.now().Sub(r.lastDone), true
}

func (r *Refresher) checkLocked() error {
	if r.inFlight {
		return ErrRefreshInFlight
	}
	if r.cooldown > 0 && r.now().Sub(r.lastDone) <= r.cooldown {
		return ErrRefreshCooldown
	}
	return nil
}

func (r *Refresher) complete() notifications.Snapshot {
	snap := r.source.Snapshot()

	r.mu.Lock()
	r.inFlight = false
	r.lastDone = r.now()
	r.refreshed = true
	r.mu.Unlock()

	return snap
}

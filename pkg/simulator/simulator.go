package simulator

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"sync/atomic"
	"time"

	"github.com/dmitrymomot/notifykit/pkg/content"
	"github.com/dmitrymomot/notifykit/pkg/logger"
	"github.com/dmitrymomot/notifykit/pkg/notifications"
)

// Sink receives generated notifications. *notifications.Store implements it.
type Sink interface {
	Add(ctx context.Context, category notifications.Category, title, description string) (notifications.Notification, error)
}

// ContentSource produces text for a category. *content.Generator implements it.
type ContentSource interface {
	Generate(category notifications.Category) (content.Content, error)
}

// CategoryPicker draws a category. *content.Picker implements it.
type CategoryPicker interface {
	Pick() notifications.Category
}

// Simulator periodically generates a notification and adds it to a Sink,
// standing in for a real push source. The loop runs whether or not anyone
// observes the sink, until Stop is called or the Start context is done.
type Simulator struct {
	sink      Sink
	source    ContentSource
	picker    CategoryPicker
	interval  time.Duration
	newTicker TickerFactory
	logger    *slog.Logger

	generated atomic.Uint64

	mu     sync.Mutex
	cancel context.CancelFunc
	done   chan struct{}
}

// New creates a stopped simulator.
func New(sink Sink, source ContentSource, picker CategoryPicker, opts ...Option) (*Simulator, error) {
	if sink == nil || source == nil || picker == nil {
		return nil, ErrMissingDependency
	}

	s := &Simulator{
		sink:      sink,
		source:    source,
		picker:    picker,
		interval:  DefaultInterval,
		newTicker: newTimeTicker,
		logger:    slog.Default(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s, nil
}

// Start launches the periodic loop in its own goroutine. The first
// notification is produced one interval after Start.
func (s *Simulator) Start(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.cancel != nil {
		return ErrAlreadyRunning
	}

	loopCtx, cancel := context.WithCancel(ctx)
	done := make(chan struct{})
	s.cancel = cancel
	s.done = done

	go s.run(loopCtx, done)

	s.logger.LogAttrs(ctx, slog.LevelInfo, "simulator started",
		logger.Component("simulator"),
		logger.Duration(s.interval),
	)
	return nil
}

// Stop ends the loop and waits for it to exit.
func (s *Simulator) Stop() error {
	s.mu.Lock()
	if s.cancel == nil {
		s.mu.Unlock()
		return ErrNotRunning
	}
	cancel, done := s.cancel, s.done
	s.mu.Unlock()

	cancel()
	<-done
	return nil
}

// Running reports whether the loop is active.
func (s *Simulator) Running() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cancel != nil
}

// Interval returns the configured period.
func (s *Simulator) Interval() time.Duration {
	return s.interval
}

// Generated returns how many notifications have been produced, by the loop or GenerateOnce.
func (s *Simulator) Generated() uint64 {
	return s.generated.Load()
}

// GenerateOnce produces one notification immediately, bypassing the timer.
// An empty category means a weighted random draw.
func (s *Simulator) GenerateOnce(ctx context.Context, category notifications.Category) (notifications.Notification, error) {
	if category == "" {
		category = s.picker.Pick()
	}

	c, err := s.source.Generate(category)
	if err != nil {
		return notifications.Notification{}, fmt.Errorf("simulator: generate content: %w", err)
	}

	n, err := s.sink.Add(ctx, category, c.Title, c.Description)
	if err != nil {
		return notifications.Notification{}, fmt.Errorf("simulator: add notification: %w", err)
	}
	s.generated.Add(1)

	s.logger.LogAttrs(ctx, slog.LevelDebug, "simulated notification",
		logger.Component("simulator"),
		logger.NotificationID(n.ID),
		logger.Category(n.Category),
	)
	return n, nil
}

func (s *Simulator) run(ctx context.Context, done chan struct{}) {
	defer func() {
		s.mu.Lock()
		if s.done == done {
			s.cancel = nil
			s.done = nil
		}
		s.mu.Unlock()
		close(done)
	}()

	ticker := s.newTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			s.logger.LogAttrs(context.WithoutCancel(ctx), slog.LevelInfo, "simulator stopped",
				logger.Component("simulator"),
				logger.Count(int(s.generated.Load())),
			)
			return
		case <-ticker.C():
			if _, err := s.GenerateOnce(ctx, ""); err != nil {
				s.logger.LogAttrs(ctx, slog.LevelError, "failed to simulate notification",
					logger.Component("simulator"),
					logger.Error(err),
				)
			}
		}
	}
}

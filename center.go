package notifykit

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/dmitrymomot/notifykit/pkg/async"
	"github.com/dmitrymomot/notifykit/pkg/broadcast"
	"github.com/dmitrymomot/notifykit/pkg/config"
	"github.com/dmitrymomot/notifykit/pkg/content"
	"github.com/dmitrymomot/notifykit/pkg/feed"
	"github.com/dmitrymomot/notifykit/pkg/logger"
	"github.com/dmitrymomot/notifykit/pkg/notifications"
	"github.com/dmitrymomot/notifykit/pkg/simulator"
)

// Observer receives a snapshot after every state change.
type Observer = broadcast.Observer[notifications.Snapshot]

// Center owns one notification store and the components built around it:
// the broadcast hub, the simulator and the refresher.
// Construct it once and pass it to consumers; Close releases the simulator.
type Center struct {
	cfg    Config
	logger *slog.Logger

	store     *notifications.Store
	hub       *broadcast.Hub[notifications.Snapshot]
	sim       *simulator.Simulator
	refresher *feed.Refresher
	memo      *feed.Memo

	mu       sync.Mutex
	closed   bool
	searches map[*feed.Search]broadcast.Handle
}

// NewFromEnv loads Config from the environment (and a .env file, if present)
// and creates a Center from it.
func NewFromEnv(opts ...Option) (*Center, error) {
	var cfg Config
	if err := config.Load(&cfg); err != nil {
		return nil, err
	}
	return New(cfg, opts...)
}

// New creates a Center. Zero MaxRetained and SimulationInterval fall back to
// their defaults; zero RefreshCooldown, RefreshLatency and SearchDebounce
// disable the corresponding delay.
func New(cfg Config, opts ...Option) (*Center, error) {
	o := &options{now: time.Now}
	for _, opt := range opts {
		opt(o)
	}

	if o.logger == nil {
		log, err := newLogger(cfg.LogLevel)
		if err != nil {
			return nil, errors.Join(ErrInvalidConfig, err)
		}
		o.logger = log
	}

	if cfg.MaxRetained <= 0 {
		cfg.MaxRetained = notifications.DefaultMaxRetained
	}
	if cfg.SimulationInterval <= 0 {
		cfg.SimulationInterval = simulator.DefaultInterval
	}

	table := content.DefaultTable()
	if cfg.ContentFile != "" {
		t, err := content.LoadTable(cfg.ContentFile)
		if err != nil {
			return nil, errors.Join(ErrInvalidConfig, err)
		}
		table = t
	}

	genRand, pickRand := o.rands()

	generator, err := content.NewGenerator(content.WithTable(table), content.WithRand(genRand))
	if err != nil {
		return nil, errors.Join(ErrInvalidConfig, err)
	}
	picker, err := content.NewPicker(cfg.Weights(), content.WithPickerRand(pickRand))
	if err != nil {
		return nil, errors.Join(ErrInvalidConfig, err)
	}

	hub := broadcast.NewHub[notifications.Snapshot](
		broadcast.WithHubLogger[notifications.Snapshot](o.logger),
		broadcast.WithClone(notifications.Snapshot.Clone),
	)

	storeOpts := []notifications.StoreOption{
		notifications.WithMaxRetained(cfg.MaxRetained),
		notifications.WithClock(o.now),
		notifications.WithPublisher(hub),
		notifications.WithStoreLogger(o.logger),
	}
	if o.newID != nil {
		storeOpts = append(storeOpts, notifications.WithIDGenerator(o.newID))
	}
	store := notifications.NewStore(storeOpts...)

	simOpts := []simulator.Option{
		simulator.WithInterval(cfg.SimulationInterval),
		simulator.WithLogger(o.logger),
	}
	if o.newTicker != nil {
		simOpts = append(simOpts, simulator.WithTicker(o.newTicker))
	}
	sim, err := simulator.New(store, generator, picker, simOpts...)
	if err != nil {
		return nil, errors.Join(ErrInvalidConfig, err)
	}

	refresher, err := feed.NewRefresher(store,
		feed.WithCooldown(cfg.RefreshCooldown),
		feed.WithLatency(cfg.RefreshLatency),
		feed.WithClock(o.now),
		feed.WithRefreshLogger(o.logger),
	)
	if err != nil {
		return nil, errors.Join(ErrInvalidConfig, err)
	}

	return &Center{
		cfg:       cfg,
		logger:    o.logger,
		store:     store,
		hub:       hub,
		sim:       sim,
		refresher: refresher,
		memo:      feed.NewMemo(feed.DefaultMemoCapacity),
		searches:  make(map[*feed.Search]broadcast.Handle),
	}, nil
}

func newLogger(level string) (*slog.Logger, error) {
	opts := []logger.Option{logger.WithAttr(slog.String("service", "notifykit"))}
	if strings.TrimSpace(level) != "" {
		if _, err := logger.ParseLevel(level); err != nil {
			return nil, err
		}
		opts = append(opts, logger.WithLevelName(level))
	}
	return logger.New(opts...), nil
}

// Logger returns the logger shared by the Center's components.
func (c *Center) Logger() *slog.Logger {
	return c.logger
}

// Config returns the effective configuration.
func (c *Center) Config() Config {
	return c.cfg
}

// Start launches the simulator if simulation is enabled. The simulator stops
// when ctx is done or Close is called.
func (c *Center) Start(ctx context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.closed {
		return ErrClosed
	}
	if !c.cfg.SimulationEnabled {
		c.logger.LogAttrs(ctx, slog.LevelInfo, "simulation disabled", logger.Component("notifykit"))
		return nil
	}
	return c.sim.Start(ctx)
}

// Close stops the simulator and every search created by NewSearch.
// It is safe to call more than once.
func (c *Center) Close() error {
	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		return nil
	}
	c.closed = true
	searches := c.searches
	c.searches = nil
	c.mu.Unlock()

	for s, h := range searches {
		c.hub.Unsubscribe(h)
		s.Close()
	}

	if err := c.sim.Stop(); err != nil && !errors.Is(err, simulator.ErrNotRunning) {
		return err
	}
	return nil
}

// Subscribe registers fn to receive a snapshot after every state change.
// Delivery is synchronous and in registration order.
func (c *Center) Subscribe(fn Observer) (broadcast.Handle, error) {
	return c.hub.Subscribe(fn)
}

// Unsubscribe removes the observer registered under h.
func (c *Center) Unsubscribe(h broadcast.Handle) bool {
	return c.hub.Unsubscribe(h)
}

// Stream subscribes a buffered channel that receives every snapshot until ctx
// is done or the stream is closed.
func (c *Center) Stream(ctx context.Context, buffer int) (*broadcast.Stream[notifications.Snapshot], error) {
	return broadcast.NewStream(ctx, c.hub, buffer)
}

// Add creates an unread notification at the head of the store.
func (c *Center) Add(ctx context.Context, category notifications.Category, title, description string) (notifications.Notification, error) {
	return c.store.Add(ctx, category, title, description)
}

// MarkAsRead marks the notification read. It reports whether anything changed.
func (c *Center) MarkAsRead(ctx context.Context, id string) bool {
	return c.store.MarkAsRead(ctx, id)
}

// MarkAllAsRead marks every notification read and returns how many changed.
func (c *Center) MarkAllAsRead(ctx context.Context) int {
	return c.store.MarkAllAsRead(ctx)
}

// Remove deletes the notification. It reports whether it was present.
func (c *Center) Remove(ctx context.Context, id string) bool {
	return c.store.Remove(ctx, id)
}

// Restore puts back a notification previously returned by Snapshot or Add,
// typically to undo Remove.
func (c *Center) Restore(ctx context.Context, n notifications.Notification) bool {
	return c.store.Restore(ctx, n)
}

// ClearAll removes every notification. Observers are always notified.
func (c *Center) ClearAll(ctx context.Context) {
	c.store.ClearAll(ctx)
}

// Snapshot returns an independent copy of the notifications, newest first.
func (c *Center) Snapshot() notifications.Snapshot {
	return c.store.Snapshot()
}

// UnreadCount returns the number of unread notifications.
func (c *Center) UnreadCount() int {
	return c.store.UnreadCount()
}

// Summary returns total, unread and per-category counts of the current snapshot.
func (c *Center) Summary() feed.Summary {
	return feed.Summarize(c.store.Snapshot())
}

// Filter returns the current notifications whose title or description
// contains query, ignoring case. Results are memoized per store version.
func (c *Center) Filter(query string) notifications.Snapshot {
	snap, version := c.store.VersionedSnapshot()
	return c.memo.Filter(version, snap, query)
}

// GenerateOnce adds a generated notification immediately. An empty category
// means a weighted random draw.
func (c *Center) GenerateOnce(ctx context.Context, category notifications.Category) (notifications.Notification, error) {
	return c.sim.GenerateOnce(ctx, category)
}

// Refresh re-reads the store after the configured latency.
// It returns feed.ErrRefreshInFlight or feed.ErrRefreshCooldown when a refresh
// is not allowed right now.
func (c *Center) Refresh(ctx context.Context) (*async.Future[notifications.Snapshot], error) {
	return c.refresher.Refresh(ctx)
}

// CanRefresh reports whether Refresh would start a refresh now.
func (c *Center) CanRefresh() bool {
	return c.refresher.CanRefresh()
}

// NewSearch creates a debounced search over the live snapshot. The search is
// seeded with the current snapshot and follows every later change until it is
// released with the returned function or the Center is closed.
func (c *Center) NewSearch(onResult feed.SearchFunc) (*feed.Search, func(), error) {
	s := feed.NewSearch(c.cfg.SearchDebounce, onResult)

	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		return nil, nil, ErrClosed
	}
	h, err := c.hub.Subscribe(func(_ context.Context, snap notifications.Snapshot) {
		_ = s.SetSnapshot(snap)
	})
	if err != nil {
		c.mu.Unlock()
		return nil, nil, fmt.Errorf("notifykit: subscribe search: %w", err)
	}
	c.searches[s] = h
	c.mu.Unlock()

	_ = s.SetSnapshot(c.store.Snapshot())

	release := func() {
		c.mu.Lock()
		h, ok := c.searches[s]
		delete(c.searches, s)
		c.mu.Unlock()
		if ok {
			c.hub.Unsubscribe(h)
		}
		s.Close()
	}
	return s, release, nil
}

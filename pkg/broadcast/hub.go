package broadcast

import (
	"context"
	"fmt"
	"log/slog"
	"slices"
	"sync"
	"sync/atomic"

	"github.com/google/uuid"

	"github.com/dmitrymomot/notifykit/pkg/logger"
)

// Observer receives published values.
type Observer[T any] func(ctx context.Context, v T)

// Handle identifies a subscription. The zero Handle matches nothing.
type Handle struct {
	id string
}

// String returns the handle identifier.
func (h Handle) String() string { return h.id }

// Valid reports whether h was returned by Subscribe.
func (h Handle) Valid() bool { return h.id != "" }

type entry[T any] struct {
	handle  Handle
	fn      Observer[T]
	removed atomic.Bool
}

// Hub delivers published values to registered observers synchronously, in
// registration order. Each observer call is isolated: a panic is recovered,
// logged and reported, and delivery continues with the next observer.
//
// Publish carries a sequence number. A value whose sequence is not newer than
// the latest published one is dropped, and an in-progress delivery stops once a
// newer value has been published (for example by an observer that mutated the
// source). Observers therefore never receive values out of order from a single
// goroutine. Sequence 0 opts out of ordering.
type Hub[T any] struct {
	mu        sync.RWMutex
	observers []*entry[T]
	latest    atomic.Uint64

	clone   func(T) T
	onPanic func(Handle, error)
	logger  *slog.Logger
}

// NewHub creates a hub with no observers.
func NewHub[T any](opts ...HubOption[T]) *Hub[T] {
	h := &Hub[T]{
		logger: slog.Default(),
	}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

// Subscribe registers fn and returns the handle used to unsubscribe it.
func (h *Hub[T]) Subscribe(fn Observer[T]) (Handle, error) {
	if fn == nil {
		return Handle{}, ErrNilObserver
	}

	e := &entry[T]{handle: Handle{id: uuid.NewString()}, fn: fn}

	h.mu.Lock()
	h.observers = append(h.observers, e)
	h.mu.Unlock()

	return e.handle, nil
}

// Unsubscribe removes the observer registered under handle.
// It reports whether an observer was removed. An observer removed during a
// delivery is not invoked for the rest of that delivery.
func (h *Hub[T]) Unsubscribe(handle Handle) bool {
	if !handle.Valid() {
		return false
	}

	h.mu.Lock()
	defer h.mu.Unlock()

	i := slices.IndexFunc(h.observers, func(e *entry[T]) bool { return e.handle == handle })
	if i < 0 {
		return false
	}
	h.observers[i].removed.Store(true)
	h.observers = slices.Delete(h.observers, i, i+1)
	return true
}

// Len returns the number of registered observers.
func (h *Hub[T]) Len() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.observers)
}

// Latest returns the newest sequence number published so far.
func (h *Hub[T]) Latest() uint64 {
	return h.latest.Load()
}

// Publish delivers v to every registered observer and returns when all of them
// have been invoked.
func (h *Hub[T]) Publish(ctx context.Context, seq uint64, v T) {
	if seq != 0 && !h.advance(seq) {
		h.logger.LogAttrs(ctx, slog.LevelDebug, "dropped stale publication",
			logger.Component("broadcast"),
			logger.Version(seq),
		)
		return
	}

	h.mu.RLock()
	observers := slices.Clone(h.observers)
	h.mu.RUnlock()

	for _, e := range observers {
		if seq != 0 && h.latest.Load() != seq {
			return
		}
		if e.removed.Load() {
			continue
		}
		value := v
		if h.clone != nil {
			value = h.clone(v)
		}
		h.invoke(ctx, e, value)
	}
}

func (h *Hub[T]) advance(seq uint64) bool {
	for {
		cur := h.latest.Load()
		if seq <= cur {
			return false
		}
		if h.latest.CompareAndSwap(cur, seq) {
			return true
		}
	}
}

func (h *Hub[T]) invoke(ctx context.Context, e *entry[T], v T) {
	defer func() {
		r := recover()
		if r == nil {
			return
		}
		err := fmt.Errorf("%w: %v", ErrObserverPanic, r)
		h.logger.LogAttrs(ctx, slog.LevelError, "observer panicked",
			logger.Component("broadcast"),
			logger.ObserverID(e.handle.String()),
			logger.Error(err),
		)
		if h.onPanic != nil {
			h.onPanic(e.handle, err)
		}
	}()

	e.fn(ctx, v)
}

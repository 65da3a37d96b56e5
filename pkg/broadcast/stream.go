package broadcast

import (
	"context"
	"sync"
	"sync/atomic"
)

// Stream adapts a Hub subscription to a buffered channel for consumers that
// prefer to receive values in their own goroutine. Sends never block the hub:
// when the buffer is full the value is dropped for this stream.
type Stream[T any] struct {
	hub     *Hub[T]
	handle  Handle
	ch      chan T
	closed  bool
	mu      sync.RWMutex
	dropped atomic.Uint64
	stop    func() bool
}

// NewStream subscribes a channel-backed stream to hub. A minimum buffer size
// of 1 is enforced. The stream is closed automatically when ctx is done.
func NewStream[T any](ctx context.Context, hub *Hub[T], bufferSize int) (*Stream[T], error) {
	s := &Stream[T]{
		hub: hub,
		ch:  make(chan T, max(bufferSize, 1)),
	}

	handle, err := hub.Subscribe(func(_ context.Context, v T) { s.send(v) })
	if err != nil {
		return nil, err
	}
	s.handle = handle

	if ctx.Done() != nil {
		s.stop = context.AfterFunc(ctx, func() { _ = s.Close() })
	}

	return s, nil
}

// Receive returns the channel values are delivered on.
// The channel is closed once the stream is closed.
func (s *Stream[T]) Receive() <-chan T {
	return s.ch
}

// Dropped returns how many values were discarded because the buffer was full.
func (s *Stream[T]) Dropped() uint64 {
	return s.dropped.Load()
}

// Handle returns the underlying hub subscription handle.
func (s *Stream[T]) Handle() Handle {
	return s.handle
}

// Close unsubscribes the stream and closes its channel. It is idempotent.
func (s *Stream[T]) Close() error {
	s.hub.Unsubscribe(s.handle)

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return nil
	}
	s.closed = true
	close(s.ch)
	if s.stop != nil {
		s.stop()
	}
	return nil
}

func (s *Stream[T]) send(v T) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.closed {
		return
	}

	select {
	case s.ch <- v:
	default:
		s.dropped.Add(1)
	}
}

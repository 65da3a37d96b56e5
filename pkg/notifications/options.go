package notifications

import (
	"log/slog"
	"time"
)

// DefaultMaxRetained is the number of notifications kept before the oldest are evicted.
const DefaultMaxRetained = 50

// StoreOption configures a Store.
type StoreOption func(*Store)

// WithMaxRetained sets the store capacity. Non-positive values are ignored.
func WithMaxRetained(n int) StoreOption {
	return func(s *Store) {
		if n > 0 {
			s.maxRetained = n
		}
	}
}

// WithClock sets the time source used for CreatedAt.
func WithClock(now func() time.Time) StoreOption {
	return func(s *Store) {
		if now != nil {
			s.now = now
		}
	}
}

// WithIDGenerator replaces the default id generator.
func WithIDGenerator(gen func() string) StoreOption {
	return func(s *Store) {
		if gen != nil {
			s.newID = gen
		}
	}
}

// WithPublisher sets the publisher notified after each state change.
func WithPublisher(p Publisher) StoreOption {
	return func(s *Store) {
		s.publisher = p
	}
}

// WithStoreLogger sets the logger for the Store.
func WithStoreLogger(logger *slog.Logger) StoreOption {
	return func(s *Store) {
		if logger != nil {
			s.logger = logger
		}
	}
}

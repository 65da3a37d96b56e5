package broadcast

import "log/slog"

// HubOption configures a Hub.
type HubOption[T any] func(*Hub[T])

// WithHubLogger sets the logger used to report observer failures.
func WithHubLogger[T any](logger *slog.Logger) HubOption[T] {
	return func(h *Hub[T]) {
		if logger != nil {
			h.logger = logger
		}
	}
}

// WithClone makes the hub hand every observer its own copy of the published value,
// so one observer cannot change what the next one sees.
func WithClone[T any](clone func(T) T) HubOption[T] {
	return func(h *Hub[T]) {
		h.clone = clone
	}
}

// WithPanicHandler registers a callback invoked after an observer panic has been
// recovered. The error wraps ErrObserverPanic.
func WithPanicHandler[T any](fn func(Handle, error)) HubOption[T] {
	return func(h *Hub[T]) {
		h.onPanic = fn
	}
}

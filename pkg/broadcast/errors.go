package broadcast

import "errors"

var (
	// ErrNilObserver is returned when subscribing a nil observer.
	ErrNilObserver = errors.New("broadcast: observer is nil")

	// ErrObserverPanic wraps a value recovered from a panicking observer.
	ErrObserverPanic = errors.New("broadcast: observer panicked")
)

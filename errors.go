package notifykit

import "errors"

var (
	// ErrClosed is returned by operations on a closed Center.
	ErrClosed = errors.New("notifykit: center closed")

	// ErrInvalidConfig is returned when a Config cannot produce a working Center.
	ErrInvalidConfig = errors.New("notifykit: invalid config")
)

package simulator

import "errors"

var (
	// ErrAlreadyRunning is returned by Start when the loop is already running.
	ErrAlreadyRunning = errors.New("simulator: already running")

	// ErrNotRunning is returned by Stop when the loop is not running.
	ErrNotRunning = errors.New("simulator: not running")

	// ErrMissingDependency is returned by New when a required collaborator is nil.
	ErrMissingDependency = errors.New("simulator: missing dependency")
)

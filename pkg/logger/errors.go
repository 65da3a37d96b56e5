package logger

import "errors"

// ErrInvalidLevel is returned by ParseLevel for names slog does not recognize.
var ErrInvalidLevel = errors.New("logger: invalid level")

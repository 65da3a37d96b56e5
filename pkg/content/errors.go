package content

import "errors"

var (
	// ErrInvalidTable is returned when a content table is malformed or incomplete.
	ErrInvalidTable = errors.New("content: invalid content table")

	// ErrUnknownCategory is returned when generating content for a category the table lacks.
	ErrUnknownCategory = errors.New("content: unknown category")

	// ErrInvalidWeights is returned when category weights cannot be used for selection.
	ErrInvalidWeights = errors.New("content: invalid category weights")
)

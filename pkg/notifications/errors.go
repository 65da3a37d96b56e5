package notifications

import "errors"

var (
	// ErrInvalidCategory is returned when a category is outside the declared set.
	ErrInvalidCategory = errors.New("notifications: invalid category")

	// ErrEmptyTitle is returned when a notification is added without a title.
	ErrEmptyTitle = errors.New("notifications: title is required")

	// ErrEmptyDescription is returned when a notification is added without a description.
	ErrEmptyDescription = errors.New("notifications: description is required")
)

package feed

import "errors"

var (
	// ErrRefreshInFlight is returned when a refresh is requested while another is outstanding.
	ErrRefreshInFlight = errors.New("feed: refresh already in flight")

	// ErrRefreshCooldown is returned when a refresh is requested before the cooldown has elapsed.
	ErrRefreshCooldown = errors.New("feed: refresh cooldown not elapsed")

	// ErrNilSource is returned when a Refresher is created without a source.
	ErrNilSource = errors.New("feed: snapshot source is nil")

	// ErrSearchClosed is returned when updating a closed Search.
	ErrSearchClosed = errors.New("feed: search closed")
)

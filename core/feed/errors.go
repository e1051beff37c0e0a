package feed

import "errors"

var (
	// ErrNotAuthenticated is returned when a read that needs a stored
	// session finds none.
	ErrNotAuthenticated = errors.New("feed: not authenticated")
)

package credentials

import "errors"

var (
	// ErrIncompleteSession is returned when saving a session with any of the
	// three fields missing.
	ErrIncompleteSession = errors.New("credentials: session must carry access token, refresh token and user id")
	// ErrCorruptStore is returned when persisted data cannot be decoded.
	ErrCorruptStore = errors.New("credentials: persisted session is corrupt")
	// ErrSaveFailed is returned when writing to the underlying storage fails.
	ErrSaveFailed = errors.New("credentials: failed to save session")
	// ErrClearFailed is returned when removing persisted state fails.
	ErrClearFailed = errors.New("credentials: failed to clear session")
)

package credentials

import "context"

// Store defines durable persistence for the current session.
// Implementations must serialize writes relative to each other so that
// racing Save and Clear calls leave the store in the state of whichever
// write completed last, never a merge. Reads are side-effect-free and safe
// to run concurrently with each other and with writes.
type Store interface {
	// Save persists a complete session atomically from the caller's
	// perspective: a concurrent Load observes either the fully-old or the
	// fully-new session. Incomplete sessions are rejected with
	// ErrIncompleteSession.
	Save(ctx context.Context, session Session) error

	// Load returns the current session, or the zero Session when nothing is
	// persisted. Absence is not an error.
	Load(ctx context.Context) (Session, error)

	// Clear removes the persisted session. Clearing an empty store is a no-op.
	Clear(ctx context.Context) error
}

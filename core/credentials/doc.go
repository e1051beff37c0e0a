// Package credentials provides durable persistence for the current session:
// the access/refresh token pair and user identifier that authorize every
// backend call.
//
// # Data Model
//
// A Session is all-or-nothing. Save rejects incomplete sessions, Load never
// returns one, and Clear removes all three fields together, so no consumer
// can ever observe a half-authenticated identity. AuthStatus is derived
// purely from session presence; StatusUnknown exists only for the window
// before the first Load resolves.
//
// # Stores
//
// Two implementations ship with the package, with a third (Redis-backed) in
// integration/database/redis:
//
//   - FileStore: a single JSON document with atomic rename-based writes.
//     The durable store of the client apps.
//   - MemoryStore: ephemeral, for tests.
//
// All stores serialize writes: a logout racing a login terminates in the
// state of whichever write lands last, never a merged session.
//
// # Usage
//
//	store := credentials.NewFileStore(path)
//
//	sess, err := store.Load(ctx)
//	if err != nil {
//		// storage fault, not absence
//	}
//	if sess.IsZero() {
//		// no session; user must log in
//	}
package credentials

// Package auth implements the session manager: the single owner of the
// authentication lifecycle on top of the credential store and the backend
// API client.
//
// # Lifecycle
//
// A session moves NoSession -> (login success) -> HasSession -> (logout or
// rejected token) -> NoSession. The manager persists every transition
// through the credential store and publishes the derived AuthStatus to
// subscribers, so the navigation layer reacts to changes instead of polling.
//
//	manager := auth.NewManager(store, client, auth.WithLogger(log))
//	defer manager.Close()
//
//	sub := manager.StatusChanges(ctx)
//	if err := manager.Login(ctx, "user@example.com", password); err != nil {
//		var verrs validator.ValidationErrors
//		if errors.As(err, &verrs) {
//			// rejected locally, no network call was made
//		}
//	}
//
// # Validation
//
// Every operation validates its input locally first and short-circuits
// before touching the network. The login identifier is classified as an
// email, a 10-15 digit phone number, or an opaque username so the local
// error names what is actually wrong; the backend stays the sole authority
// on whether the credentials are valid.
//
// # Recovery
//
// When the backend stops accepting the access token, RefreshSession
// exchanges the stored refresh token exactly once. Any failure on that path
// drops the session: the defined recovery is demotion to unauthenticated,
// never a silent repair.
package auth

// Package feed reads the content feed and user profiles through the
// authorized API client.
//
// All reads carry the stored bearer credential via the client's authorizer.
// When the backend rejects the access token, the service exchanges the
// stored refresh token once through the session manager and retries; a
// failed exchange drops the session and the rejection reaches the caller,
// whose screen is then redirected by the navigation gate.
//
//	svc := feed.NewService(client, store, feed.WithRefresher(manager))
//	view, err := svc.Home(ctx)
package feed

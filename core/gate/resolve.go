package gate

import "github.com/kibraconnect/appkit/core/credentials"

// Decision is what the UI shell should do with a requested route.
type Decision int

const (
	// DecisionLoading: authentication status is not resolved yet; render a
	// loading placeholder and nothing else.
	DecisionLoading Decision = iota
	// DecisionRender: the requested route is reachable; render it.
	DecisionRender
	// DecisionRedirect: the requested route is outside the reachable
	// partition; go to Resolution.Route instead.
	DecisionRedirect
)

// String implements fmt.Stringer.
func (d Decision) String() string {
	switch d {
	case DecisionRender:
		return "render"
	case DecisionRedirect:
		return "redirect"
	default:
		return "loading"
	}
}

// Resolution is the outcome of resolving a requested route against the
// current authentication status. Route is the screen to show; it equals the
// requested route for DecisionRender and the partition entry for
// DecisionRedirect. It is empty while loading.
type Resolution struct {
	Decision Decision
	Route    Route
}

// Resolve is the pure routing decision: given the authentication status and
// the requested route, it yields render, redirect, or loading. Routes
// outside both partitions redirect to the reachable partition's entry, so a
// stale or mistyped route never renders a broken screen.
func Resolve(status credentials.AuthStatus, requested Route) Resolution {
	switch status {
	case credentials.StatusAuthenticated:
		if IsAuthenticated(requested) {
			return Resolution{Decision: DecisionRender, Route: requested}
		}
		return Resolution{Decision: DecisionRedirect, Route: AuthenticatedEntry}
	case credentials.StatusUnauthenticated:
		if IsPublic(requested) {
			return Resolution{Decision: DecisionRender, Route: requested}
		}
		return Resolution{Decision: DecisionRedirect, Route: PublicEntry}
	default:
		return Resolution{Decision: DecisionLoading}
	}
}

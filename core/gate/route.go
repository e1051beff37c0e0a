package gate

// Route names a navigable screen.
type Route string

// Public routes: reachable only without a session.
const (
	RouteLogin          Route = "login"
	RouteSignUp         Route = "signup"
	RouteVerifyEmail    Route = "verify-email"
	RouteForgotPassword Route = "forgot-password"
)

// Authenticated routes: reachable only with a session.
const (
	RouteHome        Route = "home"
	RouteProfile     Route = "profile"
	RouteMessages    Route = "messages"
	RouteEditProfile Route = "edit-profile"
)

// Partition entry points: where a request outside the reachable partition
// is redirected.
const (
	PublicEntry        = RouteLogin
	AuthenticatedEntry = RouteHome
)

var publicRoutes = map[Route]struct{}{
	RouteLogin:          {},
	RouteSignUp:         {},
	RouteVerifyEmail:    {},
	RouteForgotPassword: {},
}

var authenticatedRoutes = map[Route]struct{}{
	RouteHome:        {},
	RouteProfile:     {},
	RouteMessages:    {},
	RouteEditProfile: {},
}

// IsPublic reports whether the route belongs to the public partition.
func IsPublic(r Route) bool {
	_, ok := publicRoutes[r]
	return ok
}

// IsAuthenticated reports whether the route belongs to the authenticated
// partition.
func IsAuthenticated(r Route) bool {
	_, ok := authenticatedRoutes[r]
	return ok
}

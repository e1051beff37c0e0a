package credentials

// AuthStatus is the tri-state authentication status derived from the
// credential store. StatusUnknown is the only valid value before the store
// has been queried for the first time; screens guarded by authentication
// must not render while the status is unknown.
type AuthStatus int

const (
	StatusUnknown AuthStatus = iota
	StatusUnauthenticated
	StatusAuthenticated
)

// String implements fmt.Stringer.
func (s AuthStatus) String() string {
	switch s {
	case StatusUnauthenticated:
		return "unauthenticated"
	case StatusAuthenticated:
		return "authenticated"
	default:
		return "unknown"
	}
}

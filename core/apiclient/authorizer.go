package apiclient

import (
	"net/http"

	"github.com/google/uuid"

	"github.com/kibraconnect/appkit/core/credentials"
)

// Authorizer is an http.RoundTripper that injects the current access token
// as a bearer credential into every outbound request. The credential store
// is consulted per request, so a request started after logout goes out
// unauthenticated and a request started after login carries the new token.
//
// The Authorizer holds no state of its own and is safe for any number of
// in-flight requests. It does not react to rejected tokens; the backend's
// response is interpreted by the session manager.
type Authorizer struct {
	store credentials.Store
	next  http.RoundTripper
}

// AuthorizerOption configures an Authorizer.
type AuthorizerOption func(*Authorizer)

// WithBaseTransport sets the underlying transport. Defaults to http.DefaultTransport.
func WithBaseTransport(rt http.RoundTripper) AuthorizerOption {
	return func(a *Authorizer) {
		if rt != nil {
			a.next = rt
		}
	}
}

// NewAuthorizer creates a bearer-injecting round tripper over the given store.
func NewAuthorizer(store credentials.Store, opts ...AuthorizerOption) *Authorizer {
	a := &Authorizer{
		store: store,
		next:  http.DefaultTransport,
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// RoundTrip implements http.RoundTripper. The incoming request is cloned
// before modification, per the RoundTripper contract.
func (a *Authorizer) RoundTrip(req *http.Request) (*http.Response, error) {
	clone := req.Clone(req.Context())

	if clone.Header.Get("X-Request-ID") == "" {
		clone.Header.Set("X-Request-ID", uuid.NewString())
	}

	// A store fault reads as "no session": the request proceeds
	// unauthenticated and the backend stays the authority on access.
	if sess, err := a.store.Load(req.Context()); err == nil && sess.Complete() {
		clone.Header.Set("Authorization", "Bearer "+sess.AccessToken)
	}

	return a.next.RoundTrip(clone)
}

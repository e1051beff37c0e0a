// Package apiclient implements the HTTP client for the KibraConnect backend
// REST API and the request authorization layer shared by every call.
//
// # Authorizer
//
// Authorizer is an http.RoundTripper that consults the credential store on
// each request and attaches "Authorization: Bearer <access>" when, and only
// when, a session is stored at that moment. It never caches the token, so
// login and logout take effect on the very next request. The Authorizer
// does not interpret responses; an access token the backend no longer
// accepts surfaces as a 401 for the session manager to handle.
//
// # Client
//
// Client wraps the endpoint family: credential and Google login,
// registration, email verification, the password-reset pair, refresh-token
// exchange, profile reads, and the posts feed.
//
//	store := credentials.NewFileStore(path)
//	client, err := apiclient.New(apiclient.Config{BaseURL: baseURL}, store)
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	tokens, err := client.Login(ctx, "user@example.com", password)
//
// # Errors
//
// Backend rejections decode into *Error with the payload preserved: field
// errors keyed by field name, non-field errors, and the detail string, all
// verbatim. Transport-level failures wrap ErrNetwork. Use errors.As for the
// structured form and IsUnauthorized for the token-rejected signal.
package apiclient

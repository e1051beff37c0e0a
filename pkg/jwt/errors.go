package jwt

import "errors"

// ErrMalformedToken is returned when a token cannot be decoded as a JWT.
var ErrMalformedToken = errors.New("jwt: malformed token")

package jwt

import (
	"fmt"
	"time"

	jwtlib "github.com/golang-jwt/jwt/v5"
)

// TokenInfo holds the registered claims a client can read from a token it
// has no key to verify.
type TokenInfo struct {
	Subject   string
	ExpiresAt time.Time
	IssuedAt  time.Time
}

// Inspect decodes the claims of a JWT without verifying its signature.
// The backend is the sole authority on token validity; clients use the
// decoded claims only as hints (e.g. skipping a request that is guaranteed
// to be rejected as expired).
func Inspect(token string) (TokenInfo, error) {
	var claims jwtlib.RegisteredClaims

	if _, _, err := jwtlib.NewParser().ParseUnverified(token, &claims); err != nil {
		return TokenInfo{}, fmt.Errorf("%w: %w", ErrMalformedToken, err)
	}

	info := TokenInfo{Subject: claims.Subject}
	if claims.ExpiresAt != nil {
		info.ExpiresAt = claims.ExpiresAt.Time
	}
	if claims.IssuedAt != nil {
		info.IssuedAt = claims.IssuedAt.Time
	}
	return info, nil
}

// IsExpired reports whether the token carries an exp claim in the past,
// allowing for the given leeway. Tokens without an exp claim, and tokens
// that cannot be decoded at all, are reported as not expired so the backend
// stays the final judge.
func IsExpired(token string, leeway time.Duration) bool {
	info, err := Inspect(token)
	if err != nil || info.ExpiresAt.IsZero() {
		return false
	}
	return time.Now().Add(-leeway).After(info.ExpiresAt)
}

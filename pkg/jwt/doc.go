// Package jwt provides read-only inspection of JSON Web Tokens issued by a
// remote backend.
//
// Unlike server-side JWT packages, nothing here verifies signatures: the
// client never holds the signing key, so claims are decoded unverified and
// treated strictly as hints. The canonical use is checking whether a stored
// token's exp claim has already passed before spending a network round trip
// on a request the backend is guaranteed to reject.
//
//	if jwt.IsExpired(session.RefreshToken, 0) {
//		// refresh exchange would fail; drop straight to logout
//	}
package jwt

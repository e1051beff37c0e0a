package auth

import "errors"

var (
	// ErrInvalidCredentials is returned when the backend rejects a
	// login attempt. The backend's own message is wrapped alongside.
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrFederatedLogin is returned when the federated identity
	// assertion is rejected by the backend.
	ErrFederatedLogin = errors.New("federated login failed")

	// ErrNoPendingReset is returned when ConfirmPasswordReset is called
	// without a pending reset request that has passed the email step.
	ErrNoPendingReset = errors.New("no pending password reset")

	// ErrSessionExpired is returned when the stored session could not be
	// refreshed and has been dropped.
	ErrSessionExpired = errors.New("session expired")

	// ErrNoSession is returned when an operation needs a stored session
	// and none exists.
	ErrNoSession = errors.New("no stored session")
)

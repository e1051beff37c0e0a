package auth

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/kibraconnect/appkit/core/apiclient"
	"github.com/kibraconnect/appkit/core/credentials"
	"github.com/kibraconnect/appkit/core/logger"
	"github.com/kibraconnect/appkit/core/validator"
	"github.com/kibraconnect/appkit/pkg/broadcast"
	"github.com/kibraconnect/appkit/pkg/jwt"
)

const (
	minPasswordRunes = 8
	minUsernameRunes = 4

	// refreshLeeway keeps a refresh token that expires within the next
	// few seconds from being sent on a doomed exchange.
	refreshLeeway = 5 * time.Second

	statusBufferSize = 8
)

// Manager orchestrates the authentication lifecycle: credential and
// federated login, registration, email verification, password reset, and
// logout. Successful operations persist the session through the credential
// store; status transitions are published to subscribers.
//
// Local validation short-circuits before any network call, and backend
// field errors reach the caller verbatim.
type Manager struct {
	store  credentials.Store
	client *apiclient.Client
	log    *slog.Logger
	bus    *broadcast.MemoryBroadcaster[credentials.AuthStatus]

	mu          sync.Mutex
	statusKnown bool
	status      credentials.AuthStatus
	pending     *PendingResetRequest
}

// ManagerOption configures the manager.
type ManagerOption func(*Manager)

// WithLogger attaches a structured logger. Defaults to slog's discard handler.
func WithLogger(log *slog.Logger) ManagerOption {
	return func(m *Manager) {
		if log != nil {
			m.log = log
		}
	}
}

// NewManager creates a session manager over the given store and API client.
func NewManager(store credentials.Store, client *apiclient.Client, opts ...ManagerOption) *Manager {
	m := &Manager{
		store:  store,
		client: client,
		log:    slog.New(slog.DiscardHandler),
		bus:    broadcast.NewMemoryBroadcaster[credentials.AuthStatus](statusBufferSize),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// Close shuts down the status broadcaster and all its subscribers.
func (m *Manager) Close() error {
	return m.bus.Close()
}

// CurrentStatus returns the authentication status. The first call resolves
// it from the credential store; afterwards the cached value is maintained by
// every auth-changing operation. A store that cannot be read counts as
// holding no session.
func (m *Manager) CurrentStatus(ctx context.Context) credentials.AuthStatus {
	m.mu.Lock()
	defer m.mu.Unlock()

	if !m.statusKnown {
		session, err := m.store.Load(ctx)
		if err != nil {
			m.log.WarnContext(ctx, "credential store unreadable, treating as unauthenticated",
				logger.Component("auth"),
				logger.Error(err),
			)
		}
		m.statusKnown = true
		m.status = session.Status()
	}
	return m.status
}

// StatusChanges subscribes to authentication status transitions. The
// subscription is removed when ctx is cancelled.
func (m *Manager) StatusChanges(ctx context.Context) broadcast.Subscriber[credentials.AuthStatus] {
	return m.bus.Subscribe(ctx)
}

// Login exchanges an identifier/password pair for a session. The identifier
// may be an email address, a 10-15 digit phone number, or an opaque
// username; malformed input is rejected locally before any network call.
func (m *Manager) Login(ctx context.Context, identifier, password string) error {
	if err := validator.Apply(
		validator.Required("identifier", identifier),
		identifierRule(identifier),
		validator.Required("password", password),
		validator.MinRunes("password", password, minPasswordRunes),
	); err != nil {
		return err
	}

	tokens, err := m.client.Login(ctx, identifier, password)
	if err != nil {
		var apiErr *apiclient.Error
		if errors.As(err, &apiErr) {
			return fmt.Errorf("%w: %w", ErrInvalidCredentials, err)
		}
		return err
	}

	return m.establishSession(ctx, tokens)
}

// LoginWithGoogle exchanges a federated identity assertion for a session.
func (m *Manager) LoginWithGoogle(ctx context.Context, assertion string) error {
	if err := validator.Apply(validator.Required("assertion", assertion)); err != nil {
		return err
	}

	tokens, err := m.client.GoogleLogin(ctx, assertion)
	if err != nil {
		var apiErr *apiclient.Error
		if errors.As(err, &apiErr) {
			return fmt.Errorf("%w: %w", ErrFederatedLogin, err)
		}
		return err
	}

	return m.establishSession(ctx, tokens)
}

// Register creates a backend account and triggers the verification email.
// No session is established. Mismatched passwords are rejected locally
// without a network call; backend field errors pass through verbatim.
func (m *Manager) Register(ctx context.Context, username, email, password, confirmPassword string) error {
	if err := validator.Apply(
		validator.Required("username", username),
		validator.MinRunes("username", username, minUsernameRunes),
		validator.Required("email", email),
		validator.Email("email", email),
		validator.Required("password1", password),
		validator.MinRunes("password1", password, minPasswordRunes),
		validator.EqualTo("password2", confirmPassword, password, "passwords do not match"),
	); err != nil {
		return err
	}

	return m.client.Register(ctx, apiclient.RegistrationRequest{
		Username:  username,
		Email:     email,
		Password1: password,
		Password2: confirmPassword,
	})
}

// VerifyEmail confirms account ownership with the emailed code.
func (m *Manager) VerifyEmail(ctx context.Context, code string) error {
	if err := validator.Apply(validator.Required("verification_code", code)); err != nil {
		return err
	}
	return m.client.VerifyEmail(ctx, code)
}

// RequestPasswordReset asks the backend to mail a reset code and tracks the
// reset in a pending request. The request advances past the email step only
// when the backend accepts the address; a failure leaves it retryable.
func (m *Manager) RequestPasswordReset(ctx context.Context, email string) error {
	if err := validator.Apply(
		validator.Required("email", email),
		validator.Email("email", email),
	); err != nil {
		return err
	}

	m.setPending(&PendingResetRequest{Email: email, Step: StepEmailEntered})

	if err := m.client.ForgotPassword(ctx, email); err != nil {
		return err
	}

	m.setPending(&PendingResetRequest{Email: email, Step: StepCodeAndPassword})
	return nil
}

// ConfirmPasswordReset completes a pending reset with the emailed code. The
// session is not established; the user logs in with the new password. On
// success the pending request is destroyed; on failure it survives so the
// user can retry the code.
func (m *Manager) ConfirmPasswordReset(ctx context.Context, code, newPassword string) error {
	pending, ok := m.PendingReset()
	if !ok || pending.Step != StepCodeAndPassword {
		return ErrNoPendingReset
	}

	if err := validator.Apply(
		validator.Required("verification_code", code),
		validator.Required("new_password", newPassword),
		validator.MinRunes("new_password", newPassword, minPasswordRunes),
	); err != nil {
		return err
	}

	if err := m.client.ResetPassword(ctx, pending.Email, code, newPassword); err != nil {
		return err
	}

	m.setPending(nil)
	return nil
}

// PendingReset returns a copy of the in-flight password reset, if any.
func (m *Manager) PendingReset() (PendingResetRequest, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.pending == nil {
		return PendingResetRequest{}, false
	}
	return *m.pending, true
}

// Logout clears the stored session and demotes the status to
// unauthenticated. It never fails: a store that cannot be cleared is logged
// and the in-memory session is dropped regardless.
func (m *Manager) Logout(ctx context.Context) {
	// The clear must complete even if the calling screen has gone away.
	if err := m.store.Clear(context.WithoutCancel(ctx)); err != nil {
		m.log.ErrorContext(ctx, "failed to clear credential store",
			logger.Component("auth"),
			logger.Error(err),
		)
	}
	m.setStatus(ctx, credentials.StatusUnauthenticated)
	m.log.InfoContext(ctx, "logged out", logger.Component("auth"))
}

// RefreshSession exchanges the stored refresh token for a renewed access
// token. At most one exchange is attempted; a refresh token that is plainly
// expired skips the network round trip. Any failure drops the session and
// returns ErrSessionExpired, leaving login as the only way back.
func (m *Manager) RefreshSession(ctx context.Context) error {
	session, err := m.store.Load(ctx)
	if err != nil {
		m.Logout(ctx)
		return fmt.Errorf("%w: %w", ErrSessionExpired, err)
	}
	if !session.Complete() {
		m.setStatus(ctx, credentials.StatusUnauthenticated)
		return ErrNoSession
	}

	if jwt.IsExpired(session.RefreshToken, refreshLeeway) {
		m.Logout(ctx)
		return ErrSessionExpired
	}

	renewed, err := m.client.RefreshTokens(ctx, session.RefreshToken)
	if err != nil {
		m.Logout(ctx)
		return fmt.Errorf("%w: %w", ErrSessionExpired, err)
	}

	session.AccessToken = renewed.Access
	if renewed.Refresh != "" {
		session.RefreshToken = renewed.Refresh
	}

	if err := m.store.Save(context.WithoutCancel(ctx), session); err != nil {
		m.Logout(ctx)
		return fmt.Errorf("%w: %w", ErrSessionExpired, err)
	}

	m.setStatus(ctx, credentials.StatusAuthenticated)
	m.log.InfoContext(ctx, "session refreshed", logger.Component("auth"))
	return nil
}

// establishSession persists the token pair and promotes the status. The
// write runs to completion even when the caller's context is cancelled: a
// login already accepted by the backend must not leave a half-applied
// session behind.
func (m *Manager) establishSession(ctx context.Context, tokens apiclient.TokenPair) error {
	session := credentials.Session{
		AccessToken:  tokens.Access,
		RefreshToken: tokens.Refresh,
		UserID:       apiclient.FormatUserID(tokens.User.ID),
	}

	if err := m.store.Save(context.WithoutCancel(ctx), session); err != nil {
		return err
	}

	m.setStatus(ctx, credentials.StatusAuthenticated)
	m.log.InfoContext(ctx, "session established",
		logger.Component("auth"),
		logger.ID("user_id", session.UserID),
	)
	return nil
}

func (m *Manager) setStatus(ctx context.Context, status credentials.AuthStatus) {
	m.mu.Lock()
	changed := !m.statusKnown || m.status != status
	m.statusKnown = true
	m.status = status
	m.mu.Unlock()

	if changed {
		_ = m.bus.Broadcast(context.WithoutCancel(ctx), broadcast.Message[credentials.AuthStatus]{Data: status})
	}
}

func (m *Manager) setPending(p *PendingResetRequest) {
	m.mu.Lock()
	m.pending = p
	m.mu.Unlock()
}

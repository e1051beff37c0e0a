package auth_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	jwtlib "github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kibraconnect/appkit/core/apiclient"
	"github.com/kibraconnect/appkit/core/auth"
	"github.com/kibraconnect/appkit/core/credentials"
	"github.com/kibraconnect/appkit/core/validator"
)

type fakeBackend struct {
	requests  []string // paths, in order
	responses map[string]func(w http.ResponseWriter)
}

func newFixture(t *testing.T) (*fakeBackend, credentials.Store, *auth.Manager) {
	t.Helper()

	backend := &fakeBackend{responses: map[string]func(w http.ResponseWriter){}}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		backend.requests = append(backend.requests, r.URL.Path)
		if respond, ok := backend.responses[r.URL.Path]; ok {
			respond(w)
			return
		}
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{}`))
	}))
	t.Cleanup(srv.Close)

	store := credentials.NewMemoryStore()
	client, err := apiclient.New(apiclient.Config{BaseURL: srv.URL}, store)
	require.NoError(t, err)

	manager := auth.NewManager(store, client)
	t.Cleanup(func() { _ = manager.Close() })
	return backend, store, manager
}

func respondJSON(status int, body string) func(w http.ResponseWriter) {
	return func(w http.ResponseWriter) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_, _ = w.Write([]byte(body))
	}
}

func loginOK(access, refresh string, userID int64) func(w http.ResponseWriter) {
	return func(w http.ResponseWriter) {
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]any{
			"access":  access,
			"refresh": refresh,
			"user":    map[string]any{"id": userID},
		})
	}
}

// signedToken mints an HS256 token expiring at exp, shaped like the
// backend's own tokens.
func signedToken(t *testing.T, exp time.Time) string {
	t.Helper()
	token := jwtlib.NewWithClaims(jwtlib.SigningMethodHS256, jwtlib.RegisteredClaims{
		Subject:   "42",
		ExpiresAt: jwtlib.NewNumericDate(exp),
	})
	signed, err := token.SignedString([]byte("test-secret"))
	require.NoError(t, err)
	return signed
}

func TestManagerLogin(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	t.Run("persists session and promotes status", func(t *testing.T) {
		t.Parallel()

		backend, store, manager := newFixture(t)
		backend.responses["/auth/login/"] = loginOK("acc", "ref", 42)

		sub := manager.StatusChanges(ctx)
		require.NoError(t, manager.Login(ctx, "user@example.com", "longenough1"))

		session, err := store.Load(ctx)
		require.NoError(t, err)
		assert.Equal(t, credentials.Session{AccessToken: "acc", RefreshToken: "ref", UserID: "42"}, session)
		assert.Equal(t, credentials.StatusAuthenticated, manager.CurrentStatus(ctx))
		assert.Equal(t, []string{"/auth/login/"}, backend.requests)

		select {
		case msg := <-sub.Receive(ctx):
			assert.Equal(t, credentials.StatusAuthenticated, msg.Data)
		case <-time.After(time.Second):
			t.Fatal("no status broadcast received")
		}
	})

	t.Run("short password is rejected before any network call", func(t *testing.T) {
		t.Parallel()

		backend, store, manager := newFixture(t)

		err := manager.Login(ctx, "user@example.com", "short")
		var verrs validator.ValidationErrors
		require.ErrorAs(t, err, &verrs)
		assert.True(t, verrs.Has("password"))

		assert.Empty(t, backend.requests)
		session, err := store.Load(ctx)
		require.NoError(t, err)
		assert.True(t, session.IsZero())
	})

	t.Run("malformed email identifier is rejected locally", func(t *testing.T) {
		t.Parallel()

		backend, _, manager := newFixture(t)

		err := manager.Login(ctx, "not-an-email@", "longenough1")
		var verrs validator.ValidationErrors
		require.ErrorAs(t, err, &verrs)
		assert.True(t, verrs.Has("identifier"))
		assert.Empty(t, backend.requests)
	})

	t.Run("digit identifier is validated as a phone number", func(t *testing.T) {
		t.Parallel()

		backend, _, manager := newFixture(t)

		err := manager.Login(ctx, "12345", "longenough1")
		var verrs validator.ValidationErrors
		require.ErrorAs(t, err, &verrs)
		assert.True(t, verrs.Has("identifier"))
		assert.Empty(t, backend.requests)

		backend.responses["/auth/login/"] = loginOK("a", "r", 1)
		require.NoError(t, manager.Login(ctx, "5551234567", "longenough1"))
	})

	t.Run("opaque username goes straight to the backend", func(t *testing.T) {
		t.Parallel()

		backend, _, manager := newFixture(t)
		backend.responses["/auth/login/"] = loginOK("a", "r", 1)

		require.NoError(t, manager.Login(ctx, "jane_doe", "longenough1"))
		assert.Equal(t, []string{"/auth/login/"}, backend.requests)
	})

	t.Run("backend rejection surfaces invalid credentials with detail", func(t *testing.T) {
		t.Parallel()

		backend, store, manager := newFixture(t)
		backend.responses["/auth/login/"] = respondJSON(http.StatusBadRequest,
			`{"non_field_errors":["Unable to log in with provided credentials."]}`)

		err := manager.Login(ctx, "user@example.com", "longenough1")
		require.ErrorIs(t, err, auth.ErrInvalidCredentials)

		var apiErr *apiclient.Error
		require.ErrorAs(t, err, &apiErr)
		assert.Equal(t, "Unable to log in with provided credentials.", apiErr.Message())

		session, loadErr := store.Load(ctx)
		require.NoError(t, loadErr)
		assert.True(t, session.IsZero())
	})

	t.Run("network failure is not invalid credentials", func(t *testing.T) {
		t.Parallel()

		srv := httptest.NewServer(nil)
		srv.Close()

		store := credentials.NewMemoryStore()
		client, err := apiclient.New(apiclient.Config{BaseURL: srv.URL}, store)
		require.NoError(t, err)
		manager := auth.NewManager(store, client)
		t.Cleanup(func() { _ = manager.Close() })

		err = manager.Login(ctx, "user@example.com", "longenough1")
		assert.ErrorIs(t, err, apiclient.ErrNetwork)
		assert.NotErrorIs(t, err, auth.ErrInvalidCredentials)
	})
}

func TestManagerGoogleLogin(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	t.Run("assertion exchange establishes a session", func(t *testing.T) {
		t.Parallel()

		backend, store, manager := newFixture(t)
		backend.responses["/auth/google/"] = loginOK("acc", "ref", 7)

		require.NoError(t, manager.LoginWithGoogle(ctx, "assertion"))
		session, err := store.Load(ctx)
		require.NoError(t, err)
		assert.Equal(t, "7", session.UserID)
	})

	t.Run("rejected assertion reports federated login failure", func(t *testing.T) {
		t.Parallel()

		backend, _, manager := newFixture(t)
		backend.responses["/auth/google/"] = respondJSON(http.StatusBadRequest,
			`{"non_field_errors":["Invalid id_token"]}`)

		err := manager.LoginWithGoogle(ctx, "bad-assertion")
		assert.ErrorIs(t, err, auth.ErrFederatedLogin)
	})

	t.Run("empty assertion is rejected locally", func(t *testing.T) {
		t.Parallel()

		backend, _, manager := newFixture(t)
		var verrs validator.ValidationErrors
		require.ErrorAs(t, manager.LoginWithGoogle(ctx, ""), &verrs)
		assert.Empty(t, backend.requests)
	})
}

func TestManagerRegister(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	t.Run("mismatched passwords never reach the network", func(t *testing.T) {
		t.Parallel()

		backend, _, manager := newFixture(t)

		err := manager.Register(ctx, "jane", "jane@example.com", "longenough1", "different11")
		var verrs validator.ValidationErrors
		require.ErrorAs(t, err, &verrs)
		assert.True(t, verrs.Has("password2"))
		assert.Empty(t, backend.requests)
	})

	t.Run("valid signup does not establish a session", func(t *testing.T) {
		t.Parallel()

		backend, store, manager := newFixture(t)

		require.NoError(t, manager.Register(ctx, "jane", "jane@example.com", "longenough1", "longenough1"))
		assert.Equal(t, []string{"/auth/registration/"}, backend.requests)

		session, err := store.Load(ctx)
		require.NoError(t, err)
		assert.True(t, session.IsZero())
		assert.Equal(t, credentials.StatusUnauthenticated, manager.CurrentStatus(ctx))
	})

	t.Run("short username is rejected locally", func(t *testing.T) {
		t.Parallel()

		backend, _, manager := newFixture(t)
		var verrs validator.ValidationErrors
		require.ErrorAs(t, manager.Register(ctx, "jo", "jo@example.com", "longenough1", "longenough1"), &verrs)
		assert.True(t, verrs.Has("username"))
		assert.Empty(t, backend.requests)
	})

	t.Run("backend field errors pass through verbatim", func(t *testing.T) {
		t.Parallel()

		backend, _, manager := newFixture(t)
		backend.responses["/auth/registration/"] = respondJSON(http.StatusBadRequest,
			`{"username":["A user with that username already exists."]}`)

		err := manager.Register(ctx, "jane", "jane@example.com", "longenough1", "longenough1")
		var apiErr *apiclient.Error
		require.ErrorAs(t, err, &apiErr)
		assert.Equal(t, []string{"A user with that username already exists."}, apiErr.Fields["username"])
	})
}

func TestManagerPasswordReset(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	t.Run("full reset flow", func(t *testing.T) {
		t.Parallel()

		backend, _, manager := newFixture(t)

		require.NoError(t, manager.RequestPasswordReset(ctx, "a@b.com"))
		pending, ok := manager.PendingReset()
		require.True(t, ok)
		assert.Equal(t, "a@b.com", pending.Email)
		assert.Equal(t, auth.StepCodeAndPassword, pending.Step)

		require.NoError(t, manager.ConfirmPasswordReset(ctx, "123456", "longenough1"))
		_, ok = manager.PendingReset()
		assert.False(t, ok)

		// No auto-login: the user signs in with the new password.
		assert.Equal(t, credentials.StatusUnauthenticated, manager.CurrentStatus(ctx))
		assert.Equal(t, []string{"/accounts/forgot-password/", "/accounts/reset-password/"}, backend.requests)
	})

	t.Run("confirm without a pending request", func(t *testing.T) {
		t.Parallel()

		backend, _, manager := newFixture(t)
		err := manager.ConfirmPasswordReset(ctx, "123456", "longenough1")
		assert.ErrorIs(t, err, auth.ErrNoPendingReset)
		assert.Empty(t, backend.requests)
	})

	t.Run("rejected email leaves the request retryable at the email step", func(t *testing.T) {
		t.Parallel()

		backend, _, manager := newFixture(t)
		backend.responses["/accounts/forgot-password/"] = respondJSON(http.StatusBadRequest,
			`{"error":"No account with this email."}`)

		err := manager.RequestPasswordReset(ctx, "a@b.com")
		require.Error(t, err)

		pending, ok := manager.PendingReset()
		require.True(t, ok)
		assert.Equal(t, auth.StepEmailEntered, pending.Step)

		// The email step has not been passed, so confirm is still gated.
		assert.ErrorIs(t, manager.ConfirmPasswordReset(ctx, "1", "longenough1"), auth.ErrNoPendingReset)
	})

	t.Run("rejected code keeps the pending request alive", func(t *testing.T) {
		t.Parallel()

		backend, _, manager := newFixture(t)
		require.NoError(t, manager.RequestPasswordReset(ctx, "a@b.com"))

		backend.responses["/accounts/reset-password/"] = respondJSON(http.StatusBadRequest,
			`{"verification_code":["Invalid code."]}`)
		require.Error(t, manager.ConfirmPasswordReset(ctx, "000000", "longenough1"))

		pending, ok := manager.PendingReset()
		require.True(t, ok)
		assert.Equal(t, auth.StepCodeAndPassword, pending.Step)
	})
}

func TestManagerStatus(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	t.Run("resolves unauthenticated from an empty store at launch", func(t *testing.T) {
		t.Parallel()

		_, _, manager := newFixture(t)
		assert.Equal(t, credentials.StatusUnauthenticated, manager.CurrentStatus(ctx))
	})

	t.Run("resolves authenticated from a persisted session", func(t *testing.T) {
		t.Parallel()

		_, store, manager := newFixture(t)
		require.NoError(t, store.Save(ctx, credentials.Session{
			AccessToken: "a", RefreshToken: "r", UserID: "1",
		}))
		assert.Equal(t, credentials.StatusAuthenticated, manager.CurrentStatus(ctx))
	})

	t.Run("logout clears the store and broadcasts the demotion", func(t *testing.T) {
		t.Parallel()

		backend, store, manager := newFixture(t)
		backend.responses["/auth/login/"] = loginOK("acc", "ref", 42)
		require.NoError(t, manager.Login(ctx, "user@example.com", "longenough1"))

		sub := manager.StatusChanges(ctx)
		manager.Logout(ctx)

		session, err := store.Load(ctx)
		require.NoError(t, err)
		assert.True(t, session.IsZero())
		assert.Equal(t, credentials.StatusUnauthenticated, manager.CurrentStatus(ctx))

		select {
		case msg := <-sub.Receive(ctx):
			assert.Equal(t, credentials.StatusUnauthenticated, msg.Data)
		case <-time.After(time.Second):
			t.Fatal("no status broadcast received")
		}
	})

	t.Run("logout of an empty store still succeeds", func(t *testing.T) {
		t.Parallel()

		_, _, manager := newFixture(t)
		manager.Logout(ctx)
		assert.Equal(t, credentials.StatusUnauthenticated, manager.CurrentStatus(ctx))
	})
}

func TestManagerRefreshSession(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	t.Run("renews the access token in place", func(t *testing.T) {
		t.Parallel()

		backend, store, manager := newFixture(t)
		refresh := signedToken(t, time.Now().Add(time.Hour))
		require.NoError(t, store.Save(ctx, credentials.Session{
			AccessToken: "stale", RefreshToken: refresh, UserID: "42",
		}))
		backend.responses["/auth/token/refresh/"] = respondJSON(http.StatusOK, `{"access":"renewed"}`)

		require.NoError(t, manager.RefreshSession(ctx))

		session, err := store.Load(ctx)
		require.NoError(t, err)
		assert.Equal(t, "renewed", session.AccessToken)
		assert.Equal(t, refresh, session.RefreshToken)
		assert.Equal(t, credentials.StatusAuthenticated, manager.CurrentStatus(ctx))
	})

	t.Run("expired refresh token skips the network and logs out", func(t *testing.T) {
		t.Parallel()

		backend, store, manager := newFixture(t)
		require.NoError(t, store.Save(ctx, credentials.Session{
			AccessToken:  "stale",
			RefreshToken: signedToken(t, time.Now().Add(-time.Hour)),
			UserID:       "42",
		}))

		err := manager.RefreshSession(ctx)
		assert.ErrorIs(t, err, auth.ErrSessionExpired)
		assert.Empty(t, backend.requests)

		session, loadErr := store.Load(ctx)
		require.NoError(t, loadErr)
		assert.True(t, session.IsZero())
		assert.Equal(t, credentials.StatusUnauthenticated, manager.CurrentStatus(ctx))
	})

	t.Run("rejected exchange drops the session", func(t *testing.T) {
		t.Parallel()

		backend, store, manager := newFixture(t)
		require.NoError(t, store.Save(ctx, credentials.Session{
			AccessToken:  "stale",
			RefreshToken: signedToken(t, time.Now().Add(time.Hour)),
			UserID:       "42",
		}))
		backend.responses["/auth/token/refresh/"] = respondJSON(http.StatusUnauthorized,
			`{"detail":"Token is invalid or expired"}`)

		err := manager.RefreshSession(ctx)
		assert.ErrorIs(t, err, auth.ErrSessionExpired)

		session, loadErr := store.Load(ctx)
		require.NoError(t, loadErr)
		assert.True(t, session.IsZero())
	})

	t.Run("no stored session", func(t *testing.T) {
		t.Parallel()

		backend, _, manager := newFixture(t)
		err := manager.RefreshSession(ctx)
		assert.ErrorIs(t, err, auth.ErrNoSession)
		assert.Empty(t, backend.requests)
	})
}

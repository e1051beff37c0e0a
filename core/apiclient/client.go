package apiclient

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/kibraconnect/appkit/core/credentials"
	"github.com/kibraconnect/appkit/core/logger"
)

// Client talks to the KibraConnect backend REST API. Every request runs
// through the Authorizer, so calls made while a session is stored carry the
// bearer credential automatically.
type Client struct {
	baseURL    *url.URL
	httpClient *http.Client
	log        *slog.Logger
}

// Option configures the client.
type Option func(*Client)

// WithLogger attaches a structured logger. Defaults to slog's discard handler.
func WithLogger(log *slog.Logger) Option {
	return func(c *Client) {
		if log != nil {
			c.log = log
		}
	}
}

// WithHTTPClient replaces the HTTP client entirely. The caller is then
// responsible for wiring the Authorizer into its transport.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		if hc != nil {
			c.httpClient = hc
		}
	}
}

// New creates a client for the configured backend whose requests are
// authorized from the given credential store.
func New(cfg Config, store credentials.Store, opts ...Option) (*Client, error) {
	base, err := url.Parse(cfg.BaseURL)
	if err != nil || base.Scheme == "" || base.Host == "" {
		return nil, fmt.Errorf("%w: %q", ErrInvalidBaseURL, cfg.BaseURL)
	}
	if !strings.HasSuffix(base.Path, "/") {
		base.Path += "/"
	}

	c := &Client{
		baseURL: base,
		httpClient: &http.Client{
			Transport: NewAuthorizer(store),
			Timeout:   cfg.Timeout,
		},
		log: slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

// Login exchanges an identifier/password pair for a session token pair.
func (c *Client) Login(ctx context.Context, identifier, password string) (TokenPair, error) {
	var tokens TokenPair
	err := c.do(ctx, http.MethodPost, "auth/login/", loginRequest{
		Username: identifier,
		Password: password,
	}, &tokens)
	return tokens, err
}

// GoogleLogin exchanges a federated identity assertion for a session token pair.
func (c *Client) GoogleLogin(ctx context.Context, idToken string) (TokenPair, error) {
	var tokens TokenPair
	err := c.do(ctx, http.MethodPost, "auth/google/", googleLoginRequest{IDToken: idToken}, &tokens)
	return tokens, err
}

// Register submits a signup request. A verification email is sent by the
// backend; no session is established.
func (c *Client) Register(ctx context.Context, req RegistrationRequest) error {
	return c.do(ctx, http.MethodPost, "auth/registration/", req, nil)
}

// VerifyEmail confirms account ownership with the emailed code.
func (c *Client) VerifyEmail(ctx context.Context, code string) error {
	return c.do(ctx, http.MethodPost, "auth/verify-email/", verifyEmailRequest{VerificationCode: code}, nil)
}

// ForgotPassword asks the backend to email a password-reset code.
func (c *Client) ForgotPassword(ctx context.Context, email string) error {
	return c.do(ctx, http.MethodPost, "accounts/forgot-password/", forgotPasswordRequest{Email: email}, nil)
}

// ResetPassword completes a password reset with the emailed code.
func (c *Client) ResetPassword(ctx context.Context, email, code, newPassword string) error {
	return c.do(ctx, http.MethodPost, "accounts/reset-password/", resetPasswordRequest{
		Email:            email,
		VerificationCode: code,
		NewPassword:      newPassword,
	}, nil)
}

// RefreshTokens exchanges a refresh token for a renewed access token.
func (c *Client) RefreshTokens(ctx context.Context, refreshToken string) (RefreshedTokens, error) {
	var renewed RefreshedTokens
	err := c.do(ctx, http.MethodPost, "auth/token/refresh/", refreshRequest{Refresh: refreshToken}, &renewed)
	return renewed, err
}

// UserProfile fetches the profile of the given user.
func (c *Client) UserProfile(ctx context.Context, userID string) (Profile, error) {
	var profile Profile
	err := c.do(ctx, http.MethodGet, "accounts/users/"+url.PathEscape(userID)+"/", nil, &profile)
	return profile, err
}

// Posts returns the content feed, most recent first as ordered by the backend.
func (c *Client) Posts(ctx context.Context) ([]Post, error) {
	var posts []Post
	err := c.do(ctx, http.MethodGet, "api/posts/posts", nil, &posts)
	return posts, err
}

func (c *Client) do(ctx context.Context, method, path string, body, out any) error {
	var reqBody io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("%w: %w", ErrEncodeRequest, err)
		}
		reqBody = bytes.NewReader(data)
	}

	endpoint := c.baseURL.JoinPath(path)
	req, err := http.NewRequestWithContext(ctx, method, endpoint.String(), reqBody)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrEncodeRequest, err)
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.log.WarnContext(ctx, "backend unreachable",
			logger.Method(method),
			logger.Path(path),
			logger.Error(err),
		)
		return fmt.Errorf("%w: %w", ErrNetwork, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		apiErr := decodeError(resp.StatusCode, resp.Body)
		c.log.DebugContext(ctx, "backend rejected request",
			logger.Method(method),
			logger.Path(path),
			logger.StatusCode(resp.StatusCode),
		)
		return apiErr
	}

	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return fmt.Errorf("%w: %w", ErrDecodeResponse, err)
		}
	}
	return nil
}

// FormatUserID renders a backend numeric user ID as the string the
// credential store persists.
func FormatUserID(id int64) string {
	return strconv.FormatInt(id, 10)
}

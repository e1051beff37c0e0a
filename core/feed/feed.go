package feed

import (
	"context"
	"log/slog"

	"github.com/kibraconnect/appkit/core/apiclient"
	"github.com/kibraconnect/appkit/core/credentials"
	"github.com/kibraconnect/appkit/core/logger"
	"github.com/kibraconnect/appkit/pkg/async"
)

// SessionRefresher recovers a rejected access token by exchanging the
// stored refresh token. *auth.Manager satisfies it.
type SessionRefresher interface {
	RefreshSession(ctx context.Context) error
}

// Service reads the content feed and user profiles through the authorized
// API client. When the backend rejects the access token, the service asks
// the refresher to renew the session once and retries; if that fails the
// rejection propagates and the session is already dropped.
type Service struct {
	client    *apiclient.Client
	store     credentials.Store
	refresher SessionRefresher
	log       *slog.Logger
}

// Option configures the service.
type Option func(*Service)

// WithLogger attaches a structured logger. Defaults to slog's discard handler.
func WithLogger(log *slog.Logger) Option {
	return func(s *Service) {
		if log != nil {
			s.log = log
		}
	}
}

// WithRefresher enables refresh-once recovery on rejected access tokens.
func WithRefresher(r SessionRefresher) Option {
	return func(s *Service) {
		s.refresher = r
	}
}

// NewService creates a feed service over the authorized client and the
// credential store.
func NewService(client *apiclient.Client, store credentials.Store, opts ...Option) *Service {
	s := &Service{
		client: client,
		store:  store,
		log:    slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Posts returns the content feed in backend order.
func (s *Service) Posts(ctx context.Context) ([]apiclient.Post, error) {
	return fetchWithRefresh(ctx, s, func(ctx context.Context) ([]apiclient.Post, error) {
		return s.client.Posts(ctx)
	})
}

// Profile returns the profile of the signed-in user, identified by the
// stored session.
func (s *Service) Profile(ctx context.Context) (apiclient.Profile, error) {
	session, err := s.store.Load(ctx)
	if err != nil {
		return apiclient.Profile{}, err
	}
	if !session.Complete() {
		return apiclient.Profile{}, ErrNotAuthenticated
	}

	return fetchWithRefresh(ctx, s, func(ctx context.Context) (apiclient.Profile, error) {
		return s.client.UserProfile(ctx, session.UserID)
	})
}

// HomeView is everything the home screen shows.
type HomeView struct {
	Profile apiclient.Profile
	Posts   []apiclient.Post
}

// Home fetches the profile and the feed concurrently.
func (s *Service) Home(ctx context.Context) (HomeView, error) {
	profileF := async.Run(ctx, s, func(ctx context.Context, s *Service) (apiclient.Profile, error) {
		return s.Profile(ctx)
	})
	postsF := async.Run(ctx, s, func(ctx context.Context, s *Service) ([]apiclient.Post, error) {
		return s.Posts(ctx)
	})

	profile, perr := profileF.Await()
	posts, ferr := postsF.Await()
	if perr != nil {
		return HomeView{}, perr
	}
	if ferr != nil {
		return HomeView{}, ferr
	}
	return HomeView{Profile: profile, Posts: posts}, nil
}

// fetchWithRefresh runs fn and, on a rejected access token, refreshes the
// session once and retries. Exactly one refresh exchange per call.
func fetchWithRefresh[T any](ctx context.Context, s *Service, fn func(context.Context) (T, error)) (T, error) {
	out, err := fn(ctx)
	if err == nil || s.refresher == nil || !apiclient.IsUnauthorized(err) {
		return out, err
	}

	s.log.InfoContext(ctx, "access token rejected, refreshing session",
		logger.Component("feed"),
	)
	if rerr := s.refresher.RefreshSession(ctx); rerr != nil {
		return out, err
	}
	return fn(ctx)
}

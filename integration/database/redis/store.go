package redis

import (
	"context"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/kibraconnect/appkit/core/credentials"
)

const defaultCredentialKey = "kibraconnect:credentials"

// CredentialStore is a Redis-backed credentials.Store for deployments that
// share one session across processes (companion daemons, kiosk fleets).
// The session lives in a single hash so writes replace it wholesale.
type CredentialStore struct {
	client *redis.Client
	key    string
}

// CredentialStoreOption configures a CredentialStore.
type CredentialStoreOption func(*CredentialStore)

// WithCredentialKey overrides the hash key holding the session.
func WithCredentialKey(key string) CredentialStoreOption {
	return func(s *CredentialStore) {
		if key != "" {
			s.key = key
		}
	}
}

// NewCredentialStore creates a Redis-backed credential store.
func NewCredentialStore(client *redis.Client, opts ...CredentialStoreOption) *CredentialStore {
	s := &CredentialStore{
		client: client,
		key:    defaultCredentialKey,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Save implements credentials.Store. Delete and rewrite run in one
// transaction so readers never observe a merge of two sessions.
func (s *CredentialStore) Save(ctx context.Context, session credentials.Session) error {
	if !session.Complete() {
		return credentials.ErrIncompleteSession
	}

	pipe := s.client.TxPipeline()
	pipe.Del(ctx, s.key)
	pipe.HSet(ctx, s.key, map[string]any{
		"access_token":  session.AccessToken,
		"refresh_token": session.RefreshToken,
		"user_id":       session.UserID,
	})
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("%w: %w", credentials.ErrSaveFailed, err)
	}
	return nil
}

// Load implements credentials.Store. A missing or incomplete hash reads as
// no session.
func (s *CredentialStore) Load(ctx context.Context) (credentials.Session, error) {
	fields, err := s.client.HGetAll(ctx, s.key).Result()
	if err != nil {
		return credentials.Session{}, fmt.Errorf("%w: %w", credentials.ErrCorruptStore, err)
	}

	session := credentials.Session{
		AccessToken:  fields["access_token"],
		RefreshToken: fields["refresh_token"],
		UserID:       fields["user_id"],
	}
	if !session.Complete() {
		return credentials.Session{}, nil
	}
	return session, nil
}

// Clear implements credentials.Store.
func (s *CredentialStore) Clear(ctx context.Context) error {
	if err := s.client.Del(ctx, s.key).Err(); err != nil {
		return fmt.Errorf("%w: %w", credentials.ErrClearFailed, err)
	}
	return nil
}

package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// SessionStore keeps hashed refresh tokens and short-lived OAuth state
// nonces. Redis TTLs take care of expiry; revocation is a delete.
type SessionStore interface {
	SaveRefreshToken(ctx context.Context, tokenHash, userID string, ttl time.Duration) error
	GetRefreshToken(ctx context.Context, tokenHash string) (string, error)
	RevokeRefreshToken(ctx context.Context, tokenHash string) error
	SaveOAuthState(ctx context.Context, state string, ttl time.Duration) error
	ConsumeOAuthState(ctx context.Context, state string) (bool, error)
}

type sessionStore struct {
	client *redis.Client
}

func NewSessionStore(client *redis.Client) SessionStore {
	return &sessionStore{client: client}
}

func refreshKey(tokenHash string) string {
	return fmt.Sprintf("session:refresh:%s", tokenHash)
}

func stateKey(state string) string {
	return fmt.Sprintf("oauth:state:%s", state)
}

func (s *sessionStore) SaveRefreshToken(ctx context.Context, tokenHash, userID string, ttl time.Duration) error {
	return s.client.Set(ctx, refreshKey(tokenHash), userID, ttl).Err()
}

// GetRefreshToken returns the owning user id, or "" when the token is
// unknown, revoked, or expired.
func (s *sessionStore) GetRefreshToken(ctx context.Context, tokenHash string) (string, error) {
	userID, err := s.client.Get(ctx, refreshKey(tokenHash)).Result()
	if errors.Is(err, redis.Nil) {
		return "", nil
	}
	if err != nil {
		return "", err
	}
	return userID, nil
}

func (s *sessionStore) RevokeRefreshToken(ctx context.Context, tokenHash string) error {
	return s.client.Del(ctx, refreshKey(tokenHash)).Err()
}

func (s *sessionStore) SaveOAuthState(ctx context.Context, state string, ttl time.Duration) error {
	return s.client.Set(ctx, stateKey(state), "1", ttl).Err()
}

// ConsumeOAuthState reports whether the state nonce was issued by us and
// deletes it so it cannot be replayed.
func (s *sessionStore) ConsumeOAuthState(ctx context.Context, state string) (bool, error) {
	deleted, err := s.client.Del(ctx, stateKey(state)).Result()
	if err != nil {
		return false, err
	}
	return deleted > 0, nil
}

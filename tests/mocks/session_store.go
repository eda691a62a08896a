package mocks

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"
)

type SessionStore struct {
	mock.Mock
}

func (m *SessionStore) SaveRefreshToken(ctx context.Context, tokenHash, userID string, ttl time.Duration) error {
	args := m.Called(ctx, tokenHash, userID, ttl)
	return args.Error(0)
}

func (m *SessionStore) GetRefreshToken(ctx context.Context, tokenHash string) (string, error) {
	args := m.Called(ctx, tokenHash)
	return args.String(0), args.Error(1)
}

func (m *SessionStore) RevokeRefreshToken(ctx context.Context, tokenHash string) error {
	args := m.Called(ctx, tokenHash)
	return args.Error(0)
}

func (m *SessionStore) SaveOAuthState(ctx context.Context, state string, ttl time.Duration) error {
	args := m.Called(ctx, state, ttl)
	return args.Error(0)
}

func (m *SessionStore) ConsumeOAuthState(ctx context.Context, state string) (bool, error) {
	args := m.Called(ctx, state)
	return args.Bool(0), args.Error(1)
}

package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"clipstream/internal/domain"
)

type VideoService struct {
	mock.Mock
}

func (m *VideoService) Create(ctx context.Context, ownerID primitive.ObjectID, input domain.CreateVideoInput) (*domain.Video, error) {
	args := m.Called(ctx, ownerID, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Video), args.Error(1)
}

func (m *VideoService) ListByOwner(ctx context.Context, ownerID primitive.ObjectID) ([]domain.Video, error) {
	args := m.Called(ctx, ownerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Video), args.Error(1)
}

func (m *VideoService) GetByID(ctx context.Context, id primitive.ObjectID) (*domain.Video, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Video), args.Error(1)
}

func (m *VideoService) Delete(ctx context.Context, id, callerID primitive.ObjectID) error {
	args := m.Called(ctx, id, callerID)
	return args.Error(0)
}

package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"clipstream/internal/service/mediahost"
)

type MediaHostService struct {
	mock.Mock
}

func (m *MediaHostService) AuthParams() (*mediahost.UploadCredential, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*mediahost.UploadCredential), args.Error(1)
}

func (m *MediaHostService) DeleteFile(ctx context.Context, fileID string) error {
	args := m.Called(ctx, fileID)
	return args.Error(0)
}

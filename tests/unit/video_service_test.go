package unit_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"clipstream/internal/domain"
	"clipstream/internal/service/video"
	"clipstream/tests/mocks"
)

func TestVideoService_Create(t *testing.T) {
	ctx := context.Background()
	ownerID := primitive.NewObjectID()

	input := domain.CreateVideoInput{
		Title:        "A",
		Description:  "d",
		VideoURL:     "https://ik.example.com/v.mp4",
		ThumbnailURL: "https://ik.example.com/t.jpg",
		FileID:       "file-123",
	}

	t.Run("Owner comes from caller", func(t *testing.T) {
		mockRepo := new(mocks.VideoRepository)
		mockHost := new(mocks.MediaHostService)
		svc := video.NewService(mockRepo, mockHost)

		mockRepo.On("Create", ctx, mock.MatchedBy(func(v *domain.Video) bool {
			return v.UserID == ownerID && v.Title == "A" && v.FileID == "file-123"
		})).Return(nil).Once()

		created, err := svc.Create(ctx, ownerID, input)

		assert.NoError(t, err)
		assert.Equal(t, ownerID, created.UserID)
		mockRepo.AssertExpectations(t)
	})

	t.Run("Controls defaults to true", func(t *testing.T) {
		mockRepo := new(mocks.VideoRepository)
		svc := video.NewService(mockRepo, new(mocks.MediaHostService))

		mockRepo.On("Create", ctx, mock.Anything).Return(nil).Once()

		created, err := svc.Create(ctx, ownerID, input)

		assert.NoError(t, err)
		assert.True(t, created.Controls)
	})

	t.Run("Explicit controls false is kept", func(t *testing.T) {
		mockRepo := new(mocks.VideoRepository)
		svc := video.NewService(mockRepo, new(mocks.MediaHostService))

		mockRepo.On("Create", ctx, mock.Anything).Return(nil).Once()

		off := false
		withControls := input
		withControls.Controls = &off

		created, err := svc.Create(ctx, ownerID, withControls)

		assert.NoError(t, err)
		assert.False(t, created.Controls)
	})

	t.Run("Store error surfaces", func(t *testing.T) {
		mockRepo := new(mocks.VideoRepository)
		svc := video.NewService(mockRepo, new(mocks.MediaHostService))

		mockRepo.On("Create", ctx, mock.Anything).Return(errors.New("insert failed")).Once()

		created, err := svc.Create(ctx, ownerID, input)

		assert.Error(t, err)
		assert.Nil(t, created)
	})
}

func TestVideoService_ListByOwner(t *testing.T) {
	ctx := context.Background()
	ownerID := primitive.NewObjectID()

	t.Run("Empty slice for owner with no videos", func(t *testing.T) {
		mockRepo := new(mocks.VideoRepository)
		svc := video.NewService(mockRepo, new(mocks.MediaHostService))

		mockRepo.On("ListByOwner", ctx, ownerID).Return([]domain.Video{}, nil).Once()

		videos, err := svc.ListByOwner(ctx, ownerID)

		assert.NoError(t, err)
		assert.Empty(t, videos)
		assert.NotNil(t, videos)
	})

	t.Run("Returns repository ordering untouched", func(t *testing.T) {
		mockRepo := new(mocks.VideoRepository)
		svc := video.NewService(mockRepo, new(mocks.MediaHostService))

		newer := domain.Video{ID: primitive.NewObjectID(), UserID: ownerID, Title: "newer"}
		older := domain.Video{ID: primitive.NewObjectID(), UserID: ownerID, Title: "older"}
		mockRepo.On("ListByOwner", ctx, ownerID).Return([]domain.Video{newer, older}, nil).Once()

		videos, err := svc.ListByOwner(ctx, ownerID)

		assert.NoError(t, err)
		assert.Equal(t, []domain.Video{newer, older}, videos)
	})
}

func TestVideoService_GetByID(t *testing.T) {
	ctx := context.Background()

	t.Run("Found", func(t *testing.T) {
		mockRepo := new(mocks.VideoRepository)
		svc := video.NewService(mockRepo, new(mocks.MediaHostService))

		id := primitive.NewObjectID()
		stored := &domain.Video{ID: id, UserID: primitive.NewObjectID(), Title: "A"}
		mockRepo.On("GetByID", ctx, id).Return(stored, nil).Once()

		v, err := svc.GetByID(ctx, id)

		assert.NoError(t, err)
		assert.Equal(t, stored, v)
	})

	t.Run("Not found", func(t *testing.T) {
		mockRepo := new(mocks.VideoRepository)
		svc := video.NewService(mockRepo, new(mocks.MediaHostService))

		id := primitive.NewObjectID()
		mockRepo.On("GetByID", ctx, id).Return(nil, nil).Once()

		v, err := svc.GetByID(ctx, id)

		assert.ErrorIs(t, err, video.ErrNotFound)
		assert.Nil(t, v)
	})
}

func TestVideoService_Delete(t *testing.T) {
	ctx := context.Background()
	ownerID := primitive.NewObjectID()
	otherID := primitive.NewObjectID()
	videoID := primitive.NewObjectID()

	stored := &domain.Video{ID: videoID, UserID: ownerID, Title: "A", FileID: "file-123"}

	t.Run("Forbidden for non-owner, record untouched", func(t *testing.T) {
		mockRepo := new(mocks.VideoRepository)
		mockHost := new(mocks.MediaHostService)
		svc := video.NewService(mockRepo, mockHost)

		mockRepo.On("GetByID", ctx, videoID).Return(stored, nil).Once()

		err := svc.Delete(ctx, videoID, otherID)

		assert.ErrorIs(t, err, video.ErrForbidden)
		mockRepo.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
		mockHost.AssertNotCalled(t, "DeleteFile", mock.Anything, mock.Anything)
	})

	t.Run("Not found", func(t *testing.T) {
		mockRepo := new(mocks.VideoRepository)
		svc := video.NewService(mockRepo, new(mocks.MediaHostService))

		mockRepo.On("GetByID", ctx, videoID).Return(nil, nil).Once()

		err := svc.Delete(ctx, videoID, ownerID)

		assert.ErrorIs(t, err, video.ErrNotFound)
	})

	t.Run("Owner delete removes file and record", func(t *testing.T) {
		mockRepo := new(mocks.VideoRepository)
		mockHost := new(mocks.MediaHostService)
		svc := video.NewService(mockRepo, mockHost)

		mockRepo.On("GetByID", ctx, videoID).Return(stored, nil).Once()
		mockHost.On("DeleteFile", ctx, "file-123").Return(nil).Once()
		mockRepo.On("Delete", ctx, videoID).Return(stored, nil).Once()

		err := svc.Delete(ctx, videoID, ownerID)

		assert.NoError(t, err)
		mockRepo.AssertExpectations(t)
		mockHost.AssertExpectations(t)
	})

	t.Run("Media host failure does not block the delete", func(t *testing.T) {
		mockRepo := new(mocks.VideoRepository)
		mockHost := new(mocks.MediaHostService)
		svc := video.NewService(mockRepo, mockHost)

		mockRepo.On("GetByID", ctx, videoID).Return(stored, nil).Once()
		mockHost.On("DeleteFile", ctx, "file-123").Return(errors.New("host unavailable")).Once()
		mockRepo.On("Delete", ctx, videoID).Return(stored, nil).Once()

		err := svc.Delete(ctx, videoID, ownerID)

		assert.NoError(t, err)
		mockRepo.AssertExpectations(t)
	})

	t.Run("No file id skips the media host", func(t *testing.T) {
		mockRepo := new(mocks.VideoRepository)
		mockHost := new(mocks.MediaHostService)
		svc := video.NewService(mockRepo, mockHost)

		legacy := &domain.Video{ID: videoID, UserID: ownerID, Title: "old"}
		mockRepo.On("GetByID", ctx, videoID).Return(legacy, nil).Once()
		mockRepo.On("Delete", ctx, videoID).Return(legacy, nil).Once()

		err := svc.Delete(ctx, videoID, ownerID)

		assert.NoError(t, err)
		mockHost.AssertNotCalled(t, "DeleteFile", mock.Anything, mock.Anything)
	})

	t.Run("Record vanishing mid-delete reports not found", func(t *testing.T) {
		mockRepo := new(mocks.VideoRepository)
		mockHost := new(mocks.MediaHostService)
		svc := video.NewService(mockRepo, mockHost)

		mockRepo.On("GetByID", ctx, videoID).Return(stored, nil).Once()
		mockHost.On("DeleteFile", ctx, "file-123").Return(nil).Once()
		mockRepo.On("Delete", ctx, videoID).Return(nil, nil).Once()

		err := svc.Delete(ctx, videoID, ownerID)

		assert.ErrorIs(t, err, video.ErrNotFound)
	})
}

package video

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"clipstream/internal/domain"
	"clipstream/internal/pkg/logging"
	"clipstream/internal/repository"
	"clipstream/internal/service/mediahost"
)

var (
	ErrNotFound  = errors.New("video not found")
	ErrForbidden = errors.New("caller does not own this video")
)

type Service interface {
	Create(ctx context.Context, ownerID primitive.ObjectID, input domain.CreateVideoInput) (*domain.Video, error)
	ListByOwner(ctx context.Context, ownerID primitive.ObjectID) ([]domain.Video, error)
	GetByID(ctx context.Context, id primitive.ObjectID) (*domain.Video, error)
	Delete(ctx context.Context, id, callerID primitive.ObjectID) error
}

type service struct {
	videoRepo repository.VideoRepository
	mediaHost mediahost.Service
}

func NewService(videoRepo repository.VideoRepository, mediaHost mediahost.Service) Service {
	return &service{
		videoRepo: videoRepo,
		mediaHost: mediaHost,
	}
}

// Create persists a video owned by ownerID. Field presence is enforced at
// the handler boundary; the owner always comes from the session, never from
// the request body.
func (s *service) Create(ctx context.Context, ownerID primitive.ObjectID, input domain.CreateVideoInput) (*domain.Video, error) {
	controls := true
	if input.Controls != nil {
		controls = *input.Controls
	}

	video := &domain.Video{
		UserID:         ownerID,
		Title:          input.Title,
		Description:    input.Description,
		VideoURL:       input.VideoURL,
		ThumbnailURL:   input.ThumbnailURL,
		FileID:         input.FileID,
		Controls:       controls,
		Transformation: input.Transformation,
	}

	if err := s.videoRepo.Create(ctx, video); err != nil {
		return nil, err
	}
	return video, nil
}

func (s *service) ListByOwner(ctx context.Context, ownerID primitive.ObjectID) ([]domain.Video, error) {
	return s.videoRepo.ListByOwner(ctx, ownerID)
}

// GetByID intentionally performs no ownership check: read-by-id has always
// been open to any caller, matching the scoping of the public watch page.
func (s *service) GetByID(ctx context.Context, id primitive.ObjectID) (*domain.Video, error) {
	video, err := s.videoRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if video == nil {
		return nil, ErrNotFound
	}
	return video, nil
}

// Delete removes the record and, when the video carries a media-host file
// id, asks the host to drop the file first. The host call is advisory: a
// failure there leaves an orphaned file at the host, which is invisible to
// users, whereas aborting would leave metadata the owner can never remove.
func (s *service) Delete(ctx context.Context, id, callerID primitive.ObjectID) error {
	video, err := s.videoRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if video == nil {
		return ErrNotFound
	}
	if video.UserID != callerID {
		return ErrForbidden
	}

	if video.FileID != "" {
		if err := s.mediaHost.DeleteFile(ctx, video.FileID); err != nil {
			logging.L().WithError(err).WithFields(map[string]interface{}{
				"videoId": id.Hex(),
				"fileId":  video.FileID,
			}).Warn("media host delete failed, removing metadata anyway")
		}
	}

	deleted, err := s.videoRepo.Delete(ctx, id)
	if err != nil {
		return err
	}
	if deleted == nil {
		// Lost a race with a concurrent delete.
		return ErrNotFound
	}
	return nil
}

package handler

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"clipstream/internal/domain"
	"clipstream/internal/middleware"
	"clipstream/internal/service/video"
)

type VideoHandler struct {
	videoService video.Service
}

func NewVideoHandler(videoService video.Service) *VideoHandler {
	return &VideoHandler{videoService: videoService}
}

func (h *VideoHandler) Create(c *fiber.Ctx) error {
	userID := middleware.GetCurrentUserID(c)
	if userID.IsZero() {
		return middleware.Unauthorized("User not authenticated")
	}

	var input domain.CreateVideoInput
	if err := parseBody(c, &input); err != nil {
		return err
	}

	created, err := h.videoService.Create(c.Context(), userID, input)
	if err != nil {
		return err
	}

	return c.Status(fiber.StatusCreated).JSON(created)
}

// List returns the videos of the owner named in the ownerId query
// parameter, falling back to the session user when it is absent.
func (h *VideoHandler) List(c *fiber.Ctx) error {
	userID := middleware.GetCurrentUserID(c)

	ownerID := userID
	if ownerParam := c.Query("ownerId"); ownerParam != "" {
		parsed, err := primitive.ObjectIDFromHex(ownerParam)
		if err != nil {
			return middleware.BadRequest("Invalid owner ID")
		}
		ownerID = parsed
	}
	if ownerID.IsZero() {
		return middleware.BadRequest("User ID not found")
	}

	videos, err := h.videoService.ListByOwner(c.Context(), ownerID)
	if err != nil {
		return err
	}

	return c.Status(fiber.StatusOK).JSON(videos)
}

func (h *VideoHandler) Get(c *fiber.Ctx) error {
	id, err := primitive.ObjectIDFromHex(c.Params("id"))
	if err != nil {
		return middleware.NotFound("Video not found")
	}

	v, err := h.videoService.GetByID(c.Context(), id)
	if err != nil {
		if errors.Is(err, video.ErrNotFound) {
			return middleware.NotFound("Video not found")
		}
		return err
	}

	return c.Status(fiber.StatusOK).JSON(v)
}

func (h *VideoHandler) Delete(c *fiber.Ctx) error {
	userID := middleware.GetCurrentUserID(c)
	if userID.IsZero() {
		return middleware.Unauthorized("User not authenticated")
	}

	id, err := primitive.ObjectIDFromHex(c.Params("id"))
	if err != nil {
		return middleware.NotFound("Video not found")
	}

	if err := h.videoService.Delete(c.Context(), id, userID); err != nil {
		if errors.Is(err, video.ErrNotFound) {
			return middleware.NotFound("Video not found")
		}
		if errors.Is(err, video.ErrForbidden) {
			return middleware.Forbidden("You don't have permission to delete this video")
		}
		return err
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"message": "Video deleted successfully",
	})
}

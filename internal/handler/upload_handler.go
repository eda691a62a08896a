package handler

import (
	"github.com/gofiber/fiber/v2"

	"clipstream/internal/middleware"
	"clipstream/internal/service/mediahost"
)

type UploadHandler struct {
	mediaHost mediahost.Service
}

func NewUploadHandler(mediaHost mediahost.Service) *UploadHandler {
	return &UploadHandler{mediaHost: mediaHost}
}

// Credential hands the browser the signed parameters it needs to upload a
// file straight to the media host. The file bytes never touch this server.
func (h *UploadHandler) Credential(c *fiber.Ctx) error {
	cred, err := h.mediaHost.AuthParams()
	if err != nil {
		return middleware.NewError(fiber.StatusInternalServerError, "Failed to generate upload credential")
	}

	return c.Status(fiber.StatusOK).JSON(cred)
}

package handler

import "clipstream/internal/service"

type Handlers struct {
	Auth   *AuthHandler
	Video  *VideoHandler
	Upload *UploadHandler
}

func NewHandlers(services *service.Services) *Handlers {
	return &Handlers{
		Auth:   NewAuthHandler(services.Auth),
		Video:  NewVideoHandler(services.Video),
		Upload: NewUploadHandler(services.MediaHost),
	}
}

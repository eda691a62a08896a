package service

import (
	"clipstream/internal/config"
	"clipstream/internal/repository"
	"clipstream/internal/service/auth"
	"clipstream/internal/service/email"
	"clipstream/internal/service/mediahost"
	"clipstream/internal/service/video"
)

type Services struct {
	Auth      auth.Service
	Video     video.Service
	MediaHost mediahost.Service
	Email     email.Service
}

func NewServices(repos *repository.Repositories, cfg *config.Config) *Services {
	emailService := email.NewService(cfg)
	mediaHostService := mediahost.NewService(cfg)
	authService := auth.NewService(repos.User, repos.Session, emailService, cfg)
	videoService := video.NewService(repos.Video, mediaHostService)

	return &Services{
		Auth:      authService,
		Video:     videoService,
		MediaHost: mediaHostService,
		Email:     emailService,
	}
}

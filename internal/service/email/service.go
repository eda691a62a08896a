package email

import (
	"context"
	"fmt"

	"github.com/resend/resend-go/v3"

	"clipstream/internal/config"
)

type Service interface {
	SendWelcomeEmail(ctx context.Context, toEmail, name string) error
}

type service struct {
	client *resend.Client
	cfg    *config.Config
}

func NewService(cfg *config.Config) Service {
	return &service{
		client: resend.NewClient(cfg.ResendAPIKey),
		cfg:    cfg,
	}
}

func (s *service) SendWelcomeEmail(ctx context.Context, toEmail, name string) error {
	if s.cfg.ResendAPIKey == "" {
		return nil
	}

	greeting := "there"
	if name != "" {
		greeting = name
	}

	body := fmt.Sprintf(`<p>Hi %s,</p>
<p>Your account is ready. Head over to <a href="%s">your dashboard</a> to upload your first video.</p>`,
		greeting, s.cfg.AppURL)

	params := &resend.SendEmailRequest{
		From:    fmt.Sprintf("Clipstream <%s>", s.cfg.FromEmail),
		To:      []string{toEmail},
		Html:    body,
		Subject: "Welcome to Clipstream",
	}

	_, err := s.client.Emails.Send(params)
	return err
}

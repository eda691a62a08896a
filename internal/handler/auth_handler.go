package handler

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"clipstream/internal/domain"
	"clipstream/internal/middleware"
	"clipstream/internal/service/auth"
)

type AuthHandler struct {
	authService auth.Service
}

func NewAuthHandler(authService auth.Service) *AuthHandler {
	return &AuthHandler{authService: authService}
}

func (h *AuthHandler) Register(c *fiber.Ctx) error {
	var input domain.RegisterInput
	if err := parseBody(c, &input); err != nil {
		return err
	}

	user, err := h.authService.Register(c.Context(), input)
	if err != nil {
		if errors.Is(err, auth.ErrEmailExists) {
			return middleware.Conflict("Email already registered")
		}
		return err
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"user":    user,
		"message": "Registration successful",
	})
}

func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var input domain.LoginInput
	if err := parseBody(c, &input); err != nil {
		return err
	}

	user, tokens, err := h.authService.Login(c.Context(), input)
	if err != nil {
		if errors.Is(err, auth.ErrInvalidCredentials) {
			return middleware.Unauthorized("Invalid email or password")
		}
		return err
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"user":          user,
		"access_token":  tokens.AccessToken,
		"refresh_token": tokens.RefreshToken,
		"expires_in":    tokens.ExpiresIn,
	})
}

func (h *AuthHandler) RefreshToken(c *fiber.Ctx) error {
	var input struct {
		RefreshToken string `json:"refresh_token" validate:"required"`
	}
	if err := parseBody(c, &input); err != nil {
		return err
	}

	tokens, err := h.authService.RefreshToken(c.Context(), input.RefreshToken)
	if err != nil {
		if errors.Is(err, auth.ErrInvalidToken) || errors.Is(err, auth.ErrUserNotFound) {
			return middleware.Unauthorized("Invalid refresh token")
		}
		return err
	}

	return c.Status(fiber.StatusOK).JSON(tokens)
}

// GoogleLogin kicks off the delegated sign-in: it parks a state nonce and
// redirects the browser to the Google consent screen.
func (h *AuthHandler) GoogleLogin(c *fiber.Ctx) error {
	url, err := h.authService.GoogleAuthURL(c.Context())
	if err != nil {
		if errors.Is(err, auth.ErrOAuthNotConfigured) {
			return middleware.NewError(fiber.StatusNotImplemented, "Google sign-in is not configured")
		}
		return err
	}

	return c.Redirect(url, fiber.StatusTemporaryRedirect)
}

func (h *AuthHandler) GoogleCallback(c *fiber.Ctx) error {
	state := c.Query("state")
	code := c.Query("code")
	if state == "" || code == "" {
		return middleware.BadRequest("Missing state or code")
	}

	user, tokens, err := h.authService.GoogleCallback(c.Context(), state, code)
	if err != nil {
		if errors.Is(err, auth.ErrOAuthStateInvalid) {
			return middleware.Unauthorized("Invalid or expired OAuth state")
		}
		if errors.Is(err, auth.ErrOAuthNotConfigured) {
			return middleware.NewError(fiber.StatusNotImplemented, "Google sign-in is not configured")
		}
		return err
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"user":          user,
		"access_token":  tokens.AccessToken,
		"refresh_token": tokens.RefreshToken,
		"expires_in":    tokens.ExpiresIn,
	})
}

package handler

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"clipstream/internal/middleware"
)

var validate = validator.New()

// parseBody decodes and validates a JSON request body into out, rejecting
// malformed or incomplete input before any service code runs.
func parseBody(c *fiber.Ctx, out interface{}) error {
	if err := c.BodyParser(out); err != nil {
		return middleware.BadRequest("Invalid request body")
	}
	if err := validate.Struct(out); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) && len(verrs) > 0 {
			return middleware.BadRequest(validationMessage(verrs[0]))
		}
		return middleware.BadRequest("Invalid request body")
	}
	return nil
}

func validationMessage(fe validator.FieldError) string {
	field := fe.Field()
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("Missing required field: %s", lowerFirst(field))
	case "email":
		return "Invalid email address"
	case "min":
		return fmt.Sprintf("%s is too short (min %s)", field, fe.Param())
	case "max":
		return fmt.Sprintf("%s is too long (max %s)", field, fe.Param())
	case "url":
		return fmt.Sprintf("%s must be a valid URL", lowerFirst(field))
	default:
		return fmt.Sprintf("Invalid value for %s", lowerFirst(field))
	}
}

func lowerFirst(s string) string {
	if s == "" {
		return s
	}
	return strings.ToLower(s[:1]) + s[1:]
}

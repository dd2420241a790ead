package handlers

import (
	"github.com/gofiber/fiber/v2"
	log "github.com/sirupsen/logrus"

	"github.com/gradeup-ai/gradeup-mvp/internal/apperrors"
)

// NewErrorHandler maps the error taxonomy onto HTTP statuses. Internal errors
// are logged in full but reported with a generic diagnostic unless debug
// detail is enabled.
func NewErrorHandler(debugErrors bool) fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		switch {
		case apperrors.IsValidation(err) || apperrors.IsDuplicate(err):
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
		case apperrors.IsNotFound(err):
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": err.Error()})
		case apperrors.IsUnauthorized(err):
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": err.Error()})
		case apperrors.IsUpstream(err):
			return c.Status(fiber.StatusBadGateway).JSON(fiber.Map{"error": err.Error()})
		}

		if e, ok := err.(*fiber.Error); ok {
			return c.Status(e.Code).JSON(fiber.Map{"error": e.Message})
		}

		log.WithError(err).WithFields(log.Fields{
			"method": c.Method(),
			"path":   c.Path(),
		}).Error("unhandled error")

		message := "internal server error"
		if debugErrors {
			message = err.Error()
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": message})
	}
}

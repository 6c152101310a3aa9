package http

import (
	"errors"

	"github.com/PolyglAI/PolyglAI/pkg/app/moderation"
	"github.com/PolyglAI/PolyglAI/pkg/app/translation"
	"github.com/PolyglAI/PolyglAI/pkg/common"
	domainTranslation "github.com/PolyglAI/PolyglAI/pkg/domain/translation"
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

// caller returns the learner id and client details resolved by the client
// middleware. Both are empty when the middleware is not mounted.
func caller(c *fiber.Ctx) (string, *moderation.ClientInfo) {
	userID, _ := c.Locals(common.UserIDContextKey).(string)
	info, _ := c.Locals(common.ClientInfoKey).(*moderation.ClientInfo)
	return userID, info
}

// translationError maps a consumer error to its HTTP response. Anything that
// is not a request problem is a provider failure.
func translationError(c *fiber.Ctx, logger *logrus.Logger, err error) error {
	switch {
	case errors.Is(err, domainTranslation.ErrEmptyTarget),
		errors.Is(err, translation.ErrUnsupportedFile),
		errors.Is(err, translation.ErrEmptyFile):
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	case errors.Is(err, translation.ErrFileTooLarge):
		return c.Status(fiber.StatusRequestEntityTooLarge).JSON(fiber.Map{"error": err.Error()})
	default:
		logger.WithError(err).WithField("path", c.Path()).Error("translation provider request failed")
		return c.Status(fiber.StatusBadGateway).JSON(fiber.Map{"error": "translation service unavailable"})
	}
}

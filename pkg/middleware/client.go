package middleware

import (
	"context"
	"strings"

	"github.com/PolyglAI/PolyglAI/pkg/common"
	"github.com/PolyglAI/PolyglAI/pkg/utils"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

const maxUserIDLength = 128

type clientMiddleware struct{}

// NewClientMiddleware resolves the caller's identity and client details.
// The learner id comes from the X-User-ID header set by the hosted auth
// proxy in front of the console.
func NewClientMiddleware() Middleware {
	return &clientMiddleware{}
}

func (m *clientMiddleware) Middleware() fiber.Handler {
	return func(c *fiber.Ctx) error {
		requestID := c.Get(common.RequestIDHeader)
		if requestID == "" {
			requestID = uuid.NewString()
		}
		c.Set(common.RequestIDHeader, requestID)

		userID := strings.TrimSpace(c.Get(common.UserIDHeader))
		if len(userID) > maxUserIDLength {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "user id is too long"})
		}

		info := utils.ParseClientInfo(c.Get(fiber.HeaderUserAgent), c.Get(fiber.HeaderAcceptLanguage))

		c.Locals(common.RequestIDKey, requestID)
		c.Locals(common.UserIDContextKey, userID)
		c.Locals(common.ClientInfoKey, info)

		ctx := context.WithValue(c.UserContext(), common.RequestIDKey, requestID)
		c.SetUserContext(ctx)

		return c.Next()
	}
}

package middleware

import (
	infraWebsocket "github.com/PolyglAI/PolyglAI/pkg/infra/websocket"
	"github.com/gofiber/contrib/websocket"
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

type streamMiddleware struct {
	logger    *logrus.Logger
	semaphore *infraWebsocket.Semaphore
}

// NewStreamMiddleware admits websocket upgrades for the moderation stream
// while a connection slot is free. The handler releases the slot once the
// connection ends; a failed upgrade releases it here.
func NewStreamMiddleware(logger *logrus.Logger, semaphore *infraWebsocket.Semaphore) Middleware {
	return &streamMiddleware{
		logger:    logger,
		semaphore: semaphore,
	}
}

func (m *streamMiddleware) Middleware() fiber.Handler {
	return func(c *fiber.Ctx) error {
		if !websocket.IsWebSocketUpgrade(c) {
			return c.Status(fiber.StatusUpgradeRequired).JSON(fiber.Map{"error": "websocket upgrade required"})
		}
		if !m.semaphore.Acquire() {
			m.logger.Warn("maximum moderation stream connections reached, rejecting connection")
			return c.Status(fiber.StatusTooManyRequests).JSON(fiber.Map{"error": "too many stream connections"})
		}
		if err := c.Next(); err != nil {
			m.semaphore.Release()
			return err
		}
		return nil
	}
}

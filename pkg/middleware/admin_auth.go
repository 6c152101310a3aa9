package middleware

import (
	"errors"
	"strings"

	"github.com/PolyglAI/PolyglAI/pkg/common"
	"github.com/PolyglAI/PolyglAI/pkg/infra/auth/jwt"
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

const authorizationHeader = "Authorization"
const bearerPrefix = "Bearer "

type adminAuthMiddleware struct {
	logger     *logrus.Logger
	jwtManager jwt.Manager
}

func NewAdminAuthMiddleware(
	logger *logrus.Logger,
	jwtManager jwt.Manager,
) Middleware {
	return &adminAuthMiddleware{
		logger:     logger,
		jwtManager: jwtManager,
	}
}

func (m *adminAuthMiddleware) Middleware() fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		tokenString, errMsg := m.extractToken(ctx)
		if errMsg != "" {
			m.logger.WithField("path", ctx.Path()).Debug(errMsg)
			return ctx.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": errMsg})
		}

		claims, err := m.jwtManager.ValidateToken(tokenString)
		if err != nil {
			m.logger.WithError(err).Debug("invalid admin token")
			if errors.Is(err, jwt.ErrForbiddenRole) {
				return ctx.Status(fiber.StatusForbidden).JSON(fiber.Map{"error": "Admin role required"})
			}
			if errors.Is(err, jwt.ErrExpiredToken) {
				return ctx.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Token expired"})
			}
			return ctx.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Invalid token"})
		}

		ctx.Locals(common.AdminClaimsKey, claims)
		return ctx.Next()
	}
}

func (m *adminAuthMiddleware) extractToken(ctx *fiber.Ctx) (string, string) {
	authHeader := ctx.Get(authorizationHeader)
	if authHeader == "" {
		if token := ctx.Query(common.StreamTokenQuery); token != "" && isUpgrade(ctx) {
			return token, ""
		}
		return "", "Authorization required"
	}
	if !strings.HasPrefix(authHeader, bearerPrefix) {
		return "", "Invalid authorization format"
	}
	tokenString := strings.TrimSpace(strings.TrimPrefix(authHeader, bearerPrefix))
	if tokenString == "" {
		return "", "Empty token provided"
	}
	return tokenString, ""
}

func isUpgrade(ctx *fiber.Ctx) bool {
	return strings.EqualFold(ctx.Get(fiber.HeaderUpgrade), "websocket")
}

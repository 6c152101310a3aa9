package middleware

import (
	"strings"

	"github.com/gofiber/fiber/v2"
)

type SecurityConfig struct {
	AllowOrigins []string
	// MaxAge is the preflight cache lifetime in seconds.
	MaxAge string
}

type securityMiddleware struct {
	allowOrigins []string
	maxAge       string
}

// NewSecurityMiddleware sets the response hardening headers and answers CORS
// preflights for the learner dashboard origins.
func NewSecurityMiddleware(cfg SecurityConfig) Middleware {
	return &securityMiddleware{
		allowOrigins: cfg.AllowOrigins,
		maxAge:       cfg.MaxAge,
	}
}

func (m *securityMiddleware) Middleware() fiber.Handler {
	return func(c *fiber.Ctx) error {
		c.Set("X-Content-Type-Options", "nosniff")
		c.Set("X-Frame-Options", "DENY")
		c.Set("Referrer-Policy", "no-referrer")

		origin := c.Get(fiber.HeaderOrigin)
		if origin == "" || !m.originAllowed(origin) {
			return c.Next()
		}

		c.Set(fiber.HeaderVary, fiber.HeaderOrigin)
		c.Set(fiber.HeaderAccessControlAllowOrigin, origin)
		c.Set(fiber.HeaderAccessControlExposeHeaders, "X-Request-ID")

		if c.Method() == fiber.MethodOptions && c.Get(fiber.HeaderAccessControlRequestMethod) != "" {
			c.Set(fiber.HeaderAccessControlAllowMethods, "GET, POST, OPTIONS")
			reqHeaders := c.Get(fiber.HeaderAccessControlRequestHeaders)
			if reqHeaders == "" {
				reqHeaders = "Content-Type"
			}
			c.Set(fiber.HeaderAccessControlAllowHeaders, reqHeaders)
			if m.maxAge != "" {
				c.Set(fiber.HeaderAccessControlMaxAge, m.maxAge)
			}
			return c.SendStatus(fiber.StatusNoContent)
		}
		return c.Next()
	}
}

func (m *securityMiddleware) originAllowed(origin string) bool {
	for _, o := range m.allowOrigins {
		if o == "*" || strings.EqualFold(o, origin) {
			return true
		}
	}
	return false
}

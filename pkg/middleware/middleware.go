package middleware

import "github.com/gofiber/fiber/v2"

type Middleware interface {
	Middleware() fiber.Handler
}

type Transport struct {
	PanicRecoverMiddleware Middleware
	SecurityMiddleware     Middleware
	MetricsMiddleware      Middleware
	ClientMiddleware       Middleware
	AdminAuthMiddleware    Middleware
	StreamMiddleware       Middleware
}

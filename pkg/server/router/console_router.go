package router

import (
	"time"

	_ "github.com/PolyglAI/PolyglAI/docs"
	handlers "github.com/PolyglAI/PolyglAI/pkg/handlers/http"
	wsHandlers "github.com/PolyglAI/PolyglAI/pkg/handlers/websocket"
	"github.com/PolyglAI/PolyglAI/pkg/middleware"
	"github.com/gofiber/contrib/websocket"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/swagger"
)

const (
	HealthPath      = "/health"
	AdminHealthPath = "/__/health"
	VersionPath     = "/version"
	DocsPath        = "/docs/*"
	StreamPath      = "/stream"
)

type consoleRouter struct {
	middlewareTransport *middleware.Transport
	handlerTransport    *handlers.HandlerTransport
	wsHandlerTransport  wsHandlers.HandlerTransport
}

func NewConsoleRouter(
	middlewareTransport *middleware.Transport,
	handlerTransport *handlers.HandlerTransport,
	wsHandlerTransport wsHandlers.HandlerTransport,
) ServerRouter {
	return &consoleRouter{
		middlewareTransport: middlewareTransport,
		handlerTransport:    handlerTransport,
		wsHandlerTransport:  wsHandlerTransport,
	}
}

func (r *consoleRouter) BuildRoutes(router *fiber.App) error {
	if r.handlerTransport == nil || r.middlewareTransport == nil {
		return ErrInvalidHandlerTransport
	}
	wsHandlerTransport, ok := r.wsHandlerTransport.GetTransport().(*wsHandlers.HandlerTransportDTO)
	if !ok {
		return ErrInvalidHandlerTransport
	}
	h := r.handlerTransport
	m := r.middlewareTransport

	router.Use(
		m.PanicRecoverMiddleware.Middleware(),
		m.SecurityMiddleware.Middleware(),
		m.ClientMiddleware.Middleware(),
		m.MetricsMiddleware.Middleware(),
	)

	router.Get(HealthPath, h.HealthHandler.Handle)
	router.Get(AdminHealthPath, h.HealthHandler.Handle)
	router.Get(VersionPath, h.GetVersionHandler.Handle)
	router.Get(DocsPath, swagger.HandlerDefault)

	v1 := router.Group("/api/v1")
	{
		v1.Post("/content/validate", h.ValidateContentHandler.Handle)
		v1.Post("/translations", h.CreateTranslationHandler.Handle)
		v1.Post("/files/translations", h.CreateFileTranslationHandler.Handle)
		v1.Post("/languages/detect", h.DetectLanguageHandler.Handle)

		admin := v1.Group("/moderation", m.AdminAuthMiddleware.Middleware())
		{
			admin.Get("/records", h.ListRecordsHandler.Handle)
			admin.Get("/records/:record_id", h.GetRecordHandler.Handle)
			admin.Get("/high-risk-users", h.ListHighRiskUsersHandler.Handle)
			admin.Get("/users/:user_id/violations", h.GetUserViolationsHandler.Handle)
			admin.Get(StreamPath,
				m.StreamMiddleware.Middleware(),
				websocket.New(
					wsHandlerTransport.ModerationStreamHandler.Handle,
					websocket.Config{
						HandshakeTimeout: 15 * time.Second,
						ReadBufferSize:   1024,
						WriteBufferSize:  1024,
					},
				),
			)
		}
	}
	return nil
}

package http

import "github.com/gofiber/fiber/v2"

type Handler interface {
	Handle(ctx *fiber.Ctx) error
}

type HandlerTransport struct {
	// Learner dashboard
	ValidateContentHandler       Handler
	CreateTranslationHandler     Handler
	CreateFileTranslationHandler Handler
	DetectLanguageHandler        Handler

	// Admin console
	ListRecordsHandler       Handler
	GetRecordHandler         Handler
	ListHighRiskUsersHandler Handler
	GetUserViolationsHandler Handler

	// Ops
	GetVersionHandler Handler
	HealthHandler     Handler
}

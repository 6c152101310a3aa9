package http

import (
	"github.com/PolyglAI/PolyglAI/pkg/app/translation"
	"github.com/PolyglAI/PolyglAI/pkg/handlers/http/request"
	"github.com/PolyglAI/PolyglAI/pkg/handlers/http/response"
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

type detectLanguageHandler struct {
	logger   *logrus.Logger
	detector translation.LanguageDetector
}

func NewDetectLanguageHandler(logger *logrus.Logger, detector translation.LanguageDetector) Handler {
	return &detectLanguageHandler{
		logger:   logger,
		detector: detector,
	}
}

// Handle @Summary Detect the language of learner text
// @Tags Translations
// @Accept json
// @Produce json
// @Param X-User-ID header string false "Learner id"
// @Param request body request.DetectLanguageRequest true "Text"
// @Success 200 {object} response.DetectLanguageOutput "Detected language"
// @Failure 422 {object} response.BlockedOutput "Blocked by moderation"
// @Failure 502 {object} map[string]interface{} "Provider failure"
// @Router /api/v1/languages/detect [post]
func (h *detectLanguageHandler) Handle(c *fiber.Ctx) error {
	var req request.DetectLanguageRequest
	if err := c.BodyParser(&req); err != nil {
		h.logger.WithError(err).Debug("failed to parse detect request")
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid request body"})
	}

	userID, client := caller(c)
	result, err := h.detector.Detect(c.UserContext(), translation.DetectRequest{
		Text:   req.Text,
		UserID: userID,
		Client: client,
	})
	if err != nil {
		return translationError(c, h.logger, err)
	}
	if result.Blocked {
		return c.Status(fiber.StatusUnprocessableEntity).JSON(response.NewBlockedOutput(result.Validation))
	}
	return c.Status(fiber.StatusOK).JSON(response.DetectLanguageOutput{Language: result.Language})
}
